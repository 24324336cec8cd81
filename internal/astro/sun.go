package astro

import "math"

// ObliquityRad is the Earth's mean axial tilt at J2000 in radians.
// Treated as constant; the drift over this system's lifetime is far below
// its precision goals.
const ObliquityRad = 23.439291 * math.Pi / 180

// SunEclipticLongitudeRad returns the Sun's true ecliptic longitude in
// radians [0, 2π) for a day count from DaysSinceJ2000.
//
// Low-order approximation: mean longitude plus the equation of center from
// the mean anomaly. Good to a few hundredths of a degree; documented as
// not suitable for sub-degree apex work.
func SunEclipticLongitudeRad(days float64) float64 {
	// Mean longitude and mean anomaly of the Sun (degrees).
	meanLon := normalize360(280.461 + 0.9856474*days)
	meanAnom := DegToRad(normalize360(357.528 + 0.9856003*days))

	// Equation of center (degrees).
	center := 1.915*math.Sin(meanAnom) + 0.020*math.Sin(2*meanAnom)

	return DegToRad(normalize360(meanLon + center))
}

// normalize360 normalizes an angle in degrees to [0, 360).
func normalize360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
