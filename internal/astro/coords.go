// Package astro provides the celestial mechanics core: coordinate
// transformations, sidereal time, and sky-position math.
package astro

import (
	"math"
	"time"
)

// J2000 is the reference epoch 2000-01-01 12:00:00 UTC.
// Constructed UTC-explicit; all sidereal math below assumes UTC instants.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive), -90 to +90
	LonDeg float64 // Longitude in degrees (east positive), -180 to +180
}

// Target is a fixed sky coordinate in the equatorial frame.
// Epoch-invariant for this system's precision goals.
type Target struct {
	RAHours float64 // Right Ascension in hours (0-24)
	DecDeg  float64 // Declination in degrees (-90 to +90)
}

// RADeg returns the target's right ascension in degrees.
func (t Target) RADeg() float64 {
	return t.RAHours * 15
}

// HorizonDirection is a direction in the observer's local horizon frame.
// Azimuth: 0 = North, π/2 = East, increasing eastward.
// Altitude: 0 = horizon, +π/2 = zenith.
type HorizonDirection struct {
	AzRad  float64
	AltRad float64
}

// AzDeg returns the azimuth in degrees (display convenience).
func (h HorizonDirection) AzDeg() float64 { return RadToDeg(h.AzRad) }

// AltDeg returns the altitude in degrees (display convenience).
func (h HorizonDirection) AltDeg() float64 { return RadToDeg(h.AltRad) }

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// DaysSinceJ2000 returns signed fractional days between t and the J2000
// epoch. Exactly 0 at the epoch, linear in elapsed time; the fractional
// part carries the sub-day precision sidereal time needs.
func DaysSinceJ2000(t time.Time) float64 {
	return float64(t.UTC().Sub(J2000)) / float64(24*time.Hour)
}

// LocalSiderealTimeDeg returns the local sidereal time in degrees [0,360)
// for a day count from DaysSinceJ2000 and an east-positive longitude.
func LocalSiderealTimeDeg(days, lonDeg float64) float64 {
	lst := 280.46061837 + 360.98564736629*days + lonDeg
	// Double modulo: plain Mod leaves negative results for past epochs.
	return math.Mod(math.Mod(lst, 360)+360, 360)
}

// HourAngleDeg returns the hour angle in degrees [0,360) for a local
// sidereal time and a target right ascension, both in degrees.
// Both operands are already bounded, so a single wrap suffices.
func HourAngleDeg(lstDeg, raDeg float64) float64 {
	ha := lstDeg - raDeg
	if ha < 0 {
		ha += 360
	}
	return ha
}

// AltitudeRad returns the altitude in radians [-π/2, π/2] of a target at
// declination dec and hour angle ha for an observer at latitude lat.
// All arguments in radians.
func AltitudeRad(latRad, decRad, haRad float64) float64 {
	sinAlt := math.Sin(latRad)*math.Sin(decRad) +
		math.Cos(latRad)*math.Cos(decRad)*math.Cos(haRad)
	return math.Asin(clamp1(sinAlt))
}

// AzimuthRad returns the azimuth in radians [0, 2π), 0 = North increasing
// eastward. acos alone cannot distinguish east-of-meridian from
// west-of-meridian, so the result is disambiguated by the sign of
// sin(hourAngle): past the meridian (setting side) maps to 2π - acos.
func AzimuthRad(latRad, decRad, altRad, haRad float64) float64 {
	cosAz := (math.Sin(decRad) - math.Sin(altRad)*math.Sin(latRad)) /
		(math.Cos(altRad) * math.Cos(latRad))
	az := math.Acos(clamp1(cosAz))
	if math.Sin(haRad) > 0 {
		az = 2*math.Pi - az
	}
	return az
}

// AngleBetweenPointsDeg returns the great-circle angle in degrees between
// two horizon-frame points given in degrees. Haversine form: stable for
// small separations, 0 for identical points, 180 for antipodes.
func AngleBetweenPointsDeg(az1, alt1, az2, alt2 float64) float64 {
	a1 := DegToRad(alt1)
	a2 := DegToRad(alt2)
	dAlt := DegToRad(alt2 - alt1)
	dAz := DegToRad(az2 - az1)

	h := math.Sin(dAlt/2)*math.Sin(dAlt/2) +
		math.Cos(a1)*math.Cos(a2)*math.Sin(dAz/2)*math.Sin(dAz/2)
	if h > 1 {
		h = 1
	}
	return RadToDeg(2 * math.Asin(math.Sqrt(h)))
}

// EclipticToEquatorial converts ecliptic longitude/latitude to equatorial
// RA/Dec for a given obliquity. All angles in radians; RA is normalized
// into [0, 2π).
func EclipticToEquatorial(lambda, beta, obliquity float64) (raRad, decRad float64) {
	sinE := math.Sin(obliquity)
	cosE := math.Cos(obliquity)

	ra := math.Atan2(math.Sin(lambda)*cosE-math.Tan(beta)*sinE, math.Cos(lambda))
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Asin(clamp1(math.Sin(beta)*cosE + math.Cos(beta)*sinE*math.Sin(lambda)))
	return ra, dec
}

// EquatorialToHorizontal converts an hour angle and declination to a
// horizon direction for an observer at latitude lat. All angles in
// radians. Used by the orbital-motion path; the atan2 form is south-based,
// shifted by π here to the north-based convention.
func EquatorialToHorizontal(haRad, decRad, latRad float64) HorizonDirection {
	az := math.Atan2(math.Sin(haRad),
		math.Cos(haRad)*math.Sin(latRad)-math.Tan(decRad)*math.Cos(latRad))
	az += math.Pi
	if az >= 2*math.Pi {
		az -= 2 * math.Pi
	}
	alt := AltitudeRad(latRad, decRad, haRad)
	return HorizonDirection{AzRad: az, AltRad: alt}
}

// Locate returns the horizon-frame direction of a fixed equatorial target
// for an observer at instant t. This is the single reusable primitive for
// "where in the sky is X right now": epoch day count, sidereal time, hour
// angle, then altitude and azimuth.
func Locate(obs Observer, target Target, t time.Time) HorizonDirection {
	days := DaysSinceJ2000(t)
	lst := LocalSiderealTimeDeg(days, obs.LonDeg)
	ha := DegToRad(HourAngleDeg(lst, target.RADeg()))

	lat := DegToRad(obs.LatDeg)
	dec := DegToRad(target.DecDeg)

	alt := AltitudeRad(lat, dec, ha)
	az := AzimuthRad(lat, dec, alt, ha)
	return HorizonDirection{AzRad: az, AltRad: alt}
}

// clamp1 clamps x to [-1, 1] to keep asin/acos in domain under floating
// point error.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
