// Package motion provides velocity/direction models for each cosmic
// motion level and the engine that sums them.
package motion

import (
	"fmt"
	"math"
	"time"

	"github.com/flazor/galactic-compass/internal/astro"
	"github.com/flazor/galactic-compass/internal/catalog"
)

// Model is the two-operation contract every motion level implements.
// Models are stateless value types; a fresh one is resolved per
// calculation call.
type Model interface {
	// Velocity returns the speed in km/s for an observer.
	Velocity(obs astro.Observer) float64

	// Direction returns the horizon-frame direction of travel at t.
	Direction(obs astro.Observer, t time.Time) (astro.HorizonDirection, error)
}

// EarthRotation models the observer's motion from the Earth's spin.
// The direction is due east on the horizon for every observer and
// instant; only the speed varies, vanishing at the poles.
type EarthRotation struct {
	// EquatorialKmS is the surface speed at the equator.
	EquatorialKmS float64
}

// Velocity returns equatorial speed scaled by cos(latitude).
func (m EarthRotation) Velocity(obs astro.Observer) float64 {
	return m.EquatorialKmS * math.Cos(astro.DegToRad(obs.LatDeg))
}

// Direction returns due east at the horizon.
func (m EarthRotation) Direction(astro.Observer, time.Time) (astro.HorizonDirection, error) {
	return astro.HorizonDirection{AzRad: math.Pi / 2, AltRad: 0}, nil
}

// EarthOrbit models the Earth's motion along its orbit. First-order
// circular-orbit approximation: the direction of travel is the ecliptic
// point 90° ahead of the Sun's true longitude. Not suitable for
// sub-degree apex precision.
type EarthOrbit struct {
	KmS float64
}

// Velocity returns the constant orbital speed, independent of observer.
func (m EarthOrbit) Velocity(astro.Observer) float64 {
	return m.KmS
}

// Direction returns the instantaneous orbital apex in the horizon frame.
func (m EarthOrbit) Direction(obs astro.Observer, t time.Time) (astro.HorizonDirection, error) {
	days := astro.DaysSinceJ2000(t)

	// Tangent to the orbit: solar longitude + 90°, on the ecliptic.
	apexLon := astro.SunEclipticLongitudeRad(days) + math.Pi/2
	raRad, decRad := astro.EclipticToEquatorial(apexLon, 0, astro.ObliquityRad)

	lst := astro.LocalSiderealTimeDeg(days, obs.LonDeg)
	ha := astro.DegToRad(astro.HourAngleDeg(lst, astro.RadToDeg(raRad)))

	return astro.EquatorialToHorizontal(ha, decRad, astro.DegToRad(obs.LatDeg)), nil
}

// FixedTarget models a constant-velocity motion toward a fixed equatorial
// coordinate. Six of the eight catalog levels are this model with
// different parameters; the coordinate machinery does all the work.
type FixedTarget struct {
	KmS    float64
	Target astro.Target
}

// Velocity returns the configured speed.
func (m FixedTarget) Velocity(astro.Observer) float64 {
	return m.KmS
}

// Direction locates the configured target in the observer's sky.
func (m FixedTarget) Direction(obs astro.Observer, t time.Time) (astro.HorizonDirection, error) {
	return astro.Locate(obs, m.Target, t), nil
}

// Resolve maps a catalog level to a fresh model instance. Unknown kinds
// fail here rather than producing silent zeros.
func Resolve(level catalog.Level) (Model, error) {
	switch level.Kind {
	case catalog.KindEarthRotation:
		return EarthRotation{EquatorialKmS: level.VelocityKmS}, nil
	case catalog.KindEarthOrbit:
		return EarthOrbit{KmS: level.VelocityKmS}, nil
	case catalog.KindFixedTarget:
		if level.Target == (astro.Target{}) {
			return nil, fmt.Errorf("level %q: fixed-target kind without a target", level.ID)
		}
		return FixedTarget{KmS: level.VelocityKmS, Target: level.Target}, nil
	default:
		return nil, fmt.Errorf("level %q: unknown model kind %d", level.ID, level.Kind)
	}
}
