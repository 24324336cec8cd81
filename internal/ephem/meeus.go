package ephem

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/flazor/galactic-compass/internal/astro"
)

// Meeus is a Provider backed by the meeus astronomical algorithms
// library. Azimuths follow the library's convention: measured westward
// from South.
type Meeus struct{}

// Name returns the provider name.
func (Meeus) Name() string { return "meeus" }

// Sun returns the apparent position of the Sun.
func (Meeus) Sun(t time.Time, obs astro.Observer) (astro.HorizonDirection, error) {
	jd := julian.TimeToJD(t.UTC())
	ra, dec := solar.ApparentEquatorial(jd)
	return toHorizon(ra, dec, jd, obs), nil
}

// Moon returns the apparent position of the Moon. Geocentric; the
// parallax of up to ~1° is below this system's precision goals.
func (Meeus) Moon(t time.Time, obs astro.Observer) (astro.HorizonDirection, error) {
	jd := julian.TimeToJD(t.UTC())
	lambda, beta, _ := moonposition.Position(jd)

	eps := nutation.MeanObliquity(jd)
	ra, dec := coord.EclToEq(lambda, beta, math.Sin(eps.Rad()), math.Cos(eps.Rad()))
	return toHorizon(ra, dec, jd, obs), nil
}

// toHorizon rotates equatorial coordinates into the observer's horizon
// frame. meeus longitudes are west-positive, hence the sign flip.
func toHorizon(ra unit.RA, dec unit.Angle, jd float64, obs astro.Observer) astro.HorizonDirection {
	lat := unit.AngleFromDeg(obs.LatDeg)
	lon := unit.AngleFromDeg(-obs.LonDeg)
	st := sidereal.Apparent(jd)

	az, alt := coord.EqToHz(ra, dec, lat, lon, st)
	return astro.HorizonDirection{AzRad: az.Rad(), AltRad: alt.Rad()}
}
