// Package snapshot orchestrates the motion catalog, the coordinate core,
// and the ephemeris collaborator into one consolidated calculation.
package snapshot

import (
	"fmt"
	"math"
	"time"

	"github.com/flazor/galactic-compass/internal/astro"
	"github.com/flazor/galactic-compass/internal/catalog"
	"github.com/flazor/galactic-compass/internal/ephem"
	"github.com/flazor/galactic-compass/internal/motion"
)

// LevelVector is one catalog level evaluated for an observer and instant.
// A non-empty Err means the level's model failed; such entries carry no
// usable direction and are excluded from the resultant.
type LevelVector struct {
	Number      int
	ID          string
	Name        string
	VelocityKmS float64
	Direction   astro.HorizonDirection
	Cartesian   astro.Vec3
	Err         string
}

// Failed reports whether this level's computation failed.
func (v LevelVector) Failed() bool { return v.Err != "" }

// Snapshot is the consolidated output of one calculation call. Plain
// data, produced fresh per call; safe to hand to any number of readers.
type Snapshot struct {
	Observer astro.Observer
	Time     time.Time
	MaxLevel int

	// Sun and Moon apparent positions, north-based azimuth.
	Sun  astro.HorizonDirection
	Moon astro.HorizonDirection

	// Galactic skybox orientation for the rendering layer.
	Galactic astro.GalacticAlignment

	// Vectors holds the additive levels up to MaxLevel, in catalog
	// order, including failed entries.
	Vectors []LevelVector

	// Resultant is the quadrature sum of the successful vectors; nil
	// when no vector contributed or the sum cancels.
	Resultant *motion.Resultant

	// Reference carries the verification-only expected total (the CMB
	// dipole) when MaxLevel brings it into range. Never summed.
	Reference *LevelVector
}

// Compute evaluates every active motion level for the observer at t,
// sums the successful ones, and attaches Sun, Moon, and galactic
// orientation. maxLevel caps the catalog at 1..catalog.MaxLevel.
func Compute(obs astro.Observer, t time.Time, maxLevel int, eph ephem.Provider) (*Snapshot, error) {
	if err := validateObserver(obs); err != nil {
		return nil, err
	}
	if maxLevel < 1 || maxLevel > catalog.MaxLevel {
		return nil, fmt.Errorf("max level %d outside 1..%d", maxLevel, catalog.MaxLevel)
	}
	if eph == nil {
		return nil, fmt.Errorf("no ephemeris provider")
	}

	sun, err := eph.Sun(t, obs)
	if err != nil {
		return nil, fmt.Errorf("sun position: %w", err)
	}
	moon, err := eph.Moon(t, obs)
	if err != nil {
		return nil, fmt.Errorf("moon position: %w", err)
	}

	active := catalog.Additive(catalog.Implemented(catalog.UpTo(maxLevel)))
	vectors := EvaluateLevels(active, obs, t)

	acc := motion.NewAccumulator()
	for _, v := range vectors {
		if v.Failed() {
			continue
		}
		acc.Add(v.ID, v.VelocityKmS, v.Direction)
	}

	snap := &Snapshot{
		Observer:  obs,
		Time:      t.UTC(),
		MaxLevel:  maxLevel,
		Sun:       northAzimuth(sun),
		Moon:      northAzimuth(moon),
		Galactic:  astro.GalacticCenterAlignment(obs, t),
		Vectors:   vectors,
		Resultant: acc.Resultant(),
	}

	if ref, ok := catalog.Reference(maxLevel); ok {
		rv := evaluateLevel(ref, obs, t)
		snap.Reference = &rv
	}
	return snap, nil
}

// EvaluateLevels runs each level's model. A failing level is recorded
// with its error and does not abort the others.
func EvaluateLevels(levels []catalog.Level, obs astro.Observer, t time.Time) []LevelVector {
	out := make([]LevelVector, 0, len(levels))
	for _, l := range levels {
		out = append(out, evaluateLevel(l, obs, t))
	}
	return out
}

func evaluateLevel(l catalog.Level, obs astro.Observer, t time.Time) LevelVector {
	v := LevelVector{
		Number: l.Number,
		ID:     l.ID,
		Name:   l.Name,
	}

	model, err := motion.Resolve(l)
	if err != nil {
		v.Err = err.Error()
		return v
	}
	dir, err := model.Direction(obs, t)
	if err != nil {
		v.Err = err.Error()
		return v
	}

	v.VelocityKmS = model.Velocity(obs)
	v.Direction = dir
	v.Cartesian = astro.VecFromHorizon(v.VelocityKmS, dir)
	return v
}

// northAzimuth converts a south-referenced ephemeris direction to the
// north-based convention by adding π, wrapped into [0, 2π).
func northAzimuth(d astro.HorizonDirection) astro.HorizonDirection {
	az := math.Mod(d.AzRad+math.Pi, 2*math.Pi)
	if az < 0 {
		az += 2 * math.Pi
	}
	return astro.HorizonDirection{AzRad: az, AltRad: d.AltRad}
}

func validateObserver(obs astro.Observer) error {
	if math.IsNaN(obs.LatDeg) || obs.LatDeg < -90 || obs.LatDeg > 90 {
		return fmt.Errorf("latitude %v outside [-90, 90]", obs.LatDeg)
	}
	if math.IsNaN(obs.LonDeg) || obs.LonDeg < -180 || obs.LonDeg > 180 {
		return fmt.Errorf("longitude %v outside [-180, 180]", obs.LonDeg)
	}
	return nil
}
