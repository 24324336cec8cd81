// Package catalog holds the static registry of cosmic motion levels.
package catalog

import (
	"fmt"

	"github.com/flazor/galactic-compass/internal/astro"
)

// Kind selects the computation bound to a level. The catalog stays pure
// data; a dispatch table in the motion package resolves a Kind to a fresh
// model per calculation call.
type Kind int

const (
	KindEarthRotation Kind = iota // velocity from latitude, direction due east
	KindEarthOrbit                // constant velocity, ecliptic tangent apex
	KindFixedTarget               // constant velocity toward a fixed RA/Dec
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEarthRotation:
		return "earth-rotation"
	case KindEarthOrbit:
		return "earth-orbit"
	case KindFixedTarget:
		return "fixed-target"
	default:
		return "unknown"
	}
}

// Role distinguishes levels that contribute to the vector sum from
// reference-only levels that merely state an expected total.
type Role int

const (
	// RoleAdditive levels are summed into the resultant.
	RoleAdditive Role = iota

	// RoleReference levels are verification targets. They represent the
	// expected total of the additive levels and must never be summed.
	RoleReference
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleAdditive:
		return "additive"
	case RoleReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Level is one entry of the motion catalog.
type Level struct {
	Number      int     // 1..8, ordered by spatial scale
	ID          string  // stable identifier
	Name        string  // display name
	VelocityKmS float64 // characteristic speed; for earth-rotation this is the equatorial value
	Target      astro.Target // fixed-target levels only; zero otherwise
	Kind        Kind
	Role        Role
	Implemented bool
}

// levels is the static catalog, ordered Earth rotation → CMB dipole.
// Velocities and targets for levels 3-7 follow the conventional
// decomposition of the CMB dipole into nested flows; level 8 is the
// measured dipole itself, carried for verification only.
var levels = []Level{
	{
		Number:      1,
		ID:          "earth-rotation",
		Name:        "Earth rotation",
		VelocityKmS: 0.465,
		Kind:        KindEarthRotation,
		Role:        RoleAdditive,
		Implemented: true,
	},
	{
		Number:      2,
		ID:          "earth-orbit",
		Name:        "Earth orbit around the Sun",
		VelocityKmS: 29.78,
		Kind:        KindEarthOrbit,
		Role:        RoleAdditive,
		Implemented: true,
	},
	{
		Number:      3,
		ID:          "solar-apex",
		Name:        "Sun toward the solar apex",
		VelocityKmS: 19.4,
		Target:      astro.Target{RAHours: 18.07, DecDeg: 30.0},
		Kind:        KindFixedTarget,
		Role:        RoleAdditive,
		Implemented: true,
	},
	{
		Number:      4,
		ID:          "galactic-rotation",
		Name:        "Galactic rotation",
		VelocityKmS: 230,
		Target:      astro.Target{RAHours: 21.2, DecDeg: 48.3},
		Kind:        KindFixedTarget,
		Role:        RoleAdditive,
		Implemented: true,
	},
	{
		Number:      5,
		ID:          "local-group",
		Name:        "Milky Way toward Andromeda",
		VelocityKmS: 110,
		Target:      astro.Target{RAHours: 0.712, DecDeg: 41.27},
		Kind:        KindFixedTarget,
		Role:        RoleAdditive,
		Implemented: true,
	},
	{
		Number:      6,
		ID:          "virgo-infall",
		Name:        "Local Sheet toward Virgo",
		VelocityKmS: 185,
		Target:      astro.Target{RAHours: 12.514, DecDeg: 12.39},
		Kind:        KindFixedTarget,
		Role:        RoleAdditive,
		Implemented: true,
	},
	{
		Number:      7,
		ID:          "great-attractor",
		Name:        "Flow toward the Great Attractor",
		VelocityKmS: 455,
		Target:      astro.Target{RAHours: 13.33, DecDeg: -44.0},
		Kind:        KindFixedTarget,
		Role:        RoleAdditive,
		Implemented: true,
	},
	{
		Number:      8,
		ID:          "cmb-dipole",
		Name:        "CMB dipole (expected total)",
		VelocityKmS: 369.8,
		Target:      astro.Target{RAHours: 11.195, DecDeg: -6.93},
		Kind:        KindFixedTarget,
		Role:        RoleReference,
		Implemented: true,
	},
}

// MaxLevel is the highest catalog level number.
const MaxLevel = 8

// All returns the full catalog in order. The returned slice is a copy;
// the catalog itself is never mutated after process start.
func All() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// ByNumber returns the level with the given number.
func ByNumber(n int) (Level, error) {
	for _, l := range levels {
		if l.Number == n {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("no catalog level %d", n)
}

// ByID returns the level with the given identifier.
func ByID(id string) (Level, error) {
	for _, l := range levels {
		if l.ID == id {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("no catalog level %q", id)
}

// UpTo returns the levels with Number <= max, in catalog order.
func UpTo(max int) []Level {
	out := make([]Level, 0, len(levels))
	for _, l := range levels {
		if l.Number <= max {
			out = append(out, l)
		}
	}
	return out
}

// Implemented filters a level list to implemented entries. Unimplemented
// future levels are silently excluded from rendering and summation.
func Implemented(in []Level) []Level {
	out := make([]Level, 0, len(in))
	for _, l := range in {
		if l.Implemented {
			out = append(out, l)
		}
	}
	return out
}

// Additive filters a level list to summation-eligible entries, dropping
// reference-only verification levels.
func Additive(in []Level) []Level {
	out := make([]Level, 0, len(in))
	for _, l := range in {
		if l.Role == RoleAdditive {
			out = append(out, l)
		}
	}
	return out
}

// Reference returns the reference-only level for a cutoff, if one is in
// range. Used for display comparison against the computed resultant.
func Reference(max int) (Level, bool) {
	for _, l := range levels {
		if l.Number <= max && l.Role == RoleReference {
			return l, true
		}
	}
	return Level{}, false
}
