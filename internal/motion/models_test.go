package motion

import (
	"math"
	"testing"
	"time"

	"github.com/flazor/galactic-compass/internal/astro"
	"github.com/flazor/galactic-compass/internal/catalog"
)

func TestEarthRotation_VelocityByLatitude(t *testing.T) {
	m := EarthRotation{EquatorialKmS: 0.465}

	tests := []struct {
		name     string
		lat      float64
		expected float64
		tol      float64
	}{
		{"equator", 0, 0.465, 1e-9},
		{"mid latitude", 45, 0.465 * math.Sqrt2 / 2, 1e-9},
		{"pole", 90, 0, 1e-9},
		{"southern mirror", -45, 0.465 * math.Sqrt2 / 2, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Velocity(astro.Observer{LatDeg: tt.lat})
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("Velocity(lat=%v) = %v, want %v", tt.lat, got, tt.expected)
			}
		})
	}

	// Monotonically decreasing with |latitude|.
	prev := m.Velocity(astro.Observer{LatDeg: 0})
	for lat := 10.0; lat <= 90; lat += 10 {
		v := m.Velocity(astro.Observer{LatDeg: lat})
		if v >= prev {
			t.Errorf("velocity not decreasing at lat=%v: %v >= %v", lat, v, prev)
		}
		prev = v
	}
}

func TestEarthRotation_DirectionDueEastAlways(t *testing.T) {
	m := EarthRotation{EquatorialKmS: 0.465}

	for _, when := range []time.Time{
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 3, 27, 0, 0, time.UTC),
		time.Date(2031, 12, 31, 23, 59, 59, 0, time.UTC),
	} {
		dir, err := m.Direction(astro.Observer{LatDeg: 53.35, LonDeg: -6.26}, when)
		if err != nil {
			t.Fatalf("Direction: %v", err)
		}
		if dir.AzRad != math.Pi/2 || dir.AltRad != 0 {
			t.Errorf("direction at %v = %+v, want due east on the horizon", when, dir)
		}
	}
}

func TestEarthOrbit_VelocityConstant(t *testing.T) {
	m := EarthOrbit{KmS: 29.78}
	for lat := -90.0; lat <= 90; lat += 45 {
		if v := m.Velocity(astro.Observer{LatDeg: lat}); v != 29.78 {
			t.Errorf("orbital velocity at lat=%v = %v, want 29.78", lat, v)
		}
	}
}

func TestEarthOrbit_DirectionInRange(t *testing.T) {
	m := EarthOrbit{KmS: 29.78}
	obs := astro.Observer{LatDeg: 53.35, LonDeg: -6.26}

	for month := time.January; month <= time.December; month++ {
		when := time.Date(2024, month, 15, 6, 0, 0, 0, time.UTC)
		dir, err := m.Direction(obs, when)
		if err != nil {
			t.Fatalf("Direction: %v", err)
		}
		if dir.AzRad < 0 || dir.AzRad >= 2*math.Pi {
			t.Errorf("apex azimuth out of range in %v: %v", month, dir.AzRad)
		}
		if dir.AltRad < -math.Pi/2 || dir.AltRad > math.Pi/2 {
			t.Errorf("apex altitude out of range in %v: %v", month, dir.AltRad)
		}
	}
}

func TestEarthOrbit_ApexQuarterAheadOfSun(t *testing.T) {
	// The travel direction leads the Sun by 90° of ecliptic longitude, so
	// the apex must stand roughly a quarter circle from the Sun's own sky
	// position.
	obs := astro.Observer{LatDeg: 40, LonDeg: 0}
	when := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

	m := EarthOrbit{KmS: 29.78}
	apex, err := m.Direction(obs, when)
	if err != nil {
		t.Fatalf("Direction: %v", err)
	}

	days := astro.DaysSinceJ2000(when)
	sunRA, sunDec := astro.EclipticToEquatorial(astro.SunEclipticLongitudeRad(days), 0, astro.ObliquityRad)
	sun := astro.Locate(obs, astro.Target{RAHours: astro.RadToDeg(sunRA) / 15, DecDeg: astro.RadToDeg(sunDec)}, when)

	sep := astro.AngleBetweenPointsDeg(apex.AzDeg(), apex.AltDeg(), sun.AzDeg(), sun.AltDeg())
	if math.Abs(sep-90) > 2 {
		t.Errorf("apex-sun separation = %v°, want ~90°", sep)
	}
}

func TestFixedTarget_MatchesLocate(t *testing.T) {
	target := astro.Target{RAHours: 11.195, DecDeg: -6.93}
	m := FixedTarget{KmS: 369.8, Target: target}
	obs := astro.Observer{LatDeg: -10, LonDeg: 140}
	when := time.Date(2025, 2, 2, 2, 0, 0, 0, time.UTC)

	dir, err := m.Direction(obs, when)
	if err != nil {
		t.Fatalf("Direction: %v", err)
	}
	want := astro.Locate(obs, target, when)
	if dir != want {
		t.Errorf("Direction = %+v, want %+v", dir, want)
	}
	if m.Velocity(obs) != 369.8 {
		t.Errorf("Velocity = %v", m.Velocity(obs))
	}
}

func TestResolve(t *testing.T) {
	for _, level := range catalog.All() {
		m, err := Resolve(level)
		if err != nil {
			t.Errorf("Resolve(%q): %v", level.ID, err)
			continue
		}
		if m == nil {
			t.Errorf("Resolve(%q) returned nil model", level.ID)
		}
	}
}

func TestResolve_MalformedLevels(t *testing.T) {
	if _, err := Resolve(catalog.Level{ID: "bogus", Kind: catalog.Kind(42)}); err == nil {
		t.Error("unknown kind should fail to resolve")
	}
	if _, err := Resolve(catalog.Level{ID: "no-target", Kind: catalog.KindFixedTarget}); err == nil {
		t.Error("fixed-target without target should fail to resolve")
	}
}
