package ephem

import (
	"math"
	"testing"
	"time"

	"github.com/flazor/galactic-compass/internal/astro"
)

func TestMeeus_SunAtGreenwichSolsticeNoon(t *testing.T) {
	// Near local apparent noon on the June solstice the Sun stands close
	// to due south from Greenwich, about 62° up. South-referenced
	// azimuth: near zero.
	var m Meeus
	obs := astro.Observer{LatDeg: 51.48, LonDeg: 0}
	when := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	dir, err := m.Sun(when, obs)
	if err != nil {
		t.Fatalf("Sun: %v", err)
	}

	if math.Abs(dir.AltDeg()-62) > 2 {
		t.Errorf("solstice noon altitude = %v°, want ~62°", dir.AltDeg())
	}

	az := dir.AzDeg()
	if az > 180 {
		az -= 360
	}
	if math.Abs(az) > 5 {
		t.Errorf("south-referenced azimuth at noon = %v°, want ~0°", dir.AzDeg())
	}
}

func TestMeeus_SunBelowHorizonAtMidnight(t *testing.T) {
	var m Meeus
	obs := astro.Observer{LatDeg: 51.48, LonDeg: 0}
	when := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	dir, err := m.Sun(when, obs)
	if err != nil {
		t.Fatalf("Sun: %v", err)
	}
	if dir.AltDeg() > -10 {
		t.Errorf("midnight sun altitude = %v°, want well below horizon", dir.AltDeg())
	}
}

func TestMeeus_MoonInRange(t *testing.T) {
	var m Meeus
	obs := astro.Observer{LatDeg: 53.35, LonDeg: -6.26}

	for day := 1; day <= 28; day += 7 {
		when := time.Date(2024, 5, day, 22, 0, 0, 0, time.UTC)
		dir, err := m.Moon(when, obs)
		if err != nil {
			t.Fatalf("Moon: %v", err)
		}
		if dir.AltRad < -math.Pi/2 || dir.AltRad > math.Pi/2 {
			t.Errorf("moon altitude out of range on day %d: %v", day, dir.AltRad)
		}
	}
}

func TestMeeus_Deterministic(t *testing.T) {
	var m Meeus
	obs := astro.Observer{LatDeg: -33.9, LonDeg: 18.4}
	when := time.Date(2025, 8, 24, 18, 30, 0, 0, time.UTC)

	a, _ := m.Sun(when, obs)
	b, _ := m.Sun(when, obs)
	if a != b {
		t.Errorf("sun position not deterministic: %+v vs %+v", a, b)
	}
}

func TestMeeus_Name(t *testing.T) {
	if (Meeus{}).Name() != "meeus" {
		t.Errorf("Name() = %q", Meeus{}.Name())
	}
}
