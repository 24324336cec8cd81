package astro

import (
	"math"
	"testing"
	"time"
)

func TestSunEclipticLongitudeRad_Seasons(t *testing.T) {
	// The Sun's true longitude pins the seasons: ~0° at the March
	// equinox, ~90° at the June solstice, and so on. The low-order series
	// should land within a degree.
	tests := []struct {
		name    string
		time    time.Time
		wantDeg float64
		tol     float64
	}{
		{"march equinox 2024", time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC), 0, 1},
		{"june solstice 2024", time.Date(2024, 6, 20, 20, 51, 0, 0, time.UTC), 90, 1},
		{"september equinox 2024", time.Date(2024, 9, 22, 12, 44, 0, 0, time.UTC), 180, 1},
		{"december solstice 2024", time.Date(2024, 12, 21, 9, 20, 0, 0, time.UTC), 270, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lon := RadToDeg(SunEclipticLongitudeRad(DaysSinceJ2000(tt.time)))
			diff := math.Abs(lon - tt.wantDeg)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > tt.tol {
				t.Errorf("solar longitude = %v°, want ~%v° (±%v)", lon, tt.wantDeg, tt.tol)
			}
		})
	}
}

func TestSunEclipticLongitudeRad_Range(t *testing.T) {
	for days := -10000.0; days < 10000; days += 321.5 {
		lon := SunEclipticLongitudeRad(days)
		if lon < 0 || lon >= 2*math.Pi {
			t.Errorf("solar longitude out of range at d=%v: %v", days, lon)
		}
	}
}

func TestSunEclipticLongitudeRad_AdvancesDailyDegree(t *testing.T) {
	// The Sun moves just under a degree per day along the ecliptic.
	d0 := DaysSinceJ2000(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))
	l0 := SunEclipticLongitudeRad(d0)
	l1 := SunEclipticLongitudeRad(d0 + 1)

	delta := RadToDeg(l1 - l0)
	if delta < 0 {
		delta += 360
	}
	if delta < 0.8 || delta > 1.2 {
		t.Errorf("daily solar motion = %v°, want ~1°", delta)
	}
}
