package motion

import (
	"math"
	"testing"

	"github.com/flazor/galactic-compass/internal/astro"
)

func TestAccumulator_Empty(t *testing.T) {
	acc := NewAccumulator()
	if acc.Resultant() != nil {
		t.Error("empty accumulator must have no resultant")
	}
	if len(acc.Vectors()) != 0 {
		t.Error("empty accumulator must have no vectors")
	}
}

func TestAccumulator_SingleVector(t *testing.T) {
	// One component: resultant magnitude equals that component, at any
	// azimuth and altitude.
	for az := 0.0; az < 2*math.Pi; az += 0.9 {
		for alt := -1.2; alt <= 1.2; alt += 0.6 {
			acc := NewAccumulator()
			dir := astro.HorizonDirection{AzRad: az, AltRad: alt}
			acc.Add("rotation", 0.465, dir)

			r := acc.Resultant()
			if r == nil {
				t.Fatalf("single vector lost at az=%v alt=%v", az, alt)
			}
			if math.Abs(r.MagnitudeKmS-0.465) > 1e-9 {
				t.Errorf("magnitude = %v, want 0.465", r.MagnitudeKmS)
			}
			if math.Abs(r.Direction.AltRad-alt) > 1e-9 {
				t.Errorf("altitude = %v, want %v", r.Direction.AltRad, alt)
			}
		}
	}
}

func TestAccumulator_QuadratureNotNaive(t *testing.T) {
	// Two equal orthogonal components on the horizon: the total is √2×,
	// never 2× as naive magnitude addition would give.
	acc := NewAccumulator()
	acc.Add("north", 300, astro.HorizonDirection{AzRad: 0, AltRad: 0})
	acc.Add("east", 300, astro.HorizonDirection{AzRad: math.Pi / 2, AltRad: 0})

	r := acc.Resultant()
	if r == nil {
		t.Fatal("no resultant")
	}
	want := 300 * math.Sqrt2
	if math.Abs(r.MagnitudeKmS-want) > 1e-9 {
		t.Errorf("magnitude = %v, want %v", r.MagnitudeKmS, want)
	}
	if math.Abs(r.Direction.AzDeg()-45) > 1e-9 {
		t.Errorf("azimuth = %v°, want 45°", r.Direction.AzDeg())
	}
}

func TestAccumulator_ThreeComponentDecomposition(t *testing.T) {
	// Three roughly orthogonal flows of a few hundred km/s combine to
	// well under their scalar total.
	acc := NewAccumulator()
	acc.Add("a", 200, astro.HorizonDirection{AzRad: 0, AltRad: 0})
	acc.Add("b", 300, astro.HorizonDirection{AzRad: math.Pi / 2, AltRad: 0})
	acc.Add("c", 450, astro.HorizonDirection{AzRad: 0, AltRad: math.Pi / 2})

	r := acc.Resultant()
	if r == nil {
		t.Fatal("no resultant")
	}
	want := math.Sqrt(200*200 + 300*300 + 450*450)
	if math.Abs(r.MagnitudeKmS-want) > 1e-9 {
		t.Errorf("magnitude = %v, want %v", r.MagnitudeKmS, want)
	}
	if r.MagnitudeKmS >= 950 {
		t.Errorf("quadrature sum %v should be far below scalar total 950", r.MagnitudeKmS)
	}
}

func TestAccumulator_ZeroMagnitudeVectors(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("null a", 0, astro.HorizonDirection{AzRad: 1.1, AltRad: 0.4})
	acc.Add("null b", 0, astro.HorizonDirection{AzRad: 4.0, AltRad: -0.9})

	if r := acc.Resultant(); r != nil {
		t.Errorf("zero-magnitude sum should have nil resultant, got %+v", r)
	}
	if len(acc.Vectors()) != 2 {
		t.Error("zero-magnitude entries must still be recorded")
	}
}

func TestAccumulator_ExactCancellation(t *testing.T) {
	// Negating the magnitude flips every Cartesian component exactly, so
	// the pair cancels to a true zero sum.
	dir := astro.HorizonDirection{AzRad: 2.3, AltRad: 0.7}
	acc := NewAccumulator()
	acc.Add("forward", 100, dir)
	acc.Add("backward", -100, dir)

	if r := acc.Resultant(); r != nil {
		t.Errorf("cancelled sum should have nil resultant, got %+v", r)
	}
	if len(acc.Vectors()) != 2 {
		t.Error("cancellation must not drop the recorded vectors")
	}
}

func TestAccumulator_CartesianSumExact(t *testing.T) {
	acc := NewAccumulator()
	dirs := []astro.HorizonDirection{
		{AzRad: 0.3, AltRad: 0.1},
		{AzRad: 2.2, AltRad: -0.4},
		{AzRad: 4.8, AltRad: 0.9},
	}
	var want astro.Vec3
	for i, d := range dirs {
		m := float64(i+1) * 50
		acc.Add("v", m, d)
		want = want.Add(astro.VecFromHorizon(m, d))
	}

	r := acc.Resultant()
	if r == nil {
		t.Fatal("no resultant")
	}
	if r.Cartesian != want {
		t.Errorf("Cartesian sum %+v, want exact componentwise %+v", r.Cartesian, want)
	}
}

func TestAccumulator_VectorsDefensiveCopy(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("only", 10, astro.HorizonDirection{})

	got := acc.Vectors()
	got[0].Name = "mutated"
	if acc.Vectors()[0].Name != "only" {
		t.Error("Vectors() exposes internal state")
	}
}

func TestAccumulator_InsertionOrder(t *testing.T) {
	acc := NewAccumulator()
	names := []string{"first", "second", "third"}
	for _, n := range names {
		acc.Add(n, 1, astro.HorizonDirection{})
	}
	for i, v := range acc.Vectors() {
		if v.Name != names[i] {
			t.Errorf("vector %d = %q, want %q", i, v.Name, names[i])
		}
	}
}

func TestAccumulator_Clear(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("x", 5, astro.HorizonDirection{AzRad: 1, AltRad: 0.5})
	acc.Clear()

	if acc.Resultant() != nil || len(acc.Vectors()) != 0 {
		t.Error("Clear() did not reset the accumulator")
	}
}
