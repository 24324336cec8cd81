package motion

import (
	"github.com/flazor/galactic-compass/internal/astro"
)

// Vector is one named contribution to a vector sum.
type Vector struct {
	Name         string
	MagnitudeKmS float64
	Direction    astro.HorizonDirection
	Cartesian    astro.Vec3
}

// Resultant is the combined velocity re-derived from the Cartesian sum.
type Resultant struct {
	MagnitudeKmS float64
	Direction    astro.HorizonDirection
	Cartesian    astro.Vec3
}

// Accumulator sums direction+magnitude vectors in the local horizon
// frame. The Cartesian sum is the exact componentwise total of everything
// added; the spherical resultant is re-derived from it on every read, so
// angular truncation never compounds. Not safe for concurrent use; each
// calculation call owns its own Accumulator.
type Accumulator struct {
	vectors []Vector
	sum     astro.Vec3
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add converts a magnitude and horizon direction to East-North-Up
// Cartesian components and folds it into the running sum. Insertion order
// is preserved for reporting.
func (a *Accumulator) Add(name string, magnitudeKmS float64, dir astro.HorizonDirection) {
	cart := astro.VecFromHorizon(magnitudeKmS, dir)
	a.vectors = append(a.vectors, Vector{
		Name:         name,
		MagnitudeKmS: magnitudeKmS,
		Direction:    dir,
		Cartesian:    cart,
	})
	a.sum = a.sum.Add(cart)
}

// Resultant returns the current combined vector, or nil when nothing has
// been added or the components cancel exactly. A zero-magnitude sum has
// no direction; returning nil here is what keeps NaN out of the output.
func (a *Accumulator) Resultant() *Resultant {
	mag, dir, ok := astro.HorizonFromVec(a.sum)
	if !ok {
		return nil
	}
	return &Resultant{
		MagnitudeKmS: mag,
		Direction:    dir,
		Cartesian:    a.sum,
	}
}

// Vectors returns a copy of the added vectors in insertion order.
func (a *Accumulator) Vectors() []Vector {
	out := make([]Vector, len(a.vectors))
	copy(out, a.vectors)
	return out
}

// Clear resets the accumulator to empty.
func (a *Accumulator) Clear() {
	a.vectors = nil
	a.sum = astro.Vec3{}
}
