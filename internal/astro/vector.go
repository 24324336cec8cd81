package astro

import "math"

// Vec3 is a 3D vector in the observer's local East-North-Up frame:
// X east, Y north, Z up.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// VecFromHorizon converts a magnitude and horizon direction to ENU
// Cartesian components.
func VecFromHorizon(magnitude float64, dir HorizonDirection) Vec3 {
	cosAlt := math.Cos(dir.AltRad)
	return Vec3{
		X: magnitude * cosAlt * math.Sin(dir.AzRad),
		Y: magnitude * cosAlt * math.Cos(dir.AzRad),
		Z: magnitude * math.Sin(dir.AltRad),
	}
}

// HorizonFromVec converts ENU Cartesian components back to a magnitude
// and horizon direction. A zero vector has no defined direction; callers
// must check ok before using dir.
func HorizonFromVec(v Vec3) (magnitude float64, dir HorizonDirection, ok bool) {
	magnitude = v.Norm()
	if magnitude == 0 {
		return 0, HorizonDirection{}, false
	}
	az := math.Atan2(v.X, v.Y)
	if az < 0 {
		az += 2 * math.Pi
	}
	alt := math.Asin(clamp1(v.Z / magnitude))
	return magnitude, HorizonDirection{AzRad: az, AltRad: alt}, true
}
