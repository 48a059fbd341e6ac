// Package geom implements the fixed-width vector and ray primitives the
// rest of the module builds on: dot/cross products, normalization, and
// the ray-point evaluator p(t) = o + t*r. Single precision throughout,
// per the domain's numerical policy.
package geom

import "github.com/chewxy/math32"

// Vec3 is a 3-component single-precision vector. Zero-allocation: it is
// passed and returned by value everywhere in this module.
type Vec3 struct {
	X, Y, Z float32
}

// Vec3FromArray builds a Vec3 from a [3]float32, the shape glTF accessors
// and other external producers hand back.
func Vec3FromArray(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Get returns the component along axis a (0=X, 1=Y, 2=Z).
func (v Vec3) Get(a int) float32 {
	switch a {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// With returns a copy of v with axis a set to value.
func (v Vec3) With(a int, value float32) Vec3 {
	switch a {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

// Dot computes the dot product of a and b.
func Dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross computes the cross product a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean norm of v.
func Length(v Vec3) float32 {
	return math32.Sqrt(Dot(v, v))
}

// Normalize returns v scaled to unit length. Undefined for a zero
// vector — callers must never normalize one; no ray in this module has
// a zero direction.
func Normalize(v Vec3) Vec3 {
	return v.Scale(1 / Length(v))
}

// Ray is an origin and a (conventionally unit-length) direction.
type Ray struct {
	Origin, Dir Vec3
}

// At evaluates the ray at parameter t: o + t*r.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}
