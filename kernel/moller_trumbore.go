// Package kernel provides the concrete per-triangle ray intersection
// test the trace package treats as an opaque, externally supplied
// predicate: pure, thread-safe, returning the parametric distance to
// the hit for d > 0.
package kernel

import (
	"github.com/udd-raytracer/udd/geom"
	"github.com/udd-raytracer/udd/scene"
)

const epsilon = 1e-7

// MollerTrumbore implements the Möller–Trumbore ray-triangle
// intersection algorithm: fast, watertight-enough for this module's
// purposes, and the textbook default predicate implementation for the
// trace package's Predicate contract.
func MollerTrumbore(t *scene.Triangle, r geom.Ray) (float32, bool) {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)
	h := geom.Cross(r.Dir, edge2)
	a := geom.Dot(edge1, h)

	if a > -epsilon && a < epsilon {
		return 0, false // ray parallel to the triangle's plane
	}

	f := 1 / a
	s := r.Origin.Sub(t.V0)
	u := f * geom.Dot(s, h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := geom.Cross(s, edge1)
	v := f * geom.Dot(r.Dir, q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	d := f * geom.Dot(edge2, q)
	return d, d > epsilon
}
