// Package render ties scene, grid, trace, kernel, and shade together
// into a pinhole-camera image renderer, parallelized across rows with a
// bounded worker pool.
package render

import (
	"github.com/chewxy/math32"

	"github.com/udd-raytracer/udd/geom"
)

// Camera is a simple pinhole camera: an eye position, a look direction,
// an up vector, and a vertical field of view in degrees.
type Camera struct {
	Eye    geom.Vec3
	Look   geom.Vec3 // unit forward direction
	Up     geom.Vec3 // unit up direction, orthogonal to Look
	FOVDeg float32
	Width  int
	Height int
}

// NewCamera builds a Camera looking from eye toward target, with the
// given up hint (not required to be orthogonal to the view direction;
// it is re-orthogonalized).
func NewCamera(eye, target, upHint geom.Vec3, fovDeg float32, width, height int) Camera {
	look := geom.Normalize(target.Sub(eye))
	right := geom.Normalize(geom.Cross(look, upHint))
	up := geom.Normalize(geom.Cross(right, look))
	return Camera{Eye: eye, Look: look, Up: up, FOVDeg: fovDeg, Width: width, Height: height}
}

// PrimaryRay returns the ray through pixel (px, py), with (0,0) at the
// top-left and px/py interpreted as pixel centers when offset by 0.5.
func (c Camera) PrimaryRay(px, py float32) geom.Ray {
	aspect := float32(c.Width) / float32(c.Height)
	halfH := tanDeg(c.FOVDeg / 2)
	halfW := halfH * aspect

	right := geom.Normalize(geom.Cross(c.Look, c.Up))

	u := (2*(px+0.5)/float32(c.Width) - 1) * halfW
	v := (1 - 2*(py+0.5)/float32(c.Height)) * halfH

	dir := geom.Normalize(c.Look.Add(right.Scale(u)).Add(c.Up.Scale(v)))
	return geom.Ray{Origin: c.Eye, Dir: dir}
}

func tanDeg(deg float32) float32 {
	return math32.Tan(deg * math32.Pi / 180)
}
