package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Shape interface for convex objects that can be hit by rays
type Shape interface {
	// Intersect returns up to two points where the ray enters or leaves the
	// shape. Points are not ordered; callers pick the nearest.
	Intersect(ray core.Ray) Intersection

	// NormalAt returns the unit surface normal at a point on the shape
	NormalAt(point core.Vec3) core.Vec3

	GetMaterial() material.Material
	SetMaterial(m material.Material)
}
