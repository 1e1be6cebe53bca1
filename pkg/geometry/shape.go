package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Intersection contains the points where a ray crossed a shape's surface
type Intersection struct {
	Count  int          // Number of valid points: 0, 1 or 2
	Points [2]core.Vec3 // Only the first Count entries are meaningful
}

// Miss is the empty intersection
var Miss = Intersection{}

// singleHit builds an intersection with one point
func singleHit(p core.Vec3) Intersection {
	return Intersection{Count: 1, Points: [2]core.Vec3{p}}
}

// Hit reports whether the ray touched the shape at all
func (i Intersection) Hit() bool {
	return i.Count > 0
}

// Nearest returns the point closest to origin. It must only be called on a hit.
func (i Intersection) Nearest(origin core.Vec3) core.Vec3 {
	nearest := i.Points[0]
	if i.Count == 2 && i.Points[1].Subtract(origin).Length() < nearest.Subtract(origin).Length() {
		nearest = i.Points[1]
	}
	return nearest
}

// surface carries the material every shape owns
type surface struct {
	material material.Material
}

// GetMaterial returns a copy of the shape's material
func (s *surface) GetMaterial() material.Material {
	return s.material
}

// SetMaterial replaces the shape's material
func (s *surface) SetMaterial(m material.Material) {
	s.material = m
}
