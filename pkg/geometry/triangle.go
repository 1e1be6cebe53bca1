package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Triangle represents a single flat-shaded triangle defined by three vertices
type Triangle struct {
	surface
	P1, P2, P3 core.Vec3
	normal     core.Vec3 // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(p1, p2, p3 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{surface: surface{material: mat}}
	t.SetPoints(p1, p2, p3)
	return t
}

// SetPoints moves the triangle's vertices
func (t *Triangle) SetPoints(p1, p2, p3 core.Vec3) {
	t.P1, t.P2, t.P3 = p1, p2, p3
	t.computeNormal()
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.P2.Subtract(t.P1)
	edge2 := t.P3.Subtract(t.P1)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Intersect tests the ray against the triangle using the Möller-Trumbore algorithm.
// Both faces are hit; there is no back-face culling.
func (t *Triangle) Intersect(ray core.Ray) Intersection {
	edge1 := t.P2.Subtract(t.P1)
	edge2 := t.P3.Subtract(t.P1)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if det == 0 {
		return Miss
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(t.P1)
	u := invDet * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Miss
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Miss
	}

	tParam := invDet * edge2.Dot(q)
	if tParam <= 0 {
		return Miss
	}

	return singleHit(ray.At(tParam))
}

// NormalAt returns the triangle's normal; it is the same everywhere on the face
func (t *Triangle) NormalAt(core.Vec3) core.Vec3 {
	return t.normal
}

// GetNormal returns the triangle's normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}

// Area returns the triangle's surface area
func (t *Triangle) Area() float64 {
	return t.P2.Subtract(t.P1).Cross(t.P3.Subtract(t.P1)).Length() / 2
}
