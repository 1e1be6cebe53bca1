package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Quad represents a planar four-sided face split along the P1-P3 diagonal
// into the triangles (P1,P2,P3) and (P3,P4,P1).
type Quad struct {
	surface
	P1, P2, P3, P4 core.Vec3
	first, second  Triangle
}

// NewQuad creates a new quad from four corners given in winding order
func NewQuad(p1, p2, p3, p4 core.Vec3, mat material.Material) *Quad {
	q := &Quad{
		surface: surface{material: mat},
		P1:      p1,
		P2:      p2,
		P3:      p3,
		P4:      p4,
	}
	q.first.SetPoints(p1, p2, p3)
	q.second.SetPoints(p3, p4, p1)
	return q
}

// Intersect tries the first triangle and falls back to the second only when
// the first misses. The two halves do not overlap on a planar quad, so at most
// one of them can report a hit.
func (q *Quad) Intersect(ray core.Ray) Intersection {
	if hit := q.first.Intersect(ray); hit.Hit() {
		return hit
	}
	return q.second.Intersect(ray)
}

// NormalAt returns the normal of the first triangle
func (q *Quad) NormalAt(point core.Vec3) core.Vec3 {
	return q.first.NormalAt(point)
}

// Area returns the combined area of both triangles
func (q *Quad) Area() float64 {
	return q.first.Area() + q.second.Area()
}
