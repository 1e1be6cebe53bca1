package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		surface: surface{material: mat},
		Center:  center,
		Radius:  radius,
	}
}

// Intersect solves the ray/sphere quadratic. Roots behind the ray origin are discarded.
func (s *Sphere) Intersect(ray core.Ray) Intersection {
	oc := ray.Origin.Subtract(s.Center)

	// Direction is unit length, so the quadratic reduces to t² + 2vt + (|oc|² - r²) = 0
	v := ray.Direction.Dot(oc)
	q := v*v - oc.LengthSquared() + s.Radius*s.Radius

	if q < 0 {
		return Miss
	}

	d := -v

	// Tangent ray
	if q == 0 {
		if d < 0 {
			return Miss
		}
		return singleHit(ray.At(d))
	}

	sqrtQ := math.Sqrt(q)
	near := d - sqrtQ
	far := d + sqrtQ

	// far >= near always holds, so a negative far means both roots are behind
	switch {
	case far < 0:
		return Miss
	case near < 0:
		// Origin is inside the sphere
		return singleHit(ray.At(far))
	default:
		return Intersection{Count: 2, Points: [2]core.Vec3{ray.At(near), ray.At(far)}}
	}
}

// NormalAt returns the outward normal at point
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
