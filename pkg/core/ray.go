package core

const (
	// MaxRayDistance is the "no hit yet" sentinel distance used by closest-hit searches
	MaxRayDistance = 999999.0

	// MaxRayDepth bounds the number of recursive reflection bounces
	MaxRayDepth = 8
)

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is normalized.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// SetOrigin moves the ray origin
func (r *Ray) SetOrigin(origin Vec3) {
	r.Origin = origin
}

// SetDirection replaces the ray direction, keeping it unit length
func (r *Ray) SetDirection(direction Vec3) {
	r.Direction = direction.Normalize()
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Reflect mirrors the incoming direction v about the unit normal n: v - 2(v·n)n
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
