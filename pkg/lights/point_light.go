package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is an infinitesimal light at a fixed position
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3 // RGB in [0,255]
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) *PointLight {
	return &PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// DefaultPointLight returns the light used when a scene does not configure one
func DefaultPointLight() *PointLight {
	return NewPointLight(core.NewVec3(-4, 3, 1), core.NewVec3(150, 150, 150), 1)
}

// Type implements the Light interface
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// GetPosition implements the Light interface
func (pl *PointLight) GetPosition() core.Vec3 {
	return pl.Position
}

// Radiance scales the light color by its intensity
func (pl *PointLight) Radiance() core.Vec3 {
	return pl.Color.Multiply(pl.Intensity)
}
