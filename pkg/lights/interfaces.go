package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light interface for lights that can be evaluated by the Phong shader
type Light interface {
	Type() LightType

	// GetPosition returns the point shadow rays are aimed at
	GetPosition() core.Vec3

	// Radiance returns the color contributed by an unoccluded light, channels in [0,255]
	Radiance() core.Vec3
}
