package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB in [0,255]
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1).Multiply(core.MaxColorChannel)
}

// NewSphereGridScene creates a grid of colored spheres on a floor, lit from
// both sides. Hue varies across X and chroma across Z.
func NewSphereGridScene(width, height int, cameraOverrides ...geometry.CameraConfig) *Scene {
	// Camera raised above the floor so the rows recede toward the horizon
	cameraConfig := geometry.CameraConfig{
		Origin:       core.NewVec3(0, 1, -3),
		LensDistance: 1.5,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	s := NewScene(width, height, cameraConfig)

	const (
		gridSize     = 8
		spacing      = 0.9
		sphereRadius = 0.35
		floorY       = -1.0
		gridStartZ   = 3.0
	)

	floor := material.NewMaterial(core.NewVec3(90, 90, 90), 0.4, 0.4, 20)
	s.Shapes = append(s.Shapes, NewGroundQuad(core.NewVec3(0, floorY, gridStartZ+20), 60, floor))

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	extent := spacing * float64(gridSize-1)
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - extent/2
			z := gridStartZ + float64(j)*spacing

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			// Alternate glossy and matte spheres along the diagonal
			ks := 0.2 + 0.3*float64((i+j)%3)
			mat := material.NewMaterial(oklchToRGB(lightness, chroma, hue), 0.4, ks, 40)

			s.AddSphere(core.NewVec3(x, floorY+sphereRadius, z), sphereRadius, mat)
		}
	}

	s.AddPointLight(core.NewVec3(-6, 6, 0), core.NewVec3(130, 125, 120), 1)
	s.AddPointLight(core.NewVec3(6, 4, 2), core.NewVec3(80, 80, 100), 1)

	return s
}
