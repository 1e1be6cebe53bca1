package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultScene creates the reference scene: two spheres, a triangle and a
// floor quad lit by two white point lights
func NewDefaultScene(width, height int, cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene(width, height, cameraOverrides...)

	base := material.DefaultMaterial()

	s.AddSphere(core.NewVec3(-1, 2, 8), 2, base)
	s.AddSphere(core.NewVec3(4, -6, 16), 3, base.WithAmbient(core.NewVec3(200, 100, 50)))
	s.AddTriangle(
		core.NewVec3(-5, -2, 7),
		core.NewVec3(-5, 2, 6),
		core.NewVec3(1, -1, 6),
		base.WithAmbient(core.NewVec3(50, 100, 200)),
	)
	s.AddQuad(
		core.NewVec3(-40, -10, 0),
		core.NewVec3(-40, -10, 80),
		core.NewVec3(40, -10, 80),
		core.NewVec3(40, -10, 0),
		base.WithAmbient(core.NewVec3(200, 140, 200)),
	)

	s.Lights = append(s.Lights, lights.DefaultPointLight())
	s.AddPointLight(core.NewVec3(4, 0, 1), core.NewVec3(150, 150, 150), 1)

	return s
}

// NewEmptyScene creates a scene with a camera and nothing to hit; every pixel renders as sky
func NewEmptyScene(width, height int, cameraOverrides ...geometry.CameraConfig) *Scene {
	return NewScene(width, height, cameraOverrides...)
}

// NewSphereScene creates a single unlit sphere centered on the camera axis
func NewSphereScene(width, height int, cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene(width, height, cameraOverrides...)
	s.AddSphere(core.NewVec3(0, 0, 5), 1, material.DefaultMaterial())
	return s
}

// NewMirrorScene creates two large, fully reflective planes facing each other
// above and below the camera, with a sphere between them
func NewMirrorScene(width, height int, cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene(width, height, cameraOverrides...)

	mirror := material.NewMaterial(core.NewVec3(40, 40, 60), 0.2, 1.0, 80)
	const half = 100.0

	// Floor at y=-2, normal up
	s.Shapes = append(s.Shapes, NewGroundQuad(core.NewVec3(0, -2, 50), 2*half, mirror))

	// Ceiling at y=2, normal down
	s.AddQuad(
		core.NewVec3(-half, 2, 50-half),
		core.NewVec3(half, 2, 50-half),
		core.NewVec3(half, 2, 50+half),
		core.NewVec3(-half, 2, 50+half),
		mirror,
	)

	s.AddSphere(core.NewVec3(0, 0, 6), 1, material.DefaultMaterial().WithAmbient(core.NewVec3(200, 60, 60)))
	s.AddPointLight(core.NewVec3(0, 1.5, 2), core.NewVec3(120, 120, 120), 1)

	return s
}
