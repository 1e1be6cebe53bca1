package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units), centered on the view axis
const (
	cornellBoxSize = 555.0
	cornellHalf    = cornellBoxSize / 2
)

// NewCornellScene creates a Cornell box with colored quad walls, a point light
// under the ceiling, a mirror sphere and a matte sphere
func NewCornellScene(width, height int, cameraOverrides ...geometry.CameraConfig) *Scene {
	// Camera sits outside the open front of the box
	cameraConfig := geometry.CameraConfig{
		Origin:       core.NewVec3(0, 0, -800),
		LensDistance: 2.75,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	s := NewScene(width, height, cameraConfig)

	// Create materials
	white := material.NewMaterial(core.NewVec3(120, 120, 120), 0.5, 0.1, 10)
	red := white.WithAmbient(core.NewVec3(150, 30, 30))
	green := white.WithAmbient(core.NewVec3(40, 130, 50))
	mirror := material.NewMaterial(core.NewVec3(30, 30, 40), 0.2, 0.9, 60)

	h, d := cornellHalf, cornellBoxSize

	// Floor (white), normal up
	s.AddQuad(core.NewVec3(-h, -h, 0), core.NewVec3(-h, -h, d), core.NewVec3(h, -h, d), core.NewVec3(h, -h, 0), white)
	// Ceiling (white), normal down
	s.AddQuad(core.NewVec3(-h, h, 0), core.NewVec3(h, h, 0), core.NewVec3(h, h, d), core.NewVec3(-h, h, d), white)
	// Back wall (white), normal toward the camera
	s.AddQuad(core.NewVec3(-h, -h, d), core.NewVec3(-h, h, d), core.NewVec3(h, h, d), core.NewVec3(h, -h, d), white)
	// Left wall (red), normal +X
	s.AddQuad(core.NewVec3(-h, -h, 0), core.NewVec3(-h, h, 0), core.NewVec3(-h, h, d), core.NewVec3(-h, -h, d), red)
	// Right wall (green), normal -X
	s.AddQuad(core.NewVec3(h, -h, 0), core.NewVec3(h, -h, d), core.NewVec3(h, h, d), core.NewVec3(h, h, 0), green)

	// Left sphere (smaller, mirror) and right sphere (larger, matte), both resting on the floor
	s.AddSphere(core.NewVec3(-92.5, -h+82.5, 169), 82.5, mirror)
	s.AddSphere(core.NewVec3(92.5, -h+90, 351), 90, white)

	// Ceiling light, slightly below the ceiling
	s.AddPointLight(core.NewVec3(0, h-30, d/2), core.NewVec3(150, 150, 150), 1)

	return s
}
