package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// ErrInvalidScene is wrapped by every validation failure
var ErrInvalidScene = errors.New("invalid scene")

// Scene contains all the elements needed for rendering. It is built once and
// only read while rendering, so a single Scene can be shared by render workers.
type Scene struct {
	Shapes  []geometry.Shape   // Objects in the scene, addressed by index
	Lights  []lights.Light     // Lights in the scene
	Cameras []*geometry.Camera // Only index 0 is used for the specular view direction
	Width   int                // Image width in pixels
	Height  int                // Image height in pixels
}

// NewScene creates an empty scene with one default camera sized for width x height
func NewScene(width, height int, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	return &Scene{
		Shapes:  make([]geometry.Shape, 0),
		Lights:  make([]lights.Light, 0),
		Cameras: []*geometry.Camera{geometry.NewCamera(cameraConfig, width, height)},
		Width:   width,
		Height:  height,
	}
}

func (s *Scene) GetShapes() []geometry.Shape    { return s.Shapes }
func (s *Scene) GetLights() []lights.Light      { return s.Lights }
func (s *Scene) GetCameras() []*geometry.Camera { return s.Cameras }
func (s *Scene) GetWidth() int                  { return s.Width }
func (s *Scene) GetHeight() int                 { return s.Height }

// AddSphere adds a sphere and returns it so callers can adjust its material
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Shapes = append(s.Shapes, sphere)
	return sphere
}

// AddTriangle adds a triangle
func (s *Scene) AddTriangle(p1, p2, p3 core.Vec3, mat material.Material) *geometry.Triangle {
	triangle := geometry.NewTriangle(p1, p2, p3, mat)
	s.Shapes = append(s.Shapes, triangle)
	return triangle
}

// AddQuad adds a quad given its corners in winding order
func (s *Scene) AddQuad(p1, p2, p3, p4 core.Vec3, mat material.Material) *geometry.Quad {
	quad := geometry.NewQuad(p1, p2, p3, p4, mat)
	s.Shapes = append(s.Shapes, quad)
	return quad
}

// AddPointLight adds a point light
func (s *Scene) AddPointLight(position, color core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color, intensity))
}

// NewGroundQuad creates a horizontal quad centered at the given point with its normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	half := size / 2
	return geometry.NewQuad(
		core.NewVec3(center.X-half, center.Y, center.Z-half),
		core.NewVec3(center.X-half, center.Y, center.Z+half),
		core.NewVec3(center.X+half, center.Y, center.Z+half),
		core.NewVec3(center.X+half, center.Y, center.Z-half),
		mat,
	)
}

// GetPrimitiveCount returns the number of triangles and spheres the renderer tests per ray
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		switch shape.(type) {
		case *geometry.Quad:
			count += 2
		default:
			count++
		}
	}
	return count
}

// Validate reports configurations the renderer cannot produce a sensible image for.
// Degenerate geometry is rejected here so it never silently vanishes from a render.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if len(s.Cameras) == 0 {
		return fmt.Errorf("%w: no camera", ErrInvalidScene)
	}

	for i, shape := range s.Shapes {
		switch obj := shape.(type) {
		case *geometry.Sphere:
			if obj.Radius <= 0 {
				return fmt.Errorf("%w: shape %d: sphere radius %g", ErrInvalidScene, i, obj.Radius)
			}
		case *geometry.Triangle:
			if _, err := obj.P2.Subtract(obj.P1).Cross(obj.P3.Subtract(obj.P1)).TryNormalize(); err != nil {
				return fmt.Errorf("%w: shape %d: degenerate triangle: %w", ErrInvalidScene, i, err)
			}
		case *geometry.Quad:
			// both halves, (P1,P2,P3) and (P3,P4,P1), must have area
			if _, err := obj.P2.Subtract(obj.P1).Cross(obj.P3.Subtract(obj.P1)).TryNormalize(); err != nil {
				return fmt.Errorf("%w: shape %d: degenerate quad: %w", ErrInvalidScene, i, err)
			}
			if _, err := obj.P4.Subtract(obj.P3).Cross(obj.P1.Subtract(obj.P3)).TryNormalize(); err != nil {
				return fmt.Errorf("%w: shape %d: degenerate quad: %w", ErrInvalidScene, i, err)
			}
		}
	}

	for i, light := range s.Lights {
		c := light.Radiance()
		if c.X < 0 || c.Y < 0 || c.Z < 0 {
			return fmt.Errorf("%w: light %d: negative radiance %v", ErrInvalidScene, i, c)
		}
	}

	return nil
}
