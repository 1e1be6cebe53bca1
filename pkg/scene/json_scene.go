package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// sceneFile is the on-disk JSON layout of a scene
type sceneFile struct {
	Width   int         `json:"width,omitempty"`
	Height  int         `json:"height,omitempty"`
	Camera  *cameraJSON `json:"camera,omitempty"`
	Lights  []lightJSON `json:"lights"`
	Shapes  []shapeJSON `json:"shapes"`
	Comment string      `json:"comment,omitempty"`
}

type cameraJSON struct {
	Origin       *[3]float64 `json:"origin,omitempty"`
	Up           *[3]float64 `json:"up,omitempty"`
	LookAt       *[3]float64 `json:"lookAt,omitempty"`
	LensDistance float64     `json:"lensDistance,omitempty"`
}

type lightJSON struct {
	Position  [3]float64 `json:"position"`
	Color     [3]float64 `json:"color"`
	Intensity *float64   `json:"intensity,omitempty"` // defaults to 1
}

type shapeJSON struct {
	Type     string        `json:"type"` // "sphere", "triangle" or "quad"
	Center   [3]float64    `json:"center,omitempty"`
	Radius   float64       `json:"radius,omitempty"`
	Points   [][3]float64  `json:"points,omitempty"`
	Material *materialJSON `json:"material,omitempty"`
}

// materialJSON overlays its set fields on the default material
type materialJSON struct {
	Ambient   *[3]float64 `json:"ambient,omitempty"`
	KDiffuse  *float64    `json:"kDiffuse,omitempty"`
	KSpecular *float64    `json:"kSpecular,omitempty"`
	Shininess *float64    `json:"shininess,omitempty"`
}

func vec(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

func (m *materialJSON) toMaterial() material.Material {
	mat := material.DefaultMaterial()
	if m == nil {
		return mat
	}
	if m.Ambient != nil {
		mat.Ambient = vec(*m.Ambient)
	}
	if m.KDiffuse != nil {
		mat.KDiffuse = *m.KDiffuse
	}
	if m.KSpecular != nil {
		mat.KSpecular = *m.KSpecular
	}
	if m.Shininess != nil {
		mat.Shininess = *m.Shininess
	}
	return mat
}

func (c *cameraJSON) toConfig() geometry.CameraConfig {
	var config geometry.CameraConfig
	if c == nil {
		return config
	}
	if c.Origin != nil {
		config.Origin = vec(*c.Origin)
	}
	if c.Up != nil {
		config.Up = vec(*c.Up)
	}
	if c.LookAt != nil {
		config.LookAt = vec(*c.LookAt)
	}
	config.LensDistance = c.LensDistance
	return config
}

// LoadJSON reads a scene description from a JSON file.
// Positive width and height override the dimensions stored in the file.
func LoadJSON(path string, width, height int) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s, err := DecodeJSON(f, width, height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// DecodeJSON builds and validates a scene from a JSON document
func DecodeJSON(r io.Reader, width, height int) (*Scene, error) {
	var file sceneFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	if width <= 0 {
		width = file.Width
	}
	if height <= 0 {
		height = file.Height
	}

	s := NewScene(width, height, file.Camera.toConfig())

	for i, shape := range file.Shapes {
		mat := shape.Material.toMaterial()
		switch shape.Type {
		case "sphere":
			s.AddSphere(vec(shape.Center), shape.Radius, mat)
		case "triangle":
			if len(shape.Points) != 3 {
				return nil, fmt.Errorf("%w: shape %d: triangle needs 3 points, got %d", ErrInvalidScene, i, len(shape.Points))
			}
			s.AddTriangle(vec(shape.Points[0]), vec(shape.Points[1]), vec(shape.Points[2]), mat)
		case "quad":
			if len(shape.Points) != 4 {
				return nil, fmt.Errorf("%w: shape %d: quad needs 4 points, got %d", ErrInvalidScene, i, len(shape.Points))
			}
			s.AddQuad(vec(shape.Points[0]), vec(shape.Points[1]), vec(shape.Points[2]), vec(shape.Points[3]), mat)
		default:
			return nil, fmt.Errorf("%w: shape %d: unknown type %q", ErrInvalidScene, i, shape.Type)
		}
	}

	for _, light := range file.Lights {
		intensity := 1.0
		if light.Intensity != nil {
			intensity = *light.Intensity
		}
		s.AddPointLight(vec(light.Position), vec(light.Color), intensity)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
