package material

import "github.com/df07/go-phong-raytracer/pkg/core"

// Material holds the Phong shading coefficients of a surface
type Material struct {
	Ambient   core.Vec3 // Base color in [0,255], scaled by the ambient light factor
	KDiffuse  float64   // Diffuse reflection coefficient
	KSpecular float64   // Specular coefficient, also the mirror reflectivity
	Shininess float64   // Specular exponent
}

// NewMaterial creates a Phong material
func NewMaterial(ambient core.Vec3, kDiffuse, kSpecular, shininess float64) Material {
	return Material{
		Ambient:   ambient,
		KDiffuse:  kDiffuse,
		KSpecular: kSpecular,
		Shininess: shininess,
	}
}

// DefaultMaterial is assigned to shapes created without an explicit material
func DefaultMaterial() Material {
	return Material{
		Ambient:   core.NewVec3(100, 200, 100),
		KDiffuse:  0.5,
		KSpecular: 0.3,
		Shininess: 30,
	}
}

// WithAmbient returns a copy of the material with a different ambient color
func (m Material) WithAmbient(ambient core.Vec3) Material {
	m.Ambient = ambient
	return m
}
