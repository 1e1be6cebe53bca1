package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Origin       core.Vec3 // Pinhole position
	Up           core.Vec3 // Stored for scene descriptions; not applied to sampling
	LookAt       core.Vec3 // Stored for scene descriptions; not applied to sampling
	LensDistance float64   // Distance from the origin to the lens plane along +Z
}

// DefaultCameraConfig returns a camera at (0,0,-1) looking down +Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:       core.NewVec3(0, 0, -1),
		Up:           core.NewVec3(0, 1, 0),
		LookAt:       core.NewVec3(0, 0, 1),
		LensDistance: 1,
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}
	if override.Origin != zero {
		result.Origin = override.Origin
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.LensDistance != 0 {
		result.LensDistance = override.LensDistance
	}
	return result
}

// Camera is a pinhole camera with a rectangular lens plane. The view axis is
// fixed to +Z: Up and LookAt are kept on the camera but do not rotate the lens.
type Camera struct {
	config CameraConfig

	lensXMin, lensXMax float64
	lensYMin, lensYMax float64
	dx, dy             float64 // Lens-plane distance between neighbouring pixels
}

// NewCamera creates a camera whose lens plane matches the image aspect ratio.
// The vertical half-extent is 1 and the horizontal one is width/height.
func NewCamera(config CameraConfig, width, height int) *Camera {
	ratioW := float64(width) / float64(height)
	ratioH := 1.0

	c := &Camera{
		config:   config,
		lensXMin: -ratioW,
		lensXMax: ratioW,
		lensYMin: -ratioH,
		lensYMax: ratioH,
	}
	c.dx = (c.lensXMax - c.lensXMin) / float64(width)
	c.dy = (c.lensYMax - c.lensYMin) / float64(height)

	return c
}

// GetRay returns the primary ray through pixel (col, row), shifted on the
// lens plane by (offsetX, offsetY). Row 0 is the top of the image. The lens
// is centered on the origin's X and Y, LensDistance along +Z.
func (c *Camera) GetRay(col, row int, offsetX, offsetY float64) core.Ray {
	toLens := core.NewVec3(
		c.lensXMin+float64(col)*c.dx+offsetX,
		c.lensYMax-float64(row)*c.dy+offsetY,
		c.config.LensDistance,
	)
	return core.NewRay(c.config.Origin, toLens)
}

// GetOrigin returns the camera position
func (c *Camera) GetOrigin() core.Vec3 {
	return c.config.Origin
}

// GetConfig returns the configuration the camera was built from
func (c *Camera) GetConfig() CameraConfig {
	return c.config
}

// LensBounds returns the lens-plane extents
func (c *Camera) LensBounds() (xMin, xMax, yMin, yMax float64) {
	return c.lensXMin, c.lensXMax, c.lensYMin, c.lensYMax
}

// PixelSize returns the lens-plane distance between neighbouring pixels
func (c *Camera) PixelSize() (dx, dy float64) {
	return c.dx, c.dy
}
