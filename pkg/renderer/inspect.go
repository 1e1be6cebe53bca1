package renderer

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// PixelInspection describes what the unjittered primary ray through a pixel sees
type PixelInspection struct {
	Hit        bool
	ShapeIndex int            // -1 on a miss
	Shape      geometry.Shape // nil on a miss
	Point      core.Vec3      // Unbiased hit point
	Normal     core.Vec3
	Distance   float64
	Color      core.Vec3 // Full traced color of the ray, sky on a miss
	Stats      RenderStats
}

// InspectPixel traces the single ray through (col, row) without sub-pixel offset
func (rt *Raytracer) InspectPixel(cameraIndex, col, row int) (PixelInspection, error) {
	cameras := rt.scene.GetCameras()
	if cameraIndex < 0 || cameraIndex >= len(cameras) {
		return PixelInspection{}, fmt.Errorf("%w: index %d, scene has %d", ErrNoSuchCamera, cameraIndex, len(cameras))
	}

	ray := cameras[cameraIndex].GetRay(col, row, 0, 0)
	result := PixelInspection{ShapeIndex: -1}

	result.Color, _ = rt.traceRay(ray, 0, &result.Stats)
	result.Stats.PrimaryRays++

	point, index, ok := rt.closestIntersection(ray)
	if !ok {
		return result, nil
	}

	shape := rt.scene.GetShapes()[index]
	result.Hit = true
	result.ShapeIndex = index
	result.Shape = shape
	result.Point = point
	result.Normal = shape.NormalAt(point)
	result.Distance = point.Subtract(ray.Origin).Length()
	return result, nil
}
