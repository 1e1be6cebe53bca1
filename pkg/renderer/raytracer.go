package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

const (
	// AmbientLightFactor scales a material's ambient color and attenuates reflections
	AmbientLightFactor = 0.8

	// ShadingBias is how far a hit point is pushed along its normal before
	// shadow and reflection rays leave it
	ShadingBias = 0.1
)

// SkyColor is returned for rays that escape the scene
var SkyColor = core.NewVec3(200, 200, 255)

// ErrNoSuchCamera is returned by Render for an out-of-range camera index
var ErrNoSuchCamera = errors.New("no such camera")

// JitterMode selects the sub-pixel sampling offset
type JitterMode int

const (
	JitterNormal JitterMode = iota // Tight 0.003 lens-unit offsets
	JitterHigh                     // Wide 0.1 offsets that smear the image ("drunk mode")
)

// Delta returns the lens-plane offset between a pixel's samples
func (m JitterMode) Delta() float64 {
	if m == JitterHigh {
		return 0.1
	}
	return 0.003
}

func (m JitterMode) String() string {
	if m == JitterHigh {
		return "high"
	}
	return "normal"
}

// sampleOffsets are the four sub-pixel samples, in units of the jitter delta
var sampleOffsets = [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// Scene interface to avoid circular imports
type Scene interface {
	GetShapes() []geometry.Shape
	GetLights() []lights.Light
	GetCameras() []*geometry.Camera
	GetWidth() int
	GetHeight() int
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	NumWorkers int // Number of parallel row workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{NumWorkers: 0}
}

// Raytracer renders a scene with Phong shading, hard shadows and recursive mirror reflection.
// It never mutates the scene, so one Raytracer can serve concurrent renders.
type Raytracer struct {
	scene  Scene
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		config: DefaultRenderConfig(),
		logger: logger,
	}
}

// SetRenderConfig updates the rendering configuration
func (rt *Raytracer) SetRenderConfig(config RenderConfig) {
	rt.config = config
}

// Render traces every pixel of the scene through the given camera and writes
// the result to sink in row-major order, top row first. Nothing is written
// when the camera index is invalid or ctx is cancelled before the frame completes.
func (rt *Raytracer) Render(ctx context.Context, sink ImageSink, cameraIndex int, mode JitterMode) (RenderStats, error) {
	cameras := rt.scene.GetCameras()
	if cameraIndex < 0 || cameraIndex >= len(cameras) {
		return RenderStats{}, fmt.Errorf("%w: index %d, scene has %d", ErrNoSuchCamera, cameraIndex, len(cameras))
	}

	width, height := rt.scene.GetWidth(), rt.scene.GetHeight()
	startTime := time.Now()

	pool := NewWorkerPool(rt, rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d with camera %d, %s jitter (using %d workers)...\n",
		width, height, cameraIndex, mode, pool.GetNumWorkers())

	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	stats, err := pool.Run(ctx, cameras[cameraIndex], mode.Delta(), frame)
	if err != nil {
		rt.logger.Printf("Render aborted: %v\n", err)
		return RenderStats{}, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := frame.PixOffset(x, y)
			sink.SetPixel(x, y, frame.Pix[i], frame.Pix[i+1], frame.Pix[i+2])
		}
	}

	stats.Elapsed = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d rays, max depth %d)\n",
		stats.Elapsed, stats.TotalRays(), stats.MaxDepthReached)

	return stats, nil
}

// renderRow traces one row of pixels into frame
func (rt *Raytracer) renderRow(camera *geometry.Camera, row int, delta float64, frame *image.RGBA, stats *RenderStats) {
	for col := 0; col < frame.Rect.Dx(); col++ {
		c := rt.samplePixel(camera, col, row, delta, stats)
		i := frame.PixOffset(col, row)
		frame.Pix[i] = uint8(c.X)
		frame.Pix[i+1] = uint8(c.Y)
		frame.Pix[i+2] = uint8(c.Z)
		frame.Pix[i+3] = 255
		stats.TotalPixels++
	}
}

// samplePixel averages four primary rays offset by delta on the lens plane.
// The result is clamped to [0,255].
func (rt *Raytracer) samplePixel(camera *geometry.Camera, col, row int, delta float64, stats *RenderStats) core.Vec3 {
	colorAccum := core.Vec3{}
	for _, offset := range sampleOffsets {
		ray := camera.GetRay(col, row, offset[0]*delta, offset[1]*delta)
		stats.PrimaryRays++
		stats.TotalSamples++
		c, _ := rt.traceRay(ray, 0, stats)
		colorAccum = colorAccum.Add(c)
	}
	return colorAccum.Multiply(1.0 / float64(len(sampleOffsets))).ColorClamp()
}

// traceRay returns the color seen along ray and whether it hit anything.
// Misses return the sky color.
func (rt *Raytracer) traceRay(ray core.Ray, depth int, stats *RenderStats) (core.Vec3, bool) {
	point, index, ok := rt.closestIntersection(ray)
	if !ok {
		return SkyColor, false
	}
	stats.MaxDepthReached = max(stats.MaxDepthReached, depth)

	shape := rt.scene.GetShapes()[index]
	normal := shape.NormalAt(point)
	mat := shape.GetMaterial()
	point = point.Add(normal.Multiply(ShadingBias))

	color := rt.phong(point, normal, mat, stats)

	if depth < core.MaxRayDepth {
		reflected := core.NewRay(point, core.Reflect(ray.Direction, normal))
		stats.ReflectionRays++
		if reflectedColor, hit := rt.traceRay(reflected, depth+1, stats); hit {
			attenuation := mat.KSpecular * AmbientLightFactor / float64(depth+2)
			color = color.Add(reflectedColor.Multiply(attenuation))
		}
		color = color.ColorClamp()
	}

	return color, true
}

// phong evaluates ambient, diffuse and specular lighting at a biased surface point
func (rt *Raytracer) phong(point, normal core.Vec3, mat material.Material, stats *RenderStats) core.Vec3 {
	color := mat.Ambient.Multiply(AmbientLightFactor)
	viewDir := rt.scene.GetCameras()[0].GetOrigin().Subtract(point).Normalize()

	for _, light := range rt.scene.GetLights() {
		toLight := light.GetPosition().Subtract(point)
		shadowRay := core.NewRay(point, toLight)
		stats.ShadowRays++

		// A hit only shadows the point if it lies before the light
		if occluder, _, hit := rt.closestIntersection(shadowRay); hit &&
			occluder.Subtract(point).Length() <= toLight.Length() {
			continue
		}

		lightDir := shadowRay.Direction
		radiance := light.Radiance()
		nDotL := normal.Dot(lightDir)

		// Diffuse
		color = color.Add(radiance.Multiply(mat.KDiffuse * max(nDotL, 0)))

		// Specular
		reflectDir := normal.Multiply(2 * nDotL).Subtract(lightDir).Normalize()
		specular := math.Pow(max(reflectDir.Dot(viewDir), 0), mat.Shininess)
		color = color.Add(radiance.Multiply(mat.KSpecular * specular))
	}

	return color.ColorClamp()
}

// closestIntersection returns the nearest hit point along ray and the index of
// the shape it belongs to. Hits beyond core.MaxRayDistance are ignored.
func (rt *Raytracer) closestIntersection(ray core.Ray) (core.Vec3, int, bool) {
	closestPoint := ray.At(core.MaxRayDistance)
	closestSoFar := core.MaxRayDistance
	closestIndex := -1

	for i, shape := range rt.scene.GetShapes() {
		hit := shape.Intersect(ray)
		if !hit.Hit() {
			continue
		}

		p := hit.Nearest(ray.Origin)
		if dist := p.Subtract(ray.Origin).Length(); dist < closestSoFar {
			closestSoFar = dist
			closestPoint = p
			closestIndex = i
		}
	}

	return closestPoint, closestIndex, closestIndex >= 0
}
