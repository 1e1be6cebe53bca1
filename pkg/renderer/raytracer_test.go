package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// MockScene implements Scene for testing
type MockScene struct {
	shapes        []geometry.Shape
	lights        []lights.Light
	cameras       []*geometry.Camera
	width, height int
}

func (m *MockScene) GetShapes() []geometry.Shape    { return m.shapes }
func (m *MockScene) GetLights() []lights.Light      { return m.lights }
func (m *MockScene) GetCameras() []*geometry.Camera { return m.cameras }
func (m *MockScene) GetWidth() int                  { return m.width }
func (m *MockScene) GetHeight() int                 { return m.height }

func newMockScene(width, height int) *MockScene {
	return &MockScene{
		cameras: []*geometry.Camera{geometry.NewCamera(geometry.DefaultCameraConfig(), width, height)},
		width:   width,
		height:  height,
	}
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestRender_NoSuchCamera(t *testing.T) {
	s := newMockScene(4, 4)
	rt := NewRaytracer(s, nil)

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past end", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			touched := false
			sink := ImageSinkFunc(func(x, y int, r, g, b uint8) { touched = true })

			_, err := rt.Render(context.Background(), sink, tt.index, JitterNormal)
			if !errors.Is(err, ErrNoSuchCamera) {
				t.Fatalf("Expected ErrNoSuchCamera, got %v", err)
			}
			if touched {
				t.Error("Sink should not be written when the camera index is invalid")
			}
		})
	}

	t.Run("scene without cameras", func(t *testing.T) {
		empty := &MockScene{width: 4, height: 4}
		_, err := NewRaytracer(empty, nil).Render(context.Background(), NewImage(4, 4), 0, JitterNormal)
		if !errors.Is(err, ErrNoSuchCamera) {
			t.Fatalf("Expected ErrNoSuchCamera, got %v", err)
		}
	})
}

func TestRender_EmptySceneIsSky(t *testing.T) {
	s := newMockScene(16, 12)
	img := NewImage(16, 12)

	stats, err := NewRaytracer(s, nil).Render(context.Background(), img, 0, JitterNormal)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			c := img.RGBAAt(x, y)
			if c.R != 200 || c.G != 200 || c.B != 255 || c.A != 255 {
				t.Fatalf("Pixel (%d,%d) = %v, expected sky (200,200,255)", x, y, c)
			}
		}
	}

	if stats.TotalPixels != 16*12 {
		t.Errorf("Expected %d pixels, got %d", 16*12, stats.TotalPixels)
	}
	if stats.PrimaryRays != 4*16*12 {
		t.Errorf("Expected 4 primary rays per pixel, got %d total", stats.PrimaryRays)
	}
	if stats.ReflectionRays != 0 || stats.ShadowRays != 0 {
		t.Errorf("Expected no secondary rays in an empty scene, got %d reflection and %d shadow",
			stats.ReflectionRays, stats.ShadowRays)
	}
}

func TestRender_SphereSilhouette(t *testing.T) {
	const size = 100
	s := newMockScene(size, size)
	s.shapes = []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.DefaultMaterial()),
	}
	img := NewImage(size, size)

	if _, err := NewRaytracer(s, nil).Render(context.Background(), img, 0, JitterNormal); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	covered := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := img.RGBAAt(x, y)
			if c.R != 200 || c.G != 200 || c.B != 255 {
				covered++
			}
		}
	}

	// Projected radius is tan(asin(1/6)) lens units, about 8.45 pixels at 0.02 units per pixel
	expected := 224
	if covered < expected*8/10 || covered > expected*12/10 {
		t.Errorf("Expected about %d covered pixels, got %d", expected, covered)
	}

	// Unlit center pixel carries only the ambient term
	c := img.RGBAAt(size/2, size/2)
	if c.R != 80 || c.G != 160 || c.B != 80 {
		t.Errorf("Expected center pixel (80,160,80), got %v", c)
	}

	// Corners stay sky
	if c := img.RGBAAt(0, 0); c.R != 200 || c.B != 255 {
		t.Errorf("Expected sky in the corner, got %v", c)
	}
}

func TestRender_RowMajorOrder(t *testing.T) {
	const width, height = 5, 3
	s := newMockScene(width, height)
	rt := NewRaytracer(s, nil)
	rt.SetRenderConfig(RenderConfig{NumWorkers: 3})

	var order [][2]int
	sink := ImageSinkFunc(func(x, y int, r, g, b uint8) {
		order = append(order, [2]int{x, y})
	})

	if _, err := rt.Render(context.Background(), sink, 0, JitterNormal); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(order) != width*height {
		t.Fatalf("Expected %d pixels written, got %d", width*height, len(order))
	}
	for i, p := range order {
		want := [2]int{i % width, i / width}
		if p != want {
			t.Fatalf("Write %d went to %v, expected %v", i, p, want)
		}
	}
}

func TestRender_WorkerCountDoesNotChangeImage(t *testing.T) {
	const width, height = 40, 30
	s := scene.NewDefaultScene(width, height)

	render := func(workers int) *Image {
		rt := NewRaytracer(s, nil)
		rt.SetRenderConfig(RenderConfig{NumWorkers: workers})
		img := NewImage(width, height)
		if _, err := rt.Render(context.Background(), img, 0, JitterNormal); err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		return img
	}

	serial := render(1)
	parallel := render(4)

	for i := range serial.Pix {
		if serial.Pix[i] != parallel.Pix[i] {
			t.Fatalf("Images differ at byte %d: %d vs %d", i, serial.Pix[i], parallel.Pix[i])
		}
	}
}

func TestRender_Cancelled(t *testing.T) {
	s := newMockScene(8, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	touched := false
	sink := ImageSinkFunc(func(x, y int, r, g, b uint8) { touched = true })

	_, err := NewRaytracer(s, nil).Render(ctx, sink, 0, JitterNormal)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if touched {
		t.Error("Sink should not be written for a cancelled render")
	}
}

func TestTraceRay_ClosestShapeWins(t *testing.T) {
	near := material.DefaultMaterial().WithAmbient(core.NewVec3(200, 0, 0))
	far := material.DefaultMaterial().WithAmbient(core.NewVec3(0, 0, 200))

	s := newMockScene(10, 10)
	// Far sphere first so the search cannot rely on insertion order
	s.shapes = []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, 10), 1, far),
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1, near),
	}
	rt := NewRaytracer(s, nil)

	var stats RenderStats
	color, hit := rt.traceRay(core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)), 0, &stats)
	if !hit {
		t.Fatal("Expected the ray to hit")
	}

	expected := core.NewVec3(160, 0, 0)
	if !vecNear(color, expected, 1e-9) {
		t.Errorf("Expected %v from the near sphere, got %v", expected, color)
	}
}

func TestTraceRay_MissReturnsSky(t *testing.T) {
	rt := NewRaytracer(newMockScene(10, 10), nil)

	var stats RenderStats
	color, hit := rt.traceRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), 0, &stats)
	if hit {
		t.Error("Expected a miss")
	}
	if color != SkyColor {
		t.Errorf("Expected sky %v, got %v", SkyColor, color)
	}
}

func TestTraceRay_MirrorsTerminateAtMaxDepth(t *testing.T) {
	s := scene.NewMirrorScene(10, 10)
	rt := NewRaytracer(s, nil)

	// Straight down between the mirrors: every bounce hits the opposite plane
	var stats RenderStats
	_, hit := rt.traceRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)), 0, &stats)
	if !hit {
		t.Fatal("Expected the ray to hit the floor")
	}

	if stats.MaxDepthReached != core.MaxRayDepth {
		t.Errorf("Expected recursion to reach depth %d, got %d", core.MaxRayDepth, stats.MaxDepthReached)
	}
	if stats.ReflectionRays != core.MaxRayDepth {
		t.Errorf("Expected %d reflection rays, got %d", core.MaxRayDepth, stats.ReflectionRays)
	}
}

func TestPhong(t *testing.T) {
	light := lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(150, 150, 150), 1)
	diffuseOnly := material.NewMaterial(core.Vec3{}, 0.5, 0, 30)

	tests := []struct {
		name     string
		normal   core.Vec3
		shapes   []geometry.Shape
		expected core.Vec3
	}{
		{
			name:     "facing light",
			normal:   core.NewVec3(0, 1, 0),
			expected: core.NewVec3(75, 75, 75),
		},
		{
			name:     "facing away",
			normal:   core.NewVec3(0, -1, 0),
			expected: core.Vec3{},
		},
		{
			name:   "occluded",
			normal: core.NewVec3(0, 1, 0),
			shapes: []geometry.Shape{
				geometry.NewSphere(core.NewVec3(0, 5, 0), 1, material.DefaultMaterial()),
			},
			expected: core.Vec3{},
		},
		{
			name:   "occluder behind light",
			normal: core.NewVec3(0, 1, 0),
			shapes: []geometry.Shape{
				geometry.NewSphere(core.NewVec3(0, 20, 0), 1, material.DefaultMaterial()),
			},
			expected: core.NewVec3(75, 75, 75),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMockScene(10, 10)
			s.shapes = tt.shapes
			s.lights = []lights.Light{light}
			rt := NewRaytracer(s, nil)

			var stats RenderStats
			color := rt.phong(core.Vec3{}, tt.normal, diffuseOnly, &stats)
			if !vecNear(color, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
			if stats.ShadowRays != 1 {
				t.Errorf("Expected 1 shadow ray, got %d", stats.ShadowRays)
			}
		})
	}
}

func TestPhong_AmbientAndClamp(t *testing.T) {
	s := newMockScene(10, 10)
	s.lights = []lights.Light{
		lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(255, 255, 255), 4),
	}
	rt := NewRaytracer(s, nil)

	mat := material.NewMaterial(core.NewVec3(100, 0, 0), 1, 0, 30)
	var stats RenderStats
	color := rt.phong(core.Vec3{}, core.NewVec3(0, 1, 0), mat, &stats)

	for i := 0; i < 3; i++ {
		if c := color.Component(i); c < 0 || c > 255 {
			t.Errorf("Channel %d out of range: %f", i, c)
		}
	}
	if color.X != 255 {
		t.Errorf("Expected saturated red, got %v", color)
	}
}

func TestJitterMode(t *testing.T) {
	tests := []struct {
		mode  JitterMode
		delta float64
		name  string
	}{
		{JitterNormal, 0.003, "normal"},
		{JitterHigh, 0.1, "high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.Delta(); got != tt.delta {
				t.Errorf("Expected delta %f, got %f", tt.delta, got)
			}
			if got := tt.mode.String(); got != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, got)
			}
		})
	}
}
