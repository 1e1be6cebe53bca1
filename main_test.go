package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		sceneName string
		out       string
	}{
		{"default scene to bmp", "default", "render.bmp"},
		{"mirrors to png", "mirrors", "render.png"},
		{"json scene", "scenes/reference.json", "reference.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), tt.out)
			opts := options{
				configPath: filepath.Join(t.TempDir(), "missing.txt"),
				sceneName:  tt.sceneName,
				width:      32,
				height:     24,
				outPath:    out,
			}

			if err := run(context.Background(), opts, core.NopLogger{}); err != nil {
				t.Fatalf("run failed: %v", err)
			}

			img, err := loaders.LoadImage(out)
			if err != nil {
				t.Fatalf("Failed to read rendered image: %v", err)
			}
			if img.Width != 32 || img.Height != 24 {
				t.Errorf("Expected 32x24 image, got %dx%d", img.Width, img.Height)
			}
		})
	}
}

func TestRun_UsesSetupFile(t *testing.T) {
	dir := t.TempDir()
	setupPath := filepath.Join(dir, "setup.txt")
	title := filepath.Join(dir, "titled")
	content := "TITLE: " + title + "\nWIDTH: 20\nHEIGHT: 10\nDRUNK_MODE: 1\n"
	if err := os.WriteFile(setupPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write setup file: %v", err)
	}

	opts := options{configPath: setupPath, sceneName: "empty"}
	if err := run(context.Background(), opts, core.NopLogger{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	img, err := loaders.LoadImage(title + ".bmp")
	if err != nil {
		t.Fatalf("Expected BMP named after the title: %v", err)
	}
	if img.Width != 20 || img.Height != 10 {
		t.Errorf("Expected 20x10 image, got %dx%d", img.Width, img.Height)
	}
	if sky := core.NewVec3(200, 200, 255); img.At(0, 0) != sky {
		t.Errorf("Expected sky in an empty scene, got %v", img.At(0, 0))
	}
}

func TestRun_Errors(t *testing.T) {
	missingSetup := filepath.Join(t.TempDir(), "missing.txt")

	t.Run("unknown scene", func(t *testing.T) {
		opts := options{configPath: missingSetup, sceneName: "nonexistent", outPath: filepath.Join(t.TempDir(), "x.bmp")}
		err := run(context.Background(), opts, core.NopLogger{})
		if !errors.Is(err, scene.ErrUnknownScene) {
			t.Errorf("Expected ErrUnknownScene, got %v", err)
		}
	})

	t.Run("invalid setup", func(t *testing.T) {
		setupPath := filepath.Join(t.TempDir(), "setup.txt")
		if err := os.WriteFile(setupPath, []byte("WIDTH: many\n"), 0644); err != nil {
			t.Fatalf("Failed to write setup file: %v", err)
		}
		err := run(context.Background(), options{configPath: setupPath, sceneName: "default"}, core.NopLogger{})
		if !errors.Is(err, config.ErrInvalidSetup) {
			t.Errorf("Expected ErrInvalidSetup, got %v", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		out := filepath.Join(t.TempDir(), "x.bmp")
		opts := options{configPath: missingSetup, sceneName: "default", width: 8, height: 8, outPath: out}
		if err := run(ctx, opts, core.NopLogger{}); !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Error("No image should be written for a cancelled render")
		}
	})
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		out      string
		expected string
	}{
		{"title without extension", "POTATO", "", "POTATO.bmp"},
		{"title with extension", "shot.png", "", "shot.png"},
		{"flag wins", "POTATO", "custom.png", "custom.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(config.Setup{Title: tt.title}, options{outPath: tt.out})
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	base := config.DefaultSetup()

	got := applyOverrides(base, options{})
	if got != base {
		t.Errorf("Zero options should leave the setup unchanged, got %+v", got)
	}

	on, off := true, false
	got = applyOverrides(base, options{width: 80, height: 60, drunk: &on})
	expected := config.Setup{Title: "POTATO", Width: 80, Height: 60, DrunkMode: true}
	if got != expected {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}

	drunkSetup := config.Setup{Title: "POTATO", Width: 600, Height: 600, DrunkMode: true}
	if got = applyOverrides(drunkSetup, options{drunk: &off}); got.DrunkMode {
		t.Error("Explicit -drunk=false should turn off drunk mode from the setup file")
	}
	if got = applyOverrides(drunkSetup, options{}); !got.DrunkMode {
		t.Error("Unset -drunk should keep drunk mode from the setup file")
	}
}
