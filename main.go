package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// options are the command line settings layered over the setup file
type options struct {
	configPath string
	sceneName  string
	width      int    // 0 = from setup file
	height     int    // 0 = from setup file
	drunk      *bool  // nil = from setup file
	outPath    string // empty = setup file title
	workers    int
}

func main() {
	// Parse command line flags
	configPath := flag.String("config", config.DefaultSetupPath, "Setup file with TITLE, WIDTH, HEIGHT and DRUNK_MODE")
	sceneName := flag.String("scene", "default", "Built-in scene name or path to a .json scene file")
	width := flag.Int("width", 0, "Image width (overrides the setup file)")
	height := flag.Int("height", 0, "Image height (overrides the setup file)")
	drunk := flag.Bool("drunk", false, "Render with wide sub-pixel jitter (overrides the setup file)")
	outPath := flag.String("out", "", "Output image path, .bmp or .png (defaults to the setup file title)")
	workers := flag.Int("workers", 0, "Number of parallel row workers (0 = auto-detect CPU count)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	opts := options{
		configPath: *configPath,
		sceneName:  *sceneName,
		width:      *width,
		height:     *height,
		outPath:    *outPath,
		workers:    *workers,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "drunk" {
			opts.drunk = drunk
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		log.Fatal(err)
	}
}

func showHelp() {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println("  <file>.json - Scene loaded from a JSON file")
	fmt.Println()
	fmt.Println("Output is written to the setup file TITLE (BMP when it has no extension)")
}

// run loads the setup, renders the scene through camera 0 and writes the image
func run(ctx context.Context, opts options, logger core.Logger) error {
	setup, err := config.LoadSetup(opts.configPath, logger)
	if err != nil {
		return err
	}
	setup = applyOverrides(setup, opts)

	s, err := scene.Create(opts.sceneName, setup.Width, setup.Height)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	logger.Printf("Scene %s: %d primitives, %d lights\n", opts.sceneName, s.GetPrimitiveCount(), len(s.Lights))

	mode := renderer.JitterNormal
	if setup.DrunkMode {
		mode = renderer.JitterHigh
	}

	rt := renderer.NewRaytracer(s, logger)
	rt.SetRenderConfig(renderer.RenderConfig{NumWorkers: opts.workers})

	img := renderer.NewImage(s.Width, s.Height)
	if _, err := rt.Render(ctx, img, 0, mode); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	path := outputPath(setup, opts)
	if err := loaders.SaveImage(path, img); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", path)
	return nil
}

// applyOverrides layers non-zero sizes and an explicitly set -drunk over the setup file
func applyOverrides(setup config.Setup, opts options) config.Setup {
	if opts.width > 0 {
		setup.Width = opts.width
	}
	if opts.height > 0 {
		setup.Height = opts.height
	}
	if opts.drunk != nil {
		setup.DrunkMode = *opts.drunk
	}
	return setup
}

// outputPath returns the -out path, or the setup title with .bmp added when it has no extension
func outputPath(setup config.Setup, opts options) string {
	if opts.outPath != "" {
		return opts.outPath
	}
	if filepath.Ext(setup.Title) == "" {
		return setup.Title + ".bmp"
	}
	return setup.Title
}
