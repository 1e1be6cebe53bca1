package renderer

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// WorkerPool renders image rows in parallel. Rows never overlap, so workers
// write straight into the shared frame without locking.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		raytracer:  raytracer,
		numWorkers: numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every row of frame through camera. Cancellation is checked
// before each row; a cancelled run returns ctx.Err() and a partial frame.
func (wp *WorkerPool) Run(ctx context.Context, camera *geometry.Camera, delta float64, frame *image.RGBA) (RenderStats, error) {
	height := frame.Rect.Dy()
	rowStats := make([]RenderStats, height)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for row := 0; row < height; row++ {
		if gctx.Err() != nil {
			break
		}
		row := row // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			wp.raytracer.renderRow(camera, row, delta, frame, &rowStats[row])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}
	// Dispatch may have stopped on cancellation without any worker noticing
	if err := ctx.Err(); err != nil {
		return RenderStats{}, err
	}

	var stats RenderStats
	for i := range rowStats {
		stats.Merge(rowStats[i])
	}
	return stats, nil
}
