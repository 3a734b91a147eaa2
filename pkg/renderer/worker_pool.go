package renderer

import (
	"context"
	"time"

	"github.com/neudoerf/raytracing/pkg/core"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

// DefaultNumWorkers is the number of workers used when none is configured
const DefaultNumWorkers = 4

// WorkerPool splits a render's samples across workers that each render the
// whole image, then sums their buffers
type WorkerPool struct {
	raytracer       *Raytracer
	samplesPerPixel int
	numWorkers      int
	logger          core.Logger
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, samplesPerPixel, numWorkers int, logger core.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultNumWorkers
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &WorkerPool{
		raytracer:       raytracer,
		samplesPerPixel: samplesPerPixel,
		numWorkers:      numWorkers,
		logger:          logger,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// sampleRange returns the contiguous block of sample indices owned by worker.
// Remainder samples go to the lowest-numbered workers.
func (wp *WorkerPool) sampleRange(worker int) (first, count int) {
	base := wp.samplesPerPixel / wp.numWorkers
	remainder := wp.samplesPerPixel % wp.numWorkers

	count = base
	if worker < remainder {
		count++
	}
	first = worker*base + min(worker, remainder)
	return first, count
}

// Render runs every worker to completion and returns the merged buffer. The
// first worker error cancels the rest.
func (wp *WorkerPool) Render(ctx context.Context) (*PixelBuffer, RenderStats, error) {
	start := time.Now()
	camera := wp.raytracer.Camera()

	wp.logger.Printf("Rendering %dx%d at %d samples per pixel with %d workers",
		camera.Width(), camera.Height(), wp.samplesPerPixel, wp.numWorkers)

	buffers := make([]*PixelBuffer, wp.numWorkers)
	g, gctx := errgroup.WithContext(ctx)
	for k := 0; k < wp.numWorkers; k++ {
		g.Go(func() error {
			first, count := wp.sampleRange(k)
			buffer, err := wp.raytracer.Render(gctx, first, count)
			if err != nil {
				return xerrors.Errorf("while rendering samples [%d, %d) on worker %d: %w", first, first+count, k, err)
			}
			buffers[k] = buffer
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	// Reduce in worker order so the sum is reproducible
	result := NewPixelBuffer(camera.Width(), camera.Height())
	for _, buffer := range buffers {
		if err := result.Merge(buffer); err != nil {
			return nil, RenderStats{}, xerrors.Errorf("while merging worker buffers: %w", err)
		}
	}

	stats := RenderStats{
		Width:           camera.Width(),
		Height:          camera.Height(),
		SamplesPerPixel: result.Samples,
		TotalPixels:     camera.Width() * camera.Height(),
		TotalSamples:    camera.Width() * camera.Height() * result.Samples,
		Workers:         wp.numWorkers,
		Duration:        time.Since(start),
	}
	recordRender(ctx, stats)

	wp.logger.Printf("Render completed in %v (%.0f samples/sec)", stats.Duration, stats.SamplesPerSecond())
	return result, stats, nil
}
