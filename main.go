package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/neudoerf/raytracing/pkg/config"
	"github.com/neudoerf/raytracing/pkg/renderer"
	"github.com/neudoerf/raytracing/pkg/scene"
)

var (
	sceneName = flag.String("scene", scene.DefaultSceneName, "Scene to render (see -list)")
	list      = flag.Bool("list", false, "List available scenes and exit")
	width     = flag.Int("width", 0, "Override the scene's image width in pixels")
	spp       = flag.Int("spp", 0, "Override the scene's samples per pixel")
	depth     = flag.Int("depth", 0, "Override the scene's maximum bounce depth")
	workers   = flag.Int("workers", 0, "Number of render workers (default from RAYTRACER_WORKERS)")
	format    = flag.String("format", "", "Output format, ppm or png (default from RAYTRACER_FORMAT)")
	output    = flag.String("output", "", "Explicit output file; '-' writes PPM to stdout")
)

func main() {
	flag.Parse()

	glog.CopyStandardLogTo("INFO")
	defer glog.Flush()

	if *list {
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-16s %s\n", info.Name, info.Description)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx); err != nil {
		glog.Flush()
		glog.Fatalf("Render failed: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return xerrors.Errorf("while loading configuration: %w", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.New().String()
	glog.Infof("run %s: scene=%q workers=%d seed=%d", runID, *sceneName, cfg.Workers, cfg.Seed)

	s, err := createScene(*sceneName, cfg)
	if err != nil {
		return err
	}

	if err := renderer.RegisterMetrics(); err != nil {
		return xerrors.Errorf("while registering metrics: %w", err)
	}
	ctx, err = renderer.WithScene(ctx, s.Name)
	if err != nil {
		return xerrors.Errorf("while tagging context: %w", err)
	}

	pool := renderer.NewWorkerPool(s.NewRaytracer(cfg.Seed), s.Sampling.SamplesPerPixel, cfg.Workers, renderer.NewDefaultLogger())
	buffer, stats, err := pool.Render(ctx)
	if err != nil {
		return xerrors.Errorf("while rendering %s: %w", s.Name, err)
	}
	glog.Infof("rendered %dx%d at %d spp in %v (%.0f samples/s)",
		stats.Width, stats.Height, stats.SamplesPerPixel, stats.Duration, stats.SamplesPerSecond())
	if err := renderer.ReportMetrics(renderer.NewDefaultLogger()); err != nil {
		return err
	}

	if *output == "-" {
		return renderer.WritePPM(os.Stdout, buffer)
	}

	path := *output
	if path == "" {
		path = outputPath(cfg.OutputDir, s.Name, cfg.Format, time.Now(), runID)
	}
	if err := renderer.SaveImage(path, buffer, cfg.Format); err != nil {
		return err
	}
	glog.Infof("render saved as %s", path)
	return nil
}

// applyFlags overrides environment configuration with explicitly set flags
func applyFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *format != "" {
		cfg.Format = *format
	}
}

// createScene builds the named scene and applies the size and quality flags
func createScene(name string, cfg *config.Config) (*scene.Scene, error) {
	s, err := scene.NewScene(name, scene.Options{ImageDir: cfg.ImageDir})
	if err != nil {
		return nil, err
	}
	if *width > 0 {
		s.Camera.Width = *width
	}
	if *spp > 0 {
		s.Sampling.SamplesPerPixel = *spp
	}
	if *depth > 0 {
		s.Sampling.MaxDepth = *depth
	}
	return s, nil
}

// outputPath returns <dir>/<scene>/render_<timestamp>_<run>.<format>
func outputPath(dir, sceneName, format string, now time.Time, runID string) string {
	if len(runID) > 8 {
		runID = runID[:8]
	}
	filename := fmt.Sprintf("render_%s_%s.%s", now.Format("20060102_150405"), runID, format)
	return filepath.Join(dir, sceneName, filename)
}
