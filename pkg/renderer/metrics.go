package renderer

import (
	"context"
	"fmt"
	"strings"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
	"golang.org/x/xerrors"

	"github.com/neudoerf/raytracing/pkg/core"
)

// SceneKey tags render measurements with the scene name
var SceneKey = tag.MustNewKey("scene")

var (
	samplesMeasure = stats.Int64("raytracer/samples", "Camera samples traced", stats.UnitDimensionless)
	latencyMeasure = stats.Float64("raytracer/render_latency", "Wall time of a full render", stats.UnitMilliseconds)

	// SamplesView totals camera samples per scene
	SamplesView = &view.View{
		Name:        "raytracer/samples",
		Description: "Total camera samples traced",
		TagKeys:     []tag.Key{SceneKey},
		Measure:     samplesMeasure,
		Aggregation: view.Sum(),
	}

	// RenderLatencyView is the distribution of render wall times per scene
	RenderLatencyView = &view.View{
		Name:        "raytracer/render_latency",
		Description: "Distribution of render wall times",
		TagKeys:     []tag.Key{SceneKey},
		Measure:     latencyMeasure,
		Aggregation: view.Distribution(10, 100, 1000, 10000, 60000, 600000, 3600000),
	}
)

// RegisterMetrics starts collecting the render views. ReportMetrics reads them back.
func RegisterMetrics() error {
	return view.Register(SamplesView, RenderLatencyView)
}

// WithScene returns a context whose measurements are tagged with the scene name
func WithScene(ctx context.Context, name string) (context.Context, error) {
	return tag.New(ctx, tag.Upsert(SceneKey, name))
}

func recordRender(ctx context.Context, s RenderStats) {
	stats.Record(ctx,
		samplesMeasure.M(int64(s.TotalSamples)),
		latencyMeasure.M(float64(s.Duration.Microseconds())/1000))
}

// ReportMetrics writes one line per tagged row of the registered render views
func ReportMetrics(logger core.Logger) error {
	for _, v := range []*view.View{SamplesView, RenderLatencyView} {
		rows, err := view.RetrieveData(v.Name)
		if err != nil {
			return xerrors.Errorf("while reading view %s: %w", v.Name, err)
		}
		for _, row := range rows {
			logger.Printf("metric %s{%s}: %s", v.Name, formatTags(row.Tags), formatData(row.Data))
		}
	}
	return nil
}

func formatTags(tags []tag.Tag) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, t.Key.Name()+"="+t.Value)
	}
	return strings.Join(parts, ",")
}

func formatData(data view.AggregationData) string {
	switch d := data.(type) {
	case *view.SumData:
		return fmt.Sprintf("sum=%g", d.Value)
	case *view.DistributionData:
		return fmt.Sprintf("count=%d mean=%.1f min=%.1f max=%.1f", d.Count, d.Mean, d.Min, d.Max)
	default:
		return fmt.Sprintf("%v", data)
	}
}
