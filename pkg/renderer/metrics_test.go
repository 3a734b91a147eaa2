package renderer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.opencensus.io/stats/view"
)

func TestRecordRenderMetrics(t *testing.T) {
	if err := RegisterMetrics(); err != nil {
		t.Fatalf("RegisterMetrics failed: %v", err)
	}
	defer view.Unregister(SamplesView, RenderLatencyView)

	ctx, err := WithScene(context.Background(), "metrics-test")
	if err != nil {
		t.Fatalf("WithScene failed: %v", err)
	}

	_, stats, err := NewWorkerPool(createTestRaytracer(2), 2, 2, &testLogger{}).Render(ctx)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rows, err := view.RetrieveData(SamplesView.Name)
	if err != nil {
		t.Fatalf("RetrieveData failed: %v", err)
	}

	var found bool
	for _, row := range rows {
		for _, tg := range row.Tags {
			if tg.Key == SceneKey && tg.Value == "metrics-test" {
				found = true
				sum, ok := row.Data.(*view.SumData)
				if !ok {
					t.Fatalf("Expected sum data, got %T", row.Data)
				}
				if int(sum.Value) != stats.TotalSamples {
					t.Errorf("Expected %d samples recorded, got %f", stats.TotalSamples, sum.Value)
				}
			}
		}
	}
	if !found {
		t.Error("Expected a row tagged with the scene name")
	}
}

// recordingLogger keeps every formatted line
type recordingLogger struct {
	lines []string
}

func (rl *recordingLogger) Printf(format string, args ...interface{}) {
	rl.lines = append(rl.lines, fmt.Sprintf(format, args...))
}

func TestReportMetrics(t *testing.T) {
	if err := RegisterMetrics(); err != nil {
		t.Fatalf("RegisterMetrics failed: %v", err)
	}
	defer view.Unregister(SamplesView, RenderLatencyView)

	ctx, err := WithScene(context.Background(), "report-test")
	if err != nil {
		t.Fatalf("WithScene failed: %v", err)
	}
	_, stats, err := NewWorkerPool(createTestRaytracer(2), 3, 2, &testLogger{}).Render(ctx)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	logger := &recordingLogger{}
	if err := ReportMetrics(logger); err != nil {
		t.Fatalf("ReportMetrics failed: %v", err)
	}

	wantSamples := fmt.Sprintf("metric raytracer/samples{scene=report-test}: sum=%d", stats.TotalSamples)
	wantLatency := "metric raytracer/render_latency{scene=report-test}: count=1 "
	var gotSamples, gotLatency bool
	for _, line := range logger.lines {
		if line == wantSamples {
			gotSamples = true
		}
		if strings.HasPrefix(line, wantLatency) {
			gotLatency = true
		}
	}
	if !gotSamples {
		t.Errorf("missing line %q in %q", wantSamples, logger.lines)
	}
	if !gotLatency {
		t.Errorf("missing line with prefix %q in %q", wantLatency, logger.lines)
	}
}

func TestReportMetrics_Unregistered(t *testing.T) {
	if err := ReportMetrics(&recordingLogger{}); err == nil {
		t.Error("expected error when views are not registered")
	}
}
