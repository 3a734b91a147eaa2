package material

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neudoerf/raytracing/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, newTestSampler())
	if !didScatter {
		t.Fatal("Expected perfect mirror to scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	if diff := cmp.Diff(expected, scatter.Scattered.Direction, approx); diff != "" {
		t.Errorf("unexpected reflection (-want +got):\n%s", diff)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzIntoSurfaceIsAbsorbed(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)

	// Grazing ray: reflection is almost tangent, and Get2D() == (0, 0) adds
	// (0, 0, 1) which pushes it straight back into a surface with normal (0, 0, -1)
	rayIn := core.NewRay(core.NewVec3(-1, 0, -0.01), core.NewVec3(1, 0, 0.01))
	hit := HitRecord{Normal: core.NewVec3(0, 0, -1)}

	if _, didScatter := metal.Scatter(rayIn, hit, constantSampler(0)); didScatter {
		t.Error("Expected fuzzed ray below the surface to be absorbed")
	}
}
