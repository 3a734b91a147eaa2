package material

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neudoerf/raytracing/pkg/core"
)

func TestLambertian_ScatterAboveSurface(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	sampler := newTestSampler()

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRayAtTime(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.25)

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		// normal + unit vector never points below the tangent plane
		if scatter.Scattered.Direction.Dot(normal) < -1e-12 {
			t.Errorf("Scattered direction %v points into the surface", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Errorf("Expected scattered ray to start at hit point, got %v", scatter.Scattered.Origin)
		}
		if scatter.Scattered.Time != ray.Time {
			t.Errorf("Expected scattered ray to keep time %f, got %f", ray.Time, scatter.Scattered.Time)
		}
		if diff := cmp.Diff(albedo, scatter.Attenuation); diff != "" {
			t.Errorf("unexpected attenuation (-want +got):\n%s", diff)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	// Get2D() == (0, 0) maps to the unit vector (0, 0, 1); a normal of (0, 0, -1)
	// cancels it exactly
	normal := core.NewVec3(0, 0, -1)
	hit := HitRecord{Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))

	scatter, _ := lambertian.Scatter(ray, hit, constantSampler(0))
	if scatter.Scattered.Direction != normal {
		t.Errorf("Expected fallback to normal %v, got %v", normal, scatter.Scattered.Direction)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewCheckerTextureColors(1.0, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	lambertian := NewTexturedLambertian(checker)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"even cell", core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(1, 0, 0)},
		{"odd cell", core.NewVec3(1.5, 0.5, 0.5), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := HitRecord{Point: tt.point, Normal: core.NewVec3(0, 1, 0)}
			scatter, _ := lambertian.Scatter(ray, hit, newTestSampler())
			if scatter.Attenuation != tt.expected {
				t.Errorf("Expected attenuation %v, got %v", tt.expected, scatter.Attenuation)
			}
		})
	}
}
