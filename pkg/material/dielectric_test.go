package material

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neudoerf/raytracing/pkg/core"
)

func TestDielectric_AttenuationIsWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
		Material:  glass,
	}

	result, scattered := glass.Scatter(ray, hit, newTestSampler())
	if !scattered {
		t.Error("Dielectric should always scatter")
	}
	if result.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected white attenuation, got %v", result.Attenuation)
	}
}

func TestDielectric_ReflectsAndRefracts(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	// Schlick reflectance at 45 degrees into glass is ~0.05
	reflectedResult, _ := glass.Scatter(ray, hit, constantSampler(0.0))
	if reflectedResult.Scattered.Direction.Y <= 0 {
		t.Errorf("Expected reflection above the surface, got %v", reflectedResult.Scattered.Direction)
	}

	refractedResult, _ := glass.Scatter(ray, hit, constantSampler(0.99))
	dir := refractedResult.Scattered.Direction
	if dir.Y >= 0 {
		t.Fatalf("Expected refraction below the surface, got %v", dir)
	}

	// Snell: sin(theta_t) = sin(45°) / 1.5
	expectedSin := math.Sin(math.Pi/4) / 1.5
	if math.Abs(dir.Normalize().X-expectedSin) > 1e-9 {
		t.Errorf("Expected refracted sin %f, got %f", expectedSin, dir.Normalize().X)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Leaving glass at 60 degrees: 1.5 * sin(60°) > 1
	incoming := core.NewVec3(math.Sin(math.Pi/3), -math.Cos(math.Pi/3), 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), incoming)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false,
	}

	for _, u := range []float64{0, 0.5, 0.999} {
		result, _ := glass.Scatter(ray, hit, constantSampler(u))
		expected := core.Reflect(incoming, hit.Normal)
		if diff := cmp.Diff(expected, result.Scattered.Direction, approx); diff != "" {
			t.Errorf("expected total internal reflection for u=%f (-want +got):\n%s", u, diff)
		}
	}
}

func TestDielectric_IndexOneDoesNotBend(t *testing.T) {
	air := NewDielectric(1.0)

	for _, angle := range []float64{0, 0.3, 0.7, 1.2, 1.5} {
		incoming := core.NewVec3(math.Sin(angle), -math.Cos(angle), 0)
		ray := core.NewRay(core.NewVec3(0, 1, 0), incoming)

		for _, frontFace := range []bool{true, false} {
			hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: frontFace}

			// Holds on the refraction branch only; this sample never takes the Schlick reflection
			result, _ := air.Scatter(ray, hit, constantSampler(0.999999))
			if diff := cmp.Diff(incoming, result.Scattered.Direction, approx); diff != "" {
				t.Errorf("angle %f front=%t: direction changed (-want +got):\n%s", angle, frontFace, diff)
			}
		}
	}
}

func TestDielectric_IndexOneStillReflectsObliqueRays(t *testing.T) {
	air := NewDielectric(1.0)
	angle := 1.2
	incoming := core.NewVec3(math.Sin(angle), -math.Cos(angle), 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), incoming)
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	if r := Reflectance(math.Cos(angle), 1.0); r <= 0 {
		t.Fatalf("Expected positive Schlick reflectance at index one, got %f", r)
	}

	result, _ := air.Scatter(ray, hit, constantSampler(0))
	if diff := cmp.Diff(core.Reflect(incoming, hit.Normal), result.Scattered.Direction, approx); diff != "" {
		t.Errorf("expected reflection for a zero sample (-want +got):\n%s", diff)
	}
}

func TestReflectance(t *testing.T) {
	// Normal incidence into glass: ((1-1.5)/(1+1.5))^2 = 0.04
	if got := Reflectance(1.0, 1.5); math.Abs(got-0.04) > 1e-12 {
		t.Errorf("Expected 0.04 at normal incidence, got %f", got)
	}
	// Grazing incidence reflects everything
	if got := Reflectance(0.0, 1.5); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected 1.0 at grazing incidence, got %f", got)
	}
}
