package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/neudoerf/raytracing/pkg/core"
)

func TestCheckerTexture_Parity(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerTextureColors(0.5, even, odd)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"origin cell", core.NewVec3(0.1, 0.1, 0.1), even},
		{"step in x", core.NewVec3(0.6, 0.1, 0.1), odd},
		{"step in x and y", core.NewVec3(0.6, 0.6, 0.1), even},
		{"negative cell", core.NewVec3(-0.1, 0.1, 0.1), odd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Evaluate(core.Vec2{}, tt.point); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestImageTexture_Evaluate(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	texture := NewImageTexture(2, 2, []core.Vec3{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"bottom left", core.NewVec2(0.1, 0.1), black},
		{"bottom right", core.NewVec2(0.9, 0.1), white},
		{"top left", core.NewVec2(0.1, 0.9), white},
		{"top right", core.NewVec2(0.9, 0.9), black},
		{"clamped high", core.NewVec2(5, 5), black},
		{"clamped low", core.NewVec2(-5, -5), black},
		{"exact corner", core.NewVec2(1, 1), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); got != tt.expected {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, got)
			}
		})
	}
}

func TestImageTexture_MissingImageFallsBack(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)

	got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{})
	if got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected cyan fallback, got %v", got)
	}
}

func TestNoiseTexture_RangeAndDeterminism(t *testing.T) {
	a := NewNoiseTexture(4, rand.New(rand.NewSource(42)))
	b := NewNoiseTexture(4, rand.New(rand.NewSource(42)))
	random := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		p := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		ca := a.Evaluate(core.Vec2{}, p)
		if ca != b.Evaluate(core.Vec2{}, p) {
			t.Fatalf("Expected identical noise for identical seeds at %v", p)
		}
		if ca.X < 0 || ca.X > 1 || ca.X != ca.Y || ca.Y != ca.Z {
			t.Fatalf("Expected grey level in [0,1], got %v", ca)
		}
	}
}

func TestPerlin_ContinuousAtLatticePoints(t *testing.T) {
	p := NewPerlin(rand.New(rand.NewSource(42)))

	// Gradient noise is zero on lattice points and varies smoothly across them
	for _, point := range []core.Vec3{{X: 1, Y: 2, Z: 3}, {X: -4, Y: 0, Z: 7}} {
		if v := p.Noise(point); math.Abs(v) > 1e-12 {
			t.Errorf("Expected zero noise at lattice point %v, got %f", point, v)
		}
		eps := core.NewVec3(1e-6, 1e-6, 1e-6)
		if math.Abs(p.Noise(point.Add(eps))-p.Noise(point.Subtract(eps))) > 1e-4 {
			t.Errorf("Noise is discontinuous around %v", point)
		}
	}
}
