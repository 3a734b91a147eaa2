package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestVec3_BasicAlgebra(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"cross", a.Cross(b), NewVec3(27, 6, -13)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, tt.got, approx); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
}

func TestVec3_NormalizeAndNearZero(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("Normalizing the zero vector should return the zero vector")
	}

	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("Expected 1e-3 component to not be near zero")
	}
}

func TestReflectAndRefract(t *testing.T) {
	n := NewVec3(0, 1, 0)
	in := NewVec3(1, -1, 0).Normalize()

	reflected := Reflect(in, n)
	if diff := cmp.Diff(NewVec3(1, 1, 0).Normalize(), reflected, approx); diff != "" {
		t.Errorf("unexpected reflection (-want +got):\n%s", diff)
	}

	// A ratio of one must not bend the ray
	refracted := Refract(in, n, 1.0)
	if diff := cmp.Diff(in, refracted, approx); diff != "" {
		t.Errorf("unexpected refraction (-want +got):\n%s", diff)
	}
}
