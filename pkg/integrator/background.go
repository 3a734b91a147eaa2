package integrator

import (
	"github.com/neudoerf/raytracing/pkg/core"
)

// Background supplies the radiance of rays that leave the scene without hitting anything
type Background interface {
	Emit(ray core.Ray) core.Vec3
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Color core.Vec3
}

// NewSolidBackground creates a uniform background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Color: color}
}

// Emit returns the background color
func (b *SolidBackground) Emit(ray core.Ray) core.Vec3 {
	return b.Color
}

// GradientBackground blends vertically between two colors
type GradientBackground struct {
	Top    core.Vec3 // Color looking straight up
	Bottom core.Vec3 // Color looking straight down
}

// NewGradientBackground creates a sky-style gradient
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// NewSkyBackground returns the classic white-to-blue sky
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

// Emit interpolates on the Y component of the unit ray direction
func (b *GradientBackground) Emit(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - a).Add(b.Top.Multiply(a))
}
