package material

import (
	"math/rand"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/neudoerf/raytracing/pkg/core"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// constantSampler returns the same value for every dimension
type constantSampler float64

func (c constantSampler) Get1D() float64 { return float64(c) }
func (c constantSampler) Get2D() core.Vec2 {
	return core.NewVec2(float64(c), float64(c))
}
func (c constantSampler) Get3D() core.Vec3 {
	return core.NewVec3(float64(c), float64(c), float64(c))
}

func newTestSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}
