package core

import (
	"math/rand/v2"
)

// StreamSampler draws from a PCG stream that is reseeded per (pixel, sample) key.
// Every camera sample therefore sees the same numbers no matter which worker
// renders it or in what order, which keeps parallel sums independent of the
// worker count.
type StreamSampler struct {
	seed   uint64
	source *rand.PCG
	random *rand.Rand
}

// NewStreamSampler creates a sampler for the given render seed
func NewStreamSampler(seed uint64) *StreamSampler {
	source := rand.NewPCG(seed, 0)
	return &StreamSampler{
		seed:   seed,
		source: source,
		random: rand.New(source),
	}
}

// Reset positions the sampler at the start of the stream for one camera sample
func (s *StreamSampler) Reset(pixelIndex, sampleIndex int) {
	key := uint64(pixelIndex)<<32 | uint64(uint32(sampleIndex))
	s.source.Seed(splitmix64(s.seed^0x9e3779b97f4a7c15), splitmix64(key))
}

// Get1D returns a random float64 in [0, 1)
func (s *StreamSampler) Get1D() float64 {
	return s.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (s *StreamSampler) Get2D() Vec2 {
	return NewVec2(s.random.Float64(), s.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (s *StreamSampler) Get3D() Vec3 {
	return NewVec3(s.random.Float64(), s.random.Float64(), s.random.Float64())
}

// splitmix64 scrambles neighbouring keys into unrelated PCG states
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
