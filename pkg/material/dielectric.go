package material

import (
	"math"

	"github.com/neudoerf/raytracing/pkg/core"
)

// Dielectric is a clear refractive material such as glass or water. Each
// scatter picks reflection or refraction with Schlick's probability.
type Dielectric struct {
	RefractiveIndex float64 // Relative to the surrounding medium; 1.5 is glass
}

// NewDielectric creates a dielectric with the given refractive index
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter always succeeds; clear media absorb nothing
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	attenuation := core.NewVec3(1, 1, 1)

	// η_outside / η_inside for the side the ray arrives from
	refractionRatio := d.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Reflectance is Schlick's approximation of the Fresnel reflection probability
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
