package scene

import (
	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/geometry"
	"github.com/neudoerf/raytracing/pkg/integrator"
	"github.com/neudoerf/raytracing/pkg/loaders"
	"github.com/neudoerf/raytracing/pkg/material"
	"github.com/neudoerf/raytracing/pkg/renderer"
)

// outdoorSampling is shared by the sphere scenes
var outdoorSampling = renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}

func outdoorScene(world geometry.Hittable) *Scene {
	return &Scene{
		World:      world,
		Camera:     outdoorCamera(),
		Sampling:   outdoorSampling,
		Background: integrator.NewSolidBackground(skyColor),
	}
}

// NewRandomSpheresScene scatters small diffuse, metal and glass spheres,
// some of them moving, around three large ones on a checkered ground
func NewRandomSpheresScene(options Options) *Scene {
	random := options.random()
	world := geometry.NewHittableList()

	checker := material.NewCheckerTextureColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random, 0, 1).MultiplyVec(randomColor(random, 0, 1))
				center2 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				world.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomColor(random, 0.5, 1)
				fuzz := 0.5 * random.Float64()
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return outdoorScene(geometry.NewBVHFromList(world, random))
}

// NewTwoSpheresScene stacks two large checkered spheres
func NewTwoSpheresScene(options Options) *Scene {
	checker := material.NewCheckerTextureColors(0.8, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewTexturedLambertian(checker)),
	)
	return outdoorScene(world)
}

// NewEarthScene wraps earthmap.jpg around a sphere. A missing image renders cyan.
func NewEarthScene(options Options) *Scene {
	earth := loaders.LoadImageTexture("earthmap.jpg", options.ImageDir)
	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earth))
	return outdoorScene(geometry.NewHittableList(globe))
}

// NewPerlinSpheresScene shows the marble noise texture on the ground and a sphere
func NewPerlinSpheresScene(options Options) *Scene {
	return outdoorScene(perlinSpheres(options))
}

func perlinSpheres(options Options) *geometry.HittableList {
	noise := material.NewNoiseTexture(4, options.random())
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(noise)),
	)
}
