package scene

import (
	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/geometry"
	"github.com/neudoerf/raytracing/pkg/integrator"
	"github.com/neudoerf/raytracing/pkg/material"
)

// NewQuadsScene surrounds the camera with five colored quads
func NewQuadsScene(options Options) *Scene {
	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	camera := outdoorCamera()
	camera.AspectRatio = 1.0
	camera.VFov = 80
	camera.LookFrom = core.NewVec3(0, 0, 9)
	camera.LookAt = core.NewVec3(0, 0, 0)
	camera.DefocusAngle = 0

	return &Scene{
		World:      world,
		Camera:     camera,
		Sampling:   outdoorSampling,
		Background: integrator.NewSolidBackground(skyColor),
	}
}

// NewSimpleLightScene lights the Perlin spheres with a quad emitter against black
func NewSimpleLightScene(options Options) *Scene {
	world := perlinSpheres(options)
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	world.Add(geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light))

	camera := outdoorCamera()
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)
	camera.DefocusAngle = 0

	return &Scene{
		World:      world,
		Camera:     camera,
		Sampling:   outdoorSampling,
		Background: integrator.NewSolidBackground(core.NewVec3(0, 0, 0)),
	}
}
