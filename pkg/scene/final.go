package scene

import (
	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/geometry"
	"github.com/neudoerf/raytracing/pkg/integrator"
	"github.com/neudoerf/raytracing/pkg/loaders"
	"github.com/neudoerf/raytracing/pkg/material"
	"github.com/neudoerf/raytracing/pkg/renderer"
)

// NewFinalScene builds the closing scene of the book at preview quality
func NewFinalScene(options Options) *Scene {
	return finalScene(options, 400, renderer.SamplingConfig{SamplesPerPixel: 250, MaxDepth: 4})
}

// NewFinalHQScene builds the closing scene at full resolution and sample count
func NewFinalHQScene(options Options) *Scene {
	return finalScene(options, 800, renderer.SamplingConfig{SamplesPerPixel: 10000, MaxDepth: 40})
}

func finalScene(options Options, width int, sampling renderer.SamplingConfig) *Scene {
	random := options.random()

	// Field of green boxes with random heights
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := geometry.NewHittableList()
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			boxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}

	world := geometry.NewHittableList()
	world.Add(geometry.NewBVHFromList(boxes, random))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Blue subsurface sphere: glass shell filled with a dense medium
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMediumColor(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMediumColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earth := loaders.LoadImageTexture("earthmap.jpg", options.ImageDir)
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)))

	noise := material.NewNoiseTexture(0.1, random)
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(noise)))

	// Cube of small white spheres
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := geometry.NewHittableList()
	for i := 0; i < 1000; i++ {
		cluster.Add(geometry.NewSphere(randomColor(random, 0, 165), 10, white))
	}
	var foam geometry.Hittable = geometry.NewBVHFromList(cluster, random)
	foam = geometry.NewRotateY(foam, 15)
	world.Add(geometry.NewTranslate(foam, core.NewVec3(-100, 270, 395)))

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			Width:         width,
			AspectRatio:   1.0,
			VFov:          40,
			LookFrom:      core.NewVec3(478, 278, -600),
			LookAt:        core.NewVec3(278, 278, 0),
			Up:            core.NewVec3(0, 1, 0),
			DefocusAngle:  0,
			FocusDistance: 10.0,
		},
		Sampling:   sampling,
		Background: integrator.NewSolidBackground(core.NewVec3(0, 0, 0)),
	}
}
