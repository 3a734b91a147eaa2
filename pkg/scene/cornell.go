package scene

import (
	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/geometry"
	"github.com/neudoerf/raytracing/pkg/integrator"
	"github.com/neudoerf/raytracing/pkg/material"
	"github.com/neudoerf/raytracing/pkg/renderer"
)

var (
	cornellRed   = core.NewVec3(0.65, 0.05, 0.05)
	cornellWhite = core.NewVec3(0.73, 0.73, 0.73)
	cornellGreen = core.NewVec3(0.12, 0.45, 0.15)
)

// cornellWalls builds the five walls of the 555 unit box plus a ceiling light
func cornellWalls(light geometry.Hittable) *geometry.HittableList {
	red := material.NewLambertian(cornellRed)
	white := material.NewLambertian(cornellWhite)
	green := material.NewLambertian(cornellGreen)

	return geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		light,
		// floor, ceiling and back
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
	)
}

// cornellBoxes returns the tall and short boxes, rotated and placed in the room
func cornellBoxes(mat material.Material) (tall, short geometry.Hittable) {
	var box geometry.Hittable = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	box = geometry.NewRotateY(box, 15)
	tall = geometry.NewTranslate(box, core.NewVec3(265, 0, 295))

	box = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	box = geometry.NewRotateY(box, -18)
	short = geometry.NewTranslate(box, core.NewVec3(130, 0, 65))
	return tall, short
}

func cornellScene(world geometry.Hittable) *Scene {
	return &Scene{
		World:      world,
		Camera:     cornellCamera(),
		Sampling:   renderer.SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50},
		Background: integrator.NewSolidBackground(core.NewVec3(0, 0, 0)),
	}
}

// NewCornellBoxScene creates the classic Cornell box with two white boxes
func NewCornellBoxScene(options Options) *Scene {
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	world := cornellWalls(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))

	tall, short := cornellBoxes(material.NewLambertian(cornellWhite))
	world.Add(tall)
	world.Add(short)
	return cornellScene(world)
}

// NewCornellSmokeScene replaces the boxes with a block of dark smoke and one of
// white fog, lit by a larger, dimmer light
func NewCornellSmokeScene(options Options) *Scene {
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world := cornellWalls(geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light))

	tall, short := cornellBoxes(material.NewLambertian(cornellWhite))
	world.Add(geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)))
	return cornellScene(world)
}
