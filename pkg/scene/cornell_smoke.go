package scene

import (
	"math/rand"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/geometry"
	"github.com/headcrab360/Ray-Tracing/pkg/integrator"
	"github.com/headcrab360/Ray-Tracing/pkg/material"
	"github.com/headcrab360/Ray-Tracing/pkg/renderer"
)

// NewCornellSmoke builds the Cornell box with its two boxes replaced by
// constant-density media: one dark smoke, one white fog.
func NewCornellSmoke(aspectRatio float64, random *rand.Rand) (*Scene, error) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	smokeBox := geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white)
	fogBox := geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white)

	objects := []geometry.Hittable{
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		geometry.NewXZRect(113, 443, 127, 432, 554, light),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
		geometry.NewConstantMedium(smokeBox, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(fogBox, 0.01, core.NewVec3(1, 1, 1)),
	}

	world, err := BuildWorld(objects, 0, 1, random)
	if err != nil {
		return nil, err
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: aspectRatio,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		Name:       "cornell-smoke",
		Camera:     camera,
		World:      world,
		Background: integrator.NewConstantBackground(core.Vec3{}),
	}, nil
}
