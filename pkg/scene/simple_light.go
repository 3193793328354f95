package scene

import (
	"math/rand"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/geometry"
	"github.com/headcrab360/Ray-Tracing/pkg/integrator"
	"github.com/headcrab360/Ray-Tracing/pkg/material"
	"github.com/headcrab360/Ray-Tracing/pkg/renderer"
)

// NewSimpleLight builds marble spheres lit only by a rectangle light and a
// small sphere light, against a black background. With no sky, all
// illumination comes from the emissive surfaces.
func NewSimpleLight(aspectRatio float64, random *rand.Rand) (*Scene, error) {
	noise := material.NewNoise(material.NewPerlin(random), 4)
	marble := material.NewTexturedLambertian(noise)

	// Emission above 1 so the light is bright enough to illuminate its surroundings
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	}

	world, err := BuildWorld(objects, 0, 1, random)
	if err != nil {
		return nil, err
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		Name:       "simple-light",
		Camera:     camera,
		World:      world,
		Background: integrator.NewConstantBackground(core.Vec3{}),
	}, nil
}
