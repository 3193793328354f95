package scene

import (
	"math/rand"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/geometry"
	"github.com/headcrab360/Ray-Tracing/pkg/material"
	"github.com/headcrab360/Ray-Tracing/pkg/renderer"
)

// NewPerlinSpheres builds a marble-textured sphere resting on a marble ground
func NewPerlinSpheres(aspectRatio float64, random *rand.Rand) (*Scene, error) {
	noise := material.NewNoise(material.NewPerlin(random), 4)
	marble := material.NewTexturedLambertian(noise)

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}

	world, err := BuildWorld(objects, 0, 1, random)
	if err != nil {
		return nil, err
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		Name:       "perlin-spheres",
		Camera:     camera,
		World:      world,
		Background: skyGradient(),
	}, nil
}
