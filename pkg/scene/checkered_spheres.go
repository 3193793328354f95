package scene

import (
	"math/rand"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/geometry"
	"github.com/headcrab360/Ray-Tracing/pkg/material"
	"github.com/headcrab360/Ray-Tracing/pkg/renderer"
)

// NewCheckeredSpheres builds two large checker-textured spheres facing each other
func NewCheckeredSpheres(aspectRatio float64, random *rand.Rand) (*Scene, error) {
	checker := material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	)

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewTexturedLambertian(checker)),
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
		Name:       "checkered-spheres",
		Camera:     camera,
		World:      world,
		Background: skyGradient(),
	}, nil
}
