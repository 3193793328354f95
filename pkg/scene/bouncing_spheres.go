package scene

import (
	"math/rand"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/geometry"
	"github.com/headcrab360/Ray-Tracing/pkg/integrator"
	"github.com/headcrab360/Ray-Tracing/pkg/material"
	"github.com/headcrab360/Ray-Tracing/pkg/renderer"
)

// NewBouncingSpheres builds the motion-blur showcase: a checker ground, a grid
// of randomized small spheres (some bouncing during the shutter interval) and
// three large feature spheres, under a sky gradient.
func NewBouncingSpheres(aspectRatio float64, random *rand.Rand) (*Scene, error) {
	var objects []geometry.Hittable

	ground := material.NewTexturedLambertian(material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse spheres bounce upward during the shutter interval
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				objects = append(objects, geometry.NewMovingSphere(
					center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				)
				fuzz := 0.5 * random.Float64()
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

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
		Aperture:    0.1,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		Name:       "bouncing-spheres",
		Camera:     camera,
		World:      world,
		Background: skyGradient(),
	}, nil
}

// skyGradient is the default blue-to-white sky
func skyGradient() integrator.Background {
	return integrator.NewGradientBackground(
		core.NewVec3(0.5, 0.7, 1.0),
		core.NewVec3(1.0, 1.0, 1.0),
	)
}
