package scene

import (
	"math/rand"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/geometry"
	"github.com/headcrab360/Ray-Tracing/pkg/material"
	"github.com/headcrab360/Ray-Tracing/pkg/renderer"
)

// DefaultEarthTexture is the texture file the registry's earth scene loads
const DefaultEarthTexture = "assets/earthmap.jpg"

// NewEarthWithDefaultTexture builds the earth scene with the default texture path
func NewEarthWithDefaultTexture(aspectRatio float64, random *rand.Rand) (*Scene, error) {
	return NewEarth(DefaultEarthTexture, aspectRatio, random)
}

// NewEarth builds a single image-textured globe. A missing or unreadable
// texture file degrades to the cyan debug texture rather than failing the
// scene, so the render still completes.
func NewEarth(texturePath string, aspectRatio float64, random *rand.Rand) (*Scene, error) {
	// The returned texture is usable even when err != nil (fail-soft)
	earthTexture, _ := material.NewImageTextureFromFile(texturePath)

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earthTexture)),
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
		Name:       "earth",
		Camera:     camera,
		World:      world,
		Background: skyGradient(),
	}, nil
}
