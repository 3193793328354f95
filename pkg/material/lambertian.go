package material

import (
	"github.com/headcrab360/Ray-Tracing/pkg/core"
)

// Lambertian represents a diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with a texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Cosine-weighted diffuse approximation: normal plus a random unit vector
	scatterDirection := hit.Normal.Add(core.SampleOnUnitSphere(sampler.Get2D()))

	// Catch degenerate scatter direction to avoid propagating NaNs
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	scattered := core.NewRay(hit.Point, scatterDirection, rayIn.Time)
	attenuation := l.Albedo.Value(hit.UV, hit.Point)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
	}, true
}
