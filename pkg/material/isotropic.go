package material

import (
	"github.com/headcrab360/Ray-Tracing/pkg/core"
)

// Isotropic scatters rays uniformly in all directions. It serves as the phase
// function for constant-density media, where the hit normal carries no meaning.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements the Material interface for isotropic scattering
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scattered := core.NewRay(hit.Point, core.SamplePointInUnitSphere(sampler.Get3D()), rayIn.Time)
	attenuation := i.Albedo.Value(hit.UV, hit.Point)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
	}, true
}
