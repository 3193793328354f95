package geometry

import (
	"math"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/material"
)

// ConstantMedium is a volume of constant density bounded by another hittable.
// A ray passing through may scatter at an exponentially distributed distance;
// the denser the volume, the more likely it scatters.
//
// The boundary must be convex: once a ray exits, it is assumed never to
// re-enter, so shapes with voids (e.g. a torus) silently produce wrong results.
type ConstantMedium struct {
	Boundary      Hittable
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium with an isotropic phase function of the given color
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}
}

// NewTexturedConstantMedium creates a medium with a textured isotropic phase function
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}
}

// Hit finds the ray's entry and exit through the boundary, draws an exponential
// free-path distance, and reports a hit only if that distance falls inside the
// boundary span. The reported normal is arbitrary: the isotropic phase function
// never reads it.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	infinity := math.Inf(1)

	entry, ok := m.Boundary.Hit(ray, -infinity, infinity, sampler)
	if !ok {
		return nil, false
	}

	// Restart just past the entry surface to find the exit
	exit, ok := m.Boundary.Hit(ray, entry.T+0.0001, infinity, sampler)
	if !ok {
		return nil, false
	}

	tEnter := math.Max(entry.T, tMin)
	tExit := math.Min(exit.T, tMax)
	if tEnter >= tExit {
		return nil, false
	}
	if tEnter < 0 {
		tEnter = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (tExit - tEnter) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInsideBoundary {
		// The ray passes through without scattering
		return nil, false
	}

	t := tEnter + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox delegates to the boundary
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
