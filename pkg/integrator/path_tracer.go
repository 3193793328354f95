package integrator

import (
	"math"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/geometry"
	"github.com/headcrab360/Ray-Tracing/pkg/material"
)

// Small positive lower bound on the hit interval, which suppresses
// self-intersection ("shadow acne") at the origin of freshly spawned rays.
const shadowEpsilon = 0.001

// PathTracer estimates incident radiance along a ray by recursively following
// material scattering until the ray escapes, is absorbed, or the depth budget
// runs out.
type PathTracer struct {
	Background Background
}

// NewPathTracer creates a path tracer with the given background
func NewPathTracer(background Background) *PathTracer {
	return &PathTracer{Background: background}
}

// RayColor computes the color for a single ray.
// The result is emitted light at the hit plus attenuated light arriving along
// the scattered path. Depth bounds the recursion: it is the variance/bias
// trade-off knob, not a physical termination.
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	// Exceeded the bounce limit: no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, shadowEpsilon, math.Inf(1), sampler)
	if !isHit {
		return pt.Background.Color(ray)
	}

	emitted := emittedLight(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// The material absorbed the ray; only its emission contributes
		return emitted
	}

	scattered := pt.RayColor(scatter.Scattered, world, sampler, depth-1)
	return emitted.Add(scatter.Attenuation.MultiplyVec(scattered))
}

// emittedLight returns the emitted light from a material if it is emissive
func emittedLight(ray core.Ray, hit *material.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emit(ray, *hit)
	}
	return core.Vec3{}
}
