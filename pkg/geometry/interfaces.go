package geometry

import (
	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/material"
)

// Hittable is anything a ray can intersect that can also bound its extent over
// a time interval. The sampler rides along on Hit because participating media
// draw their scattering distance during intersection; solid geometry ignores it.
type Hittable interface {
	// Hit returns the closest intersection with ray parameter in (tMin, tMax),
	// or false if there is none.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over [time0, time1].
	// Objects with unbounded extent return false.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
