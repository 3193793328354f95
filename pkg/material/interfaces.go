package material

import (
	"github.com/headcrab360/Ray-Tracing/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter decides whether the incoming ray continues after the hit.
	// Returning false means the ray was absorbed and the path terminates.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(rayIn core.Ray, hit HitRecord) core.Vec3
}

// Texture provides a color for a surface location, decoupled from geometry.
// UV is used for image textures, the 3D point for procedural textures.
type Texture interface {
	Value(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Per-channel color multiplier for light along the scattered ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, oriented against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface coordinates at the intersection
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
