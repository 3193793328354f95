package renderer

import (
	"math"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
)

// CameraConfig describes a camera placement and lens
type CameraConfig struct {
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera looks at
	Up          core.Vec3 // World up vector
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
	Aperture    float64   // Lens diameter; 0 disables depth of field
	FocusDist   float64   // Distance to the plane of perfect focus
	Time0       float64   // Shutter open time
	Time1       float64   // Shutter close time
}

// Camera maps normalized image-plane samples to world-space rays.
// It is derived once from its config and read-only afterwards.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal basis
	lensRadius      float64
	time0, time1    float64
}

// NewCamera derives the viewport and lens from the config
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * config.FocusDist)
	vertical := v.Multiply(viewportHeight * config.FocusDist)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// GetRay generates a ray for normalized screen coordinates (s, t) in [0,1]².
// The origin is jittered within the lens disk for depth of field, and the ray
// is stamped with a uniformly random time within the shutter interval.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.time0 + sampler.Get1D()*(c.time1-c.time0)

	return core.NewRay(origin, direction, time)
}
