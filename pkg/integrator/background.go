package integrator

import (
	"github.com/headcrab360/Ray-Tracing/pkg/core"
)

// Background supplies the radiance for rays that escape the scene.
// Escaping into the background is the only way a path terminates with light.
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// ConstantBackground returns the same color for every escaping ray
type ConstantBackground struct {
	Emission core.Vec3
}

// NewConstantBackground creates a uniform background
func NewConstantBackground(emission core.Vec3) *ConstantBackground {
	return &ConstantBackground{Emission: emission}
}

// Color returns the constant background color
func (b *ConstantBackground) Color(ray core.Ray) core.Vec3 {
	return b.Emission
}

// GradientBackground blends between two colors based on ray direction,
// producing the classic sky gradient
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// Color blends bottom to top on the Y of the unit ray direction
func (b *GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
