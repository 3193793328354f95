package material

import (
	"math"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
)

// SolidColor provides a uniform color regardless of location
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in a 3D checkerboard pattern.
// The sign of the product of sines in all three dimensions flips between cells.
type Checker struct {
	Even Texture
	Odd  Texture
}

// NewChecker creates a checker texture from two sub-textures
func NewChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker texture from two solid colors
func NewCheckerColors(c1, c2 core.Vec3) *Checker {
	return &Checker{Even: NewSolidColor(c1), Odd: NewSolidColor(c2)}
}

// Value returns the even or odd texture's color depending on the 3D cell
func (c *Checker) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(uv, point)
	}
	return c.Even.Value(uv, point)
}

// Noise produces a marble-like gray pattern from Perlin turbulence.
// The turbulence shifts the phase of a sine along Z, which makes the stripes undulate.
type Noise struct {
	Perlin *Perlin
	Scale  float64
}

// NewNoise creates a noise texture with the given frequency scale
func NewNoise(perlin *Perlin, scale float64) *Noise {
	return &Noise{Perlin: perlin, Scale: scale}
}

// Value returns the marble pattern color at the given point
func (n *Noise) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*n.Perlin.Turbulence(point, 7)
	return core.NewVec3(1, 1, 1).Multiply(0.5 * (1 + math.Sin(phase)))
}
