package material

import (
	"math"
	"testing"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
)

func TestDielectric_AlwaysScattersWithoutAbsorption(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := upwardHit()
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0.3, -1, 0.1).Normalize(), 0)
	sampler := seededSampler(42)

	for i := 0; i < 100; i++ {
		result, scatters := glass.Scatter(rayIn, hit, sampler)
		if !scatters {
			t.Fatal("Expected dielectric to always scatter")
		}
		if result.Attenuation != core.NewVec3(1, 1, 1) {
			t.Errorf("Expected clear glass attenuation (1,1,1), got %v", result.Attenuation)
		}
	}
}

func TestDielectric_UnitIndexPassesStraightThrough(t *testing.T) {
	vacuum := NewDielectric(1.0)
	hit := upwardHit()
	incoming := core.NewVec3(0, -1, 0)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), incoming, 0)

	// At normal incidence the Schlick term is zero, so this always refracts
	result, scatters := vacuum.Scatter(rayIn, hit, fixedSampler{value1D: 0.5})
	if !scatters {
		t.Fatal("Expected scatter")
	}
	if !vecsNearlyEqual(result.Scattered.Direction, incoming, 1e-9) {
		t.Errorf("Expected unchanged direction %v through index 1, got %v", incoming, result.Scattered.Direction)
	}
}

func TestDielectric_RefractionBendsTowardNormal(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := upwardHit()

	// 45 degree incidence entering the denser medium
	incoming := core.NewVec3(1, -1, 0).Normalize()
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), incoming, 0)

	// Force refraction by making the Fresnel test fail
	result, _ := glass.Scatter(rayIn, hit, fixedSampler{value1D: 1.0})

	direction := result.Scattered.Direction.Normalize()
	// Snell: sin(theta_t) = sin(45°)/1.5
	expectedSin := math.Sin(math.Pi/4) / 1.5
	actualSin := math.Abs(direction.X)
	if math.Abs(actualSin-expectedSin) > 1e-9 {
		t.Errorf("Expected sin of refraction angle %f, got %f", expectedSin, actualSin)
	}
	if direction.Y >= 0 {
		t.Errorf("Expected transmitted ray to continue downward, got %v", direction)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Exiting the glass at a grazing angle beyond the critical angle
	hit := upwardHit()
	hit.FrontFace = false

	incoming := core.NewVec3(0.8, -0.6, 0)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), incoming, 0)

	// Even a sample that would choose refraction must reflect here
	result, scatters := glass.Scatter(rayIn, hit, fixedSampler{value1D: 1.0})
	if !scatters {
		t.Fatal("Expected total internal reflection to scatter, not absorb")
	}

	expected := core.NewVec3(0.8, 0.6, 0)
	if !vecsNearlyEqual(result.Scattered.Direction, expected, 1e-9) {
		t.Errorf("Expected mirror reflection %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestReflectance_Schlick(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"normal incidence on glass", 1.0, 1.0 / 1.5, 0.04},
		{"grazing incidence", 0.0, 1.0 / 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}
