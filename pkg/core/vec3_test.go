package core

import (
	"math"
	"testing"
)

func vecsClose(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Expected sum (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Expected difference (3,3,3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Expected scaled (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("Expected component product (4,10,18), got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Expected dot 32, got %f", got)
	}
	if got := a.Cross(b); got != NewVec3(-3, 6, -3) {
		t.Errorf("Expected cross (-3,6,-3), got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	unit := v.Normalize()

	if math.Abs(unit.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}
	if !vecsClose(unit, NewVec3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Expected (0.6,0,0.8), got %v", unit)
	}

	// Zero vector must not produce NaNs
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, expected := range []float64{1, 2, 3} {
		if got := v.Axis(axis); got != expected {
			t.Errorf("Axis(%d): expected %f, got %f", axis, expected, got)
		}
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("Expected non-tiny vector to not be near zero")
	}
}

func TestVec3_Reflect(t *testing.T) {
	// 45 degree incidence on a floor
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)

	reflected := v.Reflect(n)
	if !vecsClose(reflected, NewVec3(1, 1, 0), 1e-12) {
		t.Errorf("Expected reflection (1,1,0), got %v", reflected)
	}
}

func TestVec3_Refract_IdentityRatio(t *testing.T) {
	// A refraction ratio of 1 must leave the direction unchanged
	tests := []struct {
		name      string
		direction Vec3
	}{
		{"head on", NewVec3(0, 0, -1)},
		{"45 degrees", NewVec3(1, 0, -1).Normalize()},
		{"grazing", NewVec3(10, 0, -1).Normalize()},
	}

	n := NewVec3(0, 0, 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refracted := tt.direction.Refract(n, 1.0)
			if !vecsClose(refracted, tt.direction, 1e-9) {
				t.Errorf("Expected direction unchanged %v, got %v", tt.direction, refracted)
			}
		})
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	clamped := v.Clamp(0, 1)
	if clamped != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected (0,0.5,1), got %v", clamped)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 1, 0), 0.5)

	if got := ray.At(0); got != NewVec3(1, 2, 3) {
		t.Errorf("Expected origin at t=0, got %v", got)
	}
	if got := ray.At(2); got != NewVec3(1, 4, 3) {
		t.Errorf("Expected (1,4,3) at t=2, got %v", got)
	}
	if ray.Time != 0.5 {
		t.Errorf("Expected time 0.5, got %f", ray.Time)
	}
}
