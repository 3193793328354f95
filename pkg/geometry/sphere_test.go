package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/material"
)

func testSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func testMaterial() material.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0), 0)

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0, testSampler(1))
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection, 0)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0, testSampler(1))

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_OriginOnSurface(t *testing.T) {
	// A ray starting exactly on the surface, pointing at the center, must hit
	// at t=0 within floating tolerance, at its own origin
	center := core.NewVec3(3, -2, 5)
	radius := 2.0
	sphere := NewSphere(center, radius, testMaterial())

	origin := center.Add(core.NewVec3(0, radius, 0))
	ray := core.NewRay(origin, center.Subtract(origin).Normalize(), 0)

	hit, isHit := sphere.Hit(ray, -1e-9, 1000.0, testSampler(1))
	if !isHit {
		t.Fatal("Expected hit from surface origin")
	}
	if math.Abs(hit.T) > 1e-9 {
		t.Errorf("Expected t=0, got t=%g", hit.T)
	}
	if hit.Point.Subtract(origin).Length() > 1e-9 {
		t.Errorf("Expected hit point at ray origin %v, got %v", origin, hit.Point)
	}
}

func TestSphere_Hit_NegativeRadius(t *testing.T) {
	// A negative radius models a hollow interior: the outward normal flips,
	// so a ray arriving from outside sees a back-face-style geometric normal
	// before orientation
	sphere := NewSphere(core.NewVec3(0, 0, 0), -1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), 0)

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0, testSampler(1))
	if !isHit {
		t.Fatal("Expected hit on negative-radius sphere")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
	// The geometric normal points inward, so the hit reads as a back face
	if hit.FrontFace {
		t.Error("Expected back face on negative-radius sphere hit from outside")
	}
}

func TestSphere_Hit_ClosestRootFirst(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1), 0)

	// Both roots (t=2 front, t=4 back) are in range; the closer one wins
	hit, isHit := sphere.Hit(ray, 0.001, 1000.0, testSampler(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected nearest root t=2, got t=%f", hit.T)
	}

	// Excluding the near root must fall through to the far root
	hit, isHit = sphere.Hit(ray, 3.0, 1000.0, testSampler(1))
	if !isHit {
		t.Fatal("Expected hit on far root")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected far root t=4, got t=%f", hit.T)
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name      string
		point     core.Vec3
		expectedU float64
		expectedV float64
	}{
		{"positive x", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"negative x", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"north pole", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"south pole", core.NewVec3(0, -1, 0), 0.5, 0.0},
		{"positive z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"negative z", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := SphereUV(tt.point)
			if math.Abs(uv.X-tt.expectedU) > 1e-9 || math.Abs(uv.Y-tt.expectedV) > 1e-9 {
				t.Errorf("Expected UV (%f,%f), got (%f,%f)", tt.expectedU, tt.expectedV, uv.X, uv.Y)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, testMaterial())

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected sphere to have a bounding box")
	}
	if box.Min != core.NewVec3(-1, 0, 1) || box.Max != core.NewVec3(3, 4, 5) {
		t.Errorf("Expected box (-1,0,1)-(3,4,5), got %v-%v", box.Min, box.Max)
	}

	// A negative radius must still produce a valid box
	hollow := NewSphere(core.NewVec3(0, 0, 0), -1.0, testMaterial())
	box, ok = hollow.BoundingBox(0, 1)
	if !ok || !box.IsValid() {
		t.Errorf("Expected valid box for negative radius, got %v-%v", box.Min, box.Max)
	}
}
