package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
)

func TestNewBVH_Errors(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	t.Run("empty collection", func(t *testing.T) {
		if _, err := NewBVH(nil, 0, 1, random); err == nil {
			t.Error("Expected error building BVH over empty collection")
		}
	})

	t.Run("unbounded primitive", func(t *testing.T) {
		objects := []Hittable{
			NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial()),
			NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), testMaterial()),
		}
		if _, err := NewBVH(objects, 0, 1, random); err == nil {
			t.Error("Expected error building BVH with an unbounded primitive")
		}
	})
}

func TestBVH_SingleObject(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	objects := []Hittable{NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial())}

	bvh, err := NewBVH(objects, 0, 1, random)
	if err != nil {
		t.Fatalf("Expected BVH build to succeed: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	hit, isHit := bvh.Hit(ray, 0.001, 1000, testSampler(1))
	if !isHit {
		t.Fatal("Expected hit through single-object BVH")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
}

func TestBVH_BoundingBoxIsUnion(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	objects := []Hittable{
		NewSphere(core.NewVec3(-5, 0, 0), 1, testMaterial()),
		NewSphere(core.NewVec3(5, 0, 0), 1, testMaterial()),
		NewSphere(core.NewVec3(0, 7, 0), 1, testMaterial()),
	}

	bvh, err := NewBVH(objects, 0, 1, random)
	if err != nil {
		t.Fatalf("Expected BVH build to succeed: %v", err)
	}

	box, ok := bvh.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected BVH to have a bounding box")
	}
	if box.Min != core.NewVec3(-6, -1, -1) || box.Max != core.NewVec3(6, 8, 1) {
		t.Errorf("Expected box (-6,-1,-1)-(6,8,1), got %v-%v", box.Min, box.Max)
	}
}

// TestBVH_AgreesWithList is the core correctness property of the acceleration
// structure: for any scene and ray, the BVH and a plain list must agree on the
// nearest hit.
func TestBVH_AgreesWithList(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	// A cloud of random spheres, some of them moving
	var objects []Hittable
	for i := 0; i < 200; i++ {
		center := core.NewVec3(
			20*random.Float64()-10,
			20*random.Float64()-10,
			20*random.Float64()-10,
		)
		radius := 0.1 + random.Float64()
		if i%5 == 0 {
			offset := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
			objects = append(objects, NewMovingSphere(center, center.Add(offset), 0, 1, radius, testMaterial()))
		} else {
			objects = append(objects, NewSphere(center, radius, testMaterial()))
		}
	}

	bvh, err := NewBVH(objects, 0, 1, random)
	if err != nil {
		t.Fatalf("Expected BVH build to succeed: %v", err)
	}
	list := NewHittableList(objects...)

	for i := 0; i < 500; i++ {
		origin := core.NewVec3(
			30*random.Float64()-15,
			30*random.Float64()-15,
			30*random.Float64()-15,
		)
		direction := core.SampleOnUnitSphere(core.NewVec2(random.Float64(), random.Float64()))
		ray := core.NewRay(origin, direction, random.Float64())

		bvhHit, bvhOK := bvh.Hit(ray, 0.001, 1000, testSampler(1))
		listHit, listOK := list.Hit(ray, 0.001, 1000, testSampler(1))

		if bvhOK != listOK {
			t.Fatalf("Ray %d: BVH hit=%t but list hit=%t", i, bvhOK, listOK)
		}
		if !bvhOK {
			continue
		}
		if math.Abs(bvhHit.T-listHit.T) > 1e-9 {
			t.Fatalf("Ray %d: BVH t=%f but list t=%f", i, bvhHit.T, listHit.T)
		}
		if bvhHit.Point.Subtract(listHit.Point).Length() > 1e-9 {
			t.Fatalf("Ray %d: BVH point %v but list point %v", i, bvhHit.Point, listHit.Point)
		}
		if bvhHit.Material != listHit.Material {
			t.Fatalf("Ray %d: BVH and list disagree on material", i)
		}
	}
}

func TestBVH_NarrowsUpperBound(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	// Two spheres along the ray; only the nearer may be reported
	objects := []Hittable{
		NewSphere(core.NewVec3(0, 0, -10), 1, testMaterial()),
		NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial()),
	}
	bvh, err := NewBVH(objects, 0, 1, random)
	if err != nil {
		t.Fatalf("Expected BVH build to succeed: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	hit, isHit := bvh.Hit(ray, 0.001, 1000, testSampler(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected nearest hit t=4, got t=%f", hit.T)
	}
}
