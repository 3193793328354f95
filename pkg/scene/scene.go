package scene

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/headcrab360/Ray-Tracing/pkg/geometry"
	"github.com/headcrab360/Ray-Tracing/pkg/integrator"
	"github.com/headcrab360/Ray-Tracing/pkg/renderer"
)

// Scene bundles everything a render needs: a camera, the immutable world root
// and a background. It is built once and never mutated while rendering.
type Scene struct {
	Name       string
	Camera     *renderer.Camera
	World      geometry.Hittable
	Background integrator.Background
}

// BuildWorld produces the immutable root hittable for a set of primitives.
// Boundable objects go into a BVH; unbounded ones (infinite planes) cannot,
// so they join a flat list next to the BVH root.
func BuildWorld(objects []geometry.Hittable, time0, time1 float64, random *rand.Rand) (geometry.Hittable, error) {
	var bounded, unbounded []geometry.Hittable
	for _, object := range objects {
		if _, ok := object.BoundingBox(time0, time1); ok {
			bounded = append(bounded, object)
		} else {
			unbounded = append(unbounded, object)
		}
	}

	if len(bounded) == 0 {
		return geometry.NewHittableList(unbounded...), nil
	}

	bvh, err := geometry.NewBVH(bounded, time0, time1, random)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	if len(unbounded) == 0 {
		return bvh, nil
	}

	root := geometry.NewHittableList(bvh)
	root.Add(unbounded...)
	return root, nil
}

// Builder constructs a named scene for the given aspect ratio
type Builder func(aspectRatio float64, random *rand.Rand) (*Scene, error)

// builders is the registry of available scenes
var builders = map[string]Builder{
	"bouncing-spheres":  NewBouncingSpheres,
	"checkered-spheres": NewCheckeredSpheres,
	"perlin-spheres":    NewPerlinSpheres,
	"earth":             NewEarthWithDefaultTexture,
	"simple-light":      NewSimpleLight,
	"cornell-smoke":     NewCornellSmoke,
}

// Lookup returns the builder registered under the given name
func Lookup(name string) (Builder, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return builder, nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
