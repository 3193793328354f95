package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/geometry"
	"github.com/headcrab360/Ray-Tracing/pkg/integrator"
)

// SamplingConfig contains per-render sampling settings
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Workers         int   // Worker goroutines; <= 0 selects NumCPU
	Seed            int64 // Base seed for the per-row random streams
}

// Raytracer renders a fixed, immutable scene. The world, camera and background
// are never mutated during rendering, so any number of workers can traverse
// them concurrently without locking.
type Raytracer struct {
	camera *Camera
	world  geometry.Hittable
	tracer *integrator.PathTracer
	config SamplingConfig
}

// NewRaytracer creates a raytracer over an immutable scene
func NewRaytracer(camera *Camera, world geometry.Hittable, background integrator.Background, config SamplingConfig) *Raytracer {
	return &Raytracer{
		camera: camera,
		world:  world,
		tracer: integrator.NewPathTracer(background),
		config: config,
	}
}

// RenderPixel averages SamplesPerPixel radiance estimates for one pixel and
// returns the linear, gamma-uncorrected color. Pixel (0,0) is the top-left of
// the image.
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	accum := core.Vec3{}

	for s := 0; s < rt.config.SamplesPerPixel; s++ {
		// Jitter within the pixel for anti-aliasing
		u := (float64(i) + sampler.Get1D()) / float64(rt.config.Width-1)
		v := (float64(rt.config.Height-1-j) + sampler.Get1D()) / float64(rt.config.Height-1)

		ray := rt.camera.GetRay(u, v, sampler)
		accum = accum.Add(rt.tracer.RayColor(ray, rt.world, sampler, rt.config.MaxDepth))
	}

	return accum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
}

// renderRow renders one row of the framebuffer. Rows are disjoint, so
// concurrent workers write without synchronization.
func (rt *Raytracer) renderRow(j int, framebuffer []core.Vec3, sampler core.Sampler) {
	for i := 0; i < rt.config.Width; i++ {
		framebuffer[j*rt.config.Width+i] = rt.RenderPixel(i, j, sampler)
	}
}

// Render produces the full image using a row-based worker pool.
// Each row gets its own random stream seeded from the base seed and the row
// index, so the output is reproducible for a fixed seed regardless of worker
// count or scheduling.
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	start := time.Now()

	framebuffer := make([]core.Vec3, rt.config.Width*rt.config.Height)
	workers := runRowPool(rt, framebuffer)

	stats := RenderStats{
		Width:           rt.config.Width,
		Height:          rt.config.Height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		TotalSamples:    rt.config.Width * rt.config.Height * rt.config.SamplesPerPixel,
		Workers:         workers,
		Duration:        time.Since(start),
	}

	return framebufferToImage(framebuffer, rt.config.Width, rt.config.Height), stats
}

// framebufferToImage converts linear colors to a gamma-2 corrected 8-bit image
func framebufferToImage(framebuffer []core.Vec3, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			c := framebuffer[j*width+i].Clamp(0, 1).GammaCorrect(2.0)
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(255.999 * c.X),
				G: uint8(255.999 * c.Y),
				B: uint8(255.999 * c.Z),
				A: 255,
			})
		}
	}

	return img
}
