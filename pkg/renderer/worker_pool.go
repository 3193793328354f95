package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
)

// runRowPool renders every row of the framebuffer across a pool of workers
// and returns the number of workers used. Each row task carries a sampler
// seeded from the base seed plus the row index, which keeps the image
// deterministic no matter how the rows are scheduled.
func runRowPool(rt *Raytracer, framebuffer []core.Vec3) int {
	workers := rt.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rows := make(chan int, rt.config.Height)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				random := rand.New(rand.NewSource(rt.config.Seed + int64(j)))
				sampler := core.NewRandomSampler(random)
				rt.renderRow(j, framebuffer, sampler)
			}
		}()
	}

	for j := 0; j < rt.config.Height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	return workers
}
