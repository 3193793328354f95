package material

import (
	"math"
	"math/rand"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
)

const perlinPointCount = 256

// Perlin holds precomputed gradient and permutation tables for lattice noise.
// The tables are built once from an explicit random source and are read-only
// afterwards, so a single Perlin can be shared across workers.
type Perlin struct {
	ranVec []core.Vec3
	permX  []int
	permY  []int
	permZ  []int
}

// NewPerlin builds the noise tables from the given random generator
func NewPerlin(random *rand.Rand) *Perlin {
	ranVec := make([]core.Vec3, perlinPointCount)
	for i := range ranVec {
		v := core.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		ranVec[i] = v.Normalize()
	}

	return &Perlin{
		ranVec: ranVec,
		permX:  generatePerm(random),
		permY:  generatePerm(random),
		permZ:  generatePerm(random),
	}
}

// generatePerm creates a shuffled permutation of [0, perlinPointCount)
func generatePerm(random *rand.Rand) []int {
	perm := make([]int, perlinPointCount)
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

// Noise returns the gradient noise value at a point, in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranVec[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// Turbulence returns the sum of repeatedly scaled noise octaves
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	temp := point

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}

// perlinInterp performs trilinear interpolation of the gradient dot products
// with Hermite cubic smoothing
func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weightV := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weightV)
			}
		}
	}
	return accum
}
