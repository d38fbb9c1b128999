package matrix

import "math/rand/v2"

// DefaultSeed seeds Generate when no seed is configured.
const DefaultSeed uint64 = 0x1234

// Generate builds a rows x cols matrix of non-negative pseudo-random values.
// The same seed always yields the same matrix.
func Generate(rows, cols int, seed uint64) (*Matrix, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return Build(rows, cols, func(int, int) int32 {
		return rng.Int32()
	})
}
