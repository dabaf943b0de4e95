package generator

import "math/rand/v2"

// Rand es la fuente de aleatoriedad que consumen los generadores.
// *rand.Rand de math/rand/v2 la satisface.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand crea una fuente PCG. Con seed != nil la secuencia es reproducible.
func NewRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
