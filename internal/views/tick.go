package views

import "api-footwear/internal/models"

// MaxTickDelta es el límite exclusivo del incremento periódico de pares
const MaxTickDelta = 2

// TickRand es el subconjunto de la fuente aleatoria que usa el tick
type TickRand interface {
	IntN(n int) int
}

// RandomTickDelta sortea un incremento en [0, 2)
func RandomTickDelta(r TickRand) int {
	return r.IntN(MaxTickDelta)
}

// Tick retorna una copia de los KPIs con TotalPairs incrementado en delta.
// Un delta negativo se trata como 0 para que TotalPairs nunca disminuya.
func Tick(current models.KPIMetrics, delta int) models.KPIMetrics {
	if delta < 0 {
		delta = 0
	}
	next := current
	next.TotalPairs += delta
	return next
}
