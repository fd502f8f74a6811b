// Package mocking genera datos de prueba realistas (usuarios, mascotas y
// adopciones) a partir de una fuente aleatoria inyectable.
package mocking

import (
	"math"
	"math/rand/v2"
	"time"
)

// Source es la fuente aleatoria que consumen los generadores.
// *rand.Rand (math/rand/v2) la satisface.
type Source interface {
	IntN(n int) int
	Float64() float64
	Perm(n int) []int
}

// NewSource devuelve una fuente determinística para un seed dado.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// NewRandomSource devuelve una fuente con seed no determinístico.
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Pick devuelve un elemento uniforme de set. Entra en pánico si set está vacío.
func Pick[T any](r Source, set []T) T {
	if len(set) == 0 {
		panic("mocking: Pick on empty set")
	}
	return set[r.IntN(len(set))]
}

// PickMany devuelve k elementos distintos de set (permutación + corte).
// Si k supera len(set) se devuelven todos.
func PickMany[T any](r Source, set []T, k int) []T {
	if k > len(set) {
		k = len(set)
	}
	if k <= 0 {
		return []T{}
	}
	out := make([]T, 0, k)
	for _, i := range r.Perm(len(set))[:k] {
		out = append(out, set[i])
	}
	return out
}

// Chance devuelve true con probabilidad p.
func Chance(r Source, p float64) bool {
	return r.Float64() < p
}

// Between devuelve un float uniforme en [lo, hi).
func Between(r Source, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Within devuelve un instante uniforme en (now-window, now].
func Within(r Source, now time.Time, window time.Duration) time.Time {
	return now.Add(-time.Duration(r.Float64() * float64(window)))
}

func round(v float64, decimals int) float64 {
	f := math.Pow(10, float64(decimals))
	return math.Round(v*f) / f
}

// Weighted es una entrada valor -> peso de una Distribution.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// Distribution es una tabla discreta declarada. Los pesos deben ser > 0.
type Distribution[T any] []Weighted[T]

func (d Distribution[T]) total() int {
	n := 0
	for _, w := range d {
		n += w.Weight
	}
	return n
}

// Draw elige un valor con probabilidad proporcional a su peso.
func (d Distribution[T]) Draw(r Source) T {
	total := d.total()
	if total <= 0 {
		panic("mocking: Draw on empty distribution")
	}
	n := r.IntN(total)
	for _, w := range d {
		if n < w.Weight {
			return w.Value
		}
		n -= w.Weight
	}
	return d[len(d)-1].Value
}
