// Package normal draws standard normal variates with the Marsaglia polar
// method.
package normal

import (
	"math"

	"github.com/fernandosanchezjr/gosampling/floating"
	"github.com/fernandosanchezjr/gosampling/source"
)

// NextPair returns two independent standard normal values. Points are drawn
// in the square (-1, 1)² and kept only when strictly inside the unit disk
// and away from the origin.
func NextPair[T floating.Real](src source.Source) (T, T) {
	for {
		u1 := 2*floating.Next[T](src, floating.None) - 1
		u2 := 2*floating.Next[T](src, floating.None) - 1
		s := float64(u1*u1 + u2*u2)
		if s >= 1 || s == 0 {
			continue
		}
		m := T(math.Sqrt(-2 * math.Log(s) / s))
		return u1 * m, u2 * m
	}
}

// Generator hands out one value of each pair immediately and keeps the
// other as a standby for the next call. It borrows src and must not outlive
// it.
type Generator[T floating.Real] struct {
	src     source.Source
	standby T
	holding bool
}

func New[T floating.Real](src source.Source) *Generator[T] {
	return &Generator[T]{src: src}
}

func (g *Generator[T]) Next() T {
	if g.holding {
		g.holding = false
		return g.standby
	}
	first, second := NextPair[T](g.src)
	g.standby = second
	g.holding = true
	return first
}

// NextScaled returns mean + stddev*z for the next standard value z.
func (g *Generator[T]) NextScaled(mean, stddev T) T {
	return mean + stddev*g.Next()
}

func (g *Generator[T]) HasStandby() bool {
	return g.holding
}

// Reset discards the standby so the next call draws a fresh pair.
func (g *Generator[T]) Reset() {
	g.standby = 0
	g.holding = false
}
