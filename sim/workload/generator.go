package workload

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Generator produces a deterministic address stream from a validated
// TraceSpec. The same spec and RNG seed always yield the identical stream.
// Every emitted address lies in [0, 2^AddressBits).
type Generator struct {
	spec    TraceSpec
	rng     *rand.Rand
	mask    uint64
	cursors []uint64
	cum     []float64 // cumulative pattern weights
	total   float64
}

// NewGenerator validates the spec and binds it to an RNG, typically
// sim.NewWorkloadRNG(spec.Seed).
func NewGenerator(spec TraceSpec, rng *rand.Rand) (*Generator, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trace spec: %w", err)
	}
	g := &Generator{
		spec:    spec,
		rng:     rng,
		mask:    addressMask(spec.AddressBits),
		cursors: make([]uint64, len(spec.Patterns)),
		cum:     make([]float64, len(spec.Patterns)),
	}
	for i, p := range spec.Patterns {
		g.total += p.Weight
		g.cum[i] = g.total
	}
	return g, nil
}

// Next emits the stream's next address.
func (g *Generator) Next() uint64 {
	i := g.choosePattern()
	return g.emit(i) & g.mask
}

// Addresses emits the full stream of spec.Length addresses.
func (g *Generator) Addresses() []uint64 {
	addrs := make([]uint64, g.spec.Length)
	for i := range addrs {
		addrs[i] = g.Next()
	}
	logrus.Debugf("generated %d addresses from %d pattern(s)", len(addrs), len(g.spec.Patterns))
	return addrs
}

// choosePattern picks a pattern index proportionally to weight. A single
// pattern is returned directly so purely deterministic specs consume no
// randomness at all.
func (g *Generator) choosePattern() int {
	if len(g.cum) == 1 {
		return 0
	}
	x := g.rng.Float64() * g.total
	for i, c := range g.cum {
		if x < c {
			return i
		}
	}
	return len(g.cum) - 1
}

func (g *Generator) emit(i int) uint64 {
	p := g.spec.Patterns[i]
	cursor := g.cursors[i]
	g.cursors[i] = cursor + 1

	switch p.Kind {
	case KindSequential:
		return p.Start + cursor
	case KindStrided:
		return p.Start + cursor*p.Stride
	case KindLoop:
		return p.Start + cursor%p.Span
	case KindUniform:
		return p.Start + uint64(g.rng.Int63n(int64(p.Span)))
	case KindHotspot:
		hot := uint64(float64(p.Span) * p.HotFraction)
		if hot == 0 {
			hot = 1
		}
		if hot >= p.Span || g.rng.Float64() < p.HotRatio {
			return p.Start + uint64(g.rng.Int63n(int64(hot)))
		}
		cold := p.Span - hot
		return p.Start + hot + uint64(g.rng.Int63n(int64(cold)))
	default:
		// Unreachable: kinds are validated in NewGenerator.
		return p.Start
	}
}

// addressMask covers the low n bits, so wrapping an address keeps it inside
// the 2^n address space.
func addressMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}
