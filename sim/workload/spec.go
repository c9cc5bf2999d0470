// Package workload synthesizes deterministic address streams for driving
// the cache engine without a hand-written trace file.
package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pattern kinds accepted in a TraceSpec.
const (
	// KindSequential walks upward from start, one address per access.
	KindSequential = "sequential"
	// KindStrided walks upward from start in stride-sized steps.
	KindStrided = "strided"
	// KindLoop cycles through [start, start+span) repeatedly.
	KindLoop = "loop"
	// KindUniform draws uniformly from [start, start+span).
	KindUniform = "uniform"
	// KindHotspot draws mostly from a small hot region at the front of
	// [start, start+span), occasionally from the cold remainder.
	KindHotspot = "hotspot"
)

var validKinds = map[string]bool{
	KindSequential: true,
	KindStrided:    true,
	KindLoop:       true,
	KindUniform:    true,
	KindHotspot:    true,
}

// TraceSpec is the top-level address-stream configuration.
// Loaded from YAML via LoadTraceSpec(path).
type TraceSpec struct {
	Seed        int64         `yaml:"seed"`
	Length      int           `yaml:"length"`
	AddressBits int           `yaml:"address_bits"`
	Patterns    []PatternSpec `yaml:"patterns"`
}

// PatternSpec defines one access pattern. When a spec lists several
// patterns, each access picks one with probability proportional to Weight.
type PatternSpec struct {
	Kind   string  `yaml:"kind"`
	Weight float64 `yaml:"weight,omitempty"` // default 1
	Start  uint64  `yaml:"start,omitempty"`
	Stride uint64  `yaml:"stride,omitempty"` // strided only, default 1
	// Span bounds the pattern's address range. Required for loop, uniform,
	// and hotspot; sequential and strided wrap at the address-space edge.
	Span        uint64  `yaml:"span,omitempty"`
	HotFraction float64 `yaml:"hot_fraction,omitempty"` // hotspot only, default 0.1
	HotRatio    float64 `yaml:"hot_ratio,omitempty"`    // hotspot only, default 0.9
}

// LoadTraceSpec reads and parses a YAML trace specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadTraceSpec(path string) (*TraceSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trace spec: %w", err)
	}
	var spec TraceSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing trace spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the spec and fills in pattern defaults in place.
func (s *TraceSpec) Validate() error {
	if s.Length <= 0 {
		return fmt.Errorf("trace length must be positive, got %d", s.Length)
	}
	if s.AddressBits < 1 || s.AddressBits > 64 {
		return fmt.Errorf("address_bits must be in [1, 64], got %d", s.AddressBits)
	}
	if len(s.Patterns) == 0 {
		return fmt.Errorf("trace spec needs at least one pattern")
	}
	for i := range s.Patterns {
		if err := s.Patterns[i].validate(); err != nil {
			return fmt.Errorf("pattern %d: %w", i, err)
		}
	}
	return nil
}

func (p *PatternSpec) validate() error {
	if !validKinds[p.Kind] {
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	if p.Weight < 0 {
		return fmt.Errorf("weight must be non-negative, got %f", p.Weight)
	}
	if p.Weight == 0 {
		p.Weight = 1
	}
	if p.Kind == KindStrided && p.Stride == 0 {
		p.Stride = 1
	}
	switch p.Kind {
	case KindLoop, KindUniform, KindHotspot:
		if p.Span == 0 {
			return fmt.Errorf("%s pattern requires a positive span", p.Kind)
		}
		if p.Span > 1<<62 {
			return fmt.Errorf("span too large: %d", p.Span)
		}
	}
	if p.Kind == KindHotspot {
		if p.HotFraction < 0 || p.HotFraction > 1 {
			return fmt.Errorf("hot_fraction must be in [0, 1], got %f", p.HotFraction)
		}
		if p.HotRatio < 0 || p.HotRatio > 1 {
			return fmt.Errorf("hot_ratio must be in [0, 1], got %f", p.HotRatio)
		}
		if p.HotFraction == 0 {
			p.HotFraction = 0.1
		}
		if p.HotRatio == 0 {
			p.HotRatio = 0.9
		}
	}
	return nil
}
