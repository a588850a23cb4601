// SPDX-License-Identifier: MIT
// Package: evenflow/gen
//
// options.go — functional options resolved into an immutable config.

package gen

import (
	"math/rand"

	"github.com/katalvlaran/evenflow/minrange"
)

// Defaults applied by newConfig.
const (
	DefaultSeed      int64 = 1
	DefaultMinWeight       = minrange.MinWeight
	DefaultMaxWeight       = 100
)

// Option configures a generator call.
type Option func(*config)

type config struct {
	seed   int64
	minW   int
	maxW   int
	rng    *rand.Rand
	weight func() int
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithWeightRange sets the inclusive capacity range [lo, hi].
// An invalid range is reported by the constructor as ErrInvalidWeightRange.
func WithWeightRange(lo, hi int) Option {
	return func(c *config) {
		c.minW, c.maxW = lo, hi
	}
}

// newConfig resolves opts on top of the defaults and validates the weight range.
func newConfig(opts ...Option) (config, error) {
	c := config{
		seed: DefaultSeed,
		minW: DefaultMinWeight,
		maxW: DefaultMaxWeight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.minW < minrange.MinWeight || c.maxW > minrange.MaxWeight || c.minW > c.maxW {
		return c, ErrInvalidWeightRange
	}

	c.rng = rand.New(rand.NewSource(c.seed))
	span := c.maxW - c.minW + 1
	c.weight = func() int {
		return c.minW + c.rng.Intn(span)
	}

	return c, nil
}
