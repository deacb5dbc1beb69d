// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/minpath/core"
)

// Sentinel errors returned by constructors; callers branch with errors.Is.
var (
	// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
	ErrTooFewNodes = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor was passed to BuildEdges.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Constructor appends the edges of one topology to the collector.
type Constructor func(c *collector) error

// collector accumulates edges under a resolved configuration.
type collector struct {
	cfg   builderConfig
	edges []core.Edge
}

// arc emits from→to (and to→from when bidirectional) with fresh costs.
func (c *collector) arc(from, to int) {
	if from == to && !c.cfg.selfLoops {
		return
	}
	c.edges = append(c.edges, core.Edge{
		From: c.cfg.base + from,
		To:   c.cfg.base + to,
		Cost: c.cfg.costFn(c.cfg.rng),
	})
	if c.cfg.bidirectional && from != to {
		c.edges = append(c.edges, core.Edge{
			From: c.cfg.base + to,
			To:   c.cfg.base + from,
			Cost: c.cfg.costFn(c.cfg.rng),
		})
	}
}

type builderConfig struct {
	rng           *rand.Rand // nil unless WithSeed/WithRand
	costFn        CostFn
	base          int
	bidirectional bool
	selfLoops     bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{costFn: DefaultCostFn}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.costFn == nil {
		cfg.costFn = DefaultCostFn
	}

	return cfg
}
