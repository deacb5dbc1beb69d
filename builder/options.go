// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption customizes edge generation.
type BuilderOption func(*builderConfig)

// WithSeed freezes every stochastic choice behind rand.NewSource(seed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares an existing source; the caller owns its sequencing.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) { c.rng = r }
}

// WithCostFn sets how each edge cost is drawn. Nil restores DefaultCostFn.
func WithCostFn(fn CostFn) BuilderOption {
	return func(c *builderConfig) { c.costFn = fn }
}

// WithBaseID shifts every generated identifier by base.
func WithBaseID(base int) BuilderOption {
	return func(c *builderConfig) { c.base = base }
}

// WithBidirectional emits the reverse arc of every non-loop edge, each with its own cost.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) { c.bidirectional = true }
}

// WithSelfLoops lets constructors that consider i→i pairs emit them.
func WithSelfLoops() BuilderOption {
	return func(c *builderConfig) { c.selfLoops = true }
}
