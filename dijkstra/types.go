// Package dijkstra defines errors, frontier strategies and configuration
// options for the shortest-path search over a core.Graph.
//
// Options:
//
//	– Frontier:         FrontierLinear (default) or FrontierHeap.
//	– MaxDistance:      optional cap on explored distances; arcs leading beyond are skipped.
//	– InfEdgeThreshold: arcs with cost >= this threshold are treated as impassable.
//	– StrictWeights:    pre-scan the graph and fail with ErrNegativeWeight on negative costs.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNodeNotFound    if the start or end identifier does not exist in the graph.
//	– ErrEmptyEdgeList   if a PathFinder is requested for zero edges.
//	– ErrNoPath          if the end node is not reachable from the start node.
//	– ErrNegativeWeight  if StrictWeights is set and a negative cost is present.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrBadFrontier     if a frontier name or mode is not recognised.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/minpath/core"
)

// Inf is the cost of a node that has not been reached.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by the path finder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound is core.ErrNodeNotFound, re-exported so callers need not import core.
	ErrNodeNotFound = core.ErrNodeNotFound

	// ErrEmptyEdgeList is core.ErrEmptyEdgeList, re-exported for New.
	ErrEmptyEdgeList = core.ErrEmptyEdgeList

	// ErrNoPath indicates that the end node cannot be reached from the start node.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrNegativeWeight indicates that a negative edge cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every arc as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadFrontier indicates an unknown frontier strategy.
	ErrBadFrontier = errors.New("dijkstra: unknown frontier strategy")
)

// FrontierMode selects how the next node to settle is found.
//
// Both modes select the frontier node with the lowest cost and break ties in
// favour of the node discovered first, so they produce identical paths.
type FrontierMode int

const (
	// FrontierLinear scans the frontier in discovery order: O(V) per selection.
	FrontierLinear FrontierMode = iota

	// FrontierHeap keeps a binary heap keyed by (cost, discovery order) with
	// lazy decrease-key: O(log V) per selection.
	FrontierHeap
)

var frontierNames = [...]string{
	FrontierLinear: "linear",
	FrontierHeap:   "heap",
}

// String returns the lower-case name of the mode.
func (m FrontierMode) String() string {
	if m < 0 || int(m) >= len(frontierNames) {
		return fmt.Sprintf("FrontierMode(%d)", int(m))
	}

	return frontierNames[m]
}

// ParseFrontier maps "linear" or "heap" (case-insensitive) to a FrontierMode.
func ParseFrontier(s string) (FrontierMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range frontierNames {
		if n == name {
			return FrontierMode(m), nil
		}
	}

	return FrontierLinear, fmt.Errorf("%w: %q", ErrBadFrontier, s)
}

// Options configures a single search.
//
// Frontier         – selection strategy (see FrontierMode).
// MaxDistance      – nodes farther than this are never reached. Must be ≥ 0.
//
//	Default is Inf (no cap).
//
// InfEdgeThreshold – arcs with cost ≥ this threshold are skipped. Must be > 0.
//
//	Default is Inf (no arc is impassable).
//
// StrictWeights    – fail fast on negative costs instead of returning undefined results.
type Options struct {
	Frontier         FrontierMode
	MaxDistance      int64
	InfEdgeThreshold int64
	StrictWeights    bool
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithFrontier selects the frontier strategy.
// Panics with ErrBadFrontier for modes other than FrontierLinear and FrontierHeap.
func WithFrontier(mode FrontierMode) Option {
	if mode != FrontierLinear && mode != FrontierHeap {
		panic(ErrBadFrontier.Error())
	}

	return func(o *Options) {
		o.Frontier = mode
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed max are reported unreachable.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		// Invalid configuration is a programming error; surface it at the call site.
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every arc whose cost is ≥ threshold as a wall.
// Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithStrictWeights enables an O(E) pre-scan that rejects negative costs.
func WithStrictWeights() Option {
	return func(o *Options) {
		o.StrictWeights = true
	}
}

// DefaultOptions returns the Options used when no Option is supplied.
//
// Defaults:
//   - Frontier:         FrontierLinear.
//   - MaxDistance:      Inf (explore everything reachable).
//   - InfEdgeThreshold: Inf (no arc is impassable).
//   - StrictWeights:    false.
func DefaultOptions() Options {
	return Options{
		Frontier:         FrontierLinear,
		MaxDistance:      Inf,
		InfEdgeThreshold: Inf,
	}
}
