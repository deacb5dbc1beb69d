// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/minpath/core"
)

// BuildEdges resolves bopts once and runs every constructor in order,
// returning the concatenated edges. Any constructor error is wrapped with
// "BuildEdges: %w" and returned immediately.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) ([]core.Edge, error) {
	c := &collector{cfg: newBuilderConfig(bopts...)}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(c); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return c.edges, nil
}

// BuildGraph is BuildEdges followed by core.FromEdges.
// Returns core.ErrEmptyEdgeList when the constructors emitted nothing.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	edges, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return core.FromEdges(edges)
}
