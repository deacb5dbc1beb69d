// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	minPathNodes     = 2
	minCycleNodes    = 2
	minStarNodes     = 2
	minCompleteNodes = 2
	minGridSide      = 1
	minSparseNodes   = 1
)

func tooFew(method string, got, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewNodes)
}

// Path emits the chain 0→1→…→n-1.
func Path(n int) Constructor {
	return func(c *collector) error {
		if n < minPathNodes {
			return tooFew("Path", n, minPathNodes)
		}
		for i := 0; i+1 < n; i++ {
			c.arc(i, i+1)
		}

		return nil
	}
}

// Cycle emits the ring 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(c *collector) error {
		if n < minCycleNodes {
			return tooFew("Cycle", n, minCycleNodes)
		}
		for i := 0; i < n; i++ {
			c.arc(i, (i+1)%n)
		}

		return nil
	}
}

// Star emits hub 0 with spokes 0→i for i in 1..n-1.
func Star(n int) Constructor {
	return func(c *collector) error {
		if n < minStarNodes {
			return tooFew("Star", n, minStarNodes)
		}
		for i := 1; i < n; i++ {
			c.arc(0, i)
		}

		return nil
	}
}

// Complete emits every ordered pair i→j, i != j (plus loops under WithSelfLoops).
func Complete(n int) Constructor {
	return func(c *collector) error {
		if n < minCompleteNodes {
			return tooFew("Complete", n, minCompleteNodes)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				c.arc(i, j)
			}
		}

		return nil
	}
}

// Grid emits a rows×cols lattice with node r*cols+c and arcs pointing right
// and down. Add WithBidirectional for a fully traversable grid.
func Grid(rows, cols int) Constructor {
	return func(c *collector) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("Grid: rows=%d cols=%d < min=%d: %w", rows, cols, minGridSide, ErrTooFewNodes)
		}
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				id := r*cols + col
				if col+1 < cols {
					c.arc(id, id+1)
				}
				if r+1 < rows {
					c.arc(id, id+cols)
				}
			}
		}

		return nil
	}
}

// RandomSparse visits ordered pairs (i, j) in row-major order and emits i→j
// with probability p. p of 0 or 1 needs no RNG; anything between does.
func RandomSparse(n int, p float64) Constructor {
	return func(c *collector) error {
		if n < minSparseNodes {
			return tooFew("RandomSparse", n, minSparseNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		rng := c.cfg.rng
		if rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		if p == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if p == 1 || rng.Float64() < p {
					c.arc(i, j)
				}
			}
		}

		return nil
	}
}
