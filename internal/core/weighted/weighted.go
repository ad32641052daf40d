// Package weighted provides weighted random selection over candidate slices.
package weighted

import (
	"math/rand/v2"
)

// IntN is the randomness seam; tests inject a deterministic function.
// The default draws from math/rand/v2's shared source.
type IntN func(n int) int

// DefaultIntN draws a uniform int in [0, n)
func DefaultIntN(n int) int { return rand.IntN(n) }

// Pick selects an index with probability proportional to weights[i].
// When every weight is zero the pick is uniform across all indices.
// Negative weights are treated as zero. Returns -1 for an empty slice.
func Pick(weights []int, intn IntN) int {
	if len(weights) == 0 {
		return -1
	}
	if intn == nil {
		intn = DefaultIntN
	}

	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}

	// all-zero weights fall back to a uniform pick
	if total == 0 {
		return intn(len(weights))
	}

	target := intn(total)
	acc := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if target < acc {
			return i
		}
	}
	// unreachable when weights are consistent with total
	return len(weights) - 1
}
