// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for dynlath/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for timeline tests.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"testing"

	"github.com/katalvlaran/dynlath/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexX = "X"

	VertexBase = "Base"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// addRange registers every timestamp in [from, to) for u–v.
func addRange(t *testing.T, g *core.Graph, u, v string, from, to int64) {
	t.Helper()
	for ts := from; ts < to; ts++ {
		require.NoError(t, g.AddInteraction(u, v, ts), "AddInteraction(%s,%s,%d)", u, v, ts)
	}
}

// times extracts the timestamps of a timeline.
func times(tl []core.Interaction) []int64 {
	out := make([]int64, len(tl))
	for i, it := range tl {
		out[i] = it.Time
	}

	return out
}

// MustNoErrorsFromChan drains errCh and fails on the first non-nil error.
// Goroutines report through the channel; only the test goroutine touches t.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()
	for err := range errCh {
		require.NoError(t, err, op)
	}
}
