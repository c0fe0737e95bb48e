// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for ocegraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep the scenario edge lists in one place.

package core_test

import (
	"testing"

	"github.com/katalvlaran/ocegraph/core"
	"github.com/stretchr/testify/require"
)

// Common vertex counts used across core tests.
const (
	N0 = 0
	N3 = 3
	N4 = 4
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// PathEdges is a four-vertex path with a loop on vertex 2: 0-1, 1-2, 2-3, 2-2.
func PathEdges() []int {
	return []int{0, 1, 1, 2, 2, 3, 2, 2}
}

// MustCreate builds a graph and fails the test on error. The graph is closed
// when the test finishes.
func MustCreate(t *testing.T, edges []int, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.Create(edges, n, opts...)
	require.NoError(t, err, "Create(%v, %d)", edges, n)
	t.Cleanup(func() { _ = g.Close() })

	return g
}
