// SPDX-License-Identifier: MIT
// Package edgelist_test contains shared fixtures for edgelist tests.

package edgelist_test

import (
	"testing"

	"github.com/katalvlaran/dynlath/core"
	"github.com/katalvlaran/dynlath/edgelist"
	"github.com/stretchr/testify/require"
)

// timesOf returns the recorded timestamps of u–v.
func timesOf(t *testing.T, g *core.Graph, u, v string) []int64 {
	t.Helper()
	tl, err := g.Timeline(u, v)
	require.NoError(t, err, "Timeline(%s,%s)", u, v)
	out := make([]int64, len(tl))
	for i, it := range tl {
		out[i] = it.Time
	}

	return out
}

// collect gathers warnings for strict-mode assertions.
type collect struct {
	warnings []edgelist.Warning
}

func (c *collect) option() edgelist.Option {
	return edgelist.WithWarnings(func(w edgelist.Warning) { c.warnings = append(c.warnings, w) })
}

func (c *collect) kinds() []edgelist.WarningKind {
	out := make([]edgelist.WarningKind, len(c.warnings))
	for i, w := range c.warnings {
		out[i] = w.Kind
	}

	return out
}

type call struct {
	u, v string
	t    int64
}

// recordingTarget is a Target without graph storage: it records every
// registration so reconstruction can be checked call by call.
type recordingTarget struct {
	clears int
	calls  []call
}

func (r *recordingTarget) Clear() {
	r.clears++
	r.calls = nil
}

func (r *recordingTarget) AddInteraction(u, v string, t int64, _ ...core.InteractionOption) error {
	r.calls = append(r.calls, call{u: u, v: v, t: t})
	return nil
}
