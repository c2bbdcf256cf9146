// SPDX-License-Identifier: MIT
// Package edgelist_test verifies snapshot list reconstruction.

package edgelist_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/dynlath/core"
	"github.com/katalvlaran/dynlath/edgelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnapshots_SingleEntry(t *testing.T) {
	g, err := edgelist.ParseSnapshots(strings.NewReader("1 2 5\n"))
	require.NoError(t, err)
	tl, err := g.Timeline("1", "2")
	require.NoError(t, err)
	assert.Equal(t, []core.Interaction{{Time: 5}}, tl)
}

func TestParseSnapshots_EdgeID(t *testing.T) {
	g, err := edgelist.ParseSnapshots(strings.NewReader("1 2 5 e9\n1 2 6\n"))
	require.NoError(t, err)
	tl, err := g.Timeline("1", "2")
	require.NoError(t, err)
	assert.Equal(t, []core.Interaction{{Time: 5, EdgeID: "e9"}, {Time: 6}}, tl)
}

func TestParseSnapshots_RepeatedEntryIsIdempotent(t *testing.T) {
	g, err := edgelist.ParseSnapshots(strings.NewReader("1 2 5\n2 1 5\n1 2 5\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, timesOf(t, g, "1", "2"))
	assert.Equal(t, 1, g.InteractionCount())
}

func TestParseSnapshots_FieldCountSkips(t *testing.T) {
	var c collect
	g, err := edgelist.ParseSnapshots(strings.NewReader("1 2\n1 2 3 4 5\n# 1 2 3\n3 4 7\n"), c.option())
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4"}, g.Vertices())
	assert.Equal(t, []edgelist.WarningKind{edgelist.WarnFieldCount, edgelist.WarnFieldCount}, c.kinds())
	assert.Equal(t, []int{1, 2}, []int{c.warnings[0].Line, c.warnings[1].Line})
}

func TestParseSnapshots_ConversionFailure(t *testing.T) {
	g, err := edgelist.ParseSnapshots(strings.NewReader("1 2 5\n1 2 five\n3 4 6\n"))
	require.ErrorIs(t, err, edgelist.ErrTypeConversion)
	assert.True(t, g.HasEdge("1", "2"))
	assert.False(t, g.HasEdge("3", "4"))
}

func TestReadSnapshots_Reindex(t *testing.T) {
	src := edgelist.Text("snap", "a b 100\na b 300 x\nc d 200 300\n")
	g, err := edgelist.ReadSnapshots(src, edgelist.WithReindex())
	require.NoError(t, err)

	ab, err := g.Timeline("a", "b")
	require.NoError(t, err)
	assert.Equal(t, []core.Interaction{{Time: 0}, {Time: 2, EdgeID: "x"}}, ab)

	// An identifier that is itself an indexed timestamp is mapped too.
	cd, err := g.Timeline("c", "d")
	require.NoError(t, err)
	assert.Equal(t, []core.Interaction{{Time: 1, EdgeID: "2"}}, cd)
}

func TestReadSnapshots_Directed(t *testing.T) {
	g, err := edgelist.ReadSnapshots(edgelist.Text("d", "1 2 0\n2 1 0\n"), edgelist.WithDirected(true))
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestReadSnapshotsInto_UsesTargetOrientation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	// WithDirected(false) is overridden by the target itself.
	require.NoError(t, edgelist.ReadSnapshotsInto(g, edgelist.Text("d", "1 2 0\n2 1 0\n"), edgelist.WithDirected(false)))
	assert.Equal(t, 2, g.EdgeCount())

	var typedNil *core.Graph
	require.ErrorIs(t, edgelist.ReadSnapshotsInto(typedNil, edgelist.Text("d", "")), edgelist.ErrInvalidGraph)
}

func TestParseSnapshotsInto_RecordingTarget(t *testing.T) {
	rec := &recordingTarget{}
	require.NoError(t, edgelist.ParseSnapshotsInto(rec, strings.NewReader("b a 3\nc d 1 e\n")))
	assert.Equal(t, 1, rec.clears)
	assert.Equal(t, []call{{u: "b", v: "a", t: 3}, {u: "c", v: "d", t: 1}}, rec.calls)
}

func TestParseSnapshots_MaxInt64Timestamp(t *testing.T) {
	g, err := edgelist.ParseSnapshots(strings.NewReader("1 2 9223372036854775806\n1 2 9223372036854775807\n"))
	require.ErrorIs(t, err, core.ErrBadInterval)
	assert.Contains(t, err.Error(), "<reader>:2:")
	assert.Equal(t, []int64{math.MaxInt64 - 1}, timesOf(t, g, "1", "2"))

	var b strings.Builder
	require.NoError(t, edgelist.WriteSnapshots(g, &b))
	assert.Equal(t, "1 2 9223372036854775806\n", b.String())
}
