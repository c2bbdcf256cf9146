// SPDX-License-Identifier: MIT
// Package edgelist_test verifies converters and timestamp indexes.

package edgelist_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/dynlath/edgelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeIndex_DenseOrdinals(t *testing.T) {
	ix := edgelist.NewTimeIndex(5, 1, 3, 5, 1)
	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, map[int64]int64{1: 0, 3: 1, 5: 2}, ix.Map())
	assert.Equal(t, []int64{1, 3, 5}, ix.Values())

	o, ok := ix.Ordinal(3)
	assert.True(t, ok)
	assert.EqualValues(t, 1, o)
	_, ok = ix.Ordinal(4)
	assert.False(t, ok)

	v, ok := ix.Value(2)
	assert.True(t, ok)
	assert.EqualValues(t, 5, v)
	_, ok = ix.Value(3)
	assert.False(t, ok)
	_, ok = ix.Value(-1)
	assert.False(t, ok)
}

func TestNewTimeIndex_Empty(t *testing.T) {
	ix := edgelist.NewTimeIndex()
	assert.Zero(t, ix.Len())
	assert.Empty(t, ix.Map())
}

func TestBuildInteractionIndex(t *testing.T) {
	src := edgelist.Text("net", strings.Join([]string{
		"a b + 5",
		"# c d + 99",
		"a b - 1  # closing",
		"c d + 3",
		"bad line",
		"c d * 42",
	}, "\n"))
	ix, err := edgelist.BuildInteractionIndex(src)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 0, 3: 1, 5: 2}, ix.Map())
}

func TestBuildSnapshotIndex(t *testing.T) {
	src := edgelist.Text("snap", "a b 100\na b 300 x\nc d 200 300\nc d 400 0\n")
	ix, err := edgelist.BuildSnapshotIndex(src)
	require.NoError(t, err)
	// Convertible edge identifiers are candidates too.
	assert.Equal(t, []int64{0, 100, 200, 300, 400}, ix.Values())
}

func TestBuildIndex_Errors(t *testing.T) {
	_, err := edgelist.BuildInteractionIndex(edgelist.Text("bad", "a b + 1\na b + x\n"))
	require.ErrorIs(t, err, edgelist.ErrTypeConversion)
	assert.Contains(t, err.Error(), "bad:2:")

	_, err = edgelist.BuildSnapshotIndex(nil)
	require.ErrorIs(t, err, edgelist.ErrNilSource)
}

func TestConverters(t *testing.T) {
	n, err := edgelist.IntNodes.Parse("-007")
	require.NoError(t, err)
	assert.Equal(t, "-7", n)

	s, err := edgelist.StringNodes.Parse("007")
	require.NoError(t, err)
	assert.Equal(t, "007", s)

	day := edgelist.TimeLayout("2006-01-02")
	assert.Equal(t, "time(2006-01-02)", day.Name)
	ts, err := day.Parse("1970-01-02")
	require.NoError(t, err)
	assert.EqualValues(t, 86400, ts)
	assert.Equal(t, "1970-01-02", edgelist.UnixFormat("2006-01-02")(ts))
}

func TestTimestampFunc_ErrorCarriesName(t *testing.T) {
	boom := errors.New("negative")
	positive := edgelist.TimestampFunc("positive", func(s string) (int64, error) {
		if strings.HasPrefix(s, "-") {
			return 0, boom
		}
		return edgelist.IntTimestamps.Parse(s)
	})

	_, err := edgelist.ParseSnapshots(strings.NewReader("a b 1\na b -1\n"), edgelist.WithTimestampType(positive))
	var tce *edgelist.TypeConversionError
	require.True(t, errors.As(err, &tce))
	assert.Equal(t, "positive", tce.Type)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, edgelist.ErrTypeConversion)
}

func TestReadInteractions_TimeLayoutReindexed(t *testing.T) {
	src := edgelist.Text("days", "a b + 2024-03-01\na b - 2024-03-09\nc d + 2024-03-05\n")
	g, err := edgelist.ReadInteractions(src,
		edgelist.WithTimestampType(edgelist.TimeLayout("2006-01-02")),
		edgelist.WithReindex(),
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1}, timesOf(t, g, "a", "b"))
	assert.Equal(t, []int64{1}, timesOf(t, g, "c", "d"))
}
