// SPDX-License-Identifier: MIT
// Package config_test verifies loading, overrides, validation and options.

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/dynlath/config"
	"github.com/katalvlaran/dynlath/edgelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dynlath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.FormatInteractions, cfg.Format)
	assert.Equal(t, "#", cfg.Comments)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
format: snapshots
delimiter: ","
node_type: int
reindex: true
log_level: debug
`)
	t.Setenv("DYNLATH_LOG_LEVEL", "warn")
	t.Setenv("DYNLATH_DIRECTED", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.FormatSnapshots, cfg.Format)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, config.NodeInt, cfg.NodeType)
	assert.True(t, cfg.Reindex)
	assert.True(t, cfg.Directed)
	assert.Equal(t, "warn", cfg.LogLevel, "environment wins over the file")
	assert.Equal(t, "utf-8", cfg.Encoding, "defaults survive")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "fromat: snapshots\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeFile(t, "format: graphml\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "format must be one of: interactions snapshots")
}

func TestDecode_Empty(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Decode(strings.NewReader("\n  \n")))
	assert.Equal(t, config.Default(), cfg)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*config.Config)
		msg  string
	}{
		{"layout without pattern", func(c *config.Config) { c.TimestampType = config.TimestampLayout }, "timestamplayout is required"},
		{"bad node type", func(c *config.Config) { c.NodeType = "float" }, "nodetype must be one of"},
		{"bad log level", func(c *config.Config) { c.LogLevel = "trace" }, "loglevel must be one of"},
		{"no encoding", func(c *config.Config) { c.Encoding = "" }, "encoding is required"},
		{"unknown encoding", func(c *config.Config) { c.Encoding = "ebcdic-klingon" }, "unknown text encoding"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mod(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalid)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(env(map[string]string{
		"DYNLATH_COMMENTS":     "",
		"DYNLATH_STRICT_CLOSE": "1",
		"DYNLATH_REINDEX":      "",
		"DYNLATH_DATABASE":     ":memory:",
		"OTHER_DATABASE":       "ignored",
	})))
	assert.Empty(t, cfg.Comments, "set but empty still overrides")
	assert.True(t, cfg.StrictClose)
	assert.False(t, cfg.Reindex, "empty booleans are ignored")
	assert.Equal(t, ":memory:", cfg.Database)

	err := cfg.ApplyEnv(env(map[string]string{"DYNLATH_STRICT": "sometimes"}))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Format = config.FormatSnapshots
	cfg.Delimiter = ","
	cfg.NodeType = config.NodeInt
	cfg.TimestampType = config.TimestampLayout
	cfg.TimestampLayout = "2006-01-02"
	require.NoError(t, cfg.Validate())

	opts, err := cfg.Options()
	require.NoError(t, err)
	g, err := edgelist.ParseSnapshots(strings.NewReader("01, 2, 1970-01-02 # day two\n"), opts...)
	require.NoError(t, err)
	tl, err := g.Timeline("1", "2")
	require.NoError(t, err)
	require.Len(t, tl, 1)
	assert.EqualValues(t, 86400, tl[0].Time)

	var buf strings.Builder
	require.NoError(t, edgelist.WriteSnapshots(g, &buf, opts...))
	assert.Equal(t, "1,2,1970-01-02\n", buf.String())
}

func TestOptions_ReindexAndStrictClose(t *testing.T) {
	cfg := config.Default()
	cfg.Reindex = true
	cfg.StrictClose = true
	cfg.Comments = ""
	opts, err := cfg.Options()
	require.NoError(t, err)

	g, err := edgelist.ParseInteractions(strings.NewReader("a b + 100\na b - 300\nc d + 200\n"), opts...)
	require.NoError(t, err)
	tl, err := g.Timeline("a", "b")
	require.NoError(t, err)
	assert.Len(t, tl, 2)

	_, err = edgelist.ParseInteractions(strings.NewReader("a b - 1\n"), opts...)
	require.ErrorIs(t, err, edgelist.ErrUnmatchedClose)
}
