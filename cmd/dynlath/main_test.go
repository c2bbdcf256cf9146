package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sandbox points the store at a temp database and silences logs.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DYNLATH_DATABASE", filepath.Join(dir, "test.db"))
	t.Setenv("DYNLATH_LOG_LEVEL", "error")

	return dir
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(context.Background(), args, &out, &errb)

	return code, out.String(), errb.String()
}

func TestConvert_InteractionsToSnapshots(t *testing.T) {
	dir := sandbox(t)
	in := filepath.Join(dir, "net.txt")
	require.NoError(t, os.WriteFile(in, []byte("# contacts\n1 2 + 0\n1 2 - 3\n"), 0o600))

	code, stdout, stderr := execute(t, "convert", "-in", in, "-to", "snapshots")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "1 2 0\n1 2 1\n1 2 2\n", stdout)

	out := filepath.Join(dir, "net.snap")
	code, _, stderr = execute(t, "convert", "-in", in, "-to", "snapshots", "-out", out)
	require.Equal(t, 0, code, stderr)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1 2 0\n1 2 1\n1 2 2\n", string(data))
}

func TestConvert_ThroughStore(t *testing.T) {
	dir := sandbox(t)
	in := filepath.Join(dir, "contacts.snap")
	require.NoError(t, os.WriteFile(in, []byte("a b 1\na b 2 k\nb c 5\n"), 0o600))

	code, stdout, stderr := execute(t, "convert", "-from", "snapshots", "-in", in, "-to", "sqlite")
	require.Equal(t, 0, code, stderr)
	id := strings.TrimSpace(stdout)
	assert.Len(t, id, 36)

	code, stdout, stderr = execute(t, "list")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, id+"\tcontacts\tdirected=false\tedges=2\tspans=3")

	code, stdout, stderr = execute(t, "convert", "-from", "sqlite", "-in", "contacts", "-to", "snapshots")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "a b 1\na b 2 k\nb c 5\n", stdout)

	code, stdout, stderr = execute(t, "stats", "-format", "sqlite", "-in", id)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "edges:        2\n")
	assert.Contains(t, stdout, "time range:   [1, 5]\n")

	code, _, stderr = execute(t, "delete", "contacts")
	require.Equal(t, 0, code, stderr)
	code, _, stderr = execute(t, "delete", "contacts")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "dataset not found")
}

func TestStats(t *testing.T) {
	dir := sandbox(t)
	in := filepath.Join(dir, "net.txt")
	require.NoError(t, os.WriteFile(in, []byte("1 2 + 0\n1 2 - 3\n2 3 + 10\n"), 0o600))

	code, stdout, stderr := execute(t, "stats", "-in", in)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, strings.Join([]string{
		"directed:     false",
		"vertices:     3",
		"edges:        2",
		"interactions: 4",
		"spans:        2",
		"time range:   [0, 10]",
		"snapshots:    4",
		"",
	}, "\n"), stdout)
}

func TestStrictMode(t *testing.T) {
	dir := sandbox(t)
	in := filepath.Join(dir, "net.txt")
	require.NoError(t, os.WriteFile(in, []byte("1 2 + 0\n1 2 3\n"), 0o600))

	code, _, stderr := execute(t, "stats", "-in", in)
	require.Equal(t, 0, code, stderr)

	t.Setenv("DYNLATH_STRICT", "true")
	code, _, stderr = execute(t, "stats", "-in", in)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "1 line(s) skipped in strict mode")
}

func TestConfigFile(t *testing.T) {
	dir := sandbox(t)
	cfg := filepath.Join(dir, "dynlath.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: snapshots\ndelimiter: \",\"\nreindex: true\n"), 0o600))
	in := filepath.Join(dir, "net.csv")
	require.NoError(t, os.WriteFile(in, []byte("a,b,100\na,b,200\n"), 0o600))

	code, stdout, stderr := execute(t, "convert", "-config", cfg, "-in", in, "-to", "interactions")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "a,b,+,0\na,b,-,2\n", stdout)
}

func TestUsageErrors(t *testing.T) {
	sandbox(t)

	code, _, stderr := execute(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: dynlath")

	code, _, _ = execute(t, "frobnicate")
	assert.Equal(t, 2, code)

	code, _, _ = execute(t, "convert", "-bogus")
	assert.Equal(t, 2, code)

	code, _, _ = execute(t, "delete")
	assert.Equal(t, 2, code)

	code, stdout, _ := execute(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "commands:")

	code, _, stderr = execute(t, "stats", "-in", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "missing.txt")
}
