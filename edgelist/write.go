// SPDX-License-Identifier: MIT
// Package: dynlath/edgelist
//
// write.go — serializers for both formats.
//
// Generators yield lines without terminators; writers join fields with the
// delimiter (default single space), terminate with "\n" and encode.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/katalvlaran/dynlath/core"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
)

// EventStreamer is what the interaction serializer needs from a graph.
type EventStreamer interface {
	StreamInteractions() []core.Event
}

// EdgeLister is what the snapshot serializer needs from a graph.
type EdgeLister interface {
	Edges() []*core.Edge
}

func (c *config) outDelimiter() string {
	if c.delimiter == "" {
		return " "
	}
	return c.delimiter
}

// GenerateInteractions yields one "<u> <v> <+|-> <t>" line per event of g,
// in time order. Interaction lines carry no edge identifiers.
func GenerateInteractions(g EventStreamer, opts ...Option) iter.Seq[string] {
	cfg := newConfig(opts)
	return generateInteractions(g, cfg)
}

func generateInteractions(g EventStreamer, cfg *config) iter.Seq[string] {
	delim := cfg.outDelimiter()
	return func(yield func(string) bool) {
		for _, ev := range g.StreamInteractions() {
			line := strings.Join([]string{ev.From, ev.To, ev.Op.String(), cfg.formatTime(ev.Time)}, delim)
			if !yield(line) {
				return
			}
		}
	}
}

// GenerateSnapshots yields one "<u> <v> <t> [<e>]" line per timestep of
// every span of every edge, edges ordered by (From, To).
func GenerateSnapshots(g EdgeLister, opts ...Option) iter.Seq[string] {
	cfg := newConfig(opts)
	return generateSnapshots(g, cfg)
}

func generateSnapshots(g EdgeLister, cfg *config) iter.Seq[string] {
	delim := cfg.outDelimiter()
	return func(yield func(string) bool) {
		for _, e := range g.Edges() {
			for _, s := range e.Spans() {
				for t := s.Start; t < s.Stop; t++ {
					fields := []string{e.From, e.To, cfg.formatTime(t)}
					if s.EdgeID != "" {
						fields = append(fields, s.EdgeID)
					}
					if !yield(strings.Join(fields, delim)) {
						return
					}
				}
			}
		}
	}
}

// WriteInteractions writes g in interaction list format to w.
func WriteInteractions(g EventStreamer, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	return writeLines(w, cfg, "interactions", generateInteractions(g, cfg))
}

// WriteSnapshots writes g in snapshot list format to w.
func WriteSnapshots(g EdgeLister, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	return writeLines(w, cfg, "snapshots", generateSnapshots(g, cfg))
}

// WriteInteractionsFile creates (or truncates) path and writes g to it.
func WriteInteractionsFile(g EventStreamer, path string, opts ...Option) error {
	return writeFile(path, func(w io.Writer) error { return WriteInteractions(g, w, opts...) })
}

// WriteSnapshotsFile creates (or truncates) path and writes g to it.
func WriteSnapshotsFile(g EdgeLister, path string, opts ...Option) error {
	return writeFile(path, func(w io.Writer) error { return WriteSnapshots(g, w, opts...) })
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	return write(f)
}

// writeLines encodes every line followed by "\n".
func writeLines(w io.Writer, cfg *config, kind string, lines iter.Seq[string]) error {
	// Hide any Close method of w: closing the encoder must only flush.
	tw := transform.NewWriter(struct{ io.Writer }{w}, cfg.enc.NewEncoder())
	bw := bufio.NewWriter(tw)
	n := 0
	for line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("writing %s: %w", kind, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing %s: %w", kind, err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", kind, err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", kind, err)
	}
	cfg.logger.Debug("edgelist: wrote "+kind, zap.Int("lines", n))

	return nil
}
