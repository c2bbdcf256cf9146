// SPDX-License-Identifier: MIT
// Package: dynlath/edgelist
//
// read.go — the shared read driver: target validation, optional index
// pre-pass, line loop, skip reporting and the parse summary log.

package edgelist

import (
	"fmt"
	"io"
	"reflect"

	"github.com/katalvlaran/dynlath/core"
	"go.uber.org/zap"
)

// readerName labels inputs handed over as a bare io.Reader.
const readerName = "<reader>"

// Target is the dynamic graph a reader populates. *core.Graph implements it.
// If the target also has a Directed() bool method, the reader pairs records
// the same way the target does; otherwise WithDirected decides.
type Target interface {
	Clear()
	AddInteraction(u, v string, t int64, opts ...core.InteractionOption) error
}

// lineHandler consumes the tokenized lines of one format.
type lineHandler interface {
	handle(fields []string, line int, text string) error
}

// format binds a line handler to its index candidates.
type format struct {
	name       string
	candidates candidates
	handler    func(r *reader) lineHandler
}

// reader holds the per-parse state shared by both formats.
type reader struct {
	cfg      *config
	target   Target
	keys     *TimeIndex
	source   string
	directed bool
	records  int
	skipped  int
}

// checkTarget rejects nil and typed-nil targets.
func checkTarget(g Target) error {
	if g == nil {
		return ErrInvalidGraph
	}
	if v := reflect.ValueOf(g); v.Kind() == reflect.Ptr && v.IsNil() {
		return ErrInvalidGraph
	}

	return nil
}

func newGraph(cfg *config) *core.Graph {
	return core.NewGraph(core.WithDirected(cfg.directed))
}

// readSource runs the optional pre-pass and the main pass over src.
func readSource(g Target, src Source, cfg *config, f format) (err error) {
	if err = checkTarget(g); err != nil {
		return err
	}
	if src == nil {
		return ErrNilSource
	}
	keys := cfg.index
	if cfg.reindex {
		if keys, err = buildIndex(src, cfg, f.candidates); err != nil {
			return err
		}
	}

	rc, err := src.Open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rc.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", src.Name(), cerr)
		}
	}()

	return parse(g, rc, src.Name(), cfg, keys, f)
}

// parseReader is readSource for a bare reader; reindexing needs an io.ReadSeeker.
func parseReader(g Target, r io.Reader, cfg *config, f format) error {
	if err := checkTarget(g); err != nil {
		return err
	}
	if r == nil {
		return ErrNilSource
	}
	if cfg.reindex {
		rs, ok := r.(io.ReadSeeker)
		if !ok {
			return ErrNotReopenable
		}
		return readSource(g, Seeker(readerName, rs), cfg, f)
	}

	return parse(g, r, readerName, cfg, cfg.index, f)
}

// parse clears g and feeds every non-blank line of r to the format handler.
func parse(g Target, r io.Reader, source string, cfg *config, keys *TimeIndex, f format) error {
	base := &reader{
		cfg:      cfg,
		target:   g,
		keys:     keys,
		source:   source,
		directed: cfg.directed,
	}
	if d, ok := g.(interface{ Directed() bool }); ok {
		base.directed = d.Directed()
	}
	h := f.handler(base)

	g.Clear()
	lines := 0
	err := scanLines(r, cfg.enc, func(text string, n int) error {
		lines = n
		fields, ok := tokenize(text, cfg.comments, cfg.delimiter)
		if !ok {
			return nil
		}
		return h.handle(fields, n, text)
	})

	cfg.logger.Debug("edgelist: parsed "+f.name,
		zap.String("source", source),
		zap.Int("lines", lines),
		zap.Int("records", base.records),
		zap.Int("skipped", base.skipped),
		zap.Bool("reindexed", keys != nil),
		zap.Error(err),
	)

	return err
}

// skip reports a line that leaves the graph untouched.
func (r *reader) skip(kind WarningKind, line int, fields []string, text string) {
	r.skipped++
	w := Warning{Source: r.source, Line: line, Kind: kind, Fields: len(fields), Text: text}
	r.cfg.logger.Debug("edgelist: skipped line",
		zap.String("source", r.source),
		zap.Int("line", line),
		zap.Stringer("reason", kind),
	)
	if r.cfg.warn != nil {
		r.cfg.warn(w)
	}
}

// nodes converts both endpoint tokens.
func (r *reader) nodes(u, v string) (string, string, error) {
	cu, err := r.cfg.nodeType.convert("node", u)
	if err != nil {
		return "", "", err
	}
	cv, err := r.cfg.nodeType.convert("node", v)
	if err != nil {
		return "", "", err
	}

	return cu, cv, nil
}

// stamp converts a timestamp token and maps it through keys when active.
func (r *reader) stamp(tok string) (int64, error) {
	t, err := r.cfg.timeType.convert("timestamp", tok)
	if err != nil {
		return 0, err
	}
	if r.keys == nil {
		return t, nil
	}

	return r.keys.lookup(t)
}

// add registers one activity entry on the target.
func (r *reader) add(u, v string, t int64, opts ...core.InteractionOption) error {
	if err := r.target.AddInteraction(u, v, t, opts...); err != nil {
		return err
	}
	r.records++

	return nil
}
