// SPDX-License-Identifier: MIT
// Package: dynlath/edgelist
//
// interactions.go — the interaction list format: "<u> <v> <+|-> <t>".
//
// Reconstruction keeps, per pair, the most recently registered timestamp:
//   • "+ t"  registers t and makes it the most recent registration.
//   • "- t"  registers every step in [last, t) when last < t; the most
//            recent registration becomes t-1. Otherwise nothing happens
//            (WarnUnmatchedClose, or ErrUnmatchedClose under WithStrictClose).
// With a TimeIndex active every comparison and step is taken in ordinal space.

package edgelist

import (
	"io"

	"github.com/katalvlaran/dynlath/core"
)

const (
	tokAdd    = "+"
	tokRemove = "-"
)

var interactionFormat = format{
	name:       "interactions",
	candidates: interactionCandidates,
	handler: func(r *reader) lineHandler {
		return &interactionReader{reader: r, last: make(map[pairKey]int64)}
	},
}

// pairKey identifies an edge the same way the graph does.
type pairKey struct{ u, v string }

type interactionReader struct {
	*reader
	last map[pairKey]int64
}

func (r *interactionReader) key(u, v string) pairKey {
	if !r.directed && v < u {
		u, v = v, u
	}
	return pairKey{u: u, v: v}
}

// interactionRecord is one decoded "<u> <v> <op> <t>" line.
type interactionRecord struct {
	u, v string
	op   string
	t    int64
	line int
}

func (r *interactionReader) decode(fields []string, line int) (interactionRecord, error) {
	u, v, err := r.nodes(fields[0], fields[1])
	if err != nil {
		return interactionRecord{}, err
	}
	t, err := r.stamp(fields[3])
	if err != nil {
		return interactionRecord{}, err
	}

	return interactionRecord{u: u, v: v, op: fields[2], t: t, line: line}, nil
}

func (r *interactionReader) handle(fields []string, line int, text string) error {
	if len(fields) != 4 {
		r.skip(WarnFieldCount, line, fields, text)
		return nil
	}
	// Unknown operators are skipped before conversion; the index pre-pass
	// never saw their timestamps.
	if op := fields[2]; op != tokAdd && op != tokRemove {
		r.skip(WarnUnknownOp, line, fields, text)
		return nil
	}
	rec, err := r.decode(fields, line)
	if err != nil {
		return located(r.source, line, err)
	}

	if rec.op == tokAdd {
		err = r.start(rec)
	} else {
		err = r.stop(rec, fields, text)
	}
	if err != nil {
		return located(r.source, line, err)
	}

	return nil
}

func (r *interactionReader) start(rec interactionRecord) error {
	if err := r.add(rec.u, rec.v, rec.t); err != nil {
		return err
	}
	r.last[r.key(rec.u, rec.v)] = rec.t

	return nil
}

// stop expands [last, t) one step at a time.
func (r *interactionReader) stop(rec interactionRecord, fields []string, text string) error {
	k := r.key(rec.u, rec.v)
	last, ok := r.last[k]
	if !ok || last >= rec.t {
		if r.cfg.strictClose {
			return ErrUnmatchedClose
		}
		r.skip(WarnUnmatchedClose, rec.line, fields, text)
		return nil
	}
	for step := last; step < rec.t; step++ {
		if err := r.add(rec.u, rec.v, step); err != nil {
			return err
		}
	}
	r.last[k] = rec.t - 1

	return nil
}

// ParseInteractions reads an interaction list from r into a new graph.
// WithReindex requires r to be an io.ReadSeeker.
func ParseInteractions(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts)
	g := newGraph(cfg)
	if err := parseReader(g, r, cfg, interactionFormat); err != nil {
		return g, err
	}

	return g, nil
}

// ParseInteractionsInto clears g and reads an interaction list from r into it.
// A failed parse leaves g partially populated.
func ParseInteractionsInto(g Target, r io.Reader, opts ...Option) error {
	return parseReader(g, r, newConfig(opts), interactionFormat)
}

// ReadInteractions reads an interaction list from src into a new graph.
//
// Implementation:
//   - Stage 1: With WithReindex, pre-scan src and build the TimeIndex.
//   - Stage 2: Reopen src, tokenize, convert and reconstruct line by line.
//
// Errors:
//   - *TypeConversionError (ErrTypeConversion) on the first bad token;
//     ErrUnknownTimestamp, ErrUnmatchedClose (strict), I/O errors.
//     The returned graph holds whatever was registered before the failure.
func ReadInteractions(src Source, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts)
	g := newGraph(cfg)
	if err := readSource(g, src, cfg, interactionFormat); err != nil {
		return g, err
	}

	return g, nil
}

// ReadInteractionsInto clears g and reads an interaction list from src into it.
// Returns ErrInvalidGraph for a nil g before touching src.
func ReadInteractionsInto(g Target, src Source, opts ...Option) error {
	return readSource(g, src, newConfig(opts), interactionFormat)
}
