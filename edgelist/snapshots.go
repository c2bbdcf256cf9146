// SPDX-License-Identifier: MIT
// Package: dynlath/edgelist
//
// snapshots.go — the snapshot list format: "<u> <v> <t> [<e>]".

package edgelist

import (
	"io"
	"strconv"

	"github.com/katalvlaran/dynlath/core"
)

var snapshotFormat = format{
	name:       "snapshots",
	candidates: snapshotCandidates,
	handler:    func(r *reader) lineHandler { return &snapshotReader{reader: r} },
}

type snapshotReader struct {
	*reader
}

// snapshotRecord is one decoded "<u> <v> <t> [<e>]" line.
type snapshotRecord struct {
	u, v   string
	t      int64
	edgeID string
	hasID  bool
}

func (r *snapshotReader) decode(fields []string) (snapshotRecord, error) {
	u, v, err := r.nodes(fields[0], fields[1])
	if err != nil {
		return snapshotRecord{}, err
	}
	t, err := r.stamp(fields[2])
	if err != nil {
		return snapshotRecord{}, err
	}
	rec := snapshotRecord{u: u, v: v, t: t}
	if len(fields) == 4 {
		rec.edgeID, rec.hasID = r.edgeID(fields[3]), true
	}

	return rec, nil
}

func (r *snapshotReader) handle(fields []string, line int, text string) error {
	if n := len(fields); n < 3 || n > 4 {
		r.skip(WarnFieldCount, line, fields, text)
		return nil
	}
	rec, err := r.decode(fields)
	if err != nil {
		return located(r.source, line, err)
	}

	var opts []core.InteractionOption
	if rec.hasID {
		opts = append(opts, core.WithEdgeID(rec.edgeID))
	}
	if err := r.add(rec.u, rec.v, rec.t, opts...); err != nil {
		return located(r.source, line, err)
	}

	return nil
}

// edgeID maps e through the index when e is itself an indexed timestamp;
// any other identifier is stored verbatim.
func (r *snapshotReader) edgeID(e string) string {
	if r.keys == nil {
		return e
	}
	t, err := r.cfg.timeType.Parse(e)
	if err != nil {
		return e
	}
	if o, ok := r.keys.Ordinal(t); ok {
		return strconv.FormatInt(o, 10)
	}

	return e
}

// ParseSnapshots reads a snapshot list from r into a new graph.
// WithReindex requires r to be an io.ReadSeeker.
func ParseSnapshots(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts)
	g := newGraph(cfg)
	if err := parseReader(g, r, cfg, snapshotFormat); err != nil {
		return g, err
	}

	return g, nil
}

// ParseSnapshotsInto clears g and reads a snapshot list from r into it.
func ParseSnapshotsInto(g Target, r io.Reader, opts ...Option) error {
	return parseReader(g, r, newConfig(opts), snapshotFormat)
}

// ReadSnapshots reads a snapshot list from src into a new graph.
// Errors follow ReadInteractions.
func ReadSnapshots(src Source, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts)
	g := newGraph(cfg)
	if err := readSource(g, src, cfg, snapshotFormat); err != nil {
		return g, err
	}

	return g, nil
}

// ReadSnapshotsInto clears g and reads a snapshot list from src into it.
func ReadSnapshotsInto(g Target, src Source, opts ...Option) error {
	return readSource(g, src, newConfig(opts), snapshotFormat)
}
