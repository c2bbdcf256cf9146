// SPDX-License-Identifier: MIT
// Package: dynlath/edgelist
//
// index.go — timestamp index (raw value → dense ordinal) and its per-format builders.
//
// Invariants:
//   • Ordinals are dense, 0-based, assigned in ascending order of the
//     distinct converted timestamps.
//   • A TimeIndex is immutable once built and safe for concurrent reads.
//
// The interaction builder collects column 4 of lines whose column 3 is an
// operator; the snapshot builder collects column 3 and, on 4-field lines,
// column 4 when it converts. Both tokenize exactly like the main pass, so
// comment and blank lines contribute nothing.

package edgelist

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// TimeIndex maps timestamps to their rank among all distinct timestamps of an input.
type TimeIndex struct {
	values   []int64
	ordinals map[int64]int64
}

// NewTimeIndex deduplicates and sorts values and assigns ordinals.
// Complexity: O(n·log n).
func NewTimeIndex(values ...int64) *TimeIndex {
	ix := &TimeIndex{ordinals: make(map[int64]int64, len(values))}
	for _, v := range values {
		ix.ordinals[v] = 0
	}
	ix.values = make([]int64, 0, len(ix.ordinals))
	for v := range ix.ordinals {
		ix.values = append(ix.values, v)
	}
	sort.Slice(ix.values, func(i, j int) bool { return ix.values[i] < ix.values[j] })
	for i, v := range ix.values {
		ix.ordinals[v] = int64(i)
	}

	return ix
}

// Len returns the number of distinct timestamps.
func (ix *TimeIndex) Len() int { return len(ix.values) }

// Ordinal returns the rank of t.
func (ix *TimeIndex) Ordinal(t int64) (int64, bool) {
	o, ok := ix.ordinals[t]
	return o, ok
}

// Value returns the timestamp with rank ord.
func (ix *TimeIndex) Value(ord int64) (int64, bool) {
	if ord < 0 || ord >= int64(len(ix.values)) {
		return 0, false
	}
	return ix.values[ord], true
}

// Values returns the sorted distinct timestamps.
func (ix *TimeIndex) Values() []int64 {
	out := make([]int64, len(ix.values))
	copy(out, ix.values)

	return out
}

// Map returns a copy of the timestamp → ordinal mapping.
func (ix *TimeIndex) Map() map[int64]int64 {
	out := make(map[int64]int64, len(ix.ordinals))
	for k, v := range ix.ordinals {
		out[k] = v
	}

	return out
}

// lookup is Ordinal with ErrUnknownTimestamp.
func (ix *TimeIndex) lookup(t int64) (int64, error) {
	o, ok := ix.ordinals[t]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownTimestamp, t)
	}

	return o, nil
}

// candidates selects timestamp tokens from one tokenized line. required
// tokens must convert; optional ones are kept only when they do.
type candidates func(fields []string) (required, optional []string)

func interactionCandidates(fields []string) (required, optional []string) {
	if len(fields) == 4 && (fields[2] == tokAdd || fields[2] == tokRemove) {
		return fields[3:4], nil
	}
	return nil, nil
}

func snapshotCandidates(fields []string) (required, optional []string) {
	switch len(fields) {
	case 3:
		return fields[2:3], nil
	case 4:
		return fields[2:3], fields[3:4]
	}
	return nil, nil
}

// BuildInteractionIndex pre-scans an interaction list and indexes its timestamps.
// Honors WithComments, WithDelimiter, WithTimestampType and WithEncoding.
func BuildInteractionIndex(src Source, opts ...Option) (*TimeIndex, error) {
	return buildIndex(src, newConfig(opts), interactionCandidates)
}

// BuildSnapshotIndex pre-scans a snapshot list and indexes its timestamps,
// including 4th-column values that parse as timestamps.
func BuildSnapshotIndex(src Source, opts ...Option) (*TimeIndex, error) {
	return buildIndex(src, newConfig(opts), snapshotCandidates)
}

func buildIndex(src Source, cfg *config, pick candidates) (*TimeIndex, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	var values []int64
	err := scanSource(src, cfg.enc, func(line string, n int) error {
		fields, ok := tokenize(line, cfg.comments, cfg.delimiter)
		if !ok {
			return nil
		}
		required, optional := pick(fields)
		for _, tok := range required {
			v, err := cfg.timeType.convert("timestamp", tok)
			if err != nil {
				return located(src.Name(), n, err)
			}
			values = append(values, v)
		}
		for _, tok := range optional {
			if v, err := cfg.timeType.Parse(tok); err == nil {
				values = append(values, v)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("building timestamp index: %w", err)
	}

	ix := NewTimeIndex(values...)
	cfg.logger.Debug("edgelist: timestamp index built",
		zap.String("source", src.Name()),
		zap.Int("candidates", len(values)),
		zap.Int("timestamps", ix.Len()),
	)

	return ix, nil
}
