// SPDX-License-Identifier: MIT
// Package: dynlath/edgelist
//
// errors.go — sentinel errors, the conversion error type and skip warnings.
//
// Error policy:
//   • Sentinels are package-level; callers branch with errors.Is.
//   • Line-located failures are wrapped as "<source>:<line>: <cause>" via %w.
//   • Malformed lines are never errors; they surface only as Warning values.

package edgelist

import (
	"errors"
	"fmt"
)

// ErrTypeConversion matches every *TypeConversionError via errors.Is.
var ErrTypeConversion = errors.New("edgelist: type conversion failed")

// ErrInvalidGraph indicates a nil target graph was supplied to an Into reader.
var ErrInvalidGraph = errors.New("edgelist: target is not a dynamic graph")

// ErrUnknownTimestamp indicates a timestamp missing from the active TimeIndex.
var ErrUnknownTimestamp = errors.New("edgelist: timestamp not present in index")

// ErrUnmatchedClose indicates a '-' record without an earlier start before it
// (returned only under WithStrictClose).
var ErrUnmatchedClose = errors.New("edgelist: close without matching open")

// ErrNilSource indicates a nil Source or reader.
var ErrNilSource = errors.New("edgelist: source is nil")

// ErrNotReopenable indicates reindexing was requested on a one-shot reader.
var ErrNotReopenable = errors.New("edgelist: reindexing needs a re-readable source")

// ErrUnknownEncoding indicates LookupEncoding could not resolve a name.
var ErrUnknownEncoding = errors.New("edgelist: unknown text encoding")

// TypeConversionError reports a token that a Converter rejected.
type TypeConversionError struct {
	Field string // "node", "timestamp"
	Token string
	Type  string // Converter.Name
	Err   error
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("edgelist: failed to convert %s %q to type %s: %v", e.Field, e.Token, e.Type, e.Err)
}

// Unwrap returns the converter's own error.
func (e *TypeConversionError) Unwrap() error { return e.Err }

// Is reports whether target is ErrTypeConversion.
func (e *TypeConversionError) Is(target error) bool { return target == ErrTypeConversion }

// WarningKind classifies a skipped line or ignored record.
type WarningKind int

const (
	// WarnFieldCount: the line had a field count the format does not accept.
	WarnFieldCount WarningKind = iota + 1

	// WarnUnknownOp: the operator column was neither '+' nor '-'.
	WarnUnknownOp

	// WarnUnmatchedClose: a '-' record had no earlier registration strictly
	// before it for the same pair, so nothing was registered.
	WarnUnmatchedClose
)

func (k WarningKind) String() string {
	switch k {
	case WarnFieldCount:
		return "field-count"
	case WarnUnknownOp:
		return "unknown-op"
	case WarnUnmatchedClose:
		return "unmatched-close"
	default:
		return fmt.Sprintf("warning(%d)", int(k))
	}
}

// Warning describes one line the reconstructors left without effect.
type Warning struct {
	Source string
	Line   int
	Kind   WarningKind
	Fields int    // number of fields after tokenizing
	Text   string // the line as read
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: %s (%d fields): %q", w.Source, w.Line, w.Kind, w.Fields, w.Text)
}

// located prefixes err with its source position.
func located(source string, line int, err error) error {
	return fmt.Errorf("%s:%d: %w", source, line, err)
}
