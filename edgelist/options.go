// SPDX-License-Identifier: MIT
// Package: dynlath/edgelist
//
// options.go — functional options shared by readers, index builders and writers.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs (nil converter, nil
//     logger, nil encoding); readers and writers themselves never panic.
//   • Options a component does not use are ignored (writers ignore converters,
//     readers ignore WithTimestampFormat).
//
// Defaults:
//   • comments   = "#"
//   • delimiter  = ""      (readers: whitespace runs; writers: single space)
//   • node type  = StringNodes
//   • time type  = IntTimestamps
//   • encoding   = UTF-8
//   • logger     = zap.NewNop()

package edgelist

import (
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// DefaultComments is the default comment marker.
const DefaultComments = "#"

// Option customizes a read, index build or write.
type Option func(*config)

// config aggregates every knob; resolved once per call by newConfig.
type config struct {
	comments    string
	delimiter   string
	nodeType    Converter[string]
	timeType    Converter[int64]
	reindex     bool
	index       *TimeIndex
	enc         encoding.Encoding
	directed    bool
	logger      *zap.Logger
	warn        func(Warning)
	strictClose bool
	formatTime  func(int64) string
}

func newConfig(opts []Option) *config {
	c := &config{
		comments:   DefaultComments,
		nodeType:   StringNodes,
		timeType:   IntTimestamps,
		enc:        unicode.UTF8,
		logger:     zap.NewNop(),
		formatTime: func(t int64) string { return strconv.FormatInt(t, 10) },
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithComments sets the comment marker; text from its first occurrence to
// the end of the line is ignored. An empty marker disables stripping.
func WithComments(marker string) Option {
	return func(c *config) { c.comments = marker }
}

// WithDelimiter sets the column delimiter. Empty means runs of whitespace
// for readers and a single space for writers.
func WithDelimiter(delim string) Option {
	return func(c *config) { c.delimiter = delim }
}

// WithNodeType sets the node converter. Panics if conv.Parse is nil.
func WithNodeType(conv Converter[string]) Option {
	if conv.Parse == nil {
		panic("edgelist: WithNodeType(nil Parse)")
	}
	return func(c *config) { c.nodeType = conv }
}

// WithTimestampType sets the timestamp converter. Panics if conv.Parse is nil.
func WithTimestampType(conv Converter[int64]) Option {
	if conv.Parse == nil {
		panic("edgelist: WithTimestampType(nil Parse)")
	}
	return func(c *config) { c.timeType = conv }
}

// WithReindex requests a timestamp pre-pass over the source: stored
// timestamps become dense ordinals of the distinct values.
func WithReindex() Option {
	return func(c *config) { c.reindex = true }
}

// WithIndex reindexes through a precomputed index instead of a pre-pass.
// Panics on nil.
func WithIndex(ix *TimeIndex) Option {
	if ix == nil {
		panic("edgelist: WithIndex(nil)")
	}
	return func(c *config) { c.index = ix }
}

// WithEncoding sets the character encoding of input and output text.
// A byte-order mark at the start of input overrides it for that read.
// Panics on nil; see LookupEncoding for names.
func WithEncoding(enc encoding.Encoding) Option {
	if enc == nil {
		panic("edgelist: WithEncoding(nil)")
	}
	return func(c *config) { c.enc = enc }
}

// WithDirected makes readers build directed graphs (u→v and v→u distinct).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithLogger attaches a zap logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("edgelist: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithWarnings enables strict reporting: fn receives one Warning per line
// the reconstructors skipped or ignored. Panics on nil.
func WithWarnings(fn func(Warning)) Option {
	if fn == nil {
		panic("edgelist: WithWarnings(nil)")
	}
	return func(c *config) { c.warn = fn }
}

// WithStrictClose turns an unmatched '-' record into ErrUnmatchedClose.
func WithStrictClose() Option {
	return func(c *config) { c.strictClose = true }
}

// WithTimestampFormat sets how writers render timestamps. Panics on nil.
func WithTimestampFormat(fn func(int64) string) Option {
	if fn == nil {
		panic("edgelist: WithTimestampFormat(nil)")
	}
	return func(c *config) { c.formatTime = fn }
}
