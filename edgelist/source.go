// SPDX-License-Identifier: MIT
// Package: dynlath/edgelist
//
// source.go — re-readable inputs and text decoding.
//
// A Source can be opened any number of times; every Open starts at the
// beginning. Readers open it twice when WithReindex is set (index pre-pass,
// then the main pass) and close every handle they open.

package edgelist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single line; longer lines fail the scan.
const maxLineSize = 1 << 20

// Source is a named, re-readable input.
type Source interface {
	// Name identifies the input in errors, warnings and logs.
	Name() string

	// Open returns a reader positioned at the start of the input.
	Open() (io.ReadCloser, error)
}

type fileSource struct{ path string }

// File returns a Source reading the file at path.
func File(path string) Source { return fileSource{path: path} }

func (s fileSource) Name() string { return s.path }

func (s fileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}

	return f, nil
}

type bytesSource struct {
	name string
	data []byte
}

// Bytes returns a Source over an in-memory buffer.
func Bytes(name string, data []byte) Source { return bytesSource{name: name, data: data} }

// Text returns a Source over a string.
func Text(name, s string) Source { return bytesSource{name: name, data: []byte(s)} }

func (s bytesSource) Name() string { return s.name }

func (s bytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

type seekerSource struct {
	name string
	rs   io.ReadSeeker
}

// Seeker returns a Source that rewinds rs on every Open. The caller keeps
// ownership of rs; closing the returned readers does not close it.
func Seeker(name string, rs io.ReadSeeker) Source { return seekerSource{name: name, rs: rs} }

func (s seekerSource) Name() string { return s.name }

func (s seekerSource) Open() (io.ReadCloser, error) {
	if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding %s: %w", s.name, err)
	}

	return io.NopCloser(s.rs), nil
}

// LookupEncoding resolves an encoding label ("utf-8", "latin1",
// "utf-16le", "windows-1251", ...) using the WHATWG label set.
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	return enc, nil
}

// scanLines decodes r with enc and calls fn for every line (1-based).
// A leading UTF-8 or UTF-16 byte-order mark is consumed and selects the
// decoding; otherwise enc applies. Trailing "\r" is dropped. The first
// error from fn stops the scan.
func scanLines(r io.Reader, enc encoding.Encoding, fn func(line string, n int) error) error {
	dec := unicode.BOMOverride(enc.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(r, dec))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		if err := fn(strings.TrimSuffix(sc.Text(), "\r"), n); err != nil {
			return err
		}
	}

	return sc.Err()
}

// scanSource opens src, scans it and closes it.
func scanSource(src Source, enc encoding.Encoding, fn func(line string, n int) error) (err error) {
	rc, err := src.Open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rc.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", src.Name(), cerr)
		}
	}()

	if err = scanLines(rc, enc, fn); err != nil {
		return err
	}

	return nil
}
