// SPDX-License-Identifier: MIT
// Package: dynlath/edgelist
//
// convert.go — field converters for node and timestamp tokens.
//
// Contract:
//   • A Converter is a named pure function token → value.
//   • Failures surface as *TypeConversionError naming the token and Converter.Name.
//   • Converters are applied independently to every token.

package edgelist

import (
	"strconv"
	"time"
)

// Converter turns a raw token into a typed value.
// Name is reported in conversion errors ("int", "int64", ...).
type Converter[T any] struct {
	Name  string
	Parse func(token string) (T, error)
}

// convert applies c to token, wrapping failures as *TypeConversionError.
func (c Converter[T]) convert(field, token string) (T, error) {
	v, err := c.Parse(token)
	if err != nil {
		var zero T
		return zero, &TypeConversionError{Field: field, Token: token, Type: c.Name, Err: err}
	}

	return v, nil
}

// StringNodes passes node tokens through unchanged (the default).
var StringNodes = Converter[string]{
	Name:  "string",
	Parse: func(token string) (string, error) { return token, nil },
}

// IntNodes requires integer node tokens and canonicalizes them ("007" → "7").
var IntNodes = Converter[string]{
	Name: "int",
	Parse: func(token string) (string, error) {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	},
}

// IntTimestamps parses base-10 integer timestamps (the default).
var IntTimestamps = Converter[int64]{
	Name:  "int64",
	Parse: func(token string) (int64, error) { return strconv.ParseInt(token, 10, 64) },
}

// NodeFunc wraps fn as a named node converter.
func NodeFunc(name string, fn func(string) (string, error)) Converter[string] {
	return Converter[string]{Name: name, Parse: fn}
}

// TimestampFunc wraps fn as a named timestamp converter.
func TimestampFunc(name string, fn func(string) (int64, error)) Converter[int64] {
	return Converter[int64]{Name: name, Parse: fn}
}

// TimeLayout parses timestamps with a time layout and stores Unix seconds.
// Tokens must not contain the delimiter, so layouts with spaces need an
// explicit WithDelimiter.
func TimeLayout(layout string) Converter[int64] {
	return Converter[int64]{
		Name: "time(" + layout + ")",
		Parse: func(token string) (int64, error) {
			ts, err := time.Parse(layout, token)
			if err != nil {
				return 0, err
			}
			return ts.Unix(), nil
		},
	}
}

// UnixFormat renders Unix seconds with layout in UTC; the writer-side
// counterpart of TimeLayout for WithTimestampFormat.
func UnixFormat(layout string) func(int64) string {
	return func(t int64) string { return time.Unix(t, 0).UTC().Format(layout) }
}
