// SPDX-License-Identifier: MIT
// Package: dynlath/edgelist
//
// tokenize.go — comment stripping and field splitting for one input line.

package edgelist

import "strings"

// tokenize strips the comment and splits line into fields.
// ok is false when nothing but whitespace remains.
func tokenize(line, comments, delimiter string) (fields []string, ok bool) {
	if comments != "" {
		if p := strings.Index(line, comments); p >= 0 {
			line = line[:p]
		}
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}
	if delimiter == "" {
		return strings.Fields(line), true
	}
	fields = strings.Split(line, delimiter)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields, true
}
