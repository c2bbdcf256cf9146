// SPDX-License-Identifier: MIT
// Package: dynlath/store
//
// errors.go — sentinel errors of the dataset store.

package store

import "errors"

// ErrNotFound indicates that no dataset matches the given id or name.
var ErrNotFound = errors.New("store: dataset not found")

// ErrEmptyName indicates that a dataset was saved without a name.
var ErrEmptyName = errors.New("store: dataset name is empty")

// ErrNilGraph indicates a nil graph or target.
var ErrNilGraph = errors.New("store: graph is nil")
