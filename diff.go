// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diff

import (
	"errors"
	"fmt"
	"slices"

	"querydiff.dev/diff/internal/config"
	"querydiff.dev/diff/internal/myers"
	"querydiff.dev/diff/internal/rvecs"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Keep   Op = iota // Two slice elements match, the element is kept.
	Delete           // A deletion of an element from the left slice.
	Insert           // An insertion of an element from the right slice.
)

// ErrMaxDistance is reported when the edit distance between two inputs exceeds the maximum
// configured with [MaxDistance]. Callers can retry with a higher maximum or treat the inputs as
// too different to diff. Use [errors.Is] to test for it.
var ErrMaxDistance = errors.New("maximum edit distance exceeded")

// Edit describes a single edit of a diff.
//
//   - For Keep, X and Y contain the matching elements and PosX and PosY their positions.
//   - For Delete, X and PosX describe the deleted element and Y is unset (zero value), PosY is -1.
//   - For Insert, Y and PosY describe the inserted element and X is unset (zero value), PosX is -1.
type Edit[T any] struct {
	Op   Op
	PosX int // Position in x, or -1 if the edit doesn't touch x.
	PosY int // Position in y, or -1 if the edit doesn't touch y.
	X, Y T
}

// Hunk describes a sequence of consecutive edits.
type Hunk[T any] struct {
	PosX, EndX int       // Start and end position in x.
	PosY, EndY int       // Start and end position in y.
	Edits      []Edit[T] // Edits to transform x[PosX:EndX] to y[PosY:EndY]
}

// Edits compares the contents of x and y and returns the minimal changes necessary to convert
// from one to the other.
//
// Edits returns one edit for every element in the input slices. If x and y are identical, the
// output consists of a keep edit for every input element. Concatenating the Keep and Delete
// edits reproduces x, concatenating the Keep and Insert edits reproduces y.
//
// The following option is supported: [MaxDistance]. If the maximum distance is exceeded, the
// returned error wraps [ErrMaxDistance] and no script is returned.
func Edits[T comparable](x, y []T, opts ...Option) ([]Edit[T], error) {
	cfg := config.FromOptions(opts, config.MaxDistance)
	rx, ry, _, ok := myers.Diff(x, y, cfg)
	if !ok {
		return nil, maxDistanceError(cfg)
	}
	return edits(x, y, rx, ry), nil
}

// EditsFunc compares the contents of x and y using the provided equality comparison and returns
// the minimal changes necessary to convert from one to the other.
//
// See [Edits] for the output contract and supported options. The predicate eq must be pure, see
// the package documentation.
//
// Note that this function has generally worse performance than [Edits] for diffs with many
// changes.
func EditsFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) ([]Edit[T], error) {
	cfg := config.FromOptions(opts, config.MaxDistance)
	rx, ry, _, ok := myers.DiffFunc(x, y, eq, cfg)
	if !ok {
		return nil, maxDistanceError(cfg)
	}
	return edits(x, y, rx, ry), nil
}

// Distance returns the edit distance between x and y: the minimal number of delete and insert
// operations necessary to convert one into the other.
//
// The following option is supported: [MaxDistance].
func Distance[T comparable](x, y []T, opts ...Option) (int, error) {
	cfg := config.FromOptions(opts, config.MaxDistance)
	_, _, d, ok := myers.Diff(x, y, cfg)
	if !ok {
		return 0, maxDistanceError(cfg)
	}
	return d, nil
}

// DistanceFunc returns the edit distance between x and y using the provided equality comparison.
//
// The following option is supported: [MaxDistance].
func DistanceFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) (int, error) {
	cfg := config.FromOptions(opts, config.MaxDistance)
	_, _, d, ok := myers.DiffFunc(x, y, eq, cfg)
	if !ok {
		return 0, maxDistanceError(cfg)
	}
	return d, nil
}

// Hunks compares the contents of x and y and returns the minimal changes necessary to convert
// from one to the other, grouped into hunks.
//
// A hunk represents a contiguous block of changes (insertions and deletions) along with some
// surrounding context. The amount of context can be configured using [Context]. If x and y are
// identical, the output has length zero.
//
// The following options are supported: [Context], [MaxDistance]
func Hunks[T comparable](x, y []T, opts ...Option) ([]Hunk[T], error) {
	cfg := config.FromOptions(opts, config.Context|config.MaxDistance)
	rx, ry, _, ok := myers.Diff(x, y, cfg)
	if !ok {
		return nil, maxDistanceError(cfg)
	}
	return hunks(x, y, rx, ry, cfg), nil
}

// HunksFunc compares the contents of x and y using the provided equality comparison and returns
// the minimal changes necessary to convert from one to the other, grouped into hunks.
//
// See [Hunks] for the output contract and supported options. The predicate eq must be pure, see
// the package documentation.
//
// Note that this function has generally worse performance than [Hunks] for diffs with many
// changes.
func HunksFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) ([]Hunk[T], error) {
	cfg := config.FromOptions(opts, config.Context|config.MaxDistance)
	rx, ry, _, ok := myers.DiffFunc(x, y, eq, cfg)
	if !ok {
		return nil, maxDistanceError(cfg)
	}
	return hunks(x, y, rx, ry, cfg), nil
}

func maxDistanceError(cfg config.Config) error {
	return fmt.Errorf("no edit script with at most %d edits: %w", cfg.MaxDistance, ErrMaxDistance)
}

func edits[T any](x, y []T, rx, ry []bool) []Edit[T] {
	// Compute the number of edits, this is relatively cheap and allows us to preallocate the
	// return value.
	n, m := len(rx)-1, len(ry)-1
	var nedits int
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			nedits++
			s++
		}
		for t < m && ry[t] {
			nedits++
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			nedits++
			s++
			t++
		}
	}
	if nedits == 0 {
		return nil
	}

	eout := make([]Edit[T], 0, nedits)
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			eout = append(eout, Edit[T]{
				Op:   Delete,
				PosX: s,
				PosY: -1,
				X:    x[s],
			})
			s++
		}
		for t < m && ry[t] {
			eout = append(eout, Edit[T]{
				Op:   Insert,
				PosX: -1,
				PosY: t,
				Y:    y[t],
			})
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			eout = append(eout, Edit[T]{
				Op:   Keep,
				PosX: s,
				PosY: t,
				X:    x[s],
				Y:    y[t],
			})
			s++
			t++
		}
	}
	return eout
}

func hunks[T any](x, y []T, rx, ry []bool, cfg config.Config) []Hunk[T] {
	// Compute the number of hunks and edits, this is relatively cheap and allows us to
	// preallocate the return values.
	var nhunks, nedits int
	for hunk := range rvecs.Hunks(rx, ry, cfg) {
		nhunks++
		nedits += hunk.Edits
	}
	if nhunks == 0 {
		return nil
	}

	eout := make([]Edit[T], 0, nedits)
	hout := make([]Hunk[T], 0, nhunks)
	for hunk := range rvecs.Hunks(rx, ry, cfg) {
		for s, t := hunk.S0, hunk.T0; s < hunk.S1 || t < hunk.T1; {
			for s < hunk.S1 && rx[s] {
				eout = append(eout, Edit[T]{
					Op:   Delete,
					PosX: s,
					PosY: -1,
					X:    x[s],
				})
				s++
			}
			for t < hunk.T1 && ry[t] {
				eout = append(eout, Edit[T]{
					Op:   Insert,
					PosX: -1,
					PosY: t,
					Y:    y[t],
				})
				t++
			}
			for s < hunk.S1 && t < hunk.T1 && !rx[s] && !ry[t] {
				eout = append(eout, Edit[T]{
					Op:   Keep,
					PosX: s,
					PosY: t,
					X:    x[s],
					Y:    y[t],
				})
				s++
				t++
			}
		}
		hout = append(hout, Hunk[T]{
			PosX:  hunk.S0,
			EndX:  hunk.S1,
			PosY:  hunk.T0,
			EndY:  hunk.T1,
			Edits: slices.Clip(eout),
		})
		eout = eout[len(eout):]
	}
	return hout
}
