// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package myers

import (
	"querydiff.dev/diff/internal/config"
	"querydiff.dev/diff/internal/rvecs"
)

// Diff compares the contents of x and y and returns the changes necessary to convert from one to
// the other together with the edit distance d.
//
// If cfg.MaxDistance is positive and no conversion with at most cfg.MaxDistance edits exists, ok
// is false and the result vectors are nil; there is no partial result.
func Diff[T comparable](x, y []T, cfg config.Config) (rx, ry []bool, d int, ok bool) {
	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	// Allocate result vectors.
	rx, ry = rvecs.Make(x, y)

	// Handle trivial cases without doing anything extra.
	switch {
	case smin != smax && tmin == tmax:
		d = smax - smin
		if cfg.MaxDistance > 0 && d > cfg.MaxDistance {
			return nil, nil, 0, false
		}
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return rx, ry, d, true
	case smin == smax && tmin != tmax:
		d = tmax - tmin
		if cfg.MaxDistance > 0 && d > cfg.MaxDistance {
			return nil, nil, 0, false
		}
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return rx, ry, d, true
	case smin == smax && tmin == tmax:
		return rx, ry, 0, true
	}

	// First reduce the problem size by skipping all elements that are unique to x or y. Those are
	// always deletions or insertions respectively and can never be part of a match, so removing
	// them changes neither the remaining matches nor the minimal distance. This optimization
	// dramatically reduces the time it takes to compute very large diffs, because in practice
	// those diffs will have many elements unique to x or y.
	//
	// While we're at it, also assign a unique ID to every non-unique element to use for
	// comparisons during the application of Myers algorithm:
	//
	//  - scan x and assign a negative id to every unique element in x
	//  - scan y and change the sign of every element that also appears in y
	unique := make(map[T]int, smax-smin)
	for s := smin; s < smax; s++ {
		if unique[x[s]] == 0 {
			unique[x[s]] = -(len(unique) + 1)
		}
	}
	ny := 0
	for t := tmin; t < tmax; t++ {
		if id := unique[y[t]]; id < 0 {
			// not unique
			id = -id
			unique[y[t]] = id
			ny++
		} else if id > 0 {
			// not unique
			ny++
		}
	}
	nx := 0
	for s := smin; s < smax; s++ {
		if unique[x[s]] > 0 {
			nx++
		}
	}

	// Every one-sided element is a forced edit, they count against the distance budget just
	// like edits found by the search.
	forced := (smax - smin - nx) + (tmax - tmin - ny)
	if cfg.MaxDistance > 0 && forced > cfg.MaxDistance {
		return nil, nil, 0, false
	}

	// Use the information about the unique elements to generate a subset of non-unique elements
	// to apply Myers algorithm on. If an id is > 0, the element appears in both x and y, if it
	// is <= 0 it only appears in either x or y.
	buf := make([]int, 2*(nx+ny))
	var x0, y0, xidx, yidx []int
	x0, buf = buf[:0:nx], buf[nx:]
	y0, buf = buf[:0:ny], buf[ny:]
	xidx, buf = buf[:0:nx], buf[nx:]
	yidx, buf = buf[:0:ny], buf[ny:]
	if len(buf) != 0 && cap(buf) != 0 {
		panic("something went wrong during buffer assignments")
	}
	for s := smin; s < smax; s++ {
		if id := unique[x[s]]; id > 0 {
			xidx = append(xidx, s)
			x0 = append(x0, id)
		} else {
			// Unique to x, always a deletion.
			rx[s] = true
		}
	}
	for t := tmin; t < tmax; t++ {
		if id := unique[y[t]]; id > 0 {
			yidx = append(yidx, t)
			y0 = append(y0, id)
		} else {
			// Unique to y, always an insertion.
			ry[t] = true
		}
	}

	// Perform Myers algorithm on the unique IDs.
	eq := func(a, b int) bool { return a == b }
	var m myers[int]
	m.xidx, m.yidx = xidx, yidx
	m.rx, m.ry = rx, ry
	m.maxd = -1
	if cfg.MaxDistance > 0 {
		m.maxd = cfg.MaxDistance - forced
	}
	smin0, smax0, tmin0, tmax0 := m.init(x0, y0, eq)
	d0, ok := m.run(smin0, smax0, tmin0, tmax0, eq)
	if !ok {
		return nil, nil, 0, false
	}
	return rx, ry, forced + d0, true
}

// DiffFunc compares the contents of x and y using the provided equality comparison and returns
// the changes necessary to convert from one to the other together with the edit distance d.
//
// If cfg.MaxDistance is positive and no conversion with at most cfg.MaxDistance edits exists, ok
// is false and the result vectors are nil; there is no partial result.
//
// Note that this function has generally worse performance than [Diff] for diffs with many
// changes.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (rx, ry []bool, d int, ok bool) {
	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	// Allocate result vectors.
	rx, ry = rvecs.Make(x, y)

	// Handle trivial cases without doing anything extra.
	switch {
	case smin != smax && tmin == tmax:
		d = smax - smin
		if cfg.MaxDistance > 0 && d > cfg.MaxDistance {
			return nil, nil, 0, false
		}
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return rx, ry, d, true
	case smin == smax && tmin != tmax:
		d = tmax - tmin
		if cfg.MaxDistance > 0 && d > cfg.MaxDistance {
			return nil, nil, 0, false
		}
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return rx, ry, d, true
	case smin == smax && tmin == tmax:
		return rx, ry, 0, true
	}

	var m myers[T]
	m.rx, m.ry = rx, ry
	m.maxd = -1
	if cfg.MaxDistance > 0 {
		m.maxd = cfg.MaxDistance
	}
	smin, smax, tmin, tmax = m.init(x, y, eq)
	d, ok = m.run(smin, smax, tmin, tmax, eq)
	if !ok {
		return nil, nil, 0, false
	}
	return m.rx, m.ry, d, true
}
