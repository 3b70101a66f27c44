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

package myers

import (
	"slices"

	"querydiff.dev/diff/internal/rvecs"
)

type myers[T any] struct {
	// Inputs to compare.
	x, y []T

	// v-array storing the furthest reaching endpoint of a d-path in diagonal k in v[v0+k]
	// where v0 is the offset that translates k in [-(N+M), N+M] to an index into v. The
	// endpoints only store the s-coordinate since t = s - k.
	v  []int
	v0 int

	// trace[d] is a copy of the window v[-d..d] recorded after the search finished distance d,
	// trace[d][k+d] holding the endpoint on diagonal k. Retained so that backtrack can recover
	// the path the search took.
	trace [][]int

	// maxd bounds the edit distance the search may reach. A negative value means unbounded.
	maxd int

	// Mapping of s, t indices to the locations in the result vectors.
	xidx, yidx []int

	// Result vectors.
	rx, ry []bool
}

func (m *myers[T]) init(x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)

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

	N, M := smax-smin, tmax-tmin
	diagonals := N + M

	m.x = x
	m.y = y
	m.v = make([]int, 2*diagonals+3) // +1 for the middle point and +2 for the borders
	m.v0 = diagonals + 1             // +1 for the middle point
	m.trace = m.trace[:0]

	if m.xidx == nil || m.yidx == nil {
		idx := make([]int, max(len(x), len(y)))
		for i := range idx {
			idx[i] = i
		}
		m.xidx = idx[:len(x)]
		m.yidx = idx[:len(y)]
	}

	if m.rx == nil || m.ry == nil {
		m.rx, m.ry = rvecs.Make(x, y)
	}
	return
}

// run finds an optimal d-path from (smin, tmin) to (smax, tmax) and marks its non-diagonal
// steps in the result vectors. It reports the edit distance and whether a path was found
// within the configured maximum distance.
func (m *myers[T]) run(smin, smax, tmin, tmax int, eq func(a, b T) bool) (d int, ok bool) {
	d, ok = m.search(smin, smax, tmin, tmax, eq)
	if !ok {
		return 0, false
	}
	m.backtrack(smin, smax, tmin, tmax, d)
	return d, true
}

// search computes, for increasing d, the furthest reaching endpoint of a d-path on every
// diagonal reachable with d edits, recording each finished row in the trace. It stops at the
// first d for which a path arrives at (smax, tmax); that d is the minimal edit distance.
//
// Coordinates are relative to (smin, tmin), so the search runs from (0, 0) to (N, M).
func (m *myers[T]) search(smin, smax, tmin, tmax int, eq func(a, b T) bool) (d int, ok bool) {
	N, M := smax-smin, tmax-tmin
	x, y := m.x, m.y
	v, v0 := m.v, m.v0

	// A path of N deletions and M insertions always exists, so the search terminates at
	// d = N+M at the latest. A configured maximum distance lowers that bound; exceeding it
	// means giving up without a result, never returning a partial one.
	dmax := N + M
	if m.maxd >= 0 && m.maxd < dmax {
		dmax = m.maxd
	}

	// The d = 0 iteration starts with a vertical move from diagonal k = 1. Seeding its
	// endpoint with 0 places the start of the search at (0, 0) and lets the d = 0 iteration
	// run the same code as every other iteration.
	v[v0+1] = 0

	for d = 0; d <= dmax; d++ {
		for k := -d; k <= d; k += 2 {
			k0 := v0 + k

			// According to Lemma 2 there are two candidates for the furthest reaching d-path
			// on diagonal k: the (d-1)-path on diagonal k+1 extended by a vertical edge, or
			// the (d-1)-path on diagonal k-1 extended by a horizontal edge. Pick whichever
			// has reached further. When both have reached equally far, the horizontal edge
			// wins, prioritizing deletions over insertions; backtrack re-applies the
			// identical rule.
			var s int
			if k == -d || (k != d && v[k0-1] < v[k0+1]) {
				// Vertical edge. The t-coordinate is implied by t = s - k.
				s = v[k0+1]
			} else {
				s = v[k0-1] + 1
			}
			t := s - k

			// Then follow the diagonals as long as possible.
			for s < N && t < M && eq(x[smin+s], y[tmin+t]) {
				s++
				t++
			}

			// Store the endpoint of the furthest reaching d-path.
			v[k0] = s

			// We're done the moment a furthest reaching path arrives at (N, M).
			if s >= N && t >= M {
				m.trace = append(m.trace, slices.Clone(v[v0-d:v0+d+1]))
				return d, true
			}
		}
		m.trace = append(m.trace, slices.Clone(v[v0-d:v0+d+1]))
	}
	return 0, false
}

// backtrack walks the trace from the terminal distance d back to the origin, recovering for
// every d which edge the search took and marking the corresponding deletion or insertion in
// the result vectors. Elements consumed by diagonal runs stay unmarked and pair up as matches.
//
// The walk is a plain loop rather than a recursion, the recursion depth would otherwise grow
// with the edit distance.
func (m *myers[T]) backtrack(smin, smax, tmin, tmax, d int) {
	s, t := smax-smin, tmax-tmin
	for ; d > 0; d-- {
		prev := m.trace[d-1]
		pv := func(k int) int { return prev[k+d-1] }

		// Re-apply the predecessor rule from search, including the tie break, against the
		// recorded (d-1) endpoints.
		k := s - t
		var pk int
		if k == -d || (k != d && pv(k-1) < pv(k+1)) {
			pk = k + 1
		} else {
			pk = k - 1
		}
		ps := pv(pk)
		pt := ps - pk

		// Unwind the diagonal run that followed the edge.
		for s > ps && t > pt {
			s--
			t--
		}

		if pk == k+1 {
			// Vertical edge: y[pt] was inserted.
			m.ry[m.yidx[tmin+pt]] = true
		} else {
			// Horizontal edge: x[ps] was deleted.
			m.rx[m.xidx[smin+ps]] = true
		}
		s, t = ps, pt
	}
}
