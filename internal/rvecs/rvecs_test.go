// Copyright 2026 Florian Zenker (flo@znkr.io)
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

package rvecs_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"querydiff.dev/diff/internal/config"
	"querydiff.dev/diff/internal/rvecs"
)

func TestMake(t *testing.T) {
	x := []int{1, 2, 3}
	y := []int{4, 5}
	rx, ry := rvecs.Make(x, y)
	if got, want := len(rx), len(x)+1; got != want {
		t.Errorf("len(rx) = %d, want %d", got, want)
	}
	if got, want := len(ry), len(y)+1; got != want {
		t.Errorf("len(ry) = %d, want %d", got, want)
	}
	if slices.Contains(rx, true) || slices.Contains(ry, true) {
		t.Errorf("Make(...) returned vectors with preset marks")
	}
}

func TestHunks(t *testing.T) {
	tests := []struct {
		name    string
		n, m    int   // input lengths
		mx, my  []int // marked positions in x and y
		context int
		want    []rvecs.Hunk
	}{
		{
			name: "no-marks",
			n:    3,
			m:    3,
			want: nil,
		},
		{
			name:    "replace-no-context",
			n:       3,
			m:       3,
			mx:      []int{1},
			my:      []int{1},
			context: 0,
			want: []rvecs.Hunk{
				{S0: 1, S1: 2, T0: 1, T1: 2, Edits: 2},
			},
		},
		{
			name:    "delete-at-start",
			n:       3,
			m:       2,
			mx:      []int{0},
			context: 1,
			want: []rvecs.Hunk{
				{S0: 0, S1: 2, T0: 0, T1: 1, Edits: 2},
			},
		},
		{
			name:    "two-hunks",
			n:       8,
			m:       6,
			mx:      []int{0, 5},
			context: 1,
			want: []rvecs.Hunk{
				{S0: 0, S1: 2, T0: 0, T1: 1, Edits: 2},
				{S0: 4, S1: 7, T0: 3, T1: 5, Edits: 3},
			},
		},
		{
			name:    "overlapping-context-merges",
			n:       6,
			m:       4,
			mx:      []int{0, 3},
			context: 1,
			want: []rvecs.Hunk{
				{S0: 0, S1: 5, T0: 0, T1: 3, Edits: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry := rvecs.Make(make([]int, tt.n), make([]int, tt.m))
			for _, i := range tt.mx {
				rx[i] = true
			}
			for _, i := range tt.my {
				ry[i] = true
			}
			cfg := config.Default
			cfg.Context = tt.context
			got := slices.Collect(rvecs.Hunks(rx, ry, cfg))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hunks(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}
