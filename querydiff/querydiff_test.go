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

package querydiff

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"querydiff.dev/diff"
	"querydiff.dev/diff/internal/config"
	"querydiff.dev/diff/querydiff/color"
)

// splitLines is a test helper that never returns the empty trailing line.
func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestUnifiedIdentical(t *testing.T) {
	// Two formattings of the same document, the canonicalization must make the diff empty.
	expected := `query GetUser { user { name email } }`
	actual := `query GetUser {
  user {
    name
    email
  }
}`
	got, err := Unified(expected, actual)
	if err != nil {
		t.Fatalf("Unified(...) failed: %v", err)
	}
	for _, line := range splitLines(got) {
		if !strings.HasPrefix(line, prefixKeep) {
			t.Errorf("identical queries produced a change line: %q", line)
		}
	}
}

func TestUnifiedFieldRename(t *testing.T) {
	expected := `query { user { name } }`
	actual := `query { user { id } }`
	got, err := Unified(expected, actual)
	if err != nil {
		t.Fatalf("Unified(...) failed: %v", err)
	}

	var deletes, inserts []string
	for _, line := range splitLines(got) {
		switch {
		case strings.HasPrefix(line, prefixDelete):
			deletes = append(deletes, line)
		case strings.HasPrefix(line, prefixInsert):
			inserts = append(inserts, line)
		case !strings.HasPrefix(line, prefixKeep):
			t.Errorf("line with unknown prefix: %q", line)
		}
	}
	if len(deletes) != 1 || !strings.Contains(deletes[0], "name") {
		t.Errorf("want exactly one deleted line containing %q, got %q", "name", deletes)
	}
	if len(inserts) != 1 || !strings.Contains(inserts[0], "id") {
		t.Errorf("want exactly one inserted line containing %q, got %q", "id", inserts)
	}
}

func TestUnifiedOperationNamesAreSharedContext(t *testing.T) {
	// Same operation type, different names: the declaration line is context, not a change.
	expected := `query GetUser { user { name } }`
	actual := `query FetchUser { user { name } }`
	got, err := Unified(expected, actual)
	if err != nil {
		t.Fatalf("Unified(...) failed: %v", err)
	}
	for _, line := range splitLines(got) {
		if !strings.HasPrefix(line, prefixKeep) {
			t.Errorf("differing operation names produced a change line: %q", line)
		}
	}
}

func TestUnifiedDifferentOperationTypes(t *testing.T) {
	// A query and a mutation have nothing to share, every line is a change.
	expected := `query { user { name } }`
	actual := `mutation { updateUser { name } }`
	got, err := Unified(expected, actual)
	if err != nil {
		t.Fatalf("Unified(...) failed: %v", err)
	}
	var changes int
	for _, line := range splitLines(got) {
		if strings.HasPrefix(line, prefixDelete) || strings.HasPrefix(line, prefixInsert) {
			changes++
		}
	}
	if changes == 0 {
		t.Errorf("want at least one change line, got none:\n%s", got)
	}
}

func TestUnifiedParseError(t *testing.T) {
	if _, err := Unified(`query {`, `query { user }`); err == nil || !strings.Contains(err.Error(), "expected") {
		t.Errorf("Unified(...) error = %v, want parse error naming the expected document", err)
	}
	if _, err := Unified(`query { user }`, `query {`); err == nil || !strings.Contains(err.Error(), "actual") {
		t.Errorf("Unified(...) error = %v, want parse error naming the actual document", err)
	}
}

func TestUnifiedMaxDistance(t *testing.T) {
	expected := `query { a b c d e f g h }`
	actual := `query { s t u v w x y z }`
	if _, err := Unified(expected, actual, diff.MaxDistance(1)); !errors.Is(err, diff.ErrMaxDistance) {
		t.Errorf("Unified(...) error = %v, want ErrMaxDistance", err)
	}
}

func TestUnifiedColor(t *testing.T) {
	expected := `query { user { name } }`
	actual := `query { user { id } }`
	got, err := Unified(expected, actual, color.Default())
	if err != nil {
		t.Fatalf("Unified(...) failed: %v", err)
	}
	if !strings.Contains(got, "\033[31m"+prefixDelete) {
		t.Errorf("deleted lines are not colored red:\n%q", got)
	}
	if !strings.Contains(got, "\033[32m"+prefixInsert) {
		t.Errorf("inserted lines are not colored green:\n%q", got)
	}
	if !strings.Contains(got, reset) {
		t.Errorf("colored lines are not reset:\n%q", got)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []string
		mx, my []int
		color  config.ColorConfig
		want   string
	}{
		{
			name: "keeps-only",
			x:    []string{"a", "b"},
			y:    []string{"a", "b"},
			want: "  a\n  b\n",
		},
		{
			name: "replace",
			x:    []string{"a", "b", "c"},
			y:    []string{"a", "x", "c"},
			mx:   []int{1},
			my:   []int{1},
			want: "  a\n- b\n+ x\n  c\n",
		},
		{
			name:  "colored-delete",
			x:     []string{"a"},
			y:     nil,
			mx:    []int{0},
			color: config.ColorConfig{Delete: "\033[31m"},
			want:  "\033[31m- a\033[0m\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx := make([]bool, len(tt.x)+1)
			ry := make([]bool, len(tt.y)+1)
			for _, i := range tt.mx {
				rx[i] = true
			}
			for _, i := range tt.my {
				ry[i] = true
			}
			var b strings.Builder
			render(&b, tt.x, tt.y, rx, ry, tt.color)
			if diff := cmp.Diff(tt.want, b.String()); diff != "" {
				t.Errorf("render(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}
