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

// Package querydiff compares GraphQL query documents line by line.
//
// Both documents are parsed and reformatted canonically before the comparison, so differences
// in whitespace, indentation, or layout never show up in the output; differences in structure
// always do. The comparison itself is literal: fields are compared in document order, variable
// names by name, and fragments as written. Callers that need tolerance for reordering or
// renaming should normalize the documents before handing them to this package.
package querydiff

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"

	"querydiff.dev/diff"
	"querydiff.dev/diff/internal/config"
	"querydiff.dev/diff/internal/myers"
)

const (
	prefixKeep   = "  "
	prefixDelete = "- "
	prefixInsert = "+ "
)

const reset = "\033[0m"

// Unified compares the GraphQL query documents expected and actual and renders the minimal
// line diff between their canonical forms. Kept lines are prefixed with "  ", deleted lines
// (present only in expected) with "- ", and inserted lines (present only in actual) with "+ ".
//
// When both documents declare the same operation type, the declaration line is treated as
// shared context and excluded from the comparison, so differing operation names don't drown
// out the structural diff.
//
// The following options are supported: [querydiff.dev/diff.MaxDistance] and the options in
// [querydiff.dev/diff/querydiff/color].
func Unified(expected, actual string, opts ...diff.Option) (string, error) {
	cfg := config.FromOptions(opts, config.MaxDistance|config.Color)

	xdoc, err := parse("expected", expected)
	if err != nil {
		return "", err
	}
	ydoc, err := parse("actual", actual)
	if err != nil {
		return "", err
	}

	xlines := lines(xdoc)
	ylines := lines(ydoc)

	skip := 0
	if len(xlines) > 0 && len(ylines) > 0 && operationType(xdoc) != "" && operationType(xdoc) == operationType(ydoc) {
		skip = 1
	}

	rx, ry, _, ok := myers.Diff(xlines[skip:], ylines[skip:], cfg)
	if !ok {
		return "", fmt.Errorf("queries differ in more than %d lines: %w", cfg.MaxDistance, diff.ErrMaxDistance)
	}

	var b strings.Builder
	if skip == 1 {
		writeLine(&b, cfg.Color.Keep, prefixKeep, xlines[0])
	}
	render(&b, xlines[skip:], ylines[skip:], rx, ry, cfg.Color)
	return b.String(), nil
}

func parse(name, query string) (*ast.QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: query})
	if err != nil {
		return nil, fmt.Errorf("parsing %s query: %w", name, err)
	}
	return doc, nil
}

// lines renders doc in its canonical form and splits it into lines without trailing newlines.
func lines(doc *ast.QueryDocument) []string {
	var b strings.Builder
	formatter.NewFormatter(&b).FormatQueryDocument(doc)
	s := strings.TrimRight(b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func operationType(doc *ast.QueryDocument) ast.Operation {
	if len(doc.Operations) == 0 {
		return ""
	}
	return doc.Operations[0].Operation
}

func render(b *strings.Builder, xlines, ylines []string, rx, ry []bool, cc config.ColorConfig) {
	n, m := len(rx)-1, len(ry)-1
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			writeLine(b, cc.Delete, prefixDelete, xlines[s])
			s++
		}
		for t < m && ry[t] {
			writeLine(b, cc.Insert, prefixInsert, ylines[t])
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			writeLine(b, cc.Keep, prefixKeep, xlines[s])
			s++
			t++
		}
	}
}

func writeLine(b *strings.Builder, color, prefix, line string) {
	if color != "" {
		b.WriteString(color)
	}
	b.WriteString(prefix)
	b.WriteString(line)
	if color != "" {
		b.WriteString(reset)
	}
	b.WriteByte('\n')
}
