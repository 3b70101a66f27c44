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

// Package color provides options to render query diffs with ANSI escape sequences.
//
// The options accept raw SGR parameters (e.g. 31 for a red foreground, see ECMA-48 or any ANSI
// escape code reference). No attempt is made to verify that the configured parameters are
// valid or that the output terminal supports them.
package color

import (
	"fmt"
	"strings"

	"querydiff.dev/diff"
	"querydiff.dev/diff/internal/config"
)

// Default enables the conventional diff coloring: deletions in red, insertions in green.
func Default() diff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Color.Delete = format(31)
		cfg.Color.Insert = format(32)
		return config.Color
	}
}

// Keeps sets the SGR parameters used to display kept lines.
func Keeps(params ...int) diff.Option {
	code := format(params...)
	return func(cfg *config.Config) config.Flag {
		cfg.Color.Keep = code
		return config.Color
	}
}

// Deletes sets the SGR parameters used to display deleted lines.
func Deletes(params ...int) diff.Option {
	code := format(params...)
	return func(cfg *config.Config) config.Flag {
		cfg.Color.Delete = code
		return config.Color
	}
}

// Inserts sets the SGR parameters used to display inserted lines.
func Inserts(params ...int) diff.Option {
	code := format(params...)
	return func(cfg *config.Config) config.Flag {
		cfg.Color.Insert = code
		return config.Color
	}
}

func format(params ...int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%d", p)
	}
	sb.WriteByte('m')
	return sb.String()
}
