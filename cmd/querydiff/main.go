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

// Command querydiff compares the GraphQL queries of two request documents and prints a line
// diff of their canonical forms.
//
// The inputs are JSON request documents of the form {"query": "...", "variables": {...}}; only
// the query field is compared.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"querydiff.dev/diff"
	"querydiff.dev/diff/querydiff"
	"querydiff.dev/diff/querydiff/color"
)

func main() {
	log.SetHandler(&logHandler{})

	var (
		maxDistance int
		colorMode   string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:           "querydiff <expected.json> <actual.json>",
		Short:         "Compare the GraphQL queries of two request documents",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			expected, err := readQuery(args[0])
			if err != nil {
				return err
			}
			actual, err := readQuery(args[1])
			if err != nil {
				return err
			}

			var opts []diff.Option
			if maxDistance > 0 {
				opts = append(opts, diff.MaxDistance(maxDistance))
			}
			if useColor(colorMode) {
				opts = append(opts, color.Default())
			}

			out, err := querydiff.Unified(expected, actual, opts...)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDistance, "max-distance", 0, "fail when the queries differ in more than this many lines (0 = unbounded)")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "color the output: auto, always, or never")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		log.Error(err.Error())
		if errors.Is(err, diff.ErrMaxDistance) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// readQuery extracts the query string from the GraphQL request document at path.
func readQuery(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	q := gjson.GetBytes(data, "query")
	if !q.Exists() {
		return "", fmt.Errorf("%s: request document has no query field", path)
	}
	log.WithField("file", path).WithField("bytes", len(q.String())).Debug("loaded query")
	return q.String(), nil
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

// logHandler writes log entries to stderr, one line per entry.
type logHandler struct{}

func (h *logHandler) HandleLog(e *log.Entry) error {
	_, err := fmt.Fprintf(os.Stderr, "querydiff: %s: %s\n", e.Level, e.Message)
	return err
}
