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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks returned.
	Context int

	// MaxDistance bounds the edit distance the search is willing to spend. Zero or a negative
	// value means unbounded.
	MaxDistance int

	// Colors used by querydiff to color rendered output. Empty codes leave the output
	// uncolored.
	Color ColorConfig
}

// ColorConfig holds the ANSI SGR escape sequences used to color rendered diffs.
type ColorConfig struct {
	Keep   string
	Delete string
	Insert string
}

// Default is the default configuration.
var Default = Config{
	Context:     3,
	MaxDistance: 0,
}

// Flag describes a single config entry. This is used to detect if options are being passed to
// functions that don't support them.
type Flag int

const (
	Context Flag = 1 << iota
	MaxDistance
	Color
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "diff.Context"
	case MaxDistance:
		return "diff.MaxDistance"
	case Color:
		return "querydiff/color option"
	default:
		panic("never reached")
	}
}
