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

import "querydiff.dev/diff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of matches to include as a prefix and postfix for hunks returned in
// [Hunks] and [HunksFunc]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// MaxDistance sets an upper bound for the edit distance the comparison functions are willing to
// search. Comparisons whose inputs are further apart fail with an error wrapping
// [ErrMaxDistance] instead of returning a result.
//
// The search cost grows with the distance between the inputs, up to O((N+M)²) for inputs that
// have nothing in common. MaxDistance bounds that cost for callers that only care about inputs
// that are reasonably similar. Values <= 0 mean unbounded, which is the default.
func MaxDistance(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxDistance = n
		return config.MaxDistance
	}
}
