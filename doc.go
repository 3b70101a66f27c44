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

// Package diff computes minimal edit scripts between two slices: the shortest sequence of
// keep, delete, and insert operations that transforms one slice into the other.
//
// The main functions are [Edits], which returns one operation per touched element, and [Hunks],
// which groups changes into contextual blocks. Both guarantee a minimal script: no script with
// fewer delete and insert operations exists. [Distance] reports just the number of those
// operations. The *Func variants accept a custom equality predicate; element identity is defined
// entirely by that predicate, the functions themselves never normalize or reorder their inputs.
//
// Equality predicates must be pure: deterministic, total over the element types, and stable for
// the same pair across a whole call. The functions call the predicate many times and a predicate
// that answers inconsistently, or panics, makes the result meaningless; panics are not recovered.
//
// All functions run in O((N+M)·D) time where N and M are the input lengths and D is the edit
// distance. For very dissimilar inputs D approaches N+M, so callers diffing untrusted or
// potentially unrelated inputs can bound the cost with [MaxDistance]; exceeding the bound fails
// with [ErrMaxDistance] instead of returning a partial script.
//
// Any slice is a valid input, including nil: diffing against an empty slice yields all inserts
// or all deletes.
//
// Note: For comparing GraphQL query documents, please see [querydiff.dev/diff/querydiff].
//
// [querydiff.dev/diff/querydiff]: https://pkg.go.dev/querydiff.dev/diff/querydiff
package diff
