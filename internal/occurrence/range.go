// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package occurrence implements the lattice of event occurrence ranges.
//
// A [Range] describes how many times an event, such as the assignment of a variable,
// has happened by a program point:
//
//	Zero        never
//	AtMostOnce  zero or one time, depending on the path
//	ExactlyOnce exactly one time
//	Unknown     any number of times
package occurrence

// Range is the number of times an event has happened.
type Range uint8

//go:generate go tool stringer -type Range,Merge -linecomment -output range_string.go
const (
	// Zero means the event has not happened.
	Zero Range = iota // zero

	// AtMostOnce means the event happened once on some paths and never on others.
	AtMostOnce // at most once

	// ExactlyOnce means the event happened exactly once.
	ExactlyOnce // exactly once

	// Unknown means the event may have happened any number of times.
	Unknown // unknown

	// Never marks an event that cannot happen. It is not part of the lattice and the identity of [Join].
	Never // never
)

// joinTable is the symmetric "sum" of two ranges.
var joinTable = [4][4]Range{
	Zero:        {Zero: Zero, AtMostOnce: AtMostOnce, ExactlyOnce: AtMostOnce, Unknown: Unknown},
	AtMostOnce:  {Zero: AtMostOnce, AtMostOnce: AtMostOnce, ExactlyOnce: Unknown, Unknown: Unknown},
	ExactlyOnce: {Zero: AtMostOnce, AtMostOnce: Unknown, ExactlyOnce: Unknown, Unknown: Unknown},
	Unknown:     {Zero: Unknown, AtMostOnce: Unknown, ExactlyOnce: Unknown, Unknown: Unknown},
}

// orTable is the union of the ranges of two alternative paths.
var orTable = [4][4]Range{
	Zero:        {Zero: Zero, AtMostOnce: AtMostOnce, ExactlyOnce: AtMostOnce, Unknown: Unknown},
	AtMostOnce:  {Zero: AtMostOnce, AtMostOnce: AtMostOnce, ExactlyOnce: AtMostOnce, Unknown: Unknown},
	ExactlyOnce: {Zero: AtMostOnce, AtMostOnce: AtMostOnce, ExactlyOnce: ExactlyOnce, Unknown: Unknown},
	Unknown:     {Zero: Unknown, AtMostOnce: Unknown, ExactlyOnce: Unknown, Unknown: Unknown},
}

// Join returns the sum of two ranges. It is commutative and widens towards [Unknown].
//
// Two events of [ExactlyOnce] sum to [Unknown]. Join is not associative when [AtMostOnce], [Zero]
// and [ExactlyOnce] meet, so callers fold operands in a fixed order.
func Join(a, b Range) Range {
	return lookup(&joinTable, a, b)
}

// Or returns the union of the ranges of two alternative paths.
//
// Unlike [Join], Or is idempotent: ExactlyOnce on both paths stays [ExactlyOnce].
func Or(a, b Range) Range {
	return lookup(&orTable, a, b)
}

func lookup(table *[4][4]Range, a, b Range) Range {
	switch {
	case a == Never:
		return b

	case b == Never:
		return a

	case a > Unknown || b > Unknown:
		return Unknown
	}

	return table[a][b]
}

// CanBeVisited reports whether the event can happen at all.
func CanBeVisited(r Range) bool { return r != Never }

// Definite reports whether the event happened exactly once on every path.
func (r Range) Definite() bool { return r == ExactlyOnce }

// Possible reports whether the event might have happened.
func (r Range) Possible() bool { return r == AtMostOnce || r == ExactlyOnce || r == Unknown }

// Merge selects how ranges of alternative paths are merged at join points.
type Merge uint8

const (
	// MergeSum merges with [Join].
	MergeSum Merge = iota // sum

	// MergeUnion merges with [Or].
	MergeUnion // union
)

// Apply merges two ranges according to the policy.
func (m Merge) Apply(a, b Range) Range {
	if m == MergeUnion {
		return Or(a, b)
	}

	return Join(a, b)
}
