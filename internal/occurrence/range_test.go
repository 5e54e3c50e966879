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

package occurrence_test

import (
	"testing"

	"fillmore-labs.com/initflow/internal/cfg"
	. "fillmore-labs.com/initflow/internal/occurrence"
)

var lattice = [...]Range{Zero, AtMostOnce, ExactlyOnce, Unknown}

func TestJoinTable(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		a, b, want Range
	}{
		{Zero, Zero, Zero},
		{Zero, AtMostOnce, AtMostOnce},
		{Zero, ExactlyOnce, AtMostOnce},
		{Zero, Unknown, Unknown},
		{AtMostOnce, AtMostOnce, AtMostOnce},
		{AtMostOnce, ExactlyOnce, Unknown},
		{AtMostOnce, Unknown, Unknown},
		{ExactlyOnce, ExactlyOnce, Unknown},
		{ExactlyOnce, Unknown, Unknown},
		{Unknown, Unknown, Unknown},
	}

	for _, tt := range tests {
		if got := Join(tt.a, tt.b); got != tt.want {
			t.Errorf("Join(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}

		if got := Join(tt.b, tt.a); got != tt.want {
			t.Errorf("Join(%s, %s) = %s, want %s", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestLatticeLaws(t *testing.T) {
	t.Parallel()

	ops := [...]struct {
		name   string
		op     func(a, b Range) Range
		domain []Range
	}{
		{"join", Join, []Range{Zero, ExactlyOnce, Unknown}},
		{"join_widened", Join, []Range{AtMostOnce, ExactlyOnce, Unknown}},
		{"or", Or, lattice[:]},
	}

	for _, o := range ops {
		t.Run(o.name, func(t *testing.T) {
			t.Parallel()

			for _, a := range o.domain {
				for _, b := range o.domain {
					if ab, ba := o.op(a, b), o.op(b, a); ab != ba {
						t.Errorf("%s(%s, %s) = %s, but reversed %s", o.name, a, b, ab, ba)
					}

					for _, c := range o.domain {
						if l, r := o.op(o.op(a, b), c), o.op(a, o.op(b, c)); l != r {
							t.Errorf("%s not associative for %s, %s, %s: %s != %s", o.name, a, b, c, l, r)
						}
					}
				}

				if got := o.op(a, Never); got != a {
					t.Errorf("%s(%s, never) = %s, want %[2]s", o.name, a, got)
				}

				if got := o.op(a, Unknown); got != Unknown {
					t.Errorf("%s(%s, unknown) = %s, want unknown", o.name, a, got)
				}
			}
		})
	}
}

func TestJoinFoldOrder(t *testing.T) {
	t.Parallel()

	// A path that may have assigned, followed by one that has not, followed by one that has.
	left := Join(Join(AtMostOnce, Zero), ExactlyOnce)
	right := Join(AtMostOnce, Join(Zero, ExactlyOnce))

	if left != Unknown || right != AtMostOnce {
		t.Errorf("Got %s and %s, want unknown and at most once", left, right)
	}
}

func TestZeroIsNoIdentity(t *testing.T) {
	t.Parallel()

	if got := Join(AtMostOnce, Zero); got != AtMostOnce {
		t.Errorf("Join(at most once, zero) = %s, want at most once", got)
	}

	if got := Join(ExactlyOnce, Zero); got == ExactlyOnce {
		t.Errorf("Join(exactly once, zero) = %s, want a wider range", got)
	}
}

func TestOrIdempotent(t *testing.T) {
	t.Parallel()

	for _, a := range lattice {
		if got := Or(a, a); got != a {
			t.Errorf("Or(%s, %[1]s) = %s, want %[1]s", a, got)
		}
	}

	if got := Or(AtMostOnce, ExactlyOnce); got != AtMostOnce {
		t.Errorf("Or(at most once, exactly once) = %s, want at most once", got)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	if got := MergeSum.Apply(ExactlyOnce, ExactlyOnce); got != Unknown {
		t.Errorf("sum merge = %s, want unknown", got)
	}

	if got := MergeUnion.Apply(ExactlyOnce, ExactlyOnce); got != ExactlyOnce {
		t.Errorf("union merge = %s, want exactly once", got)
	}
}

func TestCanBeVisited(t *testing.T) {
	t.Parallel()

	for _, r := range lattice {
		if !CanBeVisited(r) {
			t.Errorf("Expected %s to be visitable", r)
		}
	}

	if CanBeVisited(Never) {
		t.Error("Expected never not to be visitable")
	}
}

func TestMarkedAdd(t *testing.T) {
	t.Parallel()

	first := ExactlyOnce.At(1)
	second := ExactlyOnce.At(2)

	got := first.Add(second)
	if want := Unknown.At(2); got != want {
		t.Errorf("Got %s, want %s", got, want)
	}

	if u := Unmarked(Zero); u.HasNode() || u.Node != cfg.NoNode {
		t.Errorf("Expected unmarked range, got %s", u)
	}

	if got, want := first.String(), "exactly once@1"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
