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

package pathinfo

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"fillmore-labs.com/initflow/internal/cfg"
	"fillmore-labs.com/initflow/internal/occurrence"
)

// Info maps tracked symbols to their occurrence ranges on one class of paths.
//
// An Info is immutable, all updates return a new value. The zero value is empty.
type Info struct {
	ranges map[cfg.Symbol]occurrence.Marked
}

// Get returns the range of v and whether v is present.
func (i Info) Get(v cfg.Symbol) (occurrence.Marked, bool) {
	r, ok := i.ranges[v]

	return r, ok
}

// Len returns the number of symbols with a range.
func (i Info) Len() int { return len(i.ranges) }

// All iterates over all symbols and their ranges, in no particular order.
func (i Info) All() iter.Seq2[cfg.Symbol, occurrence.Marked] {
	return maps.All(i.ranges)
}

func (i Info) with(v cfg.Symbol, r occurrence.Marked) Info {
	ranges := make(map[cfg.Symbol]occurrence.Marked, len(i.ranges)+1)
	maps.Copy(ranges, i.ranges)
	ranges[v] = r

	return Info{ranges: ranges}
}

func (i Info) without(v cfg.Symbol) Info {
	if _, ok := i.ranges[v]; !ok {
		return i
	}

	ranges := maps.Clone(i.ranges)
	delete(ranges, v)

	return Info{ranges: ranges}
}

// join merges two infos symbol-wise, a symbol absent on one side counts as [occurrence.Zero].
// Markers of the left side are preferred.
func (i Info) join(o Info, merge occurrence.Merge) Info {
	if len(i.ranges) == 0 && len(o.ranges) == 0 {
		return i
	}

	ranges := make(map[cfg.Symbol]occurrence.Marked, max(len(i.ranges), len(o.ranges)))

	for v, l := range i.ranges {
		r, ok := o.ranges[v]
		if !ok {
			r = occurrence.Unmarked(occurrence.Zero)
		}

		node := l.Node
		if !l.HasNode() {
			node = r.Node
		}

		ranges[v] = occurrence.Marked{Range: merge.Apply(l.Range, r.Range), Node: node}
	}

	for v, r := range o.ranges {
		if _, ok := i.ranges[v]; ok {
			continue
		}

		ranges[v] = occurrence.Marked{Range: merge.Apply(occurrence.Zero, r.Range), Node: r.Node}
	}

	return Info{ranges: ranges}
}

// equal compares ranges, ignoring markers.
func (i Info) equal(o Info) bool {
	if len(i.ranges) != len(o.ranges) {
		return false
	}

	for v, l := range i.ranges {
		r, ok := o.ranges[v]
		if !ok || l.Range != r.Range {
			return false
		}
	}

	return true
}

func (i Info) String() string {
	entries := make([]string, 0, len(i.ranges))
	for v, r := range i.ranges {
		entries = append(entries, fmt.Sprintf("%s: %s", v.Name(), r))
	}

	slices.Sort(entries)

	return "{" + strings.Join(entries, ", ") + "}"
}
