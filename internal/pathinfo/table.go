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
	"slices"
	"strings"

	"fillmore-labs.com/initflow/internal/cfg"
	"fillmore-labs.com/initflow/internal/occurrence"
)

type entry struct {
	label cfg.Label
	info  Info
}

// Table maps path labels to the facts known on the paths of that class.
//
// A Table is immutable: every update returns a new table and leaves the receiver untouched,
// so tables published for one node can be shared by later nodes.
// Labels keep the order in which they first appeared.
type Table struct {
	entries []entry
}

// Initial returns the table at a graph entry: only the normal path, with no facts.
func Initial() Table {
	return Table{entries: []entry{{label: cfg.NormalPath}}}
}

// Single returns a table with one label.
func Single(label cfg.Label, info Info) Table {
	return Table{entries: []entry{{label: label, info: info}}}
}

// Len returns the number of labels.
func (t Table) Len() int { return len(t.entries) }

// Labels returns the path labels in order.
func (t Table) Labels() []cfg.Label {
	labels := make([]cfg.Label, 0, len(t.entries))
	for _, e := range t.entries {
		labels = append(labels, e.label)
	}

	return labels
}

// Info returns the facts for a label and whether the label is present.
func (t Table) Info(label cfg.Label) (Info, bool) {
	if i := t.index(label); i >= 0 {
		return t.entries[i].info, true
	}

	return Info{}, false
}

// Get returns the range of v on paths with the given label.
func (t Table) Get(label cfg.Label, v cfg.Symbol) (occurrence.Marked, bool) {
	info, ok := t.Info(label)
	if !ok {
		return occurrence.Marked{}, false
	}

	return info.Get(v)
}

// Relabel returns a table holding only the facts of label from, under label to.
// The result is empty when from is not present.
func (t Table) Relabel(from, to cfg.Label) Table {
	info, ok := t.Info(from)
	if !ok {
		return Table{}
	}

	return Single(to, info)
}

// AddRange records r as a later event for v on every path.
// A symbol without a range takes r directly, otherwise the ranges are summed and r's marker is kept.
// Ranges that cannot be visited leave the table unchanged.
func (t Table) AddRange(v cfg.Symbol, r occurrence.Marked) Table {
	if !occurrence.CanBeVisited(r.Range) {
		return t
	}

	return t.update(func(info Info) Info {
		old, ok := info.Get(v)
		if !ok {
			return info.with(v, r)
		}

		return info.with(v, old.Add(r))
	})
}

// OverwriteRange sets the range of v to r on every path, discarding its history.
func (t Table) OverwriteRange(v cfg.Symbol, r occurrence.Marked) Table {
	return t.update(func(info Info) Info {
		return info.with(v, r)
	})
}

// RemoveRange forgets v on every path.
func (t Table) RemoveRange(v cfg.Symbol) Table {
	return t.update(func(info Info) Info {
		return info.without(v)
	})
}

func (t Table) update(f func(Info) Info) Table {
	if len(t.entries) == 0 {
		return t
	}

	entries := make([]entry, len(t.entries))
	for i, e := range t.entries {
		entries[i] = entry{label: e.label, info: f(e.info)}
	}

	return Table{entries: entries}
}

// Join merges two tables label-wise. A label present in only one table keeps its facts.
func (t Table) Join(o Table, merge occurrence.Merge) Table {
	switch {
	case len(o.entries) == 0:
		return t

	case len(t.entries) == 0:
		return o
	}

	entries := make([]entry, 0, len(t.entries)+len(o.entries))
	for _, e := range t.entries {
		if other, ok := o.Info(e.label); ok {
			e.info = e.info.join(other, merge)
		}

		entries = append(entries, e)
	}

	for _, e := range o.entries {
		if t.index(e.label) < 0 {
			entries = append(entries, e)
		}
	}

	return Table{entries: entries}
}

// Equal reports whether both tables have the same labels with the same ranges.
// Markers are ignored.
func (t Table) Equal(o Table) bool {
	if len(t.entries) != len(o.entries) {
		return false
	}

	for _, e := range t.entries {
		other, ok := o.Info(e.label)
		if !ok || !e.info.equal(other) {
			return false
		}
	}

	return true
}

func (t Table) index(label cfg.Label) int {
	return slices.IndexFunc(t.entries, func(e entry) bool { return e.label == label })
}

func (t Table) String() string {
	var b strings.Builder

	b.WriteByte('[')

	for i, e := range t.entries {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(e.label.String())
		b.WriteString(": ")
		b.WriteString(e.info.String())
	}

	b.WriteByte(']')

	return b.String()
}
