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

// Package pathinfo implements path-aware fact tables.
//
// Facts are kept separately per class of control-flow paths (normal completion, uncaught panics,
// jumps through finally blocks), so that a fact established on one path class does not leak
// into another one when flows merge.
package pathinfo

import (
	"fillmore-labs.com/initflow/internal/cfg"
	"fillmore-labs.com/initflow/internal/occurrence"
)

// Visitor is the base of data flow visitors over [Table] facts.
//
// It merges tables with the configured policy and splits flows through finally blocks by label.
// Embedders override VisitNode and, where needed, VisitEdge and VisitSubgraph.
type Visitor struct {
	Merge occurrence.Merge
}

// Initial returns the facts at the graph entry.
func (Visitor) Initial() Table { return Initial() }

// Join merges the facts of two incoming flows.
func (v Visitor) Join(a, b Table) Table { return a.Join(b, v.Merge) }

// Equal reports whether two facts are equivalent.
func (Visitor) Equal(a, b Table) bool { return a.Equal(b) }

// VisitNode passes the facts through.
func (Visitor) VisitNode(_ *cfg.Arena, _ *cfg.Node, in Table) Table { return in }

// VisitEdge selects the facts flowing along e.
//
// Edges leaving a finally block carry only the facts of their own label, as normal facts.
// Labeled edges entering a finally block carry the normal facts under their label.
func (Visitor) VisitEdge(a *cfg.Arena, e *cfg.Edge, out Table) Table {
	switch {
	case a.Node(e.From).Kind == cfg.FinallyExit:
		return out.Relabel(e.Label, cfg.NormalPath)

	case e.Label != cfg.NormalPath && a.Node(e.To).Kind == cfg.FinallyEnter:
		return out.Relabel(cfg.NormalPath, e.Label)

	default:
		return out
	}
}

// VisitSubgraph descends into all nested graphs.
func (Visitor) VisitSubgraph(_ *cfg.Arena, _ *cfg.Node, _ *cfg.Graph) bool { return true }
