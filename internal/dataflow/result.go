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

package dataflow

import (
	"fmt"

	"fillmore-labs.com/initflow/internal/cfg"
)

// Result holds the facts computed for every node reachable from the graph entry.
type Result[F any] struct {
	graph    *cfg.Graph
	order    []cfg.NodeID
	in, out  []F
	computed []bool
	visits   int
}

// Graph returns the analyzed graph.
func (r *Result[F]) Graph() *cfg.Graph { return r.graph }

// Order returns the traversal order, including nodes of nested graphs that were descended into.
func (r *Result[F]) Order() []cfg.NodeID { return r.order }

// Visits returns the number of node visits needed to reach the fixed point.
func (r *Result[F]) Visits() int { return r.visits }

// Lookup returns the facts after node id and whether the node was reached.
func (r *Result[F]) Lookup(id cfg.NodeID) (F, bool) {
	if !r.reached(id) {
		var zero F

		return zero, false
	}

	return r.out[id], true
}

// Value returns the facts after node id. It panics if the node was not reached.
func (r *Result[F]) Value(id cfg.NodeID) F {
	r.mustReach(id)

	return r.out[id]
}

// Input returns the facts before node id. It panics if the node was not reached.
func (r *Result[F]) Input(id cfg.NodeID) F {
	r.mustReach(id)

	return r.in[id]
}

func (r *Result[F]) reached(id cfg.NodeID) bool {
	return id.Valid() && int(id) < len(r.computed) && r.computed[id]
}

func (r *Result[F]) mustReach(id cfg.NodeID) {
	if !r.reached(id) {
		panic(fmt.Errorf("node %d of graph %q has no data flow information", id, r.graph.Name))
	}
}
