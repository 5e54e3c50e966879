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

// Package dataflow computes forward data flow fixed points over control flow graphs.
package dataflow

import "fillmore-labs.com/initflow/internal/cfg"

// Visitor defines the lattice and transfer functions of a forward analysis with facts of type F.
type Visitor[F any] interface {
	// Initial returns the facts at the graph entry.
	Initial() F

	// Join merges the facts of two incoming flows.
	Join(a, b F) F

	// Equal reports whether two facts are equivalent. The fixed point is reached when
	// no node's output changes.
	Equal(a, b F) bool

	// VisitNode returns the facts after node n, given the facts before it.
	VisitNode(a *cfg.Arena, n *cfg.Node, in F) F

	// VisitEdge returns the facts flowing along edge e, given the facts after its source.
	VisitEdge(a *cfg.Arena, e *cfg.Edge, out F) F

	// VisitSubgraph reports whether the analysis descends into graph g nested in node n.
	VisitSubgraph(a *cfg.Arena, n *cfg.Node, g *cfg.Graph) bool
}

// Preparer is implemented by visitors that need a structural pass over the traversal order
// before the fixed point is computed.
type Preparer interface {
	Prepare(a *cfg.Arena, order []cfg.NodeID)
}
