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
	"context"
	"fmt"
	"runtime/trace"

	"fillmore-labs.com/initflow/internal/cfg"
)

// VisitsPerNode bounds the number of times a node is visited before the fixed point is considered divergent.
const VisitsPerNode = 256

// Forward computes the forward fixed point of visitor v over graph g and the nested graphs v descends into.
//
// Nodes are visited in construction order first, and revisited from a FIFO worklist until no output changes.
// The input of a node is the join of the facts along its incoming control flow edges whose source has been
// computed, folded in edge order. The graph entry starts from [Visitor.Initial], a nested graph without
// incoming edges starts from the facts after the node it is attached to.
// Only nodes reachable from the entry are computed.
func Forward[F any](ctx context.Context, g *cfg.Graph, v Visitor[F]) *Result[F] {
	defer trace.StartRegion(ctx, "Dataflow").End()

	a := g.Arena()

	s := solver[F]{
		arena: a,
		v:     v,
		scope: make([]bool, a.NumNodes()),
		res: &Result[F]{
			graph:    g,
			in:       make([]F, a.NumNodes()),
			out:      make([]F, a.NumNodes()),
			computed: make([]bool, a.NumNodes()),
		},
	}

	s.collect(g)

	if p, ok := v.(Preparer); ok {
		p.Prepare(a, s.res.order)
	}

	s.solve(g)

	return s.res
}

type solver[F any] struct {
	arena *cfg.Arena
	v     Visitor[F]
	scope []bool // nodes in the traversal order
	res   *Result[F]
}

// collect builds the traversal order, splicing nested graph nodes after the node they are attached to.
func (s *solver[F]) collect(g *cfg.Graph) {
	for _, id := range g.Nodes {
		s.scope[id] = true
		s.res.order = append(s.res.order, id)

		n := s.arena.Node(id)
		for _, sub := range s.arena.Subgraphs(n) {
			if s.v.VisitSubgraph(s.arena, n, sub) {
				s.collect(sub)
			}
		}
	}
}

func (s *solver[F]) solve(g *cfg.Graph) {
	reachable := s.reachable(g.Enter)

	var queue []cfg.NodeID

	queued := make([]bool, s.arena.NumNodes())

	for _, id := range s.res.order {
		if reachable[id] {
			queue = append(queue, id)
			queued[id] = true
		}
	}

	budget := VisitsPerNode * len(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		queued[id] = false

		s.res.visits++
		if s.res.visits > budget {
			panic(fmt.Errorf("no fixed point for graph %q after %d visits", g.Name, budget))
		}

		if !s.visit(id, id == g.Enter) {
			continue
		}

		for _, next := range s.successors(id) {
			if reachable[next] && !queued[next] {
				queue = append(queue, next)
				queued[next] = true
			}
		}
	}
}

// visit recomputes a node and reports whether its output changed.
func (s *solver[F]) visit(id cfg.NodeID, entry bool) bool {
	n := s.arena.Node(id)

	in, ok := s.input(n)

	switch {
	case entry:
		if ok {
			in = s.v.Join(s.v.Initial(), in)
		} else {
			in = s.v.Initial()
		}

	case !ok:
		in = s.v.Initial()
	}

	out := s.v.VisitNode(s.arena, n, in)

	changed := !s.res.computed[id] || !s.v.Equal(s.res.out[id], out)

	s.res.in[id], s.res.out[id], s.res.computed[id] = in, out, true

	return changed
}

// input joins the facts of all computed in-scope predecessors.
func (s *solver[F]) input(n *cfg.Node) (F, bool) {
	var (
		in F
		ok bool
	)

	join := func(f F) {
		if ok {
			in = s.v.Join(in, f)
		} else {
			in, ok = f, true
		}
	}

	for _, e := range n.Preds() {
		edge := s.arena.Edge(e)
		if !edge.Kind.UsedInControlFlow() || !s.scope[edge.From] || !s.res.computed[edge.From] {
			continue
		}

		join(s.v.VisitEdge(s.arena, edge, s.res.out[edge.From]))
	}

	if !ok {
		if parent := s.implicitParent(n); parent.Valid() && s.res.computed[parent] {
			join(s.res.out[parent])
		}
	}

	return in, ok
}

// implicitParent returns the node a nested graph entry is attached to, when the entry has no
// in-scope control flow predecessors.
func (s *solver[F]) implicitParent(n *cfg.Node) cfg.NodeID {
	if n.Kind != cfg.Enter {
		return cfg.NoNode
	}

	g := s.arena.Graph(n.Owner)
	if !g.Parent.Valid() || !s.scope[g.Parent] {
		return cfg.NoNode
	}

	for _, e := range n.Preds() {
		if edge := s.arena.Edge(e); edge.Kind.UsedInControlFlow() && s.scope[edge.From] {
			return cfg.NoNode
		}
	}

	return g.Parent
}

// successors returns the in-scope nodes whose input depends on node id.
func (s *solver[F]) successors(id cfg.NodeID) []cfg.NodeID {
	n := s.arena.Node(id)

	var next []cfg.NodeID

	for _, e := range n.Succs() {
		if edge := s.arena.Edge(e); edge.Kind.UsedInControlFlow() && s.scope[edge.To] {
			next = append(next, edge.To)
		}
	}

	for _, sub := range n.Subgraphs {
		enter := s.arena.Graph(sub).Enter
		if s.scope[enter] && s.implicitParent(s.arena.Node(enter)) == id {
			next = append(next, enter)
		}
	}

	return next
}

func (s *solver[F]) reachable(enter cfg.NodeID) []bool {
	seen := make([]bool, s.arena.NumNodes())
	seen[enter] = true

	stack := []cfg.NodeID{enter}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range s.successors(id) {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}

	return seen
}
