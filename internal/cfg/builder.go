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

package cfg

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidGraph is returned by [Builder.Build] when the constructed graph violates a structural invariant.
var ErrInvalidGraph = errors.New("invalid control flow graph")

// Builder constructs an [Arena].
//
// Pointers returned by [Builder.Node] are only valid until the next node is added.
type Builder struct {
	arena *Arena
	err   error
}

// NewBuilder creates a new, empty [Builder].
func NewBuilder() *Builder {
	return &Builder{arena: &Arena{}}
}

// NewGraph adds a new graph without nodes.
func (b *Builder) NewGraph(kind GraphKind, name string) GraphID {
	id := GraphID(len(b.arena.graphs))
	b.arena.graphs = append(b.arena.graphs, Graph{
		ID:     id,
		Kind:   kind,
		Name:   name,
		Enter:  NoNode,
		Parent: NoNode,
		arena:  b.arena,
	})

	return id
}

// Add appends a node to graph g and returns its index.
// [Enter] and [Exit] nodes become the graph's entry and exits.
func (b *Builder) Add(g GraphID, n Node) NodeID {
	if !b.validGraph(g) {
		b.fail("node added to unknown graph %d", g)

		return NoNode
	}

	id := NodeID(len(b.arena.nodes))
	n.ID, n.Owner = id, g
	n.preds, n.succs = nil, nil
	b.arena.nodes = append(b.arena.nodes, n)

	graph := &b.arena.graphs[g]
	graph.Nodes = append(graph.Nodes, id)

	switch n.Kind {
	case Enter:
		if graph.Enter.Valid() {
			b.fail("graph %q has more than one enter node", graph.Name)
			break
		}

		graph.Enter = id

	case Exit:
		graph.Exits = append(graph.Exits, id)
	}

	return id
}

// Node returns the node with the given index for modification.
func (b *Builder) Node(id NodeID) *Node {
	return b.arena.Node(id)
}

// Link adds a forward edge.
func (b *Builder) Link(from, to NodeID) EdgeID {
	return b.LinkEdge(Edge{From: from, To: to, Kind: Forward})
}

// LinkBack adds a back edge.
func (b *Builder) LinkBack(from, to NodeID) EdgeID {
	return b.LinkEdge(Edge{From: from, To: to, Kind: Back})
}

// LinkEdge adds an arbitrary edge.
func (b *Builder) LinkEdge(e Edge) EdgeID {
	if !b.validNode(e.From) || !b.validNode(e.To) {
		b.fail("edge %d -> %d references an unknown node", e.From, e.To)

		return -1
	}

	id := EdgeID(len(b.arena.edges))
	b.arena.edges = append(b.arena.edges, e)

	from, to := &b.arena.nodes[e.From], &b.arena.nodes[e.To]
	from.succs = append(from.succs, id)
	to.preds = append(to.preds, id)

	return id
}

// Attach nests graph sub in node.
func (b *Builder) Attach(node NodeID, sub GraphID) {
	if !b.validNode(node) || !b.validGraph(sub) {
		b.fail("can't attach graph %d to node %d", sub, node)

		return
	}

	graph := &b.arena.graphs[sub]
	if graph.Parent.Valid() {
		b.fail("graph %q is already attached to node %d", graph.Name, graph.Parent)

		return
	}

	graph.Parent = node

	n := &b.arena.nodes[node]
	n.Subgraphs = append(n.Subgraphs, sub)
}

// SortNodes stably sorts the traversal order of graph g.
func (b *Builder) SortNodes(g GraphID, cmp func(a, b *Node) int) {
	if !b.validGraph(g) {
		return
	}

	nodes := b.arena.nodes
	slices.SortStableFunc(b.arena.graphs[g].Nodes, func(x, y NodeID) int {
		return cmp(&nodes[x], &nodes[y])
	})
}

// Build validates and returns the arena. The builder must not be used afterwards.
func (b *Builder) Build() (*Arena, error) {
	if b.err != nil {
		return nil, b.err
	}

	for i := range b.arena.graphs {
		g := &b.arena.graphs[i]
		if !g.Enter.Valid() {
			return nil, fmt.Errorf("%w: graph %q has no enter node", ErrInvalidGraph, g.Name)
		}

		if len(g.Exits) == 0 {
			return nil, fmt.Errorf("%w: graph %q has no exit node", ErrInvalidGraph, g.Name)
		}
	}

	a := b.arena
	b.arena = nil

	return a, nil
}

func (b *Builder) validNode(id NodeID) bool {
	return id >= 0 && int(id) < len(b.arena.nodes)
}

func (b *Builder) validGraph(id GraphID) bool {
	return id >= 0 && int(id) < len(b.arena.graphs)
}

func (b *Builder) fail(format string, args ...any) {
	if b.err != nil {
		return
	}

	b.err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidGraph}, args...)...)
}
