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

// Package cfg models control flow graphs as arenas of nodes and typed edges.
//
// Nodes, edges and graphs are referenced by stable integer indices into an [Arena].
// An arena is built once with a [Builder] and immutable afterwards, so it can be shared
// between analyses and goroutines.
package cfg

import (
	"fmt"
	"go/token"
)

// Symbol identifies a tracked variable, property or receiver.
// Symbols are compared by identity.
type Symbol interface {
	Name() string
}

// Label identifies a class of control-flow paths.
type Label string

const (
	// NormalPath is the label of normal completion. It always exists.
	NormalPath Label = ""

	// UncaughtExceptionPath is the label of paths leaving through an uncaught exception or panic.
	UncaughtExceptionPath Label = "uncaught"
)

// JumpPath returns the label of paths jumping to target through a finally block.
func JumpPath(target NodeID) Label {
	return Label(fmt.Sprintf("jump@%d", target))
}

// String returns a printable representation of the label.
func (l Label) String() string {
	if l == NormalPath {
		return "normal"
	}

	return string(l)
}

type (
	// NodeID is the index of a [Node] in its [Arena].
	NodeID int32

	// EdgeID is the index of an [Edge] in its [Arena].
	EdgeID int32

	// GraphID is the index of a [Graph] in its [Arena].
	GraphID int32

	// LoopID identifies a loop construct.
	LoopID int32
)

// NoNode represents the absence of a node.
const NoNode NodeID = -1

// Valid checks if this index is valid.
func (n NodeID) Valid() bool { return n >= 0 }

// NoGraph represents the absence of a graph.
const NoGraph GraphID = -1

// Node is a control flow graph node.
//
// The node is a tagged variant: Kind determines which of the payload fields are meaningful.
type Node struct {
	ID    NodeID
	Kind  NodeKind
	Owner GraphID // The graph this node belongs to

	Pos     token.Pos // Source position, used for ordering only
	Element any       // Originating syntax element, opaque to the analysis

	// Payload
	Var            Symbol // Assignment, Declaration, Read, InitializerEnter, InitializerExit
	Receiver       Symbol // Assignment, Read: explicit or implicit receiver, nil for bare access
	HasInitializer bool   // Declaration
	HasDelegate    bool   // Declaration
	Loop           LoopID // LoopEnter, LoopConditionEnter, LoopBlockEnter, LoopExit

	Subgraphs []GraphID // Graphs nested in this node

	preds, succs []EdgeID
}

// Preds returns the incoming edges of the node.
func (n *Node) Preds() []EdgeID { return n.preds }

// Succs returns the outgoing edges of the node.
func (n *Node) Succs() []EdgeID { return n.succs }

func (n *Node) String() string {
	if n.Var != nil {
		return fmt.Sprintf("#%d %s %s", n.ID, n.Kind, n.Var.Name())
	}

	return fmt.Sprintf("#%d %s", n.ID, n.Kind)
}

// Edge connects two nodes.
type Edge struct {
	From, To NodeID
	Kind     EdgeKind
	Label    Label
}

// Graph is a single control flow graph, possibly nested in another one.
type Graph struct {
	ID     GraphID
	Kind   GraphKind
	Name   string
	Enter  NodeID   // The unique entry node
	Exits  []NodeID // The exit nodes, at least one
	Nodes  []NodeID // All nodes in traversal order
	Parent NodeID   // The node this graph is attached to, or [NoNode]

	arena *Arena
}

// Arena returns the arena holding this graph.
func (g *Graph) Arena() *Arena { return g.arena }

// Exit returns the first exit node.
func (g *Graph) Exit() NodeID { return g.Exits[0] }

// Contains reports whether the node belongs directly to this graph.
func (g *Graph) Contains(id NodeID) bool {
	return g.arena.Node(id).Owner == g.ID
}

// Arena holds all nodes, edges and graphs built together.
type Arena struct {
	nodes  []Node
	edges  []Edge
	graphs []Graph
}

// Node returns the node with the given index.
func (a *Arena) Node(id NodeID) *Node { return &a.nodes[id] }

// Edge returns the edge with the given index.
func (a *Arena) Edge(id EdgeID) *Edge { return &a.edges[id] }

// Graph returns the graph with the given index.
func (a *Arena) Graph(id GraphID) *Graph { return &a.graphs[id] }

// NumNodes returns the number of nodes in the arena.
func (a *Arena) NumNodes() int { return len(a.nodes) }

// Graphs returns the number of graphs in the arena.
func (a *Arena) Graphs() int { return len(a.graphs) }

// Subgraphs returns the graphs attached to a node.
func (a *Arena) Subgraphs(n *Node) []*Graph {
	if len(n.Subgraphs) == 0 {
		return nil
	}

	graphs := make([]*Graph, 0, len(n.Subgraphs))
	for _, id := range n.Subgraphs {
		graphs = append(graphs, &a.graphs[id])
	}

	return graphs
}

// FirstPrevious returns the source of the first incoming control-flow edge of n, or nil.
func (a *Arena) FirstPrevious(n *Node) *Node {
	for _, e := range n.preds {
		if edge := &a.edges[e]; edge.Kind.UsedInControlFlow() {
			return &a.nodes[edge.From]
		}
	}

	return nil
}
