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

// Package gocfg lowers Go function bodies to control flow graphs.
//
// Every statement is lowered to a sequence of nodes in evaluation order: reads of local variables,
// assignments and declarations. Loops are bracketed by loop nodes with a back edge closing each
// iteration, function literals become nested graphs attached to the node where they are created,
// and paths end after calls that can't return.
//
// With a receiver, selector expressions on the receiver that denote a direct struct field
// are lowered to reads and assignments of the field through the receiver.
package gocfg

import (
	"cmp"
	"context"
	"go/ast"
	"go/types"
	"runtime/trace"

	"fillmore-labs.com/initflow/internal/cfg"
	"fillmore-labs.com/initflow/internal/gocfg/tracker"
)

// Func is the lowered control flow of a function declaration.
type Func struct {
	Decl     *ast.FuncDecl
	Arena    *cfg.Arena
	Graph    *cfg.Graph
	Receiver *types.Var // The receiver fields are tracked through, or nil
}

// Option configures [BuildFunc].
type Option func(*state)

// WithReceiver lowers field accesses through recv.
func WithReceiver(recv *types.Var) Option {
	return func(s *state) { s.receiver = recv }
}

// WithTracker shares a can't-return tracker between functions of a package.
func WithTracker(t *tracker.Tracker) Option {
	return func(s *state) { s.tracker = t }
}

// BuildFunc lowers a function declaration with a body.
func BuildFunc(ctx context.Context, info *types.Info, decl *ast.FuncDecl, opts ...Option) (*Func, error) {
	defer trace.StartRegion(ctx, "Graph").End()

	s := &state{
		arena: cfg.NewBuilder(),
		info:  info,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.tracker == nil {
		s.tracker = tracker.New(info)
	}

	g := s.function(cfg.Function, decl.Name.Name, decl.Type, decl.Body)

	a, err := s.arena.Build()
	if err != nil {
		return nil, err
	}

	return &Func{Decl: decl, Arena: a, Graph: a.Graph(g), Receiver: s.receiver}, nil
}

// state is shared by the graphs of a function and its function literals.
type state struct {
	arena    *cfg.Builder
	info     *types.Info
	receiver *types.Var
	tracker  *tracker.Tracker
	loops    cfg.LoopID
}

func (s *state) newLoop() cfg.LoopID {
	s.loops++

	return s.loops
}

// function builds the graph of a function body.
func (s *state) function(kind cfg.GraphKind, name string, typ *ast.FuncType, body *ast.BlockStmt) cfg.GraphID {
	b := builder{
		state:        s,
		graph:        s.arena.NewGraph(kind, name),
		labels:       make(map[string]*labelTarget),
		targetScopes: newBranchTargetScopes(),
	}

	enter := b.node(cfg.Node{Kind: cfg.Enter, Pos: typ.Pos(), Element: typ})
	b.exit = b.node(cfg.Node{Kind: cfg.Exit, Pos: body.Rbrace, Element: body})

	end := b.appendStmtList(enter, body.List)
	b.link(end, b.exit)

	s.arena.SortNodes(b.graph, func(x, y *cfg.Node) int { return cmp.Compare(x.Pos, y.Pos) })

	return b.graph
}
