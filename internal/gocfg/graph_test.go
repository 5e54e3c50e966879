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


package gocfg_test

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/analysistest"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/initflow/internal/cfg"
	. "fillmore-labs.com/initflow/internal/gocfg"
)

func TestReachable(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	testAnalyzer := &analysis.Analyzer{
		Name: "gocfgtest",
		Doc:  "test control flow lowering",
		Run: func(p *analysis.Pass) (any, error) {
			return reachability(t.Context(), p)
		},
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	analysistest.Run(t, testdata, testAnalyzer, "./graph")
}

// reachability reports whether the first use of "to" is reachable from the declaration of "from".
// Back edges are followed only in functions with a name ending in "L".
func reachability(ctx context.Context, p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("result of %s missing", inspect.Analyzer.Name)
	}

	for c := range in.Root().Preorder((*ast.FuncDecl)(nil)) {
		decl := c.Node().(*ast.FuncDecl)

		from, to := findFromTo(p.TypesInfo, c)
		if from == nil || to == nil {
			p.ReportRangef(decl.Name, "Can't find from, to")

			continue
		}

		fn, err := BuildFunc(ctx, p.TypesInfo, decl)
		if err != nil {
			return nil, err
		}

		start, end := fromNode(fn, decl, from), toNode(fn, to)
		if start == nil || end == nil {
			p.ReportRangef(decl.Name, "Can't find nodes")

			continue
		}

		message := "unreachable"
		if reachable(fn.Arena, start, end, !strings.HasSuffix(decl.Name.Name, "L")) {
			message = "is reachable"
		}

		p.ReportRangef(to, "%s", message)
	}

	return any(nil), nil
}

func findFromTo(info *types.Info, c inspector.Cursor) (from, to *ast.Ident) {
	for id := range c.Preorder((*ast.Ident)(nil)) {
		switch id := id.Node().(*ast.Ident); id.Name {
		case "from":
			if _, ok := info.Defs[id]; ok && from == nil {
				from = id
			}

		case "to":
			if _, ok := info.Uses[id]; ok && to == nil {
				to = id
			}
		}
	}

	return from, to
}

// fromNode returns the declaration of from, lifted to the outermost graph.
// Parameters are declared by the enter node.
func fromNode(fn *Func, decl *ast.FuncDecl, from *ast.Ident) *cfg.Node {
	if from.Pos() < decl.Body.Lbrace {
		return fn.Arena.Node(fn.Graph.Enter)
	}

	for id := range cfg.NodeID(fn.Arena.NumNodes()) {
		n := fn.Arena.Node(id)
		if n.Kind != cfg.Declaration || n.Element != from {
			continue
		}

		for n.Owner != fn.Graph.ID {
			n = fn.Arena.Node(fn.Arena.Graph(n.Owner).Parent)
		}

		return n
	}

	return nil
}

func toNode(fn *Func, to *ast.Ident) *cfg.Node {
	for id := range cfg.NodeID(fn.Arena.NumNodes()) {
		if n := fn.Arena.Node(id); n.Element == to {
			return n
		}
	}

	return nil
}

func reachable(a *cfg.Arena, start, end *cfg.Node, forwardOnly bool) bool {
	seen := map[cfg.NodeID]bool{start.ID: true}

	for queue := []*cfg.Node{start}; len(queue) > 0; queue = queue[1:] {
		for _, id := range queue[0].Succs() {
			e := a.Edge(id)
			if !e.Kind.UsedInControlFlow() || forwardOnly && e.Kind.IsBack() || seen[e.To] {
				continue
			}

			if e.To == end.ID {
				return true
			}

			seen[e.To] = true
			queue = append(queue, a.Node(e.To))
		}
	}

	return false
}
