// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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


// Package run executes the initflow analyzer's pipeline over a package.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/initflow/internal/astutil"
	"fillmore-labs.com/initflow/internal/config"
	"fillmore-labs.com/initflow/internal/gocfg"
	"fillmore-labs.com/initflow/internal/gocfg/tracker"
	"fillmore-labs.com/initflow/internal/initcheck"
	"fillmore-labs.com/initflow/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// initDirective marks methods that initialize their receiver, as in //initflow:init.
const initDirective = "init"

// Run executes the initflow analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("initflow: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "Initflow")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	s := stage{
		Options: r,
		pass:    p,
		tracker: tracker.New(p.TypesInfo),
	}

	// Remember the current file over all functions declared in it
	var currentFile astutil.CurrentFile

	root, types := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
	}

	// Loop over all function and method declarations
	root.Inspect(types, func(c inspector.Cursor) bool {
		switch node := c.Node().(type) {
		case *ast.File:
			currentFile = astutil.NewCurrentFile(p.Fset, node)

			// Skip generated files
			if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
				return false
			}

			// Skip files with nolint comment
			return node.Doc == nil || !astutil.CommentHasNoLint(node.Doc.List[len(node.Doc.List)-1])

		case *ast.FuncDecl:
			if node.Body == nil {
				return false
			}

			if !currentFile.Valid() {
				astutil.InternalError(p, node, "Function declaration %s without file info", node.Name.Name)

				return false
			}

			// Skip functions with nolint comment
			if node.Doc != nil && astutil.CommentHasNoLint(node.Doc.List[len(node.Doc.List)-1]) {
				return false
			}

			findings := s.check(ctx, node, c.ChildAt(edge.FuncDecl_Body, -1))

			report.ProcessDiagnostics(ctx, p, currentFile, findings)

			return false

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return nil, nil
}

// stage holds the state shared by all functions of a pass.
type stage struct {
	*Options
	pass    *analysis.Pass
	tracker *tracker.Tracker
}

// check runs the enabled analyzers on a function declaration.
func (s *stage) check(ctx context.Context, decl *ast.FuncDecl, body inspector.Cursor) []initcheck.Finding {
	var findings []initcheck.Finding

	opts := initcheck.Options{
		Merge: s.merge(),
		Maybe: s.Behavior.Enabled(config.ReportMaybe),
	}

	if s.Analyzers.Enabled(config.LocalAnalyzer) {
		if targets := initcheck.Locals(s.pass.TypesInfo, body); !targets.Empty() {
			findings = append(findings, s.checkTargets(ctx, decl, targets, opts)...)
		}
	}

	if s.Analyzers.Enabled(config.MemberAnalyzer) && astutil.HasDirective(decl.Doc, initDirective) {
		if targets := initcheck.Members(s.pass.TypesInfo, decl, body); !targets.Empty() {
			findings = append(findings, s.checkTargets(ctx, decl, targets, opts)...)
		}
	}

	return findings
}

func (s *stage) checkTargets(ctx context.Context, decl *ast.FuncDecl, targets initcheck.Targets, opts initcheck.Options) []initcheck.Finding {
	graphOpts := []gocfg.Option{gocfg.WithTracker(s.tracker)}
	if targets.Receiver != nil {
		graphOpts = append(graphOpts, gocfg.WithReceiver(targets.Receiver))
	}

	fn, err := gocfg.BuildFunc(ctx, s.pass.TypesInfo, decl, graphOpts...)
	if err != nil {
		astutil.InternalError(s.pass, decl.Name, "Can't build control flow of %s: %v", decl.Name.Name, err)

		return nil
	}

	return initcheck.Check(ctx, fn, targets, opts)
}
