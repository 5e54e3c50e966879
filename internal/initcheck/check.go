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


// Package initcheck finds reads of variables and fields before their initialization.
//
// [Locals] and [Members] select the symbols to track in a function, [Check] runs the
// initialization analysis over the function's control flow graph and returns the findings.
package initcheck

import (
	"context"
	"go/ast"
	"go/types"
	"runtime/trace"

	"fillmore-labs.com/initflow/internal/cfg"
	"fillmore-labs.com/initflow/internal/gocfg"
	"fillmore-labs.com/initflow/internal/initinfo"
	"fillmore-labs.com/initflow/internal/occurrence"
)

// Kind classifies a finding.
type Kind uint8

const (
	// ReadBeforeAssign is a read where no path has assigned the symbol.
	ReadBeforeAssign Kind = iota

	// MaybeReadBeforeAssign is a read where only some paths have assigned the symbol.
	MaybeReadBeforeAssign

	// NotInitialized is a field assigned on some but not all paths to the method exit.
	NotInitialized
)

// Code returns the short diagnostic code of the kind.
func (k Kind) Code() string {
	switch k {
	case ReadBeforeAssign:
		return "rba"

	case MaybeReadBeforeAssign:
		return "mba"

	case NotInitialized:
		return "pin"

	default:
		return "???"
	}
}

// Finding is a single problem in a function.
type Finding struct {
	Kind Kind
	Var  *types.Var
	Node ast.Node // The read, or the method name for uninitialized fields
}

// Options configure [Check].
type Options struct {
	Merge occurrence.Merge // How alternative paths are merged
	Maybe bool             // Report reads of possibly unassigned symbols
}

// Check analyzes the initialization of targets in fn.
//
// Only reads in the function itself are checked, not in nested function literals.
// Each symbol is reported at most once per kind, at its first finding in flow order.
func Check(ctx context.Context, fn *gocfg.Func, targets Targets, opts Options) []Finding {
	if targets.Empty() {
		return nil
	}

	defer trace.StartRegion(ctx, "Check").End()

	properties := make([]cfg.Symbol, 0, len(targets.Vars))
	tracked := make(map[cfg.Symbol]*types.Var, len(targets.Vars))

	for _, v := range targets.Vars {
		properties = append(properties, v)
		tracked[v] = v
	}

	conditional := make([]cfg.Symbol, 0, len(targets.Conditional))
	for _, v := range targets.Conditional {
		conditional = append(conditional, v)
	}

	var receiver cfg.Symbol
	if targets.Receiver != nil {
		receiver = targets.Receiver
	}

	data := initinfo.New(ctx, fn.Graph, properties, receiver,
		initinfo.WithMerge(opts.Merge),
		initinfo.WithConditionallyInitialized(conditional...))

	r := reporter{
		data:     data,
		tracked:  tracked,
		maybe:    opts.Maybe,
		reported: make(map[key]struct{}),
	}

	for _, id := range fn.Graph.Nodes {
		if n := fn.Arena.Node(id); n.Kind == cfg.Read {
			r.read(n)
		}
	}

	if targets.Receiver != nil {
		r.exit(fn.Graph.Exit(), fn.Decl.Name, targets)
	}

	return r.findings
}

type key struct {
	kind Kind
	v    *types.Var
}

type reporter struct {
	data     *initinfo.Data
	tracked  map[cfg.Symbol]*types.Var
	maybe    bool
	reported map[key]struct{}
	findings []Finding
}

func (r *reporter) read(n *cfg.Node) {
	v, ok := r.tracked[n.Var]
	if !ok || n.Receiver != r.data.Receiver() {
		return
	}

	if _, reached := r.data.Lookup(n.ID); !reached {
		return
	}

	switch r.data.Initialized(n.ID, cfg.NormalPath, n.Var).Range {
	case occurrence.Zero:
		r.report(ReadBeforeAssign, v, n.Element.(ast.Node))

	case occurrence.AtMostOnce:
		if r.maybe {
			r.report(MaybeReadBeforeAssign, v, n.Element.(ast.Node))
		}
	}
}

// exit reports fields assigned on some but not all paths to exit.
func (r *reporter) exit(exit cfg.NodeID, decl ast.Node, targets Targets) {
	if _, reached := r.data.Lookup(exit); !reached {
		return
	}

	conditional := make(map[*types.Var]struct{}, len(targets.Conditional))
	for _, v := range targets.Conditional {
		conditional[v] = struct{}{}
	}

	for _, v := range targets.Vars {
		if _, ok := conditional[v]; ok {
			continue
		}

		if r.data.Initialized(exit, cfg.NormalPath, v).Range == occurrence.AtMostOnce {
			r.report(NotInitialized, v, decl)
		}
	}
}

func (r *reporter) report(kind Kind, v *types.Var, node ast.Node) {
	k := key{kind, v}
	if _, ok := r.reported[k]; ok {
		return
	}

	r.reported[k] = struct{}{}
	r.findings = append(r.findings, Finding{Kind: kind, Var: v, Node: node})
}
