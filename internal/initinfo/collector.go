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

// Package initinfo tracks how often variables and properties are initialized along control flow paths.
//
// The analysis runs forward over a control flow graph with [pathinfo.Table] facts:
// assignments to tracked symbols add an [occurrence.ExactlyOnce] event, declarations reset
// the history of a local variable, and back edges of loops forget variables that are declared
// afresh in every iteration.
//
// With an expected receiver, only assignments through that receiver count, and nested callable
// graphs are not descended into: properties are assumed to be initialized when such code runs.
package initinfo

import (
	"fillmore-labs.com/initflow/internal/cfg"
	"fillmore-labs.com/initflow/internal/occurrence"
	"fillmore-labs.com/initflow/internal/pathinfo"
)

// Collector is the data flow visitor computing initialization facts.
type Collector struct {
	pathinfo.Visitor

	properties map[cfg.Symbol]struct{}
	receiver   cfg.Symbol
	declared   *DeclaredVariables
}

// NewCollector returns a collector tracking properties, assigned through receiver.
// A nil receiver selects local variable flow.
func NewCollector(properties []cfg.Symbol, receiver cfg.Symbol, merge occurrence.Merge) *Collector {
	set := make(map[cfg.Symbol]struct{}, len(properties))
	for _, p := range properties {
		set[p] = struct{}{}
	}

	return &Collector{
		Visitor:    pathinfo.Visitor{Merge: merge},
		properties: set,
		receiver:   receiver,
		declared:   NewDeclaredVariables(),
	}
}

// Declared returns the loop declarations collected by [Collector.Prepare].
func (c *Collector) Declared() *DeclaredVariables { return c.declared }

// Prepare collects the variables declared inside loops, in traversal order.
func (c *Collector) Prepare(a *cfg.Arena, order []cfg.NodeID) {
	for _, id := range order {
		switch n := a.Node(id); n.Kind {
		case cfg.LoopEnter:
			c.declared.EnterLoop(n.Loop)

		case cfg.LoopExit:
			c.declared.ExitLoop(n.Loop)

		case cfg.Declaration:
			c.declared.Declare(n.Var)
		}
	}
}

// VisitNode applies the effect of node n.
func (c *Collector) VisitNode(a *cfg.Arena, n *cfg.Node, in pathinfo.Table) pathinfo.Table {
	switch n.Kind {
	case cfg.Assignment:
		return c.visitAssignment(n, in)

	case cfg.Declaration:
		return c.visitDeclaration(n, in)

	case cfg.InitializerExit:
		return c.visitInitializerExit(a, n, in)

	default:
		return in
	}
}

func (c *Collector) visitAssignment(n *cfg.Node, in pathinfo.Table) pathinfo.Table {
	if n.Receiver != c.receiver || n.Var == nil {
		return in
	}

	if _, ok := c.properties[n.Var]; !ok {
		return in
	}

	return in.AddRange(n.Var, occurrence.ExactlyOnce.At(n.ID))
}

func (c *Collector) visitDeclaration(n *cfg.Node, in pathinfo.Table) pathinfo.Table {
	switch {
	case c.receiver != nil:
		return in

	case !n.HasInitializer && !n.HasDelegate:
		return in.RemoveRange(n.Var)

	default:
		return in.OverwriteRange(n.Var, occurrence.ExactlyOnce.At(n.ID))
	}
}

// visitInitializerExit marks a property initialized by its own initializer, unless the initializer is empty.
func (c *Collector) visitInitializerExit(a *cfg.Arena, n *cfg.Node, in pathinfo.Table) pathinfo.Table {
	if prev := a.FirstPrevious(n); prev != nil && prev.Kind == cfg.InitializerEnter {
		return in
	}

	return in.OverwriteRange(n.Var, occurrence.ExactlyOnce.At(n.ID))
}

// VisitEdge strips variables declared inside a loop from facts flowing back to the loop's start.
func (c *Collector) VisitEdge(a *cfg.Arena, e *cfg.Edge, out pathinfo.Table) pathinfo.Table {
	result := c.Visitor.VisitEdge(a, e, out)
	if !e.Kind.IsBack() {
		return result
	}

	to := a.Node(e.To)
	if !to.Kind.IsLoopBoundary() {
		return result
	}

	for _, v := range c.declared.Declared(to.Loop) {
		result = result.RemoveRange(v)
	}

	return result
}

// VisitSubgraph skips nested callables when an expected receiver is set.
func (c *Collector) VisitSubgraph(_ *cfg.Arena, _ *cfg.Node, g *cfg.Graph) bool {
	return c.receiver == nil || !g.Kind.Callable()
}
