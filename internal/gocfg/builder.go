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

package gocfg

import (
	"fmt"
	"go/ast"
	"go/token"

	"fillmore-labs.com/initflow/internal/cfg"
)

// builder constructs the control flow graph of one function body.
//
// The append* methods take the node control flows from and return the node where the
// next statement continues. After statements that don't complete normally they return
// a fresh node without predecessors.
type builder struct {
	*state

	graph        cfg.GraphID
	exit         cfg.NodeID
	labels       map[string]*labelTarget // Maps label names to their targets
	targetScopes branchTargetScopes      // Current break/continue/fallthrough targets
}

// node adds an unlinked node.
func (b *builder) node(n cfg.Node) cfg.NodeID {
	return b.arena.Add(b.graph, n)
}

// next adds a node reached from current.
func (b *builder) next(current cfg.NodeID, n cfg.Node) cfg.NodeID {
	id := b.node(n)
	b.link(current, id)

	return id
}

func (b *builder) link(from, to cfg.NodeID) {
	b.arena.Link(from, to)
}

// join adds an unlinked node without effect.
func (b *builder) join(pos token.Pos) cfg.NodeID {
	return b.node(cfg.Node{Kind: cfg.Plain, Pos: pos})
}

// appendStmtList appends a list of statements.
func (b *builder) appendStmtList(current cfg.NodeID, list []ast.Stmt) cfg.NodeID {
	for _, s := range list {
		current = b.appendStmt(current, s, nil)
	}

	return current
}

// appendStmt appends a single statement.
// labeled is the label target if the statement is labeled.
func (b *builder) appendStmt(current cfg.NodeID, stmt ast.Stmt, labeled *labelTarget) cfg.NodeID {
	switch stmt := stmt.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.AssignStmt:
		return b.appendAssignStmt(current, stmt)

	case *ast.BadStmt, *ast.EmptyStmt:
		return current

	case *ast.BlockStmt:
		return b.appendStmtList(current, stmt.List)

	case *ast.BranchStmt:
		return b.appendBranchStmt(current, stmt)

	case *ast.DeclStmt:
		return b.appendDeclStmt(current, stmt)

	case *ast.DeferStmt:
		return b.appendExpr(current, stmt.Call)

	case *ast.ExprStmt:
		current = b.appendExpr(current, stmt.X)

		if b.tracker.Terminates(stmt) {
			return b.join(stmt.End()) // unreachable after non-returning call
		}

		return current

	case *ast.ForStmt:
		return b.appendForStmt(current, stmt, labeled)

	case *ast.GoStmt:
		return b.appendExpr(current, stmt.Call)

	case *ast.IfStmt:
		return b.appendIfStmt(current, stmt)

	case *ast.IncDecStmt:
		current = b.appendExpr(current, stmt.X)

		return b.appendStore(current, stmt.X, false, stmt.End())

	case *ast.LabeledStmt:
		return b.appendLabeledStmt(current, stmt)

	case *ast.RangeStmt:
		return b.appendRangeStmt(current, stmt, labeled)

	case *ast.ReturnStmt:
		current = b.appendExprs(current, stmt.Results)
		b.link(current, b.exit)

		return b.join(stmt.End()) // unreachable after return

	case *ast.SelectStmt:
		return b.appendSelectStmt(current, stmt, labeled)

	case *ast.SendStmt:
		current = b.appendExpr(current, stmt.Chan)

		return b.appendExpr(current, stmt.Value)

	case *ast.SwitchStmt:
		return b.appendSwitchStmt(current, stmt, labeled)

	case *ast.TypeSwitchStmt:
		return b.appendTypeSwitchStmt(current, stmt, labeled)

	default: // *ast.CaseClause and *ast.CommClause
		panic(fmt.Errorf("unexpected statement type: %T", stmt))
		// keep-sorted end
	}
}

// appendSimpleStmt appends an optional init or post statement.
func (b *builder) appendSimpleStmt(current cfg.NodeID, stmt ast.Stmt) cfg.NodeID {
	if stmt == nil {
		return current
	}

	return b.appendStmt(current, stmt, nil)
}

// appendLabeledStmt handles labeled statements.
func (b *builder) appendLabeledStmt(current cfg.NodeID, stmt *ast.LabeledStmt) cfg.NodeID {
	labeled := b.labelTarget(stmt.Label)
	b.arena.Node(labeled.statement).Pos = stmt.Pos()

	b.link(current, labeled.statement)

	return b.appendStmt(labeled.statement, stmt.Stmt, labeled)
}

// appendBranchStmt handles break, continue, goto, and fallthrough.
func (b *builder) appendBranchStmt(current cfg.NodeID, stmt *ast.BranchStmt) cfg.NodeID {
	var target cfg.NodeID
	if stmt.Label == nil {
		target = b.targetScopes.branchTarget(stmt.Tok)
	} else {
		target = b.labelTarget(stmt.Label).branchTarget(stmt.Tok)
	}

	if target.Valid() {
		b.link(current, target)
	}

	return b.join(stmt.End()) // unreachable after break, continue, goto, or fallthrough
}

// labelTarget retrieves or creates a target for the given label.
func (b *builder) labelTarget(label *ast.Ident) *labelTarget {
	if target, ok := b.labels[label.Name]; ok {
		return target
	}

	target := newLabelTarget(b.join(label.Pos())) // forward goto reference
	b.labels[label.Name] = target

	return target
}

// appendIfStmt handles if statements.
func (b *builder) appendIfStmt(current cfg.NodeID, stmt *ast.IfStmt) cfg.NodeID {
	current = b.appendSimpleStmt(current, stmt.Init)
	current = b.appendExpr(current, stmt.Cond)

	after := b.join(stmt.End()) // after if

	body := b.next(current, cfg.Node{Kind: cfg.Plain, Pos: stmt.Body.Lbrace})
	b.link(b.appendStmtList(body, stmt.Body.List), after)

	if stmt.Else == nil {
		b.link(current, after)

		return after
	}

	elseBranch := b.next(current, cfg.Node{Kind: cfg.Plain, Pos: stmt.Else.Pos()})
	b.link(b.appendStmt(elseBranch, stmt.Else, nil), after)

	return after
}

// appendSwitchStmt handles expression switch statements.
func (b *builder) appendSwitchStmt(current cfg.NodeID, stmt *ast.SwitchStmt, labeled *labelTarget) cfg.NodeID {
	current = b.appendSimpleStmt(current, stmt.Init)
	current = b.appendExpr(current, stmt.Tag)

	return b.appendSwitchBody(current, stmt.Body, labeled, false)
}

// appendTypeSwitchStmt handles type switch statements.
func (b *builder) appendTypeSwitchStmt(current cfg.NodeID, stmt *ast.TypeSwitchStmt, labeled *labelTarget) cfg.NodeID {
	current = b.appendSimpleStmt(current, stmt.Init)

	switch assign := stmt.Assign.(type) {
	case *ast.AssignStmt: // x := y.(type)
		current = b.appendExprs(current, assign.Rhs)

	case *ast.ExprStmt: // y.(type)
		current = b.appendExpr(current, assign.X)
	}

	return b.appendSwitchBody(current, stmt.Body, labeled, true)
}

// appendSwitchBody handles a switch statement's body.
//
// Case expressions are tested in order, each test either enters its body or continues with the next test.
// The default body is entered after all tests failed.
func (b *builder) appendSwitchBody(current cfg.NodeID, clauses *ast.BlockStmt, labeled *labelTarget, typeSwitch bool) cfg.NodeID {
	after := b.join(clauses.End()) // after switch
	labeled.setBreak(after)

	old := b.targetScopes.pushBreak(after)
	defer b.targetScopes.popBreak(old)

	bodies := make([]cfg.NodeID, len(clauses.List))
	for i, clause := range clauses.List {
		bodies[i] = b.join(clause.(*ast.CaseClause).Colon + 1)
	}

	defaultBody := after // no default, switch can fall through

	test := current
	for i, clause := range clauses.List {
		clause := clause.(*ast.CaseClause)

		if clause.List == nil {
			defaultBody = bodies[i]

			continue
		}

		test = b.next(test, cfg.Node{Kind: cfg.Plain, Pos: clause.Case})
		if !typeSwitch {
			test = b.appendExprs(test, clause.List)
		}

		b.link(test, bodies[i])
	}

	b.link(test, defaultBody)

	for i, clause := range clauses.List {
		clause := clause.(*ast.CaseClause)

		fallthroughTarget := cfg.NoNode
		if !typeSwitch && i+1 < len(bodies) {
			fallthroughTarget = bodies[i+1]
		}

		// While there can only be one fallthrough target, switches could be nested
		oldf := b.targetScopes.pushFallthrough(fallthroughTarget)

		b.link(b.appendStmtList(bodies[i], clause.Body), after)

		b.targetScopes.popFallthrough(oldf)
	}

	return after
}

// appendSelectStmt handles select statements.
func (b *builder) appendSelectStmt(current cfg.NodeID, stmt *ast.SelectStmt, labeled *labelTarget) cfg.NodeID {
	after := b.join(stmt.End()) // after select
	labeled.setBreak(after)

	old := b.targetScopes.pushBreak(after)
	defer b.targetScopes.popBreak(old)

	// First all the channel operands are evaluated
	for _, clause := range stmt.Body.List {
		switch comm := clause.(*ast.CommClause).Comm.(type) {
		case nil: // default

		case *ast.SendStmt: // ch <- value
			current = b.appendExpr(current, comm.Chan)
			current = b.appendExpr(current, comm.Value)

		case *ast.AssignStmt: // x := <-ch
			current = b.appendExprs(current, comm.Rhs)

		case *ast.ExprStmt: // <-ch
			current = b.appendExpr(current, comm.X)

		default:
			panic(fmt.Errorf("unexpected communication clause: %T", comm))
		}
	}

	// Then, one clause is selected
	for _, clause := range stmt.Body.List {
		clause := clause.(*ast.CommClause)

		body := b.next(current, cfg.Node{Kind: cfg.Plain, Pos: clause.Case})

		if assign, ok := clause.Comm.(*ast.AssignStmt); ok {
			body = b.appendStores(body, assign.Lhs, assign.Tok == token.DEFINE, assign.End())
		}

		b.link(b.appendStmtList(body, clause.Body), after)
	}

	return after
}

// appendForStmt handles for loops.
//
//	init → loop enter → condition → block enter → body → continue → post ⤺ condition
//	                        ↓
//	                    loop exit
func (b *builder) appendForStmt(current cfg.NodeID, stmt *ast.ForStmt, labeled *labelTarget) cfg.NodeID {
	current = b.appendSimpleStmt(current, stmt.Init)

	loop := b.newLoop()

	enterPos := stmt.For
	if stmt.Init != nil {
		enterPos = stmt.Init.End()
	}

	enter := b.next(current, cfg.Node{Kind: cfg.LoopEnter, Pos: enterPos, Element: stmt, Loop: loop})

	condPos := stmt.Body.Lbrace
	if stmt.Cond != nil {
		condPos = stmt.Cond.Pos()
	}

	cond := b.next(enter, cfg.Node{Kind: cfg.LoopConditionEnter, Pos: condPos, Loop: loop})
	condEnd := b.appendExpr(cond, stmt.Cond)

	exit := b.node(cfg.Node{Kind: cfg.LoopExit, Pos: stmt.End(), Loop: loop})
	if stmt.Cond != nil {
		b.link(condEnd, exit)
	}

	block := b.next(condEnd, cfg.Node{Kind: cfg.LoopBlockEnter, Pos: stmt.Body.Lbrace, Loop: loop})
	cont := b.join(stmt.Body.Rbrace) // continue target

	bodyEnd := b.appendLoopBody(block, stmt.Body, labeled, exit, cont)
	b.link(bodyEnd, cont)

	// The init statement may be a short variable declaration, but the post statement must not.
	// https://go.dev/ref/spec#For_clause
	postEnd := b.appendSimpleStmt(cont, stmt.Post)
	b.arena.LinkBack(postEnd, cond)

	return exit
}

// appendRangeStmt handles range loops.
//
//	range expression → loop enter → condition → key, value → block enter → body → continue ⤺ condition
//	                                    ↓
//	                                loop exit
func (b *builder) appendRangeStmt(current cfg.NodeID, stmt *ast.RangeStmt, labeled *labelTarget) cfg.NodeID {
	current = b.appendExpr(current, stmt.X)

	loop := b.newLoop()

	// Nodes of the iteration are placed after the range expression, which is evaluated once.
	pos := stmt.X.End()

	enter := b.next(current, cfg.Node{Kind: cfg.LoopEnter, Pos: pos, Element: stmt, Loop: loop})
	cond := b.next(enter, cfg.Node{Kind: cfg.LoopConditionEnter, Pos: pos, Loop: loop})

	exit := b.next(cond, cfg.Node{Kind: cfg.LoopExit, Pos: stmt.End(), Loop: loop})

	iteration := cond
	if stmt.Tok != token.ILLEGAL {
		var lhs []ast.Expr
		for _, e := range [...]ast.Expr{stmt.Key, stmt.Value} {
			if e != nil {
				lhs = append(lhs, e)
			}
		}

		iteration = b.appendStores(iteration, lhs, stmt.Tok == token.DEFINE, pos)
	}

	block := b.next(iteration, cfg.Node{Kind: cfg.LoopBlockEnter, Pos: stmt.Body.Lbrace, Loop: loop})
	cont := b.join(stmt.Body.Rbrace) // continue target

	bodyEnd := b.appendLoopBody(block, stmt.Body, labeled, exit, cont)
	b.link(bodyEnd, cont)
	b.arena.LinkBack(cont, cond)

	return exit
}

// appendLoopBody appends a loop body with break and continue targets.
func (b *builder) appendLoopBody(current cfg.NodeID, body *ast.BlockStmt, labeled *labelTarget, breakTarget, continueTarget cfg.NodeID) cfg.NodeID {
	labeled.setBreak(breakTarget)
	labeled.setContinue(continueTarget)

	oldb := b.targetScopes.pushBreak(breakTarget)
	oldc := b.targetScopes.pushContinue(continueTarget)

	current = b.appendStmtList(current, body.List)

	b.targetScopes.popContinue(oldc)
	b.targetScopes.popBreak(oldb)

	return current
}
