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
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/initflow/internal/cfg"
)

// appendExprs appends the reads of expressions in evaluation order.
func (b *builder) appendExprs(current cfg.NodeID, exprs []ast.Expr) cfg.NodeID {
	for _, e := range exprs {
		current = b.appendExpr(current, e)
	}

	return current
}

// appendExpr appends the reads of an expression in evaluation order.
func (b *builder) appendExpr(current cfg.NodeID, expr ast.Expr) cfg.NodeID {
	if expr == nil {
		return current
	}

	ast.Inspect(expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			current = b.appendFuncLit(current, n)

			return false

		case *ast.SelectorExpr:
			if field := b.field(n); field != nil {
				current = b.next(current, cfg.Node{Kind: cfg.Read, Pos: n.Sel.Pos(), Element: n, Var: field, Receiver: b.receiver})

				return false
			}

			// The selected name is a field, method or qualified identifier, not a variable read
			current = b.appendExpr(current, n.X)

			return false

		case *ast.UnaryExpr:
			if n.Op == token.AND && b.addressable(n.X) {
				return false // Taking the address is not a read
			}

		case *ast.Ident:
			if v := b.local(n); v != nil {
				current = b.next(current, cfg.Node{Kind: cfg.Read, Pos: n.Pos(), Element: n, Var: v})
			}
		}

		return true
	})

	return current
}

// appendFuncLit attaches the graph of a function literal to a node at its position.
func (b *builder) appendFuncLit(current cfg.NodeID, lit *ast.FuncLit) cfg.NodeID {
	id := b.next(current, cfg.Node{Kind: cfg.Plain, Pos: lit.Pos(), Element: lit})

	sub := b.function(cfg.Lambda, "func literal", lit.Type, lit.Body)
	b.arena.Attach(id, sub)

	return id
}

// appendAssignStmt handles assignments and short variable declarations.
//
// Operands on the left side and all expressions on the right side are evaluated before the assignments happen.
func (b *builder) appendAssignStmt(current cfg.NodeID, stmt *ast.AssignStmt) cfg.NodeID {
	define := stmt.Tok == token.DEFINE

	switch stmt.Tok {
	case token.ASSIGN, token.DEFINE:
		for _, lhs := range stmt.Lhs {
			current = b.appendOperands(current, lhs)
		}

	default: // Assignment operation, the left side is read
		current = b.appendExprs(current, stmt.Lhs)
	}

	current = b.appendExprs(current, stmt.Rhs)

	return b.appendStores(current, stmt.Lhs, define, stmt.End())
}

// appendOperands appends the reads of an assignment target's operands.
func (b *builder) appendOperands(current cfg.NodeID, lhs ast.Expr) cfg.NodeID {
	switch lhs := ast.Unparen(lhs).(type) {
	case *ast.Ident:
		return current

	case *ast.SelectorExpr:
		if b.addressable(lhs) || b.addressable(lhs.X) {
			return current
		}

		return b.appendExpr(current, lhs.X)

	case *ast.IndexExpr:
		if !b.addressable(lhs.X) {
			current = b.appendExpr(current, lhs.X)
		}

		return b.appendExpr(current, lhs.Index)

	default:
		return b.appendExpr(current, lhs)
	}
}

// appendStores appends the assignments to a list of targets.
func (b *builder) appendStores(current cfg.NodeID, lhs []ast.Expr, define bool, pos token.Pos) cfg.NodeID {
	for _, e := range lhs {
		current = b.appendStore(current, e, define, pos)
	}

	return current
}

// appendStore appends the assignment to a single target.
func (b *builder) appendStore(current cfg.NodeID, lhs ast.Expr, define bool, pos token.Pos) cfg.NodeID {
	switch lhs := ast.Unparen(lhs).(type) {
	case *ast.Ident:
		if lhs.Name == "_" {
			return current
		}

		if define {
			if v, ok := b.info.Defs[lhs].(*types.Var); ok {
				return b.next(current, cfg.Node{Kind: cfg.Declaration, Pos: pos, Element: lhs, Var: v, HasInitializer: true})
			}
		}

		if v := b.local(lhs); v != nil {
			return b.next(current, cfg.Node{Kind: cfg.Assignment, Pos: pos, Element: lhs, Var: v})
		}

	case *ast.SelectorExpr:
		if field := b.field(lhs); field != nil {
			return b.next(current, cfg.Node{Kind: cfg.Assignment, Pos: pos, Element: lhs, Var: field, Receiver: b.receiver})
		}
	}

	return current
}

// appendDeclStmt handles variable declarations. Constant and type declarations have no effect.
func (b *builder) appendDeclStmt(current cfg.NodeID, stmt *ast.DeclStmt) cfg.NodeID {
	decl, ok := stmt.Decl.(*ast.GenDecl)
	if !ok || decl.Tok != token.VAR {
		return current
	}

	for _, spec := range decl.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		current = b.appendExprs(current, vspec.Values)

		pos := vspec.End()
		for _, id := range vspec.Names {
			v, ok := b.info.Defs[id].(*types.Var)
			if !ok || id.Name == "_" {
				continue
			}

			current = b.next(current, cfg.Node{
				Kind:           cfg.Declaration,
				Pos:            pos,
				Element:        id,
				Var:            v,
				HasInitializer: len(vspec.Values) > 0,
			})
		}
	}

	return current
}

// local returns the local variable id refers to, or nil.
func (b *builder) local(id *ast.Ident) *types.Var {
	return Local(b.info, id)
}

// field returns the direct struct field sel selects on the receiver, or nil.
func (b *builder) field(sel *ast.SelectorExpr) *types.Var {
	return Field(b.info, b.receiver, sel)
}

// Local returns the function-local variable id refers to, or nil.
func Local(info *types.Info, id *ast.Ident) *types.Var {
	v, ok := info.Uses[id].(*types.Var)
	if !ok || v.IsField() || v.Pkg() == nil || v.Parent() == v.Pkg().Scope() {
		return nil
	}

	return v
}

// Field returns the direct struct field sel selects on recv, or nil.
func Field(info *types.Info, recv *types.Var, sel *ast.SelectorExpr) *types.Var {
	if recv == nil {
		return nil
	}

	id, ok := ast.Unparen(sel.X).(*ast.Ident)
	if !ok || info.Uses[id] != recv {
		return nil
	}

	selection, ok := info.Selections[sel]
	if !ok || selection.Kind() != types.FieldVal || len(selection.Index()) != 1 {
		return nil
	}

	field, _ := selection.Obj().(*types.Var)

	return field
}

// addressable reports whether e is a local variable or a field of the receiver.
// Taking its address or writing to its parts does not read it.
func (b *builder) addressable(e ast.Expr) bool {
	switch e := ast.Unparen(e).(type) {
	case *ast.Ident:
		return b.local(e) != nil

	case *ast.SelectorExpr:
		return b.field(e) != nil

	default:
		return false
	}
}
