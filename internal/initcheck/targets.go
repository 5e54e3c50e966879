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


package initcheck

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/initflow/internal/astutil"
	"fillmore-labs.com/initflow/internal/gocfg"
)

// Targets are the symbols tracked in one function.
type Targets struct {
	// Receiver is the method receiver fields are assigned through, nil for local variables.
	Receiver *types.Var

	// Vars are the tracked variables or fields in declaration order.
	Vars []*types.Var

	// Conditional are tracked symbols that may be assigned outside the analyzed flow,
	// in a function literal or through the escaping receiver.
	Conditional []*types.Var
}

// Empty reports whether nothing is tracked.
func (t Targets) Empty() bool { return len(t.Vars) == 0 }

// Locals selects the local variables of a function body declared without a value and assigned later.
//
// Variables whose zero value is used intentionally are not tracked: those updated by an
// assignment operation or increment, whose address is taken (also implicitly by calling a pointer
// method), that are partially written or that are assigned a value depending on themselves.
func Locals(info *types.Info, body inspector.Cursor) Targets {
	c := newCollector(info, nil)

	var declared []*types.Var

	for cur := range body.Preorder((*ast.DeclStmt)(nil)) {
		if inFuncLit(cur) {
			continue
		}

		for id, initialized := range astutil.AllDeclared(cur.Node().(*ast.DeclStmt)) {
			if v, ok := info.Defs[id].(*types.Var); ok && !initialized {
				declared = append(declared, v)
			}
		}
	}

	if len(declared) == 0 {
		return Targets{}
	}

	c.collect(body)

	return c.targets(declared)
}

// Members selects the direct fields of a method receiver that the method assigns.
//
// Fields are excluded by the same rules as local variables. When the receiver is used other than
// to select a field, all fields are conditional.
func Members(info *types.Info, decl *ast.FuncDecl, body inspector.Cursor) Targets {
	recv := receiver(info, decl)
	if recv == nil {
		return Targets{}
	}

	s, ok := deref(recv.Type()).Underlying().(*types.Struct)
	if !ok {
		return Targets{}
	}

	fields := make([]*types.Var, 0, s.NumFields())
	for i := range s.NumFields() {
		fields = append(fields, s.Field(i))
	}

	c := newCollector(info, recv)
	c.collect(body)

	return c.targets(fields)
}

// receiver returns the named receiver of a method, or nil.
func receiver(info *types.Info, decl *ast.FuncDecl) *types.Var {
	if decl.Recv == nil || len(decl.Recv.List) != 1 || len(decl.Recv.List[0].Names) != 1 {
		return nil
	}

	v, _ := info.Defs[decl.Recv.List[0].Names[0]].(*types.Var)

	return v
}

// collector gathers the assignments and excluding uses of candidate symbols.
type collector struct {
	info     *types.Info
	receiver *types.Var
	assigned map[*types.Var]bool // true when assigned in a function literal
	excluded map[*types.Var]struct{}
	escapes  bool // The receiver is used other than to select a field
}

func newCollector(info *types.Info, recv *types.Var) *collector {
	return &collector{
		info:     info,
		receiver: recv,
		assigned: make(map[*types.Var]bool),
		excluded: make(map[*types.Var]struct{}),
	}
}

// targets returns the assigned and not excluded candidates.
func (c *collector) targets(candidates []*types.Var) Targets {
	t := Targets{Receiver: c.receiver}

	for _, v := range candidates {
		lit, ok := c.assigned[v]
		if !ok {
			continue
		}

		if _, ok := c.excluded[v]; ok {
			continue
		}

		t.Vars = append(t.Vars, v)

		if lit || c.escapes {
			t.Conditional = append(t.Conditional, v)
		}
	}

	return t
}

func (c *collector) collect(body inspector.Cursor) {
	filter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.IncDecStmt)(nil),
		(*ast.RangeStmt)(nil),
		(*ast.UnaryExpr)(nil),
		(*ast.SelectorExpr)(nil),
		(*ast.Ident)(nil),
	}

	for cur := range body.Preorder(filter...) {
		switch n := cur.Node().(type) {
		case *ast.AssignStmt:
			c.assignStmt(n, inFuncLit(cur))

		case *ast.IncDecStmt:
			c.exclude(c.base(n.X))

		case *ast.RangeStmt:
			if n.Tok != token.ASSIGN {
				continue
			}

			for _, e := range [...]ast.Expr{n.Key, n.Value} {
				if e != nil {
					c.store(e, nil, inFuncLit(cur))
				}
			}

		case *ast.UnaryExpr:
			if n.Op == token.AND {
				c.exclude(c.base(n.X))
			}

		case *ast.SelectorExpr:
			if c.pointerMethod(n) {
				c.exclude(c.base(n.X))
			}

		case *ast.Ident:
			if c.receiver != nil && c.info.Uses[n] == c.receiver && !c.selectsField(cur) {
				c.escapes = true
			}
		}
	}
}

func (c *collector) assignStmt(stmt *ast.AssignStmt, lit bool) {
	switch stmt.Tok {
	case token.ASSIGN, token.DEFINE:
		for _, lhs := range stmt.Lhs {
			c.store(lhs, stmt.Rhs, lit)
		}

	default: // Assignment operation, the old value is used
		for _, lhs := range stmt.Lhs {
			c.exclude(c.base(lhs))
		}
	}
}

// store records the assignment of rhs to lhs.
func (c *collector) store(lhs ast.Expr, rhs []ast.Expr, lit bool) {
	v := c.whole(lhs)
	if v == nil {
		c.exclude(c.base(lhs)) // partial write

		return
	}

	if c.reads(v, rhs) {
		c.exclude(v)
	}

	c.assigned[v] = c.assigned[v] || lit
}

func (c *collector) exclude(v *types.Var) {
	if v != nil {
		c.excluded[v] = struct{}{}
	}
}

// whole returns the candidate e denotes as a whole, or nil.
func (c *collector) whole(e ast.Expr) *types.Var {
	switch e := ast.Unparen(e).(type) {
	case *ast.Ident:
		if c.receiver == nil {
			return gocfg.Local(c.info, e)
		}

	case *ast.SelectorExpr:
		return gocfg.Field(c.info, c.receiver, e)
	}

	return nil
}

// base returns the candidate e denotes a part of, or nil.
func (c *collector) base(e ast.Expr) *types.Var {
	for {
		if v := c.whole(e); v != nil {
			return v
		}

		switch x := ast.Unparen(e).(type) {
		case *ast.SelectorExpr:
			e = x.X

		case *ast.IndexExpr:
			e = x.X

		case *ast.SliceExpr:
			e = x.X

		case *ast.StarExpr:
			e = x.X

		default:
			return nil
		}
	}
}

// reads reports whether any of exprs reads v.
func (c *collector) reads(v *types.Var, exprs []ast.Expr) bool {
	found := false

	for _, e := range exprs {
		ast.Inspect(e, func(n ast.Node) bool {
			if x, ok := n.(ast.Expr); ok && !found && c.whole(x) == v {
				found = true
			}

			return !found
		})
	}

	return found
}

// pointerMethod reports whether sel is a method with pointer receiver selected on an addressable value.
func (c *collector) pointerMethod(sel *ast.SelectorExpr) bool {
	selection, ok := c.info.Selections[sel]
	if !ok || selection.Kind() != types.MethodVal {
		return false
	}

	fn, ok := selection.Obj().(*types.Func)
	if !ok {
		return false
	}

	recv := fn.Signature().Recv()
	if recv == nil {
		return false
	}

	_, ptrRecv := recv.Type().Underlying().(*types.Pointer)
	_, ptrValue := c.info.TypeOf(sel.X).Underlying().(*types.Pointer)

	return ptrRecv && !ptrValue
}

// selectsField reports whether the receiver identifier at cur is the operand of a field selection.
func (c *collector) selectsField(cur inspector.Cursor) bool {
	if k, _ := cur.ParentEdge(); k != edge.SelectorExpr_X {
		return false
	}

	sel, ok := cur.Parent().Node().(*ast.SelectorExpr)

	return ok && gocfg.Field(c.info, c.receiver, sel) != nil
}

// inFuncLit reports whether cur is inside a function literal.
func inFuncLit(cur inspector.Cursor) bool {
	for range cur.Enclosing((*ast.FuncLit)(nil)) {
		return true
	}

	return false
}

func deref(t types.Type) types.Type {
	if p, ok := t.Underlying().(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}
