// Copyright 2024 The hdlc Authors
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

// Package walker implements the double-dispatch traversal shared by every
// handler in this module (spec §4.F): one pre-order (Before) and one
// post-order (After) callback per grammar production, dispatched to every
// registered handler in a fixed order (reversed for After).
//
// Go has no trait-with-default-methods, so the "every callback has a
// no-op default, concrete handlers override only what they need" idiom is
// expressed the way cue/ast.Walk's visitor and internal/core/adt's
// default-returning interfaces are: a BaseHandler providing a no-op body
// for every production, embedded by each real handler, which then only
// defines the methods it cares about.
package walker

import "github.com/hdlc-lang/hdlc/ast"

// HandlerPoint is the phase of a production visit.
type HandlerPoint int

const (
	Before HandlerPoint = iota
	After
)

// Handler receives a callback for every grammar production, once per
// phase. A handler tracks its own current phase via SetPoint/Point so
// that one callback body can special-case Before vs. After behavior
// without the walker threading the phase through every call.
type Handler interface {
	SetPoint(HandlerPoint)
	Point() HandlerPoint

	File(*ast.File)
	Identifier(*ast.Identifier)
	ScopedIdentifier(*ast.ScopedIdentifier)
	ExpressionIdentifier(*ast.ExpressionIdentifier)
	Select(*ast.Select)
	Msb(*ast.Msb)
	Lsb(*ast.Lsb)
	BinaryExpr(*ast.BinaryExpr)
	Literal(*ast.Literal)

	StructUnionDeclaration(*ast.StructUnionDeclaration)
	LocalDeclaration(*ast.LocalDeclaration)
	TypeDefDeclaration(*ast.TypeDefDeclaration)
	ModportDeclaration(*ast.ModportDeclaration)
	EnumDeclaration(*ast.EnumDeclaration)
	ModuleDeclaration(*ast.ModuleDeclaration)
	InterfaceDeclaration(*ast.InterfaceDeclaration)
	PackageDeclaration(*ast.PackageDeclaration)
	ImportDeclaration(*ast.ImportDeclaration)

	ScalarType(*ast.ScalarType)
	Width(*ast.Width)
	ArrayDim(*ast.ArrayDim)
	LetStatement(*ast.LetStatement)
	VarDeclaration(*ast.VarDeclaration)
	Direction(*ast.Direction)
	PortDeclaration(*ast.PortDeclaration)
	ParameterDeclaration(*ast.ParameterDeclaration)
	Assignment(*ast.Assignment)
	ClockDomain(*ast.ClockDomain)
}

// BaseHandler gives every Handler method a no-op body. Embed it by value
// in a concrete handler and override only the productions that handler
// cares about.
type BaseHandler struct {
	point HandlerPoint
}

func (b *BaseHandler) SetPoint(p HandlerPoint) { b.point = p }
func (b *BaseHandler) Point() HandlerPoint     { return b.point }

func (b *BaseHandler) File(*ast.File)                                   {}
func (b *BaseHandler) Identifier(*ast.Identifier)                       {}
func (b *BaseHandler) ScopedIdentifier(*ast.ScopedIdentifier)           {}
func (b *BaseHandler) ExpressionIdentifier(*ast.ExpressionIdentifier)   {}
func (b *BaseHandler) Select(*ast.Select)                               {}
func (b *BaseHandler) Msb(*ast.Msb)                                     {}
func (b *BaseHandler) Lsb(*ast.Lsb)                                     {}
func (b *BaseHandler) BinaryExpr(*ast.BinaryExpr)                       {}
func (b *BaseHandler) Literal(*ast.Literal)                             {}
func (b *BaseHandler) StructUnionDeclaration(*ast.StructUnionDeclaration) {}
func (b *BaseHandler) LocalDeclaration(*ast.LocalDeclaration)           {}
func (b *BaseHandler) TypeDefDeclaration(*ast.TypeDefDeclaration)       {}
func (b *BaseHandler) ModportDeclaration(*ast.ModportDeclaration)       {}
func (b *BaseHandler) EnumDeclaration(*ast.EnumDeclaration)             {}
func (b *BaseHandler) ModuleDeclaration(*ast.ModuleDeclaration)         {}
func (b *BaseHandler) InterfaceDeclaration(*ast.InterfaceDeclaration)   {}
func (b *BaseHandler) PackageDeclaration(*ast.PackageDeclaration)       {}
func (b *BaseHandler) ImportDeclaration(*ast.ImportDeclaration)         {}
func (b *BaseHandler) ScalarType(*ast.ScalarType)                       {}
func (b *BaseHandler) Width(*ast.Width)                                 {}
func (b *BaseHandler) ArrayDim(*ast.ArrayDim)                           {}
func (b *BaseHandler) LetStatement(*ast.LetStatement)                   {}
func (b *BaseHandler) VarDeclaration(*ast.VarDeclaration)               {}
func (b *BaseHandler) Direction(*ast.Direction)                         {}
func (b *BaseHandler) PortDeclaration(*ast.PortDeclaration)             {}
func (b *BaseHandler) ParameterDeclaration(*ast.ParameterDeclaration)   {}
func (b *BaseHandler) Assignment(*ast.Assignment)                       {}
func (b *BaseHandler) ClockDomain(*ast.ClockDomain)                     {}

// Walker drives a fixed, ordered set of handlers over a parse tree.
type Walker struct {
	Handlers []Handler
}

// New returns a Walker running handlers in the given order for Before,
// and the reverse order for After (spec §4.F: "All handlers for one
// production receive Before in some fixed order; After in the reverse of
// that order.").
func New(handlers ...Handler) *Walker {
	return &Walker{Handlers: handlers}
}

// Walk visits n and, if it is a Parent, its children in source order,
// invoking every handler's Before callback on entry and After callback
// on exit.
func (w *Walker) Walk(n ast.Node) {
	if n == nil {
		return
	}
	for _, h := range w.Handlers {
		h.SetPoint(Before)
		dispatch(h, n)
	}
	if p, ok := n.(ast.Parent); ok {
		for _, c := range p.Children() {
			w.Walk(c)
		}
	}
	for i := len(w.Handlers) - 1; i >= 0; i-- {
		h := w.Handlers[i]
		h.SetPoint(After)
		dispatch(h, n)
	}
}

func dispatch(h Handler, n ast.Node) {
	switch v := n.(type) {
	case *ast.File:
		h.File(v)
	case *ast.Identifier:
		h.Identifier(v)
	case *ast.ScopedIdentifier:
		h.ScopedIdentifier(v)
	case *ast.ExpressionIdentifier:
		h.ExpressionIdentifier(v)
	case *ast.Select:
		h.Select(v)
	case *ast.Msb:
		h.Msb(v)
	case *ast.Lsb:
		h.Lsb(v)
	case *ast.BinaryExpr:
		h.BinaryExpr(v)
	case *ast.Literal:
		h.Literal(v)
	case *ast.StructUnionDeclaration:
		h.StructUnionDeclaration(v)
	case *ast.LocalDeclaration:
		h.LocalDeclaration(v)
	case *ast.TypeDefDeclaration:
		h.TypeDefDeclaration(v)
	case *ast.ModportDeclaration:
		h.ModportDeclaration(v)
	case *ast.EnumDeclaration:
		h.EnumDeclaration(v)
	case *ast.ModuleDeclaration:
		h.ModuleDeclaration(v)
	case *ast.InterfaceDeclaration:
		h.InterfaceDeclaration(v)
	case *ast.PackageDeclaration:
		h.PackageDeclaration(v)
	case *ast.ImportDeclaration:
		h.ImportDeclaration(v)
	case *ast.ScalarType:
		h.ScalarType(v)
	case *ast.Width:
		h.Width(v)
	case *ast.ArrayDim:
		h.ArrayDim(v)
	case *ast.LetStatement:
		h.LetStatement(v)
	case *ast.VarDeclaration:
		h.VarDeclaration(v)
	case *ast.Direction:
		h.Direction(v)
	case *ast.PortDeclaration:
		h.PortDeclaration(v)
	case *ast.ParameterDeclaration:
		h.ParameterDeclaration(v)
	case *ast.Assignment:
		h.Assignment(v)
	case *ast.ClockDomain:
		h.ClockDomain(v)
	}
}
