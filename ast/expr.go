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

package ast

import "github.com/hdlc-lang/hdlc/token"

// ExpressionIdentifier is a reference to a variable/port/etc., optionally
// followed by one or more bracketed Selects (bit-selects/array indices).
// Ident is the identifier the namespace table is keyed on.
type ExpressionIdentifier struct {
	Ident *Identifier
	// Parts holds any further Identifier (scope) and Select (bit-select)
	// productions in source order.
	Parts []Node
}

func (e *ExpressionIdentifier) FirstToken() token.Token { return e.Ident.FirstToken() }

func (e *ExpressionIdentifier) Children() []Node {
	out := make([]Node, 0, len(e.Parts)+1)
	out = append(out, e.Ident)
	out = append(out, e.Parts...)
	return out
}

// Select is a bracketed `[...]` suffix on an ExpressionIdentifier.
type Select struct {
	Bracket VerylToken
	// Content is the expression inside the brackets: may be an arbitrary
	// Node, or specifically a *Msb/*Lsb terminal when the select bound is
	// written using those keywords.
	Content Node
}

func (s *Select) FirstToken() token.Token { return s.Bracket.Token }

func (s *Select) Children() []Node {
	if s.Content == nil {
		return nil
	}
	return []Node{s.Content}
}

// Msb is the `msb` keyword used inside a Select.
type Msb struct {
	MsbToken VerylToken
}

func (m *Msb) FirstToken() token.Token { return m.MsbToken.Token }

// Lsb is the `lsb` keyword used inside a Select.
type Lsb struct {
	LsbToken VerylToken
}

func (l *Lsb) FirstToken() token.Token { return l.LsbToken.Token }

// BinaryExpr is a generic two-operand expression, used both for ordinary
// expressions and for rendering operators with surrounding spaces in the
// alignment engine.
type BinaryExpr struct {
	X  Node
	Op VerylToken
	Y  Node
}

func (b *BinaryExpr) FirstToken() token.Token { return b.X.FirstToken() }

func (b *BinaryExpr) Children() []Node { return []Node{b.X, b.Y} }

// Literal is a leaf expression (a number, string, or bare identifier used
// as a value).
type Literal struct {
	Token VerylToken
}

func (l *Literal) FirstToken() token.Token { return l.Token.Token }
