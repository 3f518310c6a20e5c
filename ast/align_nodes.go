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

// Width is a packed bit-width annotation, `<expr>`, on a scalar type.
type Width struct {
	Langle     VerylToken
	Expression Node
	Rangle     VerylToken
}

func (w *Width) FirstToken() token.Token { return w.Langle.Token }

func (w *Width) Children() []Node {
	if w.Expression == nil {
		return nil
	}
	return []Node{w.Expression}
}

// ArrayDim is an outer array dimension, `[<expr>]`, on a declaration.
type ArrayDim struct {
	Lbracket   VerylToken
	Expression Node
	Rbracket   VerylToken
}

func (a *ArrayDim) FirstToken() token.Token { return a.Lbracket.Token }

func (a *ArrayDim) Children() []Node {
	if a.Expression == nil {
		return nil
	}
	return []Node{a.Expression}
}

// ScalarType is a type reference: either a built-in scalar keyword or a
// user-defined (possibly scoped) type, plus an optional packed Width.
type ScalarType struct {
	Builtin     *VerylToken       // non-nil for a built-in keyword (u32, logic, ...)
	UserDefined *ScopedIdentifier // non-nil for a user-defined type reference
	Width       *Width            // nil when no bit-width annotation is present
}

func (s *ScalarType) FirstToken() token.Token {
	if s.Builtin != nil {
		return s.Builtin.Token
	}
	return s.UserDefined.FirstToken()
}

func (s *ScalarType) Children() []Node {
	var out []Node
	if s.UserDefined != nil {
		out = append(out, s.UserDefined)
	}
	if s.Width != nil {
		out = append(out, s.Width)
	}
	return out
}

// LetStatement declares and binds a local name: `let id: Type = expr;`.
type LetStatement struct {
	Identifier *Identifier
	Colon      VerylToken
	Type       *ScalarType
	Equal      VerylToken
	Expression Node
}

func (l *LetStatement) FirstToken() token.Token { return l.Identifier.FirstToken() }

func (l *LetStatement) Children() []Node {
	out := []Node{l.Identifier}
	if l.Type != nil {
		out = append(out, l.Type)
	}
	if l.Expression != nil {
		out = append(out, l.Expression)
	}
	return out
}

// VarDeclaration declares a variable, optionally with array dimensions and
// a formatter-only clock-domain annotation.
type VarDeclaration struct {
	Identifier  *Identifier
	Type        *ScalarType
	Array       []*ArrayDim
	ClockDomain *ClockDomain
}

func (v *VarDeclaration) FirstToken() token.Token { return v.Identifier.FirstToken() }

func (v *VarDeclaration) Children() []Node {
	out := []Node{v.Identifier}
	if v.Type != nil {
		out = append(out, v.Type)
	}
	for _, a := range v.Array {
		out = append(out, a)
	}
	if v.ClockDomain != nil {
		out = append(out, v.ClockDomain)
	}
	return out
}

// Direction is a port direction keyword (input/output/inout/...).
type Direction struct {
	Token VerylToken
}

func (d *Direction) FirstToken() token.Token { return d.Token.Token }

// PortDeclaration declares one module/interface port.
type PortDeclaration struct {
	Direction  *Direction
	Identifier *Identifier
	Type       *ScalarType
}

func (p *PortDeclaration) FirstToken() token.Token {
	if p.Direction != nil {
		return p.Direction.FirstToken()
	}
	return p.Identifier.FirstToken()
}

func (p *PortDeclaration) Children() []Node {
	var out []Node
	if p.Direction != nil {
		out = append(out, p.Direction)
	}
	out = append(out, p.Identifier)
	if p.Type != nil {
		out = append(out, p.Type)
	}
	return out
}

// ParameterDeclaration declares a module/interface parameter with its
// default value.
type ParameterDeclaration struct {
	Identifier *Identifier
	Type       *ScalarType
	Expression Node
}

func (p *ParameterDeclaration) FirstToken() token.Token { return p.Identifier.FirstToken() }

func (p *ParameterDeclaration) Children() []Node {
	out := []Node{p.Identifier}
	if p.Type != nil {
		out = append(out, p.Type)
	}
	if p.Expression != nil {
		out = append(out, p.Expression)
	}
	return out
}

// Assignment is `identifier = expression;`.
type Assignment struct {
	Identifier *ExpressionIdentifier
	Equal      VerylToken
	Expression Node
}

func (a *Assignment) FirstToken() token.Token { return a.Identifier.FirstToken() }

func (a *Assignment) Children() []Node {
	out := []Node{a.Identifier}
	if a.Expression != nil {
		out = append(out, a.Expression)
	}
	return out
}

// ClockDomain is the formatter-only `:clk` annotation on a declaration.
// Present is false when the annotation is absent from source, in which
// case the formatter still reserves the column via a dummy token.
type ClockDomain struct {
	Present bool
	Token   VerylToken
}

func (c *ClockDomain) FirstToken() token.Token { return c.Token.Token }

// Clock, Reset and Const are the keyword terminals the transpiling
// emitter rewrites in place (clock/reset -> logic, const -> localparam).
type Clock struct{ ClockToken VerylToken }

func (c *Clock) FirstToken() token.Token { return c.ClockToken.Token }

type Reset struct{ ResetToken VerylToken }

func (r *Reset) FirstToken() token.Token { return r.ResetToken.Token }

type Const struct{ ConstToken VerylToken }

func (c *Const) FirstToken() token.Token { return c.ConstToken.Token }
