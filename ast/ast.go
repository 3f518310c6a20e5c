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

// Package ast fixes the shape of the parse tree the walker consumes. The
// lexer and parser that produce this tree are external collaborators
// (spec §1); every production here is a plain struct whose fields are
// named after the grammar slots they hold, mirroring veryl_grammar_trait's
// generated types and cue/ast's node definitions.
package ast

import "github.com/hdlc-lang/hdlc/token"

// Node is implemented by every parse-tree production.
type Node interface {
	// FirstToken returns the production's leading token. The alignment
	// engine and the handlers anchor diagnostics/columns on it.
	FirstToken() token.Token
}

// Parent is implemented by productions with children the walker must
// recurse into. Leaf productions (terminals, keywords) need not implement
// it.
type Parent interface {
	Node
	Children() []Node
}

// VerylToken wraps a single terminal, along with an optional rendered-text
// override used by the transpiling emitter's keyword substitution (e.g.
// "clock" -> "logic") without mutating the token itself.
type VerylToken struct {
	Token token.Token
	text  string
}

// NewVerylToken wraps t with no override.
func NewVerylToken(t token.Token) VerylToken { return VerylToken{Token: t} }

func (v VerylToken) FirstToken() token.Token { return v.Token }

// Replace returns a copy of v whose rendered text is overridden, mirroring
// the teacher emitter's `arg.clock_token.replace("logic")` calls.
func (v VerylToken) Replace(text string) VerylToken {
	v.text = text
	return v
}

// RenderedText returns the text that should be measured and emitted for v:
// the override if one was set via Replace, otherwise the token's own
// source text.
func (v VerylToken) RenderedText() string {
	if v.text != "" {
		return v.text
	}
	s, _ := v.Token.Text()
	return s
}

// Identifier is a single name terminal.
type Identifier struct {
	IdentifierToken VerylToken
}

func (i *Identifier) FirstToken() token.Token { return i.IdentifierToken.Token }

// String returns the identifier's rendered text.
func (i *Identifier) String() string { return i.IdentifierToken.RenderedText() }

// ScopedIdentifier is a ::-joined dotted name: an Identifier followed by
// zero or more further Identifiers.
type ScopedIdentifier struct {
	Identifier *Identifier
	Rest       []*Identifier
}

func (s *ScopedIdentifier) FirstToken() token.Token { return s.Identifier.FirstToken() }

func (s *ScopedIdentifier) Children() []Node {
	out := make([]Node, 0, len(s.Rest)+1)
	out = append(out, s.Identifier)
	for _, r := range s.Rest {
		out = append(out, r)
	}
	return out
}

// String renders the full scoped name, e.g. "pkg::Type".
func (s *ScopedIdentifier) String() string {
	str := s.Identifier.String()
	for _, r := range s.Rest {
		str += "::" + r.String()
	}
	return str
}
