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

// StructUnionKind distinguishes a StructUnionDeclaration's two forms.
type StructUnionKind int

const (
	Struct StructUnionKind = iota
	Union
)

// StructUnionDeclaration declares a struct or union type; Items are
// typically LocalDeclaration field entries.
type StructUnionDeclaration struct {
	Identifier *Identifier
	Kind       StructUnionKind
	Items      []Node
}

func (s *StructUnionDeclaration) FirstToken() token.Token { return s.Identifier.FirstToken() }
func (s *StructUnionDeclaration) Children() []Node        { return s.Items }

// LocalDeclaration declares a locally scoped constant, type alias, or
// struct/union field. Type, when non-nil, is the referenced type
// expression (often a *ScopedIdentifier for a user-defined type).
type LocalDeclaration struct {
	Identifier *Identifier
	Type       Node
}

func (l *LocalDeclaration) FirstToken() token.Token { return l.Identifier.FirstToken() }

func (l *LocalDeclaration) Children() []Node {
	out := []Node{l.Identifier}
	if l.Type != nil {
		out = append(out, l.Type)
	}
	return out
}

// TypeDefDeclaration declares a type alias: `type Identifier = Type;`.
type TypeDefDeclaration struct {
	Identifier *Identifier
	Type       Node
}

func (t *TypeDefDeclaration) FirstToken() token.Token { return t.Identifier.FirstToken() }

func (t *TypeDefDeclaration) Children() []Node {
	if t.Type == nil {
		return nil
	}
	return []Node{t.Type}
}

// ModportDeclaration declares an interface modport.
type ModportDeclaration struct {
	Identifier *Identifier
	Items      []Node
}

func (m *ModportDeclaration) FirstToken() token.Token { return m.Identifier.FirstToken() }
func (m *ModportDeclaration) Children() []Node        { return m.Items }

// EnumDeclaration declares an enum type.
type EnumDeclaration struct {
	Identifier *Identifier
	Items      []Node
}

func (e *EnumDeclaration) FirstToken() token.Token { return e.Identifier.FirstToken() }
func (e *EnumDeclaration) Children() []Node        { return e.Items }

// ModuleDeclaration declares a module; Items holds its body (ports,
// parameters, declarations, instantiations...).
type ModuleDeclaration struct {
	Identifier *Identifier
	Items      []Node
}

func (m *ModuleDeclaration) FirstToken() token.Token { return m.Identifier.FirstToken() }
func (m *ModuleDeclaration) Children() []Node        { return m.Items }

// InterfaceDeclaration declares an interface.
type InterfaceDeclaration struct {
	Identifier *Identifier
	Items      []Node
}

func (i *InterfaceDeclaration) FirstToken() token.Token { return i.Identifier.FirstToken() }
func (i *InterfaceDeclaration) Children() []Node        { return i.Items }

// PackageDeclaration declares a package.
type PackageDeclaration struct {
	Identifier *Identifier
	Items      []Node
}

func (p *PackageDeclaration) FirstToken() token.Token { return p.Identifier.FirstToken() }
func (p *PackageDeclaration) Children() []Node        { return p.Items }

// ImportDeclaration imports a scoped identifier into file scope.
type ImportDeclaration struct {
	ScopedIdentifier *ScopedIdentifier
}

func (i *ImportDeclaration) FirstToken() token.Token { return i.ScopedIdentifier.FirstToken() }
func (i *ImportDeclaration) Children() []Node        { return []Node{i.ScopedIdentifier} }

// File is the root production of a single source file (named `Veryl` in
// the original grammar). Items holds every top-level description item in
// source order.
type File struct {
	Items []Node
}

func (f *File) FirstToken() token.Token {
	if len(f.Items) == 0 {
		return token.Token{}
	}
	return f.Items[0].FirstToken()
}

func (f *File) Children() []Node { return f.Items }

// Imports returns every ImportDeclaration directly at file scope, in
// source order, matching the file-scope pre-scan described in §4.G'.
func (f *File) Imports() []*ImportDeclaration {
	var out []*ImportDeclaration
	for _, item := range f.Items {
		if im, ok := item.(*ImportDeclaration); ok {
			out = append(out, im)
		}
	}
	return out
}
