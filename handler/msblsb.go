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

// Package handler hosts the walker.Handler implementations that drive
// semantic analysis: MsbLsb validates and resolves the msb/lsb select
// keywords, TypeDAG builds the type dependency graph (spec §4.G, §4.G').
package handler

import (
	"github.com/hdlc-lang/hdlc/ast"
	"github.com/hdlc-lang/hdlc/diag"
	"github.com/hdlc-lang/hdlc/internal/namespace"
	"github.com/hdlc-lang/hdlc/internal/sidetable"
	"github.com/hdlc-lang/hdlc/internal/symbol"
	"github.com/hdlc-lang/hdlc/resource"
	"github.com/hdlc-lang/hdlc/walker"
)

// MsbLsb validates that `msb`/`lsb` only appear inside a select on an
// expression identifier, and for every valid `msb` resolves the bound
// expression of the selected dimension into a MsbTable.
type MsbLsb struct {
	walker.BaseHandler

	Symbols   *symbol.Table
	Namespace *namespace.Table
	MsbTable  *sidetable.Table[ast.Node]
	Diags     diag.List

	identifierPath  []symbol.PathNamespace
	selectDimension []uint32
	inExprIdent     bool
	inSelect        bool
}

// NewMsbLsb returns a handler wired to the given shared tables.
func NewMsbLsb(symbols *symbol.Table, ns *namespace.Table) *MsbLsb {
	return &MsbLsb{
		Symbols:   symbols,
		Namespace: ns,
		MsbTable:  sidetable.New[ast.Node](),
	}
}

func (h *MsbLsb) ExpressionIdentifier(e *ast.ExpressionIdentifier) {
	if h.Point() == walker.After {
		h.identifierPath = h.identifierPath[:len(h.identifierPath)-1]
		h.selectDimension = h.selectDimension[:len(h.selectDimension)-1]
		h.inExprIdent = false
		return
	}
	ns, _ := h.Namespace.Get(e.Ident.FirstToken().ID)
	h.identifierPath = append(h.identifierPath, symbol.PathNamespace{NS: ns})
	h.selectDimension = append(h.selectDimension, 0)
	h.inExprIdent = true
}

func (h *MsbLsb) Identifier(i *ast.Identifier) {
	if h.Point() == walker.After || !h.inExprIdent || len(h.identifierPath) == 0 {
		return
	}
	top := len(h.identifierPath) - 1
	h.identifierPath[top].Path = append(h.identifierPath[top].Path, resource.Intern(i.String()))
}

func (h *MsbLsb) Select(s *ast.Select) {
	if h.Point() == walker.Before {
		h.inSelect = true
		return
	}
	h.inSelect = false
	if h.inExprIdent && len(h.selectDimension) > 0 {
		top := len(h.selectDimension) - 1
		h.selectDimension[top]++
	}
}

func (h *MsbLsb) Lsb(l *ast.Lsb) {
	if h.Point() != walker.Before {
		return
	}
	if !(h.inExprIdent && h.inSelect) {
		h.Diags.Add(diag.InvalidLsb(l.FirstToken()))
	}
}

func (h *MsbLsb) Msb(m *ast.Msb) {
	if h.Point() != walker.Before {
		return
	}
	tok := m.FirstToken()
	if !(h.inExprIdent && h.inSelect) {
		h.Diags.Add(diag.InvalidMsb(tok))
		return
	}

	top := h.identifierPath[len(h.identifierPath)-1]
	resolved, ok := h.Symbols.Resolve(top)
	if !ok {
		h.Diags.Add(diag.UnknownMsb(tok))
		return
	}

	var declared symbol.Type
	switch k := resolved.Found.Kind.(type) {
	case symbol.Variable:
		declared = k.Type
	case symbol.Port:
		if k.Type == nil {
			h.Diags.Add(diag.UnknownMsb(tok))
			return
		}
		declared = *k.Type
	default:
		h.Diags.Add(diag.UnknownMsb(tok))
		return
	}

	chain := h.traceTypeChain(declared, resolved.Found.Namespace)

	k := h.selectDimension[len(h.selectDimension)-1]
	if dim, ok := dimensionAt(chain, k); ok {
		h.MsbTable.Set(tok, dim)
		return
	}
	h.Diags.Add(diag.UnknownMsb(tok))
}

// traceTypeChain follows TypeDef aliases reached through a UserDefined
// kind, flattening them into the ordered chain [original, ..., final].
// Every step resolves against ns, the namespace of the originally
// resolved variable/port symbol (mirroring trace_type's fixed namespace
// argument), not the namespace of whichever alias was last found — a
// type alias declared in an enclosing scope must still resolve even
// though nothing at the call site re-derives its own scope. The trace
// stops at the first non-TypeDef or unresolved type; a path already
// seen in this trace breaks the loop (the type DAG already forbids a
// genuine cycle here, so this is a backstop, not the primary guard).
func (h *MsbLsb) traceTypeChain(start symbol.Type, ns namespace.Namespace) []symbol.Type {
	chain := []symbol.Type{start}
	seen := map[string]bool{}
	cur := start
	for cur.Kind.IsUserDefined {
		key := cur.Kind.Path.String()
		if seen[key] {
			break
		}
		seen[key] = true

		next, ok := h.Symbols.Resolve(symbol.PathNamespace{Path: cur.Kind.Path, NS: ns})
		if !ok {
			break
		}
		td, ok := next.Found.Kind.(symbol.TypeDef)
		if !ok {
			break
		}
		chain = append(chain, td.Type)
		cur = td.Type
	}
	return chain
}

// dimensionAt walks chain in order, concatenating array++width
// dimensions per type, and returns the k-th dimension's expression
// (consuming the entire array list before any width list, per type).
func dimensionAt(chain []symbol.Type, k uint32) (ast.Node, bool) {
	remaining := k
	for _, t := range chain {
		n := uint32(len(t.Array) + len(t.Width))
		if remaining < n {
			if remaining < uint32(len(t.Array)) {
				return t.Array[remaining], true
			}
			return t.Width[remaining-uint32(len(t.Array))], true
		}
		remaining -= n
	}
	return nil, false
}
