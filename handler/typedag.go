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

package handler

import (
	"github.com/hdlc-lang/hdlc/ast"
	"github.com/hdlc-lang/hdlc/diag"
	"github.com/hdlc-lang/hdlc/internal/dag"
	"github.com/hdlc-lang/hdlc/internal/namespace"
	"github.com/hdlc-lang/hdlc/internal/symbol"
	"github.com/hdlc-lang/hdlc/resource"
	"github.com/hdlc-lang/hdlc/token"
	"github.com/hdlc-lang/hdlc/walker"
)

// TypeDAG builds the type dependency graph across declarations, detects
// cycles at insertion time, and attributes edges with the syntactic
// context in which the reference occurred (spec §4.G').
type TypeDAG struct {
	walker.BaseHandler

	Symbols   *symbol.Table
	Namespace *namespace.Table
	Graph     *dag.Graph
	Diags     diag.List

	parent          []dag.NodeID
	ctx             []dag.Context
	fileScopeImport []dag.NodeID
}

// NewTypeDAG returns a handler wired to the given symbol table, namespace
// table and type graph.
func NewTypeDAG(symbols *symbol.Table, ns *namespace.Table, graph *dag.Graph) *TypeDAG {
	return &TypeDAG{Symbols: symbols, Namespace: ns, Graph: graph}
}

// pathNamespace builds the PathNamespace a declaration at tok resolves
// and is inserted under, looking up tok's enclosing scope chain the way
// handler/msblsb.go's ExpressionIdentifier does. Every PathNamespace this
// handler builds must carry this, or Resolve only ever sees the global
// (empty) scope and spuriously reports every non-file-scope identifier as
// undefined.
func (h *TypeDAG) pathNamespace(name string, tok token.Token) symbol.PathNamespace {
	ns, _ := h.Namespace.Get(tok.ID)
	return symbol.PathNamespace{Path: symbol.NewPath(resource.Intern(name)), NS: ns}
}

func (h *TypeDAG) topParent() (dag.NodeID, bool) {
	if len(h.parent) == 0 {
		return 0, false
	}
	return h.parent[len(h.parent)-1], true
}

func (h *TypeDAG) topCtx() dag.Context {
	if len(h.ctx) == 0 {
		return dag.CtxStruct
	}
	return h.ctx[len(h.ctx)-1]
}

// declare implements the shared "declaration production" transition: it
// inserts (or finds) the node for name/tok, wires ownership and the
// edge to the enclosing declaration if this created a fresh node, and
// optionally opens a new scope. wireImports additionally wires every
// gathered file-scope import once the scope opens; only module,
// interface and package declarations do this.
func (h *TypeDAG) declare(name string, tok token.Token, opensScope, wireImports bool, scopeCtx dag.Context) {
	pn := h.pathNamespace(name, tok)
	before := h.Graph.Len()
	x, err := h.Graph.InsertNode(h.Symbols, pn, name, tok)
	if err != nil {
		h.reportInsertNode(err)
		return
	}
	created := h.Graph.Len() > before

	if created {
		if parent, ok := h.topParent(); ok {
			h.Graph.InsertOwned(parent, x)
			h.insertEdge(x, parent, h.topCtx())
		}
	}

	if opensScope {
		h.parent = append(h.parent, x)
		h.ctx = append(h.ctx, scopeCtx)
		if wireImports {
			for _, imp := range h.fileScopeImport {
				h.insertEdge(x, imp, scopeCtx)
			}
		}
	}
}

func (h *TypeDAG) closeScope() {
	h.parent = h.parent[:len(h.parent)-1]
	h.ctx = h.ctx[:len(h.ctx)-1]
}

// insertEdge adds the edge and turns a cyclic rejection into a
// diagnostic. src/dst follow the low-level dag.Graph.InsertEdge
// convention; callers choose their order per spec §4.G'.
func (h *TypeDAG) insertEdge(src, dst dag.NodeID, ctx dag.Context) {
	if err := h.Graph.InsertEdge(src, dst, ctx); err != nil {
		h.reportInsertEdge(err)
	}
}

func (h *TypeDAG) reportInsertNode(err error) {
	if uerr, ok := err.(*dag.UnresolvedError); ok {
		h.Diags.Add(diag.UndefinedIdentifier(uerr.Name, uerr.Token))
	}
}

func (h *TypeDAG) reportInsertEdge(err error) {
	if cerr, ok := err.(*dag.CyclicError); ok {
		h.Diags.Add(diag.CyclicTypeDependency(cerr.Dst.Name, cerr.Src.Name, cerr.Src.Token))
	}
}

func (h *TypeDAG) StructUnionDeclaration(s *ast.StructUnionDeclaration) {
	if h.Point() == walker.After {
		h.closeScope()
		return
	}
	ctx := dag.CtxStruct
	if s.Kind == ast.Union {
		ctx = dag.CtxUnion
	}
	h.declare(s.Identifier.String(), s.Identifier.FirstToken(), true, false, ctx)
}

func (h *TypeDAG) ModportDeclaration(m *ast.ModportDeclaration) {
	if h.Point() == walker.After {
		h.closeScope()
		return
	}
	h.declare(m.Identifier.String(), m.Identifier.FirstToken(), true, false, dag.CtxModport)
}

func (h *TypeDAG) EnumDeclaration(e *ast.EnumDeclaration) {
	if h.Point() == walker.After {
		h.closeScope()
		return
	}
	h.declare(e.Identifier.String(), e.Identifier.FirstToken(), true, false, dag.CtxEnum)
}

func (h *TypeDAG) ModuleDeclaration(m *ast.ModuleDeclaration) {
	if h.Point() == walker.After {
		h.closeScope()
		return
	}
	h.declare(m.Identifier.String(), m.Identifier.FirstToken(), true, true, dag.CtxModule)
}

func (h *TypeDAG) InterfaceDeclaration(i *ast.InterfaceDeclaration) {
	if h.Point() == walker.After {
		h.closeScope()
		return
	}
	h.declare(i.Identifier.String(), i.Identifier.FirstToken(), true, true, dag.CtxInterface)
}

func (h *TypeDAG) PackageDeclaration(p *ast.PackageDeclaration) {
	if h.Point() == walker.After {
		h.closeScope()
		return
	}
	h.declare(p.Identifier.String(), p.Identifier.FirstToken(), true, true, dag.CtxPackage)
}

func (h *TypeDAG) TypeDefDeclaration(t *ast.TypeDefDeclaration) {
	if h.Point() != walker.Before {
		return
	}
	h.declare(t.Identifier.String(), t.Identifier.FirstToken(), false, false, h.topCtx())
}

func (h *TypeDAG) LocalDeclaration(l *ast.LocalDeclaration) {
	if h.Point() != walker.Before {
		return
	}
	h.declare(l.Identifier.String(), l.Identifier.FirstToken(), false, false, h.topCtx())
}

func (h *TypeDAG) ExpressionIdentifier(e *ast.ExpressionIdentifier) {
	if h.Point() == walker.Before {
		h.ctx = append(h.ctx, dag.CtxExpressionIdentifier)
		return
	}
	h.ctx = h.ctx[:len(h.ctx)-1]
}

func (h *TypeDAG) ScopedIdentifier(s *ast.ScopedIdentifier) {
	if h.Point() != walker.Before {
		return
	}
	if len(h.ctx) == 0 || h.topCtx() == dag.CtxExpressionIdentifier {
		return
	}
	name := s.String()
	pn := h.pathNamespace(name, s.FirstToken())
	child, err := h.Graph.InsertNode(h.Symbols, pn, name, s.FirstToken())
	if err != nil {
		h.reportInsertNode(err)
		return
	}
	if parent, ok := h.topParent(); ok && !h.Graph.IsOwned(parent, child) {
		h.insertEdge(parent, child, h.topCtx())
	}
}

func (h *TypeDAG) File(f *ast.File) {
	if h.Point() != walker.Before {
		return
	}
	for _, imp := range f.Imports() {
		name := imp.ScopedIdentifier.String()
		pn := h.pathNamespace(name, imp.FirstToken())
		id, err := h.Graph.InsertNode(h.Symbols, pn, name, imp.FirstToken())
		if err != nil {
			h.reportInsertNode(err)
			h.fileScopeImport = append(h.fileScopeImport, dag.InvalidNode)
			continue
		}
		h.fileScopeImport = append(h.fileScopeImport, id)
	}
}
