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

package handler_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hdlc-lang/hdlc/ast"
	"github.com/hdlc-lang/hdlc/handler"
	"github.com/hdlc-lang/hdlc/internal/dag"
	"github.com/hdlc-lang/hdlc/internal/namespace"
	"github.com/hdlc-lang/hdlc/internal/symbol"
	"github.com/hdlc-lang/hdlc/resource"
	"github.com/hdlc-lang/hdlc/walker"
)

func structField(name string, typeName string) *ast.LocalDeclaration {
	return &ast.LocalDeclaration{
		Identifier: newIdent(name, identTok(1, 1, name)),
		Type: &ast.ScopedIdentifier{
			Identifier: newIdent(typeName, identTok(1, 1, typeName)),
		},
	}
}

// declareAllSymbols inserts a StructKind symbol for every struct name
// referenced by the trees below, mirroring the symbol-table pass that
// runs before type-DAG construction in the full pipeline.
func declareAllSymbols(t *testing.T, symtab *symbol.Table, names ...string) {
	t.Helper()
	for _, n := range names {
		path := symbol.NewPath(resource.Intern(n))
		qt.Assert(t, qt.IsNil(symtab.Insert(path, nil, &symbol.Symbol{Kind: symbol.StructKind{}})))
	}
}

func TestTypeDAGCyclicStructsReportsExpectedNames(t *testing.T) {
	symtab := symbol.NewTable()
	declareAllSymbols(t, symtab, "A", "B", "a", "b")

	structA := &ast.StructUnionDeclaration{
		Identifier: newIdent("A", identTok(1, 1, "A")),
		Items:      []ast.Node{structField("b", "B")},
	}
	structB := &ast.StructUnionDeclaration{
		Identifier: newIdent("B", identTok(2, 1, "B")),
		Items:      []ast.Node{structField("a", "A")},
	}

	graph := dag.NewGraph()
	h := handler.NewTypeDAG(symtab, namespace.NewTable(), graph)
	w := walker.New(h)
	w.Walk(structA)
	w.Walk(structB)

	qt.Assert(t, qt.Equals(len(h.Diags), 1))
	qt.Assert(t, qt.Equals(h.Diags[0].Kind(), "cyclic_type_dependency"))
	qt.Assert(t, qt.Equals(h.Diags[0].Error(), "cyclic type dependency: A -> B"))
	qt.Assert(t, qt.IsTrue(graph.Acyclic()))
}

func TestTypeDAGUndefinedIdentifierReported(t *testing.T) {
	symtab := symbol.NewTable()
	declareAllSymbols(t, symtab, "A", "b")

	structA := &ast.StructUnionDeclaration{
		Identifier: newIdent("A", identTok(1, 1, "A")),
		Items:      []ast.Node{structField("b", "Missing")},
	}

	graph := dag.NewGraph()
	h := handler.NewTypeDAG(symtab, namespace.NewTable(), graph)
	w := walker.New(h)
	w.Walk(structA)

	qt.Assert(t, qt.Equals(len(h.Diags), 1))
	qt.Assert(t, qt.Equals(h.Diags[0].Kind(), "undefined_identifier"))
}

func TestTypeDAGExpressionIdentifierDoesNotContaminateGraph(t *testing.T) {
	symtab := symbol.NewTable()
	declareAllSymbols(t, symtab, "A", "x")

	// A reference inside an expression-identifier (e.g. a value use of a
	// name, not a type position) must not create a type-DAG edge.
	module := &ast.ModuleDeclaration{
		Identifier: newIdent("A", identTok(1, 1, "A")),
		Items: []ast.Node{
			&ast.ExpressionIdentifier{
				Ident: newIdent("x", identTok(1, 1, "x")),
				Parts: []ast.Node{&ast.ScopedIdentifier{Identifier: newIdent("x", identTok(1, 1, "x"))}},
			},
		},
	}

	graph := dag.NewGraph()
	h := handler.NewTypeDAG(symtab, namespace.NewTable(), graph)
	w := walker.New(h)
	w.Walk(module)

	qt.Assert(t, qt.Equals(len(h.Diags), 0))
	qt.Assert(t, qt.Equals(graph.Len(), 1))
}

// TestTypeDAGResolvesIdentifierDeclaredInEnclosingScope covers a struct
// declared inside a module scope (not file scope): the symbol is
// inserted under a non-empty namespace, so the reference to it must
// resolve against that same namespace, not the always-empty one, or
// this spuriously reports undefined_identifier for the common case of
// anything nested inside a module/interface/package.
func TestTypeDAGResolvesIdentifierDeclaredInEnclosingScope(t *testing.T) {
	symtab := symbol.NewTable()
	nstab := namespace.NewTable()

	moduleScope := namespace.Namespace{resource.Intern("Top")}
	declareAllSymbols(t, symtab, "Top", "field")
	qt.Assert(t, qt.IsNil(symtab.Insert(symbol.NewPath(resource.Intern("Inner")), moduleScope, &symbol.Symbol{Kind: symbol.StructKind{}})))

	fieldTypeTok := identTok(2, 5, "Inner")
	nstab.Set(fieldTypeTok.ID, moduleScope)

	module := &ast.ModuleDeclaration{
		Identifier: newIdent("Top", identTok(1, 1, "Top")),
		Items: []ast.Node{
			&ast.LocalDeclaration{
				Identifier: newIdent("field", identTok(2, 1, "field")),
				Type:       &ast.ScopedIdentifier{Identifier: newIdent("Inner", fieldTypeTok)},
			},
		},
	}

	graph := dag.NewGraph()
	h := handler.NewTypeDAG(symtab, nstab, graph)
	w := walker.New(h)
	w.Walk(module)

	qt.Assert(t, qt.Equals(len(h.Diags), 0))
	// Top, field and Inner.
	qt.Assert(t, qt.Equals(graph.Len(), 3))
}
