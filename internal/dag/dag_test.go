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

package dag_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/go-quicktest/qt"

	"github.com/hdlc-lang/hdlc/internal/dag"
	"github.com/hdlc-lang/hdlc/internal/symbol"
	"github.com/hdlc-lang/hdlc/resource"
	"github.com/hdlc-lang/hdlc/token"
)

// tokenSamePosition compares two tokens by source coordinates and text,
// ignoring the process-wide sequence number token.New assigns, since two
// independently constructed tokens for the same lexeme never share an ID.
func tokenSamePosition(a, b token.Token) bool {
	return a.Line == b.Line && a.Column == b.Column && a.Length == b.Length && a.TextID == b.TextID
}

func declare(t *testing.T, symtab *symbol.Table, name string) symbol.PathNamespace {
	t.Helper()
	path := symbol.NewPath(resource.Intern(name))
	pn := symbol.PathNamespace{Path: path}
	qt.Assert(t, qt.IsNil(symtab.Insert(path, nil, &symbol.Symbol{Kind: symbol.StructKind{}})))
	return pn
}

func TestInsertNodeIsIdempotent(t *testing.T) {
	symtab := symbol.NewTable()
	pn := declare(t, symtab, "a")
	g := dag.NewGraph()

	id1, err := g.InsertNode(symtab, pn, "a", token.Token{})
	qt.Assert(t, qt.IsNil(err))
	id2, err := g.InsertNode(symtab, pn, "a", token.Token{})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(id1, id2))
	qt.Assert(t, qt.Equals(g.Len(), 1))
}

func TestInsertNodeUnresolved(t *testing.T) {
	symtab := symbol.NewTable()
	g := dag.NewGraph()
	missing := symbol.PathNamespace{Path: symbol.NewPath(resource.Intern("nope"))}
	_, err := g.InsertNode(symtab, missing, "nope", token.Token{})
	qt.Assert(t, qt.IsNotNil(err))
	var uerr *dag.UnresolvedError
	qt.Assert(t, qt.ErrorAs(err, &uerr))
}

func TestInsertEdgeDetectsDirectCycle(t *testing.T) {
	symtab := symbol.NewTable()
	g := dag.NewGraph()
	pa := declare(t, symtab, "a")
	pb := declare(t, symtab, "b")

	a, err := g.InsertNode(symtab, pa, "a", token.Token{})
	qt.Assert(t, qt.IsNil(err))
	b, err := g.InsertNode(symtab, pb, "b", token.Token{})
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.IsNil(g.InsertEdge(b, a, dag.CtxStruct)))
	qt.Assert(t, qt.IsTrue(g.ExistEdge(b, a)))

	err = g.InsertEdge(a, b, dag.CtxStruct)
	qt.Assert(t, qt.IsNotNil(err))
	var cerr *dag.CyclicError
	qt.Assert(t, qt.ErrorAs(err, &cerr))
	qt.Assert(t, qt.Equals(cerr.Src.Name, "a"))
	qt.Assert(t, qt.Equals(cerr.Dst.Name, "b"))
	qt.Assert(t, qt.IsFalse(g.ExistEdge(a, b)))
	qt.Assert(t, qt.IsTrue(g.Acyclic()))
}

func TestInsertEdgeRejectsSelfLoop(t *testing.T) {
	symtab := symbol.NewTable()
	g := dag.NewGraph()
	pa := declare(t, symtab, "a")
	a, err := g.InsertNode(symtab, pa, "a", token.Token{})
	qt.Assert(t, qt.IsNil(err))
	err = g.InsertEdge(a, a, dag.CtxStruct)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestOwnedEdgeSupersedesReferenceEdge(t *testing.T) {
	symtab := symbol.NewTable()
	g := dag.NewGraph()
	pp := declare(t, symtab, "parent")
	pc := declare(t, symtab, "child")
	parent, err := g.InsertNode(symtab, pp, "parent", token.Token{})
	qt.Assert(t, qt.IsNil(err))
	child, err := g.InsertNode(symtab, pc, "child", token.Token{})
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.IsNil(g.InsertEdge(child, parent, dag.CtxStruct)))
	qt.Assert(t, qt.IsTrue(g.ExistEdge(child, parent)))

	g.InsertOwned(parent, child)
	qt.Assert(t, qt.IsFalse(g.ExistEdge(child, parent)))
	qt.Assert(t, qt.IsTrue(g.IsOwned(parent, child)))
}

func TestNodeSnapshotMatchesIgnoringTokenSequence(t *testing.T) {
	symtab := symbol.NewTable()
	g := dag.NewGraph()
	pa := declare(t, symtab, "a")

	id, err := g.InsertNode(symtab, pa, "a", token.New(3, 5, 1, "a"))
	qt.Assert(t, qt.IsNil(err))

	want := dag.Node{
		ID:    id,
		Path:  pa.Path,
		Name:  "a",
		Token: token.New(3, 5, 1, "a"),
	}
	diff := cmp.Diff(want, g.Node(id), cmp.Comparer(tokenSamePosition))
	qt.Assert(t, qt.Equals(diff, ""))
}
