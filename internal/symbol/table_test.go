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

package symbol_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hdlc-lang/hdlc/internal/namespace"
	"github.com/hdlc-lang/hdlc/internal/symbol"
	"github.com/hdlc-lang/hdlc/resource"
)

func TestResolveWalksScopeChainOutward(t *testing.T) {
	tbl := symbol.NewTable()

	idA := resource.Intern("a")
	scopeOuter := resource.Intern("mod")

	path := symbol.NewPath(idA)
	outerNS := namespace.Namespace{scopeOuter}

	sym := &symbol.Symbol{Kind: symbol.Variable{}}
	qt.Assert(t, qt.IsNil(tbl.Insert(path, outerNS, sym)))

	// resolving from a deeper, unrelated inner namespace falls back to
	// the outer scope once the inner one yields nothing.
	innerNS := outerNS.Push(resource.Intern("blk"))
	got, ok := tbl.Resolve(symbol.PathNamespace{Path: path, NS: innerNS})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got.Found, sym))
}

func TestResolveMiss(t *testing.T) {
	tbl := symbol.NewTable()
	_, ok := tbl.Resolve(symbol.PathNamespace{Path: symbol.NewPath(resource.Intern("nope"))})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestInsertDuplicateRejected(t *testing.T) {
	tbl := symbol.NewTable()
	path := symbol.NewPath(resource.Intern("x"))
	qt.Assert(t, qt.IsNil(tbl.Insert(path, nil, &symbol.Symbol{Kind: symbol.Variable{}})))
	err := tbl.Insert(path, nil, &symbol.Symbol{Kind: symbol.Variable{}})
	qt.Assert(t, qt.IsNotNil(err))
}

func TestResetClearsTableAndBumpsGeneration(t *testing.T) {
	tbl := symbol.NewTable()
	gen1 := tbl.Generation()
	path := symbol.NewPath(resource.Intern("x"))
	qt.Assert(t, qt.IsNil(tbl.Insert(path, nil, &symbol.Symbol{Kind: symbol.Variable{}})))

	tbl.Reset()
	gen2 := tbl.Generation()
	qt.Assert(t, qt.Not(qt.Equals(gen1, gen2)))

	_, ok := tbl.Resolve(symbol.PathNamespace{Path: path})
	qt.Assert(t, qt.IsFalse(ok))
}
