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

package walker_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hdlc-lang/hdlc/ast"
	"github.com/hdlc-lang/hdlc/token"
	"github.com/hdlc-lang/hdlc/walker"
)

// recorder logs every call it receives as "phase:production:name", followed
// by its tag, to assert ordering without depending on any real handler.
type recorder struct {
	walker.BaseHandler
	events *[]string
	tag    string
}

func (r *recorder) StructUnionDeclaration(s *ast.StructUnionDeclaration) {
	*r.events = append(*r.events, label(r.Point(), "struct", s.Identifier.String())+r.tag)
}

func (r *recorder) Identifier(i *ast.Identifier) {
	*r.events = append(*r.events, label(r.Point(), "ident", i.String())+r.tag)
}

func label(p walker.HandlerPoint, kind, name string) string {
	phase := "before"
	if p == walker.After {
		phase = "after"
	}
	return phase + ":" + kind + ":" + name
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{IdentifierToken: ast.NewVerylToken(token.New(1, 1, uint32(len(name)), name))}
}

func TestWalkBeforeAfterNestedAndBalanced(t *testing.T) {
	tree := &ast.StructUnionDeclaration{
		Identifier: ident("A"),
		Items: []ast.Node{
			&ast.LocalDeclaration{Identifier: ident("b")},
		},
	}
	var events []string
	r := &recorder{events: &events}
	w := walker.New(r)
	w.Walk(tree)

	qt.Assert(t, qt.DeepEquals(events, []string{
		"before:struct:A",
		"before:ident:b",
		"after:ident:b",
		"after:struct:A",
	}))
}

func TestWalkRunsHandlersInOrderThenReverse(t *testing.T) {
	var events []string
	a := &recorder{events: &events, tag: "/a"}
	b := &recorder{events: &events, tag: "/b"}
	w := walker.New(a, b)
	w.Walk(ident("x"))

	qt.Assert(t, qt.DeepEquals(events, []string{
		"before:ident:x/a",
		"before:ident:x/b",
		"after:ident:x/b",
		"after:ident:x/a",
	}))
}
