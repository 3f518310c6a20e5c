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

package resource_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hdlc-lang/hdlc/resource"
)

func TestInternIsBijective(t *testing.T) {
	tbl := resource.NewTable()

	a := tbl.Intern("foo")
	b := tbl.Intern("bar")
	c := tbl.Intern("foo")

	qt.Assert(t, qt.Equals(a, c))
	qt.Assert(t, qt.Not(qt.Equals(a, b)))

	s, ok := tbl.Reverse(a)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(s, "foo"))

	s, ok = tbl.Reverse(b)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(s, "bar"))
}

func TestReverseUnknownID(t *testing.T) {
	tbl := resource.NewTable()
	tbl.Intern("only")

	_, ok := tbl.Reverse(resource.ID(99))
	qt.Assert(t, qt.IsFalse(ok))

	_, ok = tbl.Reverse(resource.ID(-1))
	qt.Assert(t, qt.IsFalse(ok))
}

func TestReset(t *testing.T) {
	tbl := resource.NewTable()
	first := tbl.Intern("x")
	tbl.Reset()
	second := tbl.Intern("x")

	qt.Assert(t, qt.Equals(first, second))
	qt.Assert(t, qt.Equals(tbl.Len(), 1))
}

func TestSharedTable(t *testing.T) {
	resource.Reset()
	id := resource.Intern("shared-value")
	s, ok := resource.Reverse(id)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(s, "shared-value"))
}
