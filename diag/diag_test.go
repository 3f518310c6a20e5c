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

package diag_test

import (
	"bytes"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hdlc-lang/hdlc/diag"
	"github.com/hdlc-lang/hdlc/token"
)

func TestSortOrdersByPosition(t *testing.T) {
	var l diag.List
	l.Add(diag.InvalidMsb(token.New(5, 1, 1, "msb")))
	l.Add(diag.InvalidLsb(token.New(1, 1, 1, "lsb")))

	sorted := diag.Sanitize(l)
	qt.Assert(t, qt.Equals(sorted[0].Kind(), "invalid_lsb"))
	qt.Assert(t, qt.Equals(sorted[1].Kind(), "invalid_msb"))
}

func TestRemoveMultiplesDropsDuplicates(t *testing.T) {
	var l diag.List
	tok := token.New(1, 1, 1, "x")
	l.Add(diag.InvalidLsb(tok))
	l.Add(diag.InvalidLsb(tok))

	sanitized := diag.Sanitize(l)
	qt.Assert(t, qt.Equals(len(sanitized), 1))
}

func TestPrintWritesOnePerLine(t *testing.T) {
	var l diag.List
	l.Add(diag.UndefinedIdentifier("Foo", token.New(2, 3, 3, "Foo")))

	var buf bytes.Buffer
	diag.Print(&buf, l)
	qt.Assert(t, qt.Equals(buf.String(), "2:3: undefined identifier: Foo\n"))
}
