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

package align_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hdlc-lang/hdlc/align"
	"github.com/hdlc-lang/hdlc/token"
)

func tok(line uint32, length uint32, text string) token.Token {
	return token.New(line, 1, length, text)
}

func TestFinishItemPadsToGroupMax(t *testing.T) {
	a := align.NewAlign()

	a.StartItem()
	a.Token(tok(1, 3, "foo"))
	a.FinishItem()

	a.StartItem()
	a.Token(tok(2, 7, "longname"))
	a.FinishItem()

	a.FinishGroup()
	additions := a.Additions()

	qt.Assert(t, qt.Equals(len(additions), 2))
	for loc, w := range additions {
		if loc.Line == 1 {
			qt.Assert(t, qt.Equals(w, uint32(4)))
		} else {
			qt.Assert(t, qt.Equals(w, uint32(0)))
		}
	}
}

func TestBlankLineBreaksGroup(t *testing.T) {
	a := align.NewAlign()

	a.StartItem()
	a.Token(tok(1, 3, "foo"))
	a.FinishItem()

	// line 5 is more than one blank line after line 1 -> new group.
	a.StartItem()
	a.Token(tok(5, 6, "barbaz"))
	a.FinishItem()

	a.FinishGroup()
	additions := a.Additions()

	// each item is alone in its own group, so no padding is added.
	for _, w := range additions {
		qt.Assert(t, qt.Equals(w, uint32(0)))
	}
	qt.Assert(t, qt.Equals(len(additions), 2))
}

func TestDummyLocationCreatesZeroWidthColumn(t *testing.T) {
	a := align.NewAlign()
	loc := token.LocationOf(tok(1, 0, ""))

	a.StartItem()
	a.DummyLocation(loc)
	a.FinishItem()

	a.StartItem()
	a.Token(tok(2, 5, "width"))
	a.FinishItem()

	a.FinishGroup()
	additions := a.Additions()
	qt.Assert(t, qt.Equals(additions[loc], uint32(5)))
}

func TestAlignerSumsAcrossKinds(t *testing.T) {
	aligner := align.NewAligner()
	tIdent := tok(1, 3, "foo")
	identLoc := token.LocationOf(tIdent)

	// TYPE column: a real "u" item, then a dummy item anchored at the
	// identifier's own location (standing in for the WIDTH-less scalar
	// type column that always closes just before the identifier).
	aligner.StartItem(align.Type)
	aligner.Token(align.Type, tok(1, 1, "u"))
	aligner.FinishItem(align.Type)
	aligner.StartItem(align.Type)
	aligner.DummyLocation(align.Type, identLoc)
	aligner.FinishItem(align.Type)

	aligner.StartItem(align.Identifier)
	aligner.Token(align.Identifier, tIdent)
	aligner.FinishItem(align.Identifier)

	merged := aligner.Finalize()
	// TYPE pads the zero-width dummy item at identLoc up to the "u"
	// item's width (1); IDENTIFIER's own single-item group contributes
	// 0. The location's total padding is the sum, 1.
	qt.Assert(t, qt.Equals(merged[identLoc], uint32(1)))
}
