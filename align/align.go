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

// Package align implements the column-alignment engine (spec §4.H): for
// every source token it computes a non-negative padding value to insert
// immediately before it, so that columns of semantically related tokens
// line up across consecutive source lines. The engine never produces
// output text itself; it produces a Location -> padding map that an
// emitter consults while rendering.
package align

import "github.com/hdlc-lang/hdlc/token"

// Kind enumerates the fixed set of alignment columns the engine tracks.
type Kind int

const (
	Identifier Kind = iota
	Type
	Expression
	Width
	Array
	Assignment
	Parameter
	Direction
	// ClockDomain is only used by the formatter variant (spec §4.H).
	ClockDomain
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "IDENTIFIER"
	case Type:
		return "TYPE"
	case Expression:
		return "EXPRESSION"
	case Width:
		return "WIDTH"
	case Array:
		return "ARRAY"
	case Assignment:
		return "ASSIGNMENT"
	case Parameter:
		return "PARAMETER"
	case Direction:
		return "DIRECTION"
	case ClockDomain:
		return "CLOCK_DOMAIN"
	default:
		return "?"
	}
}

// item is one buffered column cell awaiting its group's max_width.
type item struct {
	loc   token.Location
	width uint32
}

// Align is a single kind's accumulator: it measures one "item" (a
// column cell) at a time between start_item/finish_item, buffers
// finished items into the current group, and pads every buffered item
// up to the group's widest one once the group closes.
type Align struct {
	enable   bool
	width    uint32
	line     uint32
	haveLine bool

	maxWidth uint32
	rest     []item

	additions map[token.Location]uint32

	lastLocation token.Location
	haveLast     bool
}

// NewAlign returns an empty accumulator.
func NewAlign() *Align {
	return &Align{additions: make(map[token.Location]uint32)}
}

// StartItem begins measuring a new column cell. Precondition: not
// already enabled.
func (a *Align) StartItem() {
	a.enable = true
	a.width = 0
}

// add is the shared primitive behind Token/Measured/DummyLocation/
// DuplicatedToken: charge width against the current item and anchor it
// at loc.
func (a *Align) add(loc token.Location, width uint32) {
	if !a.enable {
		return
	}
	a.width += width
	a.lastLocation = loc
	a.haveLast = true
}

// Token adds a real source token's width to the item being measured and
// records it as the anchor for this item's eventual padding.
func (a *Align) Token(t token.Token) { a.add(token.LocationOf(t), t.Length) }

// Measured is like Token but charges an explicitly computed width
// instead of the token's own source length, for a renderer that
// substitutes different text (e.g. a keyword rewrite) before emission.
func (a *Align) Measured(loc token.Location, width uint32) { a.add(loc, width) }

// Space adds n characters of virtual width without anchoring on a token,
// used by expression overrides to reserve room for rendered operator
// spacing.
func (a *Align) Space(n uint32) {
	if !a.enable {
		return
	}
	a.width += n
}

// DummyLocation marks a zero-width placeholder anchored at loc, so a
// column still exists (and gets padded) even though the syntactic slot
// producing it is absent from this particular item.
func (a *Align) DummyLocation(loc token.Location) { a.add(loc, 0) }

// DuplicatedToken behaves like Token but anchors on the i-th synthetic
// occurrence of t, letting one source token contribute independently
// padded output tokens.
func (a *Align) DuplicatedToken(t token.Token, i int) { a.add(token.Duplicate(t, i), t.Length) }

// FinishItem closes the current item. If at least one blank source line
// separates it from the previous item (its line is more than one past the
// previous item's), the current group is closed first (a blank line breaks
// alignment locality, per spec §4.H).
func (a *Align) FinishItem() {
	if !a.enable {
		return
	}
	a.enable = false

	if a.haveLast && a.haveLine && a.lastLocation.Line > a.line+1 {
		a.FinishGroup()
	}

	if a.width > a.maxWidth {
		a.maxWidth = a.width
	}
	if a.haveLast {
		a.rest = append(a.rest, item{loc: a.lastLocation, width: a.width})
		a.line = a.lastLocation.Line
		a.haveLine = true
	}
	a.width = 0
}

// FinishGroup pads every item buffered since the last group boundary up
// to the group's widest item, recording the padding in additions, then
// resets for the next group.
func (a *Align) FinishGroup() {
	for _, it := range a.rest {
		a.additions[it.loc] = a.maxWidth - it.width
	}
	a.rest = a.rest[:0]
	a.maxWidth = 0
}

// Additions returns the finalized per-location padding this accumulator
// has computed so far. Call FinishGroup first to flush any still-open
// group.
func (a *Align) Additions() map[token.Location]uint32 {
	return a.additions
}
