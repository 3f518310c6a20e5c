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

// Package token defines the token model shared by the walker, the
// semantic handlers and the alignment engine: an immutable record of a
// lexeme's source coordinates plus an interned string identifier.
package token

import (
	"sync/atomic"

	"github.com/hdlc-lang/hdlc/resource"
)

// ID is a monotonically assigned sequence number, unique per token within
// one compilation.
type ID uint64

var idSeq atomic.Uint64

// NextID returns a fresh, process-wide unique token ID. Lexers (external
// to this module) call this once per lexeme.
func NextID() ID {
	return ID(idSeq.Add(1))
}

// ResetIDs rewinds the ID sequence. Called when a new compilation starts,
// matching the process-wide init-on-first-use/reset-on-new-compilation
// contract of §5.
func ResetIDs() {
	idSeq.Store(0)
}

// Token is an immutable record of one lexeme's position and interned text.
type Token struct {
	ID     ID
	Line   uint32
	Column uint32
	Length uint32
	TextID resource.ID
}

// New constructs a Token, interning text in the default table and
// assigning it a fresh ID.
func New(line, column, length uint32, text string) Token {
	return Token{
		ID:     NextID(),
		Line:   line,
		Column: column,
		Length: length,
		TextID: resource.Intern(text),
	}
}

// Text returns the token's original source text, if still resolvable.
func (t Token) Text() (string, bool) {
	return resource.Reverse(t.TextID)
}

// Location is the token-model coordinate used by the alignment engine: a
// line/column/length triple plus an optional "duplicated" tag. Two
// Locations that share (Line, Column) but differ in Duplicated denote
// distinct virtual tokens synthesized at emit time.
type Location struct {
	Line, Column, Length uint32
	// Duplicated is -1 for a location taken directly from source, or the
	// synthetic occurrence index for a location produced by
	// Align.DuplicatedToken.
	Duplicated int32
}

// NoDuplicate is the sentinel Duplicated value for a genuine source token.
const NoDuplicate int32 = -1

// LocationOf returns the plain (non-duplicated) Location of a token.
func LocationOf(t Token) Location {
	return Location{Line: t.Line, Column: t.Column, Length: t.Length, Duplicated: NoDuplicate}
}

// Duplicate returns a Location derived from t tagged as the i-th synthetic
// occurrence of that source token.
func Duplicate(t Token, i int) Location {
	loc := LocationOf(t)
	loc.Duplicated = int32(i)
	return loc
}
