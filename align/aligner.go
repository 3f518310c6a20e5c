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

package align

import "github.com/hdlc-lang/hdlc/token"

// Aligner owns one Align accumulator per Kind and merges their finalized
// additions by summing contributions at identical locations (spec §4.H:
// "a Location may receive padding from multiple kinds... the final
// whitespace inserted is their sum").
type Aligner struct {
	kinds map[Kind]*Align
}

// NewAligner returns an Aligner with no kinds yet materialized; each is
// created lazily on first use.
func NewAligner() *Aligner {
	return &Aligner{kinds: make(map[Kind]*Align)}
}

func (a *Aligner) of(k Kind) *Align {
	al, ok := a.kinds[k]
	if !ok {
		al = NewAlign()
		a.kinds[k] = al
	}
	return al
}

func (a *Aligner) StartItem(k Kind)                              { a.of(k).StartItem() }
func (a *Aligner) Token(k Kind, t token.Token)                   { a.of(k).Token(t) }
func (a *Aligner) Measured(k Kind, loc token.Location, w uint32) { a.of(k).Measured(loc, w) }
func (a *Aligner) Space(k Kind, n uint32)                        { a.of(k).Space(n) }
func (a *Aligner) DummyLocation(k Kind, loc token.Location)      { a.of(k).DummyLocation(loc) }
func (a *Aligner) DuplicatedToken(k Kind, t token.Token, i int)  { a.of(k).DuplicatedToken(t, i) }
func (a *Aligner) FinishItem(k Kind)                             { a.of(k).FinishItem() }
func (a *Aligner) FinishGroup(k Kind)                            { a.of(k).FinishGroup() }

// Finalize closes every kind's still-open group and sums their
// additions into a single Location -> padding map.
func (a *Aligner) Finalize() map[token.Location]uint32 {
	merged := make(map[token.Location]uint32)
	for _, al := range a.kinds {
		al.FinishGroup()
		for loc, w := range al.Additions() {
			merged[loc] += w
		}
	}
	return merged
}
