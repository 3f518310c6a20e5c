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

// Package sidetable implements the generic token-id-keyed side tables
// used by handlers to stash a piece of per-token data outside the ast
// tree itself (the MSB table; the namespace table has its own type in
// internal/namespace). Keeping the
// data out of the tree means handlers that only read it never need to
// know about the ast types of whichever handler wrote it.
package sidetable

import (
	"sync"

	"github.com/hdlc-lang/hdlc/token"
)

// Table maps token.ID to a value of type V. Zero value is not usable;
// construct with New.
type Table[V any] struct {
	mu   sync.Mutex
	byID map[token.ID]V
}

// New returns an empty side table.
func New[V any]() *Table[V] {
	return &Table[V]{byID: make(map[token.ID]V)}
}

// Set records value for tok, overwriting any prior entry.
func (t *Table[V]) Set(tok token.Token, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byID[tok.ID] = value
}

// Get retrieves the value previously set for tok.
func (t *Table[V]) Get(tok token.Token) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.byID[tok.ID]
	return v, ok
}

// Delete removes any entry for tok.
func (t *Table[V]) Delete(tok token.Token) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.byID, tok.ID)
}

// Reset clears the table for a new compilation.
func (t *Table[V]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byID = make(map[token.ID]V)
}

// Len reports the number of entries currently stored.
func (t *Table[V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.byID)
}
