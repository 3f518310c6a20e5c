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

// Package resource implements the string interner: a bijection between
// strings and stable, totally ordered integer identifiers. It mirrors the
// shape of the teacher's internal/core/runtime label index, generalized to
// a standalone table rather than one entangled with the evaluator.
package resource

import "sync"

// ID is an opaque, totally ordered interned-string identifier.
type ID int64

// Table is a bijection between strings and IDs. The zero value is not
// usable; use NewTable.
type Table struct {
	mu    sync.Mutex
	byStr map[string]ID
	byID  []string
}

// NewTable returns an empty interner.
func NewTable() *Table {
	return &Table{byStr: make(map[string]ID)}
}

// Intern returns the stable ID for s, assigning a fresh one the first time
// s is seen.
func (t *Table) Intern(s string) ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.byStr[s]; ok {
		return id
	}
	id := ID(len(t.byID))
	t.byID = append(t.byID, s)
	t.byStr[s] = id
	return id
}

// Reverse returns the string that was interned as id, if any.
func (t *Table) Reverse(id ID) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id < 0 || int(id) >= len(t.byID) {
		return "", false
	}
	return t.byID[id], true
}

// Len reports how many distinct strings have been interned.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.byID)
}

// Reset clears the table, as happens when a new compilation starts (§5:
// the interner is process-wide with init-on-first-use/reset-on-new-
// compilation semantics).
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byStr = make(map[string]ID)
	t.byID = nil
}

// shared is the process-wide default table used by the package-level
// Intern/Reverse/Reset functions, mirroring the teacher's SharedIndex
// global-singleton pattern (internal/core/runtime.SharedIndex) while
// honoring the reset contract SharedIndex itself does not need, since one
// CUE process never needs to forget labels between compilations the way a
// multi-file HDL build does.
var shared = NewTable()

// Intern interns s in the process-wide table.
func Intern(s string) ID { return shared.Intern(s) }

// Reverse resolves id against the process-wide table.
func Reverse(id ID) (string, bool) { return shared.Reverse(id) }

// Reset clears the process-wide table.
func Reset() { shared.Reset() }
