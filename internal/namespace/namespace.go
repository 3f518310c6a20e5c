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

// Package namespace holds the enclosing-scope-chain model and its
// per-token side table, populated during an earlier pass (spec §3, §6:
// "assumed present for every identifier token").
package namespace

import (
	"slices"

	"github.com/hdlc-lang/hdlc/resource"
	"github.com/hdlc-lang/hdlc/token"
)

// Namespace is the ordered chain of enclosing named scopes at a program
// point, outermost first.
type Namespace []resource.ID

// Equal reports whether two namespaces denote the same scope chain.
func (n Namespace) Equal(o Namespace) bool {
	return slices.Equal(n, o)
}

// Push returns a new Namespace with id appended as the innermost scope.
func (n Namespace) Push(id resource.ID) Namespace {
	out := make(Namespace, len(n)+1)
	copy(out, n)
	out[len(n)] = id
	return out
}

// Table is the token_id -> Namespace side table (§3 "Namespace table").
type Table struct {
	byToken map[token.ID]Namespace
}

// NewTable returns an empty namespace table.
func NewTable() *Table {
	return &Table{byToken: make(map[token.ID]Namespace)}
}

// Set records the namespace in effect at tok.
func (t *Table) Set(tok token.ID, ns Namespace) {
	t.byToken[tok] = ns
}

// Get returns the namespace recorded for tok, if an earlier pass
// populated it.
func (t *Table) Get(tok token.ID) (Namespace, bool) {
	ns, ok := t.byToken[tok]
	return ns, ok
}

// Reset clears the table, as happens when a new compilation starts.
func (t *Table) Reset() {
	t.byToken = make(map[token.ID]Namespace)
}

// shared is the process-wide namespace table (§5: process-wide,
// init-on-first-use/reset-on-new-compilation).
var shared = NewTable()

// Set records ns for tok in the process-wide table.
func Set(tok token.ID, ns Namespace) { shared.Set(tok, ns) }

// Get looks up tok in the process-wide table.
func Get(tok token.ID) (Namespace, bool) { return shared.Get(tok) }

// Reset clears the process-wide table.
func Reset() { shared.Reset() }
