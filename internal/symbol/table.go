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

package symbol

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hdlc-lang/hdlc/internal/namespace"
)

// Resolved is the result of a successful Resolve.
type Resolved struct {
	Found *Symbol
}

// Table maps (Path, Namespace) to at most one Symbol, per spec §3's
// invariant. It provides scope-chain resolution: innermost namespace
// outward.
type Table struct {
	mu   sync.Mutex
	byNS map[string]*Symbol
	// generation changes every Reset, letting debug traces distinguish
	// entries left over from a previous compilation from a bug (§3:
	// "cleared when a new compilation starts").
	generation uuid.UUID
}

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{byNS: make(map[string]*Symbol), generation: uuid.New()}
}

// Generation identifies the current compilation's symbol-table instance.
func (t *Table) Generation() uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}

// Insert registers sym at (path, ns). It is an error to insert a second
// symbol at an already-occupied (path, ns) pair.
func (t *Table) Insert(path Path, ns namespace.Namespace, sym *Symbol) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := PathNamespace{Path: path, NS: ns}.key()
	if _, exists := t.byNS[key]; exists {
		return fmt.Errorf("symbol already declared at this scope")
	}
	t.byNS[key] = sym
	return nil
}

// Resolve performs scope-chain lookup from the innermost namespace
// outward, returning the first matching symbol.
func (t *Table) Resolve(k PathNamespace) (Resolved, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ns := k.NS
	for {
		key := PathNamespace{Path: k.Path, NS: ns}.key()
		if sym, ok := t.byNS[key]; ok {
			return Resolved{Found: sym}, true
		}
		if len(ns) == 0 {
			return Resolved{}, false
		}
		ns = ns[:len(ns)-1]
	}
}

// ResolveIdentifier is a convenience overload resolving a single
// unscoped identifier against ns; the caller supplies the namespace
// recorded for the identifier's token.
func (t *Table) ResolveIdentifier(id Path, ns namespace.Namespace) (Resolved, bool) {
	return t.Resolve(PathNamespace{Path: id, NS: ns})
}

// Reset clears the table for a new compilation.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byNS = make(map[string]*Symbol)
	t.generation = uuid.New()
}

// shared is the process-wide symbol table (§5).
var shared = NewTable()

// Insert registers sym in the process-wide table.
func Insert(path Path, ns namespace.Namespace, sym *Symbol) error {
	return shared.Insert(path, ns, sym)
}

// Resolve looks up k in the process-wide table.
func Resolve(k PathNamespace) (Resolved, bool) { return shared.Resolve(k) }

// Reset clears the process-wide table.
func Reset() { shared.Reset() }
