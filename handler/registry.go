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

package handler

import (
	"github.com/hdlc-lang/hdlc/ast"
	"github.com/hdlc-lang/hdlc/diag"
	"github.com/hdlc-lang/hdlc/internal/dag"
	"github.com/hdlc-lang/hdlc/internal/namespace"
	"github.com/hdlc-lang/hdlc/internal/symbol"
	"github.com/hdlc-lang/hdlc/walker"
)

// Set bundles the fixed handler lineup for one semantic-analysis pass,
// along with the shared tables they mutate.
type Set struct {
	MsbLsb  *MsbLsb
	TypeDAG *TypeDAG
}

// NewSet wires up a fresh handler set against the given shared state.
func NewSet(symbols *symbol.Table, ns *namespace.Table, graph *dag.Graph) *Set {
	return &Set{
		MsbLsb:  NewMsbLsb(symbols, ns),
		TypeDAG: NewTypeDAG(symbols, ns, graph),
	}
}

// Walker returns a walker.Walker running every handler in the set, in
// order.
func (s *Set) Walker() *walker.Walker {
	return walker.New(s.MsbLsb, s.TypeDAG)
}

// Run walks file with every handler in the set and returns the combined,
// sanitized diagnostics from the pass.
func (s *Set) Run(file *ast.File) diag.List {
	s.Walker().Walk(file)
	var all diag.List
	all = append(all, s.MsbLsb.Diags...)
	all = append(all, s.TypeDAG.Diags...)
	return diag.Sanitize(all)
}
