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

package diag

import (
	"fmt"

	"github.com/hdlc-lang/hdlc/token"
)

// AnalyzerError is the concrete type behind every kind-specific
// diagnostic: a kind tag, the offending token, and a rendered message into
// which any kind-specific payload (e.g. the names in a cycle) is already
// formatted. No source text snippet is stored.
type AnalyzerError struct {
	kind string
	pos  token.Token
	msg  string
}

func (e *AnalyzerError) Error() string        { return e.msg }
func (e *AnalyzerError) Position() token.Token { return e.pos }
func (e *AnalyzerError) Kind() string          { return e.kind }

// InvalidLsb reports an `lsb` keyword used outside a select on an
// expression identifier.
func InvalidLsb(tok token.Token) Error {
	return &AnalyzerError{kind: "invalid_lsb", pos: tok, msg: "lsb is only valid inside a select"}
}

// InvalidMsb reports an `msb` keyword used outside a select on an
// expression identifier.
func InvalidMsb(tok token.Token) Error {
	return &AnalyzerError{kind: "invalid_msb", pos: tok, msg: "msb is only valid inside a select"}
}

// UnknownMsb reports an `msb` whose enclosing identifier's declared
// dimensions could not be traced to a concrete bound.
func UnknownMsb(tok token.Token) Error {
	return &AnalyzerError{kind: "unknown_msb", pos: tok, msg: "unable to resolve msb of this identifier"}
}

// CyclicTypeDependency reports a type reference that would close a cycle
// in the type dependency graph; no edge was added.
func CyclicTypeDependency(start, end string, tok token.Token) Error {
	return &AnalyzerError{
		kind: "cyclic_type_dependency",
		pos:  tok,
		msg:  fmt.Sprintf("cyclic type dependency: %s -> %s", start, end),
	}
}

// UndefinedIdentifier reports a reference to a name with no declaration
// reachable from the current scope chain.
func UndefinedIdentifier(name string, tok token.Token) Error {
	return &AnalyzerError{kind: "undefined_identifier", pos: tok, msg: fmt.Sprintf("undefined identifier: %s", name)}
}
