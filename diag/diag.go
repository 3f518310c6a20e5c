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

// Package diag defines the shared diagnostic type every handler
// accumulates into and drains at the end of a pass (spec §4.F, §7).
//
// The shape mirrors cue/errors: a small Error interface carrying a
// position and a message, a List that collects them, and Sanitize/Sort/
// RemoveMultiples to turn a pass's raw accumulation into a stable,
// de-duplicated report.
package diag

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/hdlc-lang/hdlc/token"
)

// Error is the common diagnostic interface. Every AnalyzerError variant
// in errors.go implements it.
type Error interface {
	error
	Position() token.Token
	Kind() string
}

// posError is an ad-hoc diagnostic not tied to a specific AnalyzerError
// kind, used by Newf/Wrapf.
type posError struct {
	pos token.Token
	msg string
}

func (e *posError) Error() string        { return e.msg }
func (e *posError) Position() token.Token { return e.pos }
func (e *posError) Kind() string          { return "error" }

// Newf builds a positioned diagnostic for human consumption.
func Newf(pos token.Token, format string, args ...interface{}) Error {
	return &posError{pos: pos, msg: fmt.Sprintf(format, args...)}
}

// Wrapf builds a positioned diagnostic that chains an underlying error.
func Wrapf(err error, pos token.Token, format string, args ...interface{}) Error {
	return &posError{pos: pos, msg: fmt.Sprintf(format, args...) + ": " + err.Error()}
}

// List accumulates diagnostics over one pass. The zero value is ready to
// use.
type List []Error

// Add appends err.
func (l *List) Add(err Error) { *l = append(*l, err) }

// AddNewf is a convenience wrapper around Newf + Add.
func (l *List) AddNewf(pos token.Token, format string, args ...interface{}) {
	l.Add(Newf(pos, format, args...))
}

// Reset empties the list for reuse across passes.
func (l *List) Reset() { *l = (*l)[:0] }

// Sort orders diagnostics by line, then column, for stable output.
func (l List) Sort() {
	slices.SortFunc(l, func(a, b Error) int {
		pa, pb := a.Position(), b.Position()
		if c := cmp.Compare(pa.Line, pb.Line); c != 0 {
			return c
		}
		return cmp.Compare(pa.Column, pb.Column)
	})
}

// RemoveMultiples drops consecutive diagnostics that share the same
// position and message, assuming the list has already been Sort-ed.
func (l *List) RemoveMultiples() {
	if len(*l) < 2 {
		return
	}
	out := (*l)[:1]
	for _, e := range (*l)[1:] {
		last := out[len(out)-1]
		if sameDiagnostic(last, e) {
			continue
		}
		out = append(out, e)
	}
	*l = out
}

func sameDiagnostic(a, b Error) bool {
	return a.Position() == b.Position() && a.Error() == b.Error()
}

// Sanitize sorts l and removes duplicates, returning the cleaned list.
func Sanitize(l List) List {
	sorted := slices.Clone(l)
	sorted.Sort()
	sorted.RemoveMultiples()
	return sorted
}

// Print writes every diagnostic in l to w, one per line.
func Print(w io.Writer, l List) {
	for _, e := range l {
		pos := e.Position()
		fmt.Fprintf(w, "%d:%d: %s\n", pos.Line, pos.Column, e.Error())
	}
}
