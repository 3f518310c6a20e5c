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

// Package emitter implements the transpiling-emitter alignment variant
// (spec §4.H): it measures the *rendered* target-language text of each
// token, after keyword substitution and identifier prefix/suffix
// decoration, rather than the original source text. Its Aligner then
// produces the same Location -> padding map the formatter variant does,
// against different widths.
package emitter

import (
	"github.com/hdlc-lang/hdlc/align"
	"github.com/hdlc-lang/hdlc/ast"
	"github.com/hdlc-lang/hdlc/internal/namespace"
	"github.com/hdlc-lang/hdlc/internal/symbol"
	"github.com/hdlc-lang/hdlc/resource"
	"github.com/hdlc-lang/hdlc/token"
	"github.com/hdlc-lang/hdlc/walker"
)

// defaultSubstitutions is the built-in keyword rewrite table: source
// keyword -> emitted text. Callers may add to or override it on the
// Emitter's Substitutions map before running a walk.
var defaultSubstitutions = map[string]string{
	"clock": "logic",
	"reset": "logic",
	"const": "localparam",
	"u32":   "int unsigned",
	"u64":   "longint unsigned",
	"i32":   "int",
	"i64":   "longint",
	"f32":   "shortreal",
	"f64":   "real",
}

// Emitter drives an align.Aligner while rendering each token through the
// configured substitution and identifier-decoration rules.
type Emitter struct {
	walker.BaseHandler

	Symbols       *symbol.Table
	Namespace     *namespace.Table
	Aligner       *align.Aligner
	Substitutions map[string]string

	// ImplicitParamTypes names the built-in scalar kinds that are
	// suppressed in a ParameterDeclaration's emitted type, per the
	// config-driven "implicit parameter types" feature.
	ImplicitParamTypes map[symbol.BuiltinType]bool

	inParamType bool
}

// New returns an Emitter with the default keyword substitution table and
// no implicit parameter types configured.
func New(symbols *symbol.Table, ns *namespace.Table) *Emitter {
	subs := make(map[string]string, len(defaultSubstitutions))
	for k, v := range defaultSubstitutions {
		subs[k] = v
	}
	return &Emitter{
		Symbols:            symbols,
		Namespace:          ns,
		Aligner:            align.NewAligner(),
		Substitutions:      subs,
		ImplicitParamTypes: map[symbol.BuiltinType]bool{},
	}
}

// renderToken returns the emitted text for t, applying a keyword
// substitution if one is configured.
func (e *Emitter) renderToken(t ast.VerylToken) string {
	text := t.RenderedText()
	if sub, ok := e.Substitutions[text]; ok {
		return sub
	}
	return text
}

// renderSubtree concatenates the emitted text of every terminal under n,
// space-separated, mirroring how the target renderer would join them.
func (e *Emitter) renderSubtree(n ast.Node) string {
	toks := ast.Tokens(n)
	out := ""
	for i, t := range toks {
		if i > 0 {
			out += " "
		}
		out += e.renderToken(t)
	}
	return out
}

// chargeSubtree opens, measures and closes a single column item for kind
// k, covering every terminal under n, anchored at n's first token.
func (e *Emitter) chargeSubtree(k align.Kind, n ast.Node) {
	if n == nil {
		return
	}
	e.Aligner.StartItem(k)
	e.Aligner.Measured(k, token.LocationOf(n.FirstToken()), align.DisplayWidth(e.renderSubtree(n)))
	e.Aligner.FinishItem(k)
}

// identifierWidth returns the emitted width of id, decorated with the
// prefix/suffix recorded on id's resolved symbol, if any. A failed
// resolution degrades to the identifier's plain rendered text, per the
// alignment engine's never-fail contract.
func (e *Emitter) identifierWidth(id *ast.Identifier) (token.Location, uint32) {
	loc := token.LocationOf(id.FirstToken())
	text := e.renderToken(id.IdentifierToken)

	ns, _ := e.Namespace.Get(id.FirstToken().ID)
	resolved, ok := e.Symbols.Resolve(symbol.PathNamespace{
		Path: symbol.NewPath(resource.Intern(id.String())),
		NS:   ns,
	})
	if ok {
		if port, ok := resolved.Found.Kind.(symbol.Port); ok {
			if port.Prefix != nil {
				text = *port.Prefix + text
			}
			if port.Suffix != nil {
				text += *port.Suffix
			}
		}
	}
	return loc, align.DisplayWidth(text)
}

func (e *Emitter) chargeIdentifier(id *ast.Identifier) {
	if id == nil {
		return
	}
	e.Aligner.StartItem(align.Identifier)
	loc, w := e.identifierWidth(id)
	e.Aligner.Measured(align.Identifier, loc, w)
	e.Aligner.FinishItem(align.Identifier)
}

// builtinKind maps a rendered built-in keyword back to its BuiltinType,
// used to test ImplicitParamTypes.
func builtinKind(text string) (symbol.BuiltinType, bool) {
	for _, k := range []symbol.BuiltinType{
		symbol.U32, symbol.U64, symbol.I32, symbol.I64,
		symbol.F32, symbol.F64, symbol.Str, symbol.Logic,
	} {
		if k.String() == text {
			return k, true
		}
	}
	return 0, false
}

// chargeScalarType closes the TYPE item for t and, when t carries no
// packed width, immediately reserves a zero-width WIDTH item so later
// columns still line up. When t is itself suppressed as an implicit
// parameter type, TYPE is reserved via a dummy_location instead of being
// measured.
func (e *Emitter) chargeScalarType(t *ast.ScalarType) {
	e.Aligner.StartItem(align.Type)
	loc := token.LocationOf(t.FirstToken())

	suppressed := false
	if e.inParamType && t.Builtin != nil {
		if kind, ok := builtinKind(t.Builtin.RenderedText()); ok && e.ImplicitParamTypes[kind] {
			suppressed = true
		}
	}

	switch {
	case suppressed:
		e.Aligner.DummyLocation(align.Type, loc)
	case t.Builtin != nil:
		e.Aligner.Measured(align.Type, loc, align.DisplayWidth(e.renderToken(*t.Builtin)))
	default:
		e.Aligner.Measured(align.Type, loc, align.DisplayWidth(e.renderSubtree(t.UserDefined)))
	}
	e.Aligner.FinishItem(align.Type)

	if t.Width == nil {
		e.Aligner.StartItem(align.Width)
		e.Aligner.DummyLocation(align.Width, loc)
		e.Aligner.FinishItem(align.Width)
	}
}

// ScalarType closes the TYPE/WIDTH columns for every type the walker
// reaches, including the Type child of each declaration: no declaration
// override charges its own type.
func (e *Emitter) ScalarType(s *ast.ScalarType) {
	if e.Point() != walker.Before {
		return
	}
	e.chargeScalarType(s)
}

func (e *Emitter) Width(w *ast.Width) {
	if e.Point() != walker.Before {
		return
	}
	e.Aligner.StartItem(align.Width)
	e.Aligner.Measured(align.Width, token.LocationOf(w.FirstToken()), align.DisplayWidth(e.renderSubtree(w)))
	e.Aligner.FinishItem(align.Width)
}

func (e *Emitter) ArrayDim(a *ast.ArrayDim) {
	if e.Point() != walker.Before {
		return
	}
	e.chargeSubtree(align.Array, a)
}

func (e *Emitter) Direction(d *ast.Direction) {
	if e.Point() != walker.Before {
		return
	}
	e.Aligner.StartItem(align.Direction)
	e.Aligner.Measured(align.Direction, token.LocationOf(d.FirstToken()), align.DisplayWidth(e.renderToken(d.Token)))
	e.Aligner.FinishItem(align.Direction)
}

// LetStatement, VarDeclaration and PortDeclaration only charge their own
// IDENTIFIER (and, for LetStatement, EXPRESSION) items directly; their
// Type child is a *ast.ScalarType that the walker visits on its own,
// reaching the ScalarType override above and closing TYPE/WIDTH.
func (e *Emitter) LetStatement(l *ast.LetStatement) {
	if e.Point() != walker.Before {
		return
	}
	e.chargeIdentifier(l.Identifier)
	if l.Expression != nil {
		e.chargeSubtree(align.Expression, l.Expression)
	}
}

func (e *Emitter) VarDeclaration(v *ast.VarDeclaration) {
	if e.Point() != walker.Before {
		return
	}
	e.chargeIdentifier(v.Identifier)
}

func (e *Emitter) PortDeclaration(p *ast.PortDeclaration) {
	if e.Point() != walker.Before {
		return
	}
	e.chargeIdentifier(p.Identifier)
}

// ParameterDeclaration brackets its Type child's walk with inParamType so
// the nested ScalarType override knows to consult ImplicitParamTypes.
func (e *Emitter) ParameterDeclaration(p *ast.ParameterDeclaration) {
	switch e.Point() {
	case walker.Before:
		e.chargeIdentifier(p.Identifier)
		if p.Expression != nil {
			e.chargeSubtree(align.Expression, p.Expression)
		}
		e.inParamType = true
	case walker.After:
		e.inParamType = false
	}
}

func (e *Emitter) Assignment(a *ast.Assignment) {
	if e.Point() != walker.Before {
		return
	}
	e.Aligner.StartItem(align.Assignment)
	e.Aligner.Measured(align.Assignment, token.LocationOf(a.Equal.Token), align.DisplayWidth(e.renderToken(a.Equal)))
	e.Aligner.FinishItem(align.Assignment)
	if a.Expression != nil {
		e.chargeSubtree(align.Expression, a.Expression)
	}
}
