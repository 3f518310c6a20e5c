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

// Package formatter implements the source-preserving alignment variant
// (spec §4.H): unlike the transpiling emitter, it measures every token's
// own source text verbatim, and adds one column the emitter does not
// track, CLOCK_DOMAIN, for the optional `:clk` annotation on a signal
// declaration.
package formatter

import (
	"github.com/hdlc-lang/hdlc/align"
	"github.com/hdlc-lang/hdlc/ast"
	"github.com/hdlc-lang/hdlc/token"
	"github.com/hdlc-lang/hdlc/walker"
)

// Formatter drives an align.Aligner over the source text as written.
type Formatter struct {
	walker.BaseHandler

	Aligner *align.Aligner
}

// New returns an empty Formatter.
func New() *Formatter {
	return &Formatter{Aligner: align.NewAligner()}
}

func (f *Formatter) chargeSubtree(k align.Kind, n ast.Node) {
	if n == nil {
		return
	}
	f.Aligner.StartItem(k)
	var w uint32
	for _, t := range ast.Tokens(n) {
		w += align.DisplayWidth(t.RenderedText())
	}
	f.Aligner.Measured(k, token.LocationOf(n.FirstToken()), w)
	f.Aligner.FinishItem(k)
}

func (f *Formatter) chargeIdentifier(id *ast.Identifier) {
	if id == nil {
		return
	}
	f.Aligner.StartItem(align.Identifier)
	f.Aligner.Token(align.Identifier, id.FirstToken())
	f.Aligner.FinishItem(align.Identifier)
}

func (f *Formatter) chargeScalarType(t *ast.ScalarType) {
	f.Aligner.StartItem(align.Type)
	loc := token.LocationOf(t.FirstToken())
	if t.Builtin != nil {
		f.Aligner.Token(align.Type, t.Builtin.Token)
	} else {
		f.Aligner.Measured(align.Type, loc, align.DisplayWidth(renderVerbatim(t.UserDefined)))
	}
	f.Aligner.FinishItem(align.Type)

	if t.Width == nil {
		f.Aligner.StartItem(align.Width)
		f.Aligner.DummyLocation(align.Width, loc)
		f.Aligner.FinishItem(align.Width)
	}
}

func renderVerbatim(n ast.Node) string {
	out := ""
	for i, t := range ast.Tokens(n) {
		if i > 0 {
			out += "::"
		}
		out += t.RenderedText()
	}
	return out
}

// chargeClockDomain charges the CLOCK_DOMAIN column for one signal
// declaration. When cd is present its own token is measured; otherwise a
// dummy is anchored at fallback (the declaration's own identifier), so
// the column is still reserved and subsequent declarations' real
// annotations still line up.
func (f *Formatter) chargeClockDomain(cd *ast.ClockDomain, fallback token.Token) {
	f.Aligner.StartItem(align.ClockDomain)
	if cd != nil && cd.Present {
		f.Aligner.Token(align.ClockDomain, cd.Token.Token)
	} else {
		f.Aligner.DummyLocation(align.ClockDomain, token.LocationOf(fallback))
	}
	f.Aligner.FinishItem(align.ClockDomain)
}

func (f *Formatter) ScalarType(s *ast.ScalarType) {
	if f.Point() != walker.Before {
		return
	}
	f.chargeScalarType(s)
}

func (f *Formatter) Width(w *ast.Width) {
	if f.Point() != walker.Before {
		return
	}
	f.chargeSubtree(align.Width, w)
}

func (f *Formatter) ArrayDim(a *ast.ArrayDim) {
	if f.Point() != walker.Before {
		return
	}
	f.chargeSubtree(align.Array, a)
}

func (f *Formatter) Direction(d *ast.Direction) {
	if f.Point() != walker.Before {
		return
	}
	f.Aligner.StartItem(align.Direction)
	f.Aligner.Token(align.Direction, d.Token.Token)
	f.Aligner.FinishItem(align.Direction)
}

func (f *Formatter) LetStatement(l *ast.LetStatement) {
	if f.Point() != walker.Before {
		return
	}
	f.chargeIdentifier(l.Identifier)
	if l.Expression != nil {
		f.chargeSubtree(align.Expression, l.Expression)
	}
}

func (f *Formatter) VarDeclaration(v *ast.VarDeclaration) {
	if f.Point() != walker.Before {
		return
	}
	f.chargeIdentifier(v.Identifier)
	f.chargeClockDomain(v.ClockDomain, v.Identifier.FirstToken())
}

func (f *Formatter) PortDeclaration(p *ast.PortDeclaration) {
	if f.Point() != walker.Before {
		return
	}
	f.chargeIdentifier(p.Identifier)
}

func (f *Formatter) ParameterDeclaration(p *ast.ParameterDeclaration) {
	if f.Point() != walker.Before {
		return
	}
	f.chargeIdentifier(p.Identifier)
	if p.Expression != nil {
		f.chargeSubtree(align.Expression, p.Expression)
	}
}

func (f *Formatter) Assignment(a *ast.Assignment) {
	if f.Point() != walker.Before {
		return
	}
	f.Aligner.StartItem(align.Assignment)
	f.Aligner.Token(align.Assignment, a.Equal.Token)
	f.Aligner.FinishItem(align.Assignment)
	if a.Expression != nil {
		f.chargeSubtree(align.Expression, a.Expression)
	}
}
