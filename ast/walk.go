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

package ast

// Tokens flattens every terminal (VerylToken) reachable from n, in
// source order. The alignment engine uses it to measure an arbitrary
// expression subtree as a single column item without needing a
// dedicated walker override for every expression shape.
func Tokens(n Node) []VerylToken {
	var out []VerylToken
	collectTokens(n, &out)
	return out
}

func collectTokens(n Node, out *[]VerylToken) {
	switch v := n.(type) {
	case nil:
		return
	case *Identifier:
		*out = append(*out, v.IdentifierToken)
	case *ScopedIdentifier:
		collectTokens(v.Identifier, out)
		for _, r := range v.Rest {
			collectTokens(r, out)
		}
	case *ExpressionIdentifier:
		collectTokens(v.Ident, out)
		for _, p := range v.Parts {
			collectTokens(p, out)
		}
	case *Select:
		*out = append(*out, v.Bracket)
		collectTokens(v.Content, out)
	case *Msb:
		*out = append(*out, v.MsbToken)
	case *Lsb:
		*out = append(*out, v.LsbToken)
	case *BinaryExpr:
		collectTokens(v.X, out)
		*out = append(*out, v.Op)
		collectTokens(v.Y, out)
	case *Literal:
		*out = append(*out, v.Token)
	case *Width:
		*out = append(*out, v.Langle)
		collectTokens(v.Expression, out)
		*out = append(*out, v.Rangle)
	case *ArrayDim:
		*out = append(*out, v.Lbracket)
		collectTokens(v.Expression, out)
		*out = append(*out, v.Rbracket)
	case *ScalarType:
		if v.Builtin != nil {
			*out = append(*out, *v.Builtin)
		}
		if v.UserDefined != nil {
			collectTokens(v.UserDefined, out)
		}
		if v.Width != nil {
			collectTokens(v.Width, out)
		}
	case *Direction:
		*out = append(*out, v.Token)
	case *Clock:
		*out = append(*out, v.ClockToken)
	case *Reset:
		*out = append(*out, v.ResetToken)
	case *Const:
		*out = append(*out, v.ConstToken)
	case *ClockDomain:
		*out = append(*out, v.Token)
	case Parent:
		for _, c := range v.Children() {
			collectTokens(c, out)
		}
	}
}
