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

// Command hdlcanalyze demonstrates one semantic-analysis pass end to
// end: build the shared tables, run the handler set over a file, and
// print the resulting diagnostics. It does not contain a lexer or
// parser; callers outside this toolchain are expected to hand it an
// *ast.File already shaped by their own front end. This binary builds
// a small one in memory so the pass has something to walk.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hdlc-lang/hdlc/ast"
	"github.com/hdlc-lang/hdlc/config"
	"github.com/hdlc-lang/hdlc/diag"
	"github.com/hdlc-lang/hdlc/handler"
	"github.com/hdlc-lang/hdlc/internal/dag"
	"github.com/hdlc-lang/hdlc/internal/debug"
	"github.com/hdlc-lang/hdlc/internal/namespace"
	"github.com/hdlc-lang/hdlc/internal/symbol"
	"github.com/hdlc-lang/hdlc/resource"
	"github.com/hdlc-lang/hdlc/token"
)

var manifestFlag = flag.String("manifest", "", "path to a hdlc.yaml manifest (optional)")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: hdlcanalyze [flags]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}
	if err := debug.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "hdlcanalyze: %v\n", err)
		os.Exit(1)
	}

	if *manifestFlag != "" {
		build, err := config.Load(*manifestFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hdlcanalyze: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("loaded manifest: %d implicit parameter type(s)\n", len(build.ImplicitParamTypeSet()))
	}

	diags, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hdlcanalyze: %v\n", err)
		os.Exit(1)
	}
	diag.Print(os.Stdout, diags)
	if len(diags) != 0 {
		os.Exit(1)
	}
}

func tok(line, column uint32, text string) token.Token {
	return token.New(line, column, uint32(len(text)), text)
}

func ident(line, column uint32, text string) *ast.Identifier {
	return &ast.Identifier{IdentifierToken: ast.NewVerylToken(tok(line, column, text))}
}

// demoFile builds a two-struct dependency ("Header" holds a "Payload"
// field) so the type DAG handler has a real edge to insert, and a
// module with one port and one array-valued variable so the msb/lsb
// handler has a select to resolve.
func demoFile(symbols *symbol.Table, ns *namespace.Table) (*ast.File, error) {
	payloadIdent := ident(1, 8, "Payload")
	payload := &ast.StructUnionDeclaration{Identifier: payloadIdent}
	if err := symbols.Insert(symbol.NewPath(resource.Intern("Payload")), nil, &symbol.Symbol{Kind: symbol.StructKind{}}); err != nil {
		return nil, err
	}

	headerFieldType := &ast.ScopedIdentifier{Identifier: ident(2, 14, "Payload")}
	header := &ast.StructUnionDeclaration{
		Identifier: ident(2, 8, "Header"),
		Items: []ast.Node{
			&ast.LocalDeclaration{Identifier: ident(2, 8, "body"), Type: headerFieldType},
		},
	}
	if err := symbols.Insert(symbol.NewPath(resource.Intern("Header")), nil, &symbol.Symbol{Kind: symbol.StructKind{}}); err != nil {
		return nil, err
	}
	if err := symbols.Insert(symbol.NewPath(resource.Intern("body")), nil, &symbol.Symbol{Kind: symbol.Variable{}}); err != nil {
		return nil, err
	}
	if err := symbols.Insert(symbol.NewPath(resource.Intern("top")), nil, &symbol.Symbol{Kind: symbol.Module{}}); err != nil {
		return nil, err
	}

	laneDim := &ast.Literal{Token: ast.NewVerylToken(tok(4, 10, "4"))}
	laneTok := tok(4, 5, "lane")
	ns.Set(laneTok.ID, nil)
	if err := symbols.Insert(symbol.NewPath(resource.Intern("lane")), nil, &symbol.Symbol{
		Kind: symbol.Variable{Type: symbol.Type{Array: []ast.Node{laneDim}}},
	}); err != nil {
		return nil, err
	}

	selectExpr := &ast.ExpressionIdentifier{
		Ident: ident(5, 12, "lane"),
		Parts: []ast.Node{
			&ast.Select{
				Bracket: ast.NewVerylToken(tok(5, 16, "[")),
				Content: &ast.Msb{MsbToken: ast.NewVerylToken(tok(5, 17, "msb"))},
			},
		},
	}

	top := &ast.ModuleDeclaration{
		Identifier: ident(3, 8, "top"),
		Items: []ast.Node{
			&ast.PortDeclaration{
				Direction:  &ast.Direction{Token: ast.NewVerylToken(tok(4, 1, "input"))},
				Identifier: ident(4, 7, "lane"),
				Type:       &ast.ScalarType{Builtin: ptr(ast.NewVerylToken(tok(4, 12, "logic")))},
			},
			&ast.Assignment{
				Identifier: selectExpr,
				Equal:      ast.NewVerylToken(tok(5, 22, "=")),
				Expression: &ast.Literal{Token: ast.NewVerylToken(tok(5, 24, "1"))},
			},
		},
	}

	return &ast.File{Items: []ast.Node{payload, header, top}}, nil
}

func ptr[T any](v T) *T { return &v }

func run() (diag.List, error) {
	symbols := symbol.NewTable()
	ns := namespace.NewTable()
	graph := dag.NewGraph()

	file, err := demoFile(symbols, ns)
	if err != nil {
		return nil, err
	}

	set := handler.NewSet(symbols, ns, graph)
	return set.Run(file), nil
}
