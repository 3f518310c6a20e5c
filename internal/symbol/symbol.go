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
	"github.com/hdlc-lang/hdlc/ast"
	"github.com/hdlc-lang/hdlc/internal/namespace"
	"github.com/hdlc-lang/hdlc/token"
)

// BuiltinType enumerates the scalar kinds a Type can carry directly,
// without going through a user-defined type reference.
type BuiltinType int

const (
	U32 BuiltinType = iota
	U64
	I32
	I64
	F32
	F64
	Str
	Logic
)

// String renders the lowercase spelling used in source and in the
// emitter's implicit-parameter-type configuration.
func (b BuiltinType) String() string {
	switch b {
	case U32:
		return "u32"
	case U64:
		return "u64"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Str:
		return "string"
	case Logic:
		return "logic"
	default:
		return "?"
	}
}

// TypeKind discriminates the three broad shapes a Type may take.
type TypeKind int

const (
	// Builtin is a built-in scalar kind (u32, i64, f32, ...).
	Builtin TypeKind = iota
	// UserDefined references another declared type by path.
	UserDefined
	// Aggregate covers struct/union/enum bodies defined inline; the
	// aggregate's own fields are tracked via the type DAG's owned set,
	// not inline on the Type value.
	Aggregate
)

// Type is a record describing a declared type: a scalar kind plus its
// outer array dimensions and packed bit-width dimensions, both
// outermost-first (spec §3 invariant).
type Type struct {
	Kind BuiltinKindOrPath
	// Array enumerates outer array dimensions, outermost-first.
	Array []ast.Node
	// Width enumerates packed bit-width dimensions, outermost-first.
	Width []ast.Node
}

// BuiltinKindOrPath is the tagged union backing Type.Kind: either a
// built-in scalar or a path to a user-defined type.
type BuiltinKindOrPath struct {
	IsUserDefined bool
	Builtin       BuiltinType
	Path          Path
}

// Kind is the tagged variant of a Symbol record (spec §3: Variable, Port,
// TypeDef, Module, Interface, Package, Enum, Struct, Union, Modport).
type Kind interface{ isSymbolKind() }

// Variable is a plain variable binding.
type Variable struct{ Type Type }

func (Variable) isSymbolKind() {}

// Port is a module/interface port; Type may be absent for interface
// ports whose type is inferred elsewhere, and Prefix/Suffix hold the
// emitter's identifier decoration, if configured.
type Port struct {
	Type   *Type
	Prefix *string
	Suffix *string
}

func (Port) isSymbolKind() {}

// TypeDef is a type alias.
type TypeDef struct{ Type Type }

func (TypeDef) isSymbolKind() {}

// Module, Interface, Package, Enum, StructKind, UnionKind and Modport
// carry no payload beyond their existence as a named scope.
type (
	Module     struct{}
	Interface  struct{}
	Package    struct{}
	Enum       struct{}
	StructKind struct{}
	UnionKind  struct{}
	Modport    struct{}
)

func (Module) isSymbolKind()     {}
func (Interface) isSymbolKind()  {}
func (Package) isSymbolKind()    {}
func (Enum) isSymbolKind()       {}
func (StructKind) isSymbolKind() {}
func (UnionKind) isSymbolKind()  {}
func (Modport) isSymbolKind()    {}

// Symbol is one entry of the symbol table.
type Symbol struct {
	Kind      Kind
	Namespace namespace.Namespace
	Token     token.Token
}
