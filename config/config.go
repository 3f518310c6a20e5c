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

// Package config loads the project manifest that configures the
// transpiling emitter: which built-in parameter types are implicit (and
// so suppressed in emitted text) and the generic parameter substitution
// map. Grounded on the teacher's internal/encoding/yaml usage and its
// direct gopkg.in/yaml.v3 dependency.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hdlc-lang/hdlc/internal/symbol"
)

// BuiltinType is the closed set of scalar kinds a manifest may name under
// build.implicit_parameter_types. It mirrors symbol.BuiltinType's scalar
// kinds plus Type, a marker covering user-defined parameter types that
// this toolchain does not yet suppress (recorded, not silently dropped).
type BuiltinType string

const (
	U32    BuiltinType = "u32"
	U64    BuiltinType = "u64"
	I32    BuiltinType = "i32"
	I64    BuiltinType = "i64"
	F32    BuiltinType = "f32"
	F64    BuiltinType = "f64"
	String BuiltinType = "string"
	Type   BuiltinType = "type"
)

var validBuiltinTypes = map[BuiltinType]bool{
	U32: true, U64: true, I32: true, I64: true,
	F32: true, F64: true, String: true, Type: true,
}

// ToSymbolBuiltin converts b to the symbol package's BuiltinType, used to
// key the emitter's ImplicitParamTypes set. The second result is false
// for Type, which names a class of parameter (user-defined) rather than
// a symbol.BuiltinType value.
func (b BuiltinType) ToSymbolBuiltin() (symbol.BuiltinType, bool) {
	switch b {
	case U32:
		return symbol.U32, true
	case U64:
		return symbol.U64, true
	case I32:
		return symbol.I32, true
	case I64:
		return symbol.I64, true
	case F32:
		return symbol.F32, true
	case F64:
		return symbol.F64, true
	case String:
		return symbol.Str, true
	default:
		return 0, false
	}
}

// GenericMap is one `name: value` substitution entry for a generic
// parameter. Load parses and returns these entries; the alignment emitter
// (align/emitter) does not read them, so rendered widths never reflect a
// generic substitution.
type GenericMap struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Build is the emitter-facing subset of the project manifest (spec §6's
// "Configuration surface (emitter only)").
type Build struct {
	ImplicitParameterTypes []BuiltinType `yaml:"implicit_parameter_types"`
	GenericMap             []GenericMap  `yaml:"generic_map"`
}

// Project names the manifest's project-identity section.
type Project struct {
	Name string `yaml:"name"`
}

// Manifest is the on-disk YAML shape.
type Manifest struct {
	Project Project `yaml:"project"`
	Build   Build   `yaml:"build"`
}

// Load reads and validates the project manifest at path.
func Load(path string) (*Build, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	for _, t := range m.Build.ImplicitParameterTypes {
		if !validBuiltinTypes[t] {
			return nil, fmt.Errorf("config: %s: unknown implicit parameter type %q", path, t)
		}
	}
	return &m.Build, nil
}

// ImplicitParamTypeSet converts b's ImplicitParameterTypes into the map
// shape the emitter wants directly.
func (b *Build) ImplicitParamTypeSet() map[symbol.BuiltinType]bool {
	out := make(map[symbol.BuiltinType]bool, len(b.ImplicitParameterTypes))
	for _, t := range b.ImplicitParameterTypes {
		if sb, ok := t.ToSymbolBuiltin(); ok {
			out[sb] = true
		}
	}
	return out
}
