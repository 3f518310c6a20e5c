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
	"slices"
	"strconv"
	"strings"

	"github.com/hdlc-lang/hdlc/internal/namespace"
	"github.com/hdlc-lang/hdlc/resource"
)

// Path is an ordered sequence of identifier text IDs denoting a
// dotted/scoped name. Equality is sequence equality.
type Path []resource.ID

// NewPath builds a Path from its component IDs.
func NewPath(ids ...resource.ID) Path {
	return append(Path(nil), ids...)
}

// Equal reports whether p and o denote the same path.
func (p Path) Equal(o Path) bool { return slices.Equal(p, o) }

// String renders a path as a stable string, usable as a map key or in
// cycle-guard sets that need to compare paths by identity of content.
func (p Path) String() string { return p.key() }

// key renders a path as a stable string usable as a map key component.
func (p Path) key() string {
	var b strings.Builder
	for i, id := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatInt(int64(id), 10))
	}
	return b.String()
}

// PathNamespace is the pair (Path, Namespace) used as the symbol table's
// lookup key.
type PathNamespace struct {
	Path Path
	NS   namespace.Namespace
}

func (k PathNamespace) key() string {
	var b strings.Builder
	b.WriteString(k.Path.key())
	b.WriteByte('@')
	for i, id := range k.NS {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatInt(int64(id), 10))
	}
	return b.String()
}
