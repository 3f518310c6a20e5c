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

package align

import "golang.org/x/text/width"

// DisplayWidth returns the rendered column width of s, counting East Asian
// wide/fullwidth runes as two columns. Identifiers and keywords emitted by
// this toolchain are almost always ASCII, but string literals carried
// through verbatim may not be, and the emitter/formatter must still
// line up the columns that follow them.
func DisplayWidth(s string) uint32 {
	var w uint32
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}
