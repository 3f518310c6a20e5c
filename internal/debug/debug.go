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

// Package debug holds the HDLC_DEBUG-gated tracing flags, grounded on
// the teacher's internal/cuedebug: a small env-var-driven flags struct
// parsed once, plus Logf for gating a trace line on one of them. The
// walker and the type DAG builder do not call Logf or read Flags; the
// flags are parsed and exposed, and have no effect on a pass.
package debug

import (
	"fmt"
	"os"
	"sync"

	"github.com/hdlc-lang/hdlc/internal/envflag"
)

// Flags holds the set of known HDLC_DEBUG flags.
var Flags Config

// Config is the full set of tracing knobs HDLC_DEBUG accepts. No code in
// this module reads them.
type Config struct {
	// Strict names extra aggressive checking.
	Strict bool

	// LogWalk names tracing of the walker's Before/After callbacks.
	LogWalk bool

	// LogDag names tracing of the type DAG builder's InsertNode/InsertEdge
	// calls.
	LogDag bool
}

// Init parses Flags from the HDLC_DEBUG environment variable. Safe to
// call more than once; only the first call does any work.
func Init() error {
	return initOnce()
}

var initOnce = sync.OnceValue(func() error {
	return envflag.Init(&Flags, "HDLC_DEBUG")
})

// Logf writes a trace line to stderr when enabled is true. Call sites
// pass the specific flag they're gated on, e.g. debug.Logf(debug.Flags.LogDag, ...).
func Logf(enabled bool, format string, args ...interface{}) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
