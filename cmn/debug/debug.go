// Package debug provides invariant assertions for the collector. A
// triggered assertion means the young generation's invariants have
// already been violated, so the only correct response is to abort
// loudly rather than attempt to continue scanning a corrupt graph.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

import (
	"fmt"

	"github.com/pkg/errors"
)

// Enabled gates Assert at runtime; flip to false in a build that wants to
// pay for neither the check nor the stack-trace capture. Kept as a plain
// var (not a build tag) because the collector's invariants are cheap
// enough to check unconditionally in production.
var Enabled = true

// Assert panics with a stack-traced error if cond is false. args are
// joined the way fmt.Sprint does, matching debug.Assert's call sites
// elsewhere in the corpus (e.g. `debug.Assert(cond, "msg: ", val)`).
func Assert(cond bool, args ...interface{}) {
	if !Enabled || cond {
		return
	}
	panic(errors.WithStack(errors.New("assertion failed: " + fmt.Sprint(args...))))
}

// Assertf is Assert with a format string.
func Assertf(cond bool, format string, args ...interface{}) {
	if !Enabled || cond {
		return
	}
	panic(errors.WithStack(errors.Errorf("assertion failed: "+format, args...)))
}

// Bug panics unconditionally with a stack trace. Used for fatal
// invariant violations such as a non-empty promoted stack or an
// incompletely scanned to-space at driver exit.
func Bug(format string, args ...interface{}) {
	panic(errors.WithStack(errors.Errorf("bug: "+format, args...)))
}
