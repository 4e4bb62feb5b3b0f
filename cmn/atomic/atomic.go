// Package atomic re-exports the handful of atomic counter types the
// collector's driver needs, backed by go.uber.org/atomic rather than
// hand-rolled sync/atomic plumbing.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package atomic

import "go.uber.org/atomic"

type (
	Int32 = atomic.Int32
	Int64 = atomic.Int64
	Bool  = atomic.Bool
)
