// Package cos provides small common utilities shared by the collector
// and its ambient packages.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"fmt"

	"go.uber.org/atomic"
)

// ErrValue boxes the first error stored into it and counts subsequent
// stores. Used where a component may accumulate several anomalies
// (e.g. multiple bad handles seen during one collection) but only the
// first is worth surfacing with detail.
type ErrValue struct {
	val atomic.Value
	cnt atomic.Int64
}

func (ea *ErrValue) Store(err error) {
	if ea.cnt.Inc() == 1 {
		ea.val.Store(err)
	}
}

func (ea *ErrValue) load() error {
	if x := ea.val.Load(); x != nil {
		return x.(error)
	}
	return nil
}

func (ea *ErrValue) Err() error {
	err := ea.load()
	if err == nil {
		return nil
	}
	if cnt := ea.cnt.Load(); cnt > 1 {
		return fmt.Errorf("%w (cnt=%d)", err, cnt)
	}
	return err
}

func (ea *ErrValue) Count() int64 { return ea.cnt.Load() }
