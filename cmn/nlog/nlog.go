// Package nlog provides leveled diagnostic logging for the collector and
// its collaborators. It never returns an error and never panics: logging
// is the designated escape hatch for anomalies classified "log and skip"
// (bad handles, finalizer races) rather than fatal bugs.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type Level int32

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

var (
	mu  sync.Mutex
	out = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
	min = LevelInfo
)

// SetOutput redirects the diagnostic stream; used by tests to capture
// what would otherwise go to stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out.SetOutput(w)
}

// SetLevel suppresses everything below lvl.
func SetLevel(lvl Level) {
	mu.Lock()
	defer mu.Unlock()
	min = lvl
}

func sprint(lvl, prefix string, a []interface{}) string {
	return lvl + " " + prefix + fmt.Sprint(a...)
}

func log2(lvl Level, prefix string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if lvl < min {
		return
	}
	var tag string
	switch lvl {
	case LevelWarning:
		tag = "W"
	case LevelError:
		tag = "E"
	default:
		tag = "I"
	}
	out.Output(3, sprint(tag, prefix, a)) //nolint:errcheck
}

func Infoln(a ...interface{})    { log2(LevelInfo, "", a...) }
func Warningln(a ...interface{}) { log2(LevelWarning, "", a...) }
func Errorln(a ...interface{})   { log2(LevelError, "", a...) }

func Infof(format string, a ...interface{})    { log2(LevelInfo, "", fmt.Sprintf(format, a...)) }
func Warningf(format string, a ...interface{}) { log2(LevelWarning, "", fmt.Sprintf(format, a...)) }
func Errorf(format string, a ...interface{})   { log2(LevelError, "", fmt.Sprintf(format, a...)) }

// Flush is a no-op placeholder: this logger writes synchronously, so
// there is nothing to drain, but callers that run `defer nlog.Flush()`
// around a collection still compile cleanly against a facade that
// buffers elsewhere.
func Flush() {}
