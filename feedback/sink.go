// Package feedback carries comparison progress scores from the comparison
// hooks to whatever store the fuzzer reads between iterations.
package feedback

import (
	"runtime"
	"sync/atomic"
)

// Site identifies the call expression in the instrumented program that reached
// a hook. It is either a return address or an id assigned at build time.
type Site uintptr

// Sink receives (site, score) reports. Implementations must be safe for
// concurrent use and must not block.
type Sink interface {
	Record(site Site, score uint32)
}

type sinkBox struct {
	s Sink
}

var current atomic.Pointer[sinkBox]

// SetSink installs s as the process-wide sink and returns the previous one.
// A nil s disables reporting.
func SetSink(s Sink) Sink {
	var prev *sinkBox
	if s == nil {
		prev = current.Swap(nil)
	} else {
		prev = current.Swap(&sinkBox{s})
	}
	if prev == nil {
		return nil
	}
	return prev.s
}

// Record reports score for site to the process-wide sink. Reports made while no
// sink is installed are dropped.
func Record(site Site, score uint32) {
	if b := current.Load(); b != nil {
		b.s.Record(site, score)
	}
}

// Caller returns the return address into the function that called the
// function calling Caller, skipping skip further frames. Hooks call Caller(0)
// to identify the instrumented call site.
//
//go:noinline
func Caller(skip int) Site {
	var pcs [1]uintptr
	// 0 is runtime.Callers, 1 is Caller, 2 is the hook.
	if runtime.Callers(skip+3, pcs[:]) == 0 {
		return 0
	}
	return Site(pcs[0])
}

// Discard drops every report.
var Discard Sink = discard{}

type discard struct{}

func (discard) Record(Site, uint32) {}
