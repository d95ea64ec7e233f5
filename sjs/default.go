package sjs

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map

// Default returns the runtime of the calling goroutine, creating it on first
// use. Runtimes are never released, so prefer New for short lived
// goroutines.
func Default() *Runtime {
	gid := goid.Get()

	if rs, ok := runtimes.Load(gid); ok {
		return rs.(*Runtime)
	}

	rs := New()
	runtimes.Store(gid, rs)
	return rs
}
