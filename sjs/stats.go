package sjs

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// Stats are cumulative counters of a runtime.
type Stats struct {
	Time           int    // current tick
	Drains         uint64 // outermost drains, including aborted ones
	Passes         uint64 // passes over the three queues
	Changes        uint64 // data changes applied
	Recomputations uint64
	Disposals      uint64
	Aborts         uint64 // drains ended by a panic
}

func (rs *Runtime) Stats() Stats {
	s := rs.stats
	s.Time = rs.clock.time
	return s
}

// DrainInfo describes one finished outermost drain.
type DrainInfo struct {
	Start   time.Time
	End     time.Time
	Time    int    // tick the drain ended on
	Passes  uint64 // passes taken by this drain
	Aborted bool

	// snapshot of the runtime counters after the drain, safe to hand to
	// another goroutine
	Stats Stats
}

func (d DrainInfo) Duration() time.Duration {
	return d.End.Sub(d.Start)
}

type DrainHook func(DrainInfo)

// Source is anything computations can read from.
type Source interface {
	sourceLog() *log
}

// Dependents counts the distinct computations that would be marked stale by
// a change to src.
func Dependents(src Source) int {
	seen := mapset.NewThreadUnsafeSet[*node]()

	var stack []*log
	if l := src.sourceLog(); l != nil {
		stack = append(stack, l)
	}

	visit := func(n *node) {
		if n == nil || !seen.Add(n) {
			return
		}
		if n.log != nil {
			stack = append(stack, n.log)
		}
	}

	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(l.node1)
		for _, n := range l.nodes {
			visit(n)
		}
	}

	return seen.Cardinality()
}
