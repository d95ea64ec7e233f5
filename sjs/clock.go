package sjs

import "fmt"

// change is a data node with a value waiting for the next tick.
type change interface {
	applyChange(rs *Runtime)
	abandonChange()
}

type clock struct {
	time int

	changes  queue[change] // batched changes to data nodes
	updates  queue[*node]  // computations to update
	disposes queue[*node]  // disposals to run after the current batch of updates
}

// event opens a new tick and drains the clock.
func (rs *Runtime) event() {
	owner := rs.owner
	defer func() {
		rs.running = false
		rs.listener = slot{}
		rs.owner = owner
	}()

	rs.clock.updates.reset()
	rs.clock.time++
	rs.run()
}

func (rs *Runtime) run() {
	running := rs.running
	rs.running = true

	c := &rs.clock
	for count := 0; c.changes.count != 0 || c.updates.count != 0 || c.disposes.count != 0; count++ {
		// no tick on the first pass, updates scheduled by the trigger belong to it
		if count > 0 {
			c.time++
		}

		c.changes.run(rs.applyDataChange)
		c.updates.run(rs.updateNode)
		c.disposes.run(rs.dispose)
		rs.stats.Passes++

		if count > rs.maxPasses {
			fail(ErrRunawayClock, "still changing after %d passes", count)
		}
	}

	rs.running = running
}

func (rs *Runtime) applyDataChange(ch change) {
	rs.stats.Changes++
	ch.applyChange(rs)
}

// markComputationsStale marks every reader of l, and transitively every
// reader of those, stale for the current tick. Nodes are visited in the same
// depth first order a recursive walk would use.
func (rs *Runtime) markComputationsStale(l *log) {
	base := len(rs.walk)
	rs.pushReaders(l)

	for len(rs.walk) > base {
		n := rs.pop()
		if n.age >= rs.clock.time {
			continue
		}

		n.age = rs.clock.time
		n.state = stateStale
		rs.clock.updates.add(n)
		if len(n.owned) > 0 {
			rs.markOwnedNodesForDisposal(n.owned)
		}
		if n.log != nil {
			rs.pushReaders(n.log)
		}
	}
}

func (rs *Runtime) pushReaders(l *log) {
	for i := len(l.nodes) - 1; i >= 0; i-- {
		rs.walk = append(rs.walk, l.nodes[i])
	}
	if l.node1 != nil {
		rs.walk = append(rs.walk, l.node1)
	}
}

func (rs *Runtime) pop() *node {
	last := len(rs.walk) - 1
	n := rs.walk[last]
	rs.walk[last] = nil
	rs.walk = rs.walk[:last]
	return n
}

// markOwnedNodesForDisposal makes the owned subtree current for this tick.
// The stale owner will dispose and rebuild it, so nothing may update it in
// the meantime.
func (rs *Runtime) markOwnedNodesForDisposal(owned []*node) {
	base := len(rs.walk)
	rs.walk = append(rs.walk, owned...)

	for len(rs.walk) > base {
		child := rs.pop()
		child.age = rs.clock.time
		child.state = stateCurrent
		rs.walk = append(rs.walk, child.owned...)
	}
}

func (rs *Runtime) updateNode(n *node) {
	if n.state != stateStale || n.fn == nil {
		return
	}

	owner, listener := rs.owner, rs.listener
	rs.owner, rs.listener = bound(n), bound(n)
	defer func() { rs.owner, rs.listener = owner, listener }()

	n.state = stateRunning
	defer func() {
		// a panicking fn leaves the node with its previous value
		if n.state == stateRunning {
			n.state = stateCurrent
		}
	}()

	rs.cleanup(n, false)
	rs.stats.Recomputations++
	n.fn()
	n.state = stateCurrent
}

func (s nodeState) String() string {
	switch s {
	case stateCurrent:
		return "current"
	case stateStale:
		return "stale"
	case stateRunning:
		return "running"
	default:
		return fmt.Sprintf("nodeState(%d)", s)
	}
}
