package sjs

// Accessor reads a computation.
type Accessor[T any] func() T

// ComputationNode is a derived value that re-evaluates when anything it read
// during its last evaluation changes.
type ComputationNode[T any] struct {
	rs    *Runtime
	n     *node
	value T
}

// Current returns the latest value. A listening read of a node that is stale
// in the current tick brings it up to date first.
func (c *ComputationNode[T]) Current() T {
	rs := c.rs
	if rs.listener.kind != slotNone {
		if c.n.age == rs.clock.time {
			if c.n.state == stateRunning {
				fail(ErrCircularDependency, "computation read while it is running")
			}
			rs.updateNode(c.n)
		}
		if c.n.log == nil {
			c.n.log = &log{}
		}
		rs.logRead(c.n.log)
	}
	return c.value
}

func (c *ComputationNode[T]) Clock() Clock {
	return c.rs
}

func (c *ComputationNode[T]) graphNode() *node {
	if c == nil {
		return nil
	}
	return c.n
}

func (c *ComputationNode[T]) sourceLog() *log {
	return c.n.log
}

// MakeComputationNode evaluates fn(seed) and keeps the result as a live node
// if fn read anything. The node is nil when there is nothing to keep; the
// value is returned either way.
//
// Called outside a drain, it opens one: writes made by fn are applied and
// propagated before it returns.
func MakeComputationNode[T any](rs *Runtime, fn func(prev T) T, seed T) (*ComputationNode[T], T) {
	owner, listener := rs.owner, rs.listener
	defer func() { rs.owner, rs.listener = owner, listener }()

	if owner.kind == slotNone {
		rs.logger.Warn("computations created without a root or parent will never be disposed")
	}

	lazy := lazySlot()
	rs.owner, rs.listener = lazy, lazy

	var (
		c     *ComputationNode[T]
		value T
	)

	if rs.running {
		value = fn(seed)
		c = settle(rs, lazy.lazy.node, owner, fn, value)
		return c, value
	}

	rs.running = true
	rs.clock.changes.reset()
	rs.clock.updates.reset()
	rs.clock.disposes.reset()
	rs.drain(func() {
		value = fn(seed)
		c = settle(rs, lazy.lazy.node, owner, fn, value)

		rs.owner, rs.listener = slot{}, slot{}
		if rs.clock.changes.count > 0 || rs.clock.updates.count > 0 || rs.clock.disposes.count > 0 {
			rs.clock.time++
			rs.run()
		}
	})
	return c, value
}

// settle decides what happens to the node created while evaluating fn. A
// node with dependencies is wired up and attached to its owner. A node
// without any only collected children and cleanups, which move to the owner.
func settle[T any](rs *Runtime, n *node, owner slot, fn func(T) T, value T) *ComputationNode[T] {
	if n == nil {
		return nil
	}

	if n.source1 != nil {
		c := &ComputationNode[T]{rs: rs, n: n, value: value}
		n.fn = func() { c.value = fn(c.value) }
		n.age = rs.clock.time
		if owner.owns() {
			o := owner.materialize()
			o.owned = append(o.owned, n)
		}
		return c
	}

	if owner.owns() {
		o := owner.materialize()
		o.owned = append(o.owned, n.owned...)
		o.cleanups = append(o.cleanups, n.cleanups...)
		return nil
	}

	// Nothing to hand the children to. Keep the node so they can still be
	// disposed through it.
	return &ComputationNode[T]{rs: rs, n: n, value: value}
}
