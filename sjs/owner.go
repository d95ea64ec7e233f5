package sjs

// disposal is one step of a subtree teardown: either dispose n, or drop the
// dependency edges of n once its children are gone.
type disposal struct {
	n      *node
	detach bool
}

// cleanup runs the cleanups of n, disposes everything it owns and drops its
// dependency edges. Children are torn down depth first in ownership order,
// each one completely before the next.
func (rs *Runtime) cleanup(n *node, final bool) {
	base := len(rs.tasks)
	defer func() {
		clear(rs.tasks[base:])
		rs.tasks = rs.tasks[:base]
	}()

	runCleanups(n, final)
	rs.pushSubtree(n)

	for len(rs.tasks) > base {
		last := len(rs.tasks) - 1
		t := rs.tasks[last]
		rs.tasks[last] = disposal{}
		rs.tasks = rs.tasks[:last]

		if t.detach {
			detach(t.n)
			continue
		}

		t.n.fn = nil
		t.n.log = nil
		rs.stats.Disposals++
		runCleanups(t.n, true)
		rs.pushSubtree(t.n)
	}
}

// runCleanups may register more cleanups on n; those run in the same pass.
func runCleanups(n *node, final bool) {
	for i := 0; i < len(n.cleanups); i++ {
		n.cleanups[i](final)
	}
	n.cleanups = nil
}

func (rs *Runtime) pushSubtree(n *node) {
	rs.tasks = append(rs.tasks, disposal{n: n, detach: true})
	for i := len(n.owned) - 1; i >= 0; i-- {
		rs.tasks = append(rs.tasks, disposal{n: n.owned[i]})
	}
	n.owned = nil
}

func (rs *Runtime) dispose(n *node) {
	n.fn = nil
	n.log = nil
	rs.stats.Disposals++
	rs.cleanup(n, true)
}

// RootNode owns the computations created inside a root.
type RootNode struct {
	n *node
}

func (r *RootNode) graphNode() *node {
	if r == nil {
		return nil
	}
	return r.n
}

// MakeRootNode runs fn(p) with a fresh owner. The returned node is nil when
// nothing was created inside fn that needs disposing.
func MakeRootNode[T, U any](rs *Runtime, fn func(U) T, p U) (*RootNode, T) {
	owner := rs.owner
	lazy := lazySlot()
	rs.owner = lazy
	defer func() { rs.owner = owner }()

	value := fn(p)
	if lazy.lazy.node == nil {
		return nil, value
	}
	return &RootNode{n: lazy.lazy.node}, value
}

// Root runs fn in a new ownership scope and hands it a function that
// disposes everything created inside. Calling dispose before fn returns
// panics with ErrPrematureDispose; during a drain the disposal is deferred
// until the current batch of updates has run.
func Root[T any](rs *Runtime, fn func(dispose func()) T) T {
	var (
		root        *RootNode
		initialized bool
	)

	dispose := func() {
		switch {
		case !initialized:
			fail(ErrPrematureDispose, "")
		case root == nil:
		case rs.running:
			rs.clock.disposes.add(root.n)
		default:
			rs.dispose(root.n)
		}
	}

	root, value := MakeRootNode(rs, fn, dispose)
	initialized = true
	return value
}

// Unowned runs fn in a scope whose computations are never disposed.
func Unowned[T any](rs *Runtime, fn func() T) T {
	owner := rs.owner
	rs.owner = slot{kind: slotUnowned}
	defer func() { rs.owner = owner }()

	return fn()
}

// DisposeNode disposes a node now, or at the end of the current batch of
// updates if a drain is running.
func DisposeNode(rs *Runtime, d Disposable) {
	if d == nil {
		return
	}
	n := d.graphNode()
	if n == nil {
		return
	}

	if rs.running {
		rs.clock.disposes.add(n)
	} else {
		rs.dispose(n)
	}
}

// Cleanup registers fn on the current owner. It runs with final false before
// the owner re-evaluates and with final true when the owner is disposed.
func Cleanup(rs *Runtime, fn func(final bool)) {
	if !rs.owner.owns() {
		rs.logger.Warn("cleanups created without a root or parent will never be run")
		return
	}

	n := rs.owner.materialize()
	n.cleanups = append(n.cleanups, fn)
}
