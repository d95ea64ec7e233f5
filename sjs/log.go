package sjs

// log is the set of computations reading one source. The first reader sits
// in node1; the rest go to nodes. Every edge stores the index of its
// reciprocal on the other side, -1 meaning the single slot, so an edge is
// removed in constant time.
type log struct {
	node1     *node
	node1slot int
	nodes     []*node
	nodeslots []int
}

// logRead records an edge from the log to the current listener, creating
// the listener's node if it is still lazy.
func (rs *Runtime) logRead(from *log) {
	to := rs.listener.materialize()

	toslot := -1
	if to.source1 != nil {
		toslot = len(to.sources)
	}

	var fromslot int
	if from.node1 == nil {
		from.node1 = to
		from.node1slot = toslot
		fromslot = -1
	} else {
		fromslot = len(from.nodes)
		from.nodes = append(from.nodes, to)
		from.nodeslots = append(from.nodeslots, toslot)
	}

	if to.source1 == nil {
		to.source1 = from
		to.source1slot = fromslot
	} else {
		to.sources = append(to.sources, from)
		to.sourceslots = append(to.sourceslots, fromslot)
	}
}

// cleanupSource removes the reader edge at slot from source. The last reader
// is swapped into the hole and its reciprocal index patched.
func cleanupSource(source *log, slot int) {
	if slot == -1 {
		source.node1 = nil
		return
	}

	last := len(source.nodes) - 1
	lastNode, lastslot := source.nodes[last], source.nodeslots[last]
	source.nodes[last] = nil
	source.nodes = source.nodes[:last]
	source.nodeslots = source.nodeslots[:last]

	if slot == last {
		return
	}
	source.nodes[slot] = lastNode
	source.nodeslots[slot] = lastslot
	if lastslot == -1 {
		lastNode.source1slot = slot
	} else {
		lastNode.sourceslots[lastslot] = slot
	}
}

// detach drops every dependency edge of n, last edge first.
func detach(n *node) {
	if n.source1 != nil {
		cleanupSource(n.source1, n.source1slot)
		n.source1 = nil
	}
	for i := len(n.sources) - 1; i >= 0; i-- {
		cleanupSource(n.sources[i], n.sourceslots[i])
		n.sources[i] = nil
	}
	n.sources = n.sources[:0]
	n.sourceslots = n.sourceslots[:0]
}
