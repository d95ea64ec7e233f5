package sjs

type nodeState uint8

const (
	stateCurrent nodeState = iota
	stateStale
	stateRunning
)

// node is a computation in the graph. Typed values live in the
// ComputationNode wrapper; fn closes over it and stores the new value.
type node struct {
	fn    func()
	age   int
	state nodeState

	// dependencies, mirrored in the readers of each source log
	source1     *log
	source1slot int
	sources     []*log
	sourceslots []int

	// readers of this node, nil until someone reads it
	log *log

	owned    []*node
	cleanups []func(final bool)
}

func newNode() *node {
	return &node{age: -1}
}

// Disposable is a node that DisposeNode can tear down.
type Disposable interface {
	graphNode() *node
}

// Clock exposes the logical time of a runtime.
type Clock interface {
	Time() int
}
