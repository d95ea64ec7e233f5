package sjs

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxPasses bounds the passes of a single drain before it is
// considered runaway.
const DefaultMaxPasses = 100_000

type slotKind uint8

const (
	slotNone slotKind = iota
	slotLazy
	slotUnowned
	slotBound
)

// pending is a node that has not been needed yet. It is shared by every
// slot pointing at the same lazy computation so materializing it through one
// slot is visible through the others.
type pending struct {
	node *node
}

// slot is the current owner or listener.
type slot struct {
	kind slotKind
	node *node
	lazy *pending
}

func bound(n *node) slot {
	return slot{kind: slotBound, node: n}
}

func lazySlot() slot {
	return slot{kind: slotLazy, lazy: &pending{}}
}

// materialize returns the node behind the slot, creating it if the slot is
// lazy. It returns nil for no owner and for unowned scopes.
func (s slot) materialize() *node {
	switch s.kind {
	case slotBound:
		return s.node
	case slotLazy:
		if s.lazy.node == nil {
			s.lazy.node = newNode()
		}
		return s.lazy.node
	default:
		return nil
	}
}

// owns reports whether nodes created under this slot get attached to it.
func (s slot) owns() bool {
	return s.kind == slotBound || s.kind == slotLazy
}

// Runtime holds one clock and the evaluation context of everything created
// on it. It is not safe for concurrent use.
type Runtime struct {
	clock clock

	// a drain is running; writes are deferred to its change queue
	running bool

	owner    slot
	listener slot

	// scratch stacks for stale marking and disposal
	walk  []*node
	tasks []disposal

	maxPasses int
	logger    *slog.Logger
	onDrain   []DrainHook
	stats     Stats
}

type Option func(*Runtime)

// WithLogger sets the logger used for ownership warnings.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(rs *Runtime) {
		rs.logger = logger
	}
}

// WithMaxPasses sets how many passes a drain may take before it panics with
// ErrRunawayClock.
func WithMaxPasses(n int) Option {
	return func(rs *Runtime) {
		rs.maxPasses = n
	}
}

// WithDrainHook registers a function called after every outermost drain.
// It may be given more than once; hooks run in registration order.
func WithDrainHook(hook DrainHook) Option {
	return func(rs *Runtime) {
		rs.onDrain = append(rs.onDrain, hook)
	}
}

func New(opts ...Option) *Runtime {
	rs := &Runtime{
		maxPasses: DefaultMaxPasses,
	}
	for _, opt := range opts {
		opt(rs)
	}
	if rs.logger == nil {
		rs.logger = slog.Default()
	}
	rs.logger = rs.logger.With(slog.String("runtime", uuid.NewString()))

	return rs
}

// Time is the current tick of the runtime clock.
func (rs *Runtime) Time() int {
	return rs.clock.time
}

// IsFrozen reports whether a drain or a Freeze is in progress, in which case
// writes are deferred to the end of the current tick.
func (rs *Runtime) IsFrozen() bool {
	return rs.running
}

// IsListening reports whether reads are currently recorded as dependencies.
func (rs *Runtime) IsListening() bool {
	return rs.listener.kind != slotNone
}

// Freeze runs fn with every write inside it batched into a single tick.
// Nested calls run inline as part of the outermost batch.
func Freeze[T any](rs *Runtime, fn func() T) T {
	if rs.running {
		return fn()
	}

	var result T
	rs.running = true
	rs.clock.changes.reset()
	rs.clock.disposes.reset()
	rs.drain(func() {
		result = fn()
		rs.event()
	})
	return result
}

// Sample runs fn without recording its reads as dependencies.
func Sample[T any](rs *Runtime, fn func() T) T {
	if rs.listener.kind == slotNone {
		return fn()
	}

	listener := rs.listener
	rs.listener = slot{}
	defer func() { rs.listener = listener }()

	return fn()
}

// drain runs fn as the outermost evaluation of the clock. If fn panics, the
// work still queued is dropped; what was already applied stays.
func (rs *Runtime) drain(fn func()) {
	var start time.Time
	if len(rs.onDrain) > 0 {
		start = time.Now()
	}
	passes := rs.stats.Passes
	ok := false

	defer func() {
		rs.running = false
		if !ok {
			rs.abort()
		}
		rs.stats.Drains++
		if len(rs.onDrain) == 0 {
			return
		}
		info := DrainInfo{
			Start:   start,
			End:     time.Now(),
			Time:    rs.clock.time,
			Passes:  rs.stats.Passes - passes,
			Aborted: !ok,
			Stats:   rs.Stats(),
		}
		for _, hook := range rs.onDrain {
			hook(info)
		}
	}()

	fn()
	ok = true
}

func (rs *Runtime) abort() {
	c := &rs.clock
	for i := 0; i < c.changes.count; i++ {
		if ch := c.changes.items[i]; ch != nil {
			ch.abandonChange()
		}
	}
	c.changes.reset()
	c.updates.reset()
	c.disposes.reset()

	clear(rs.walk)
	rs.walk = rs.walk[:0]
	rs.stats.Aborts++

	rs.logger.Debug("drain aborted", slog.Int("time", c.time))
}
