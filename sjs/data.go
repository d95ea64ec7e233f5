package sjs

// Signal is a readable and writable reactive value.
type Signal[T any] interface {
	Get() T
	Set(v T) T
}

// DataNode is a mutable reactive cell.
type DataNode[T any] struct {
	rs    *Runtime
	value T

	// the value waiting for the next tick, if any
	pending    T
	hasPending bool

	log *log
}

var _ Signal[int] = (*DataNode[int])(nil)

func MakeDataNode[T any](rs *Runtime, value T) *DataNode[T] {
	return &DataNode[T]{rs: rs, value: value}
}

// Data creates a data signal holding value.
func Data[T any](rs *Runtime, value T) *DataNode[T] {
	return MakeDataNode(rs, value)
}

// Current returns the value, recording the read if a computation is
// listening.
func (d *DataNode[T]) Current() T {
	if d.rs.listener.kind != slotNone {
		if d.log == nil {
			d.log = &log{}
		}
		d.rs.logRead(d.log)
	}
	return d.value
}

// Next writes value. While the clock is running the write is deferred to the
// next tick, and a second different write in the same tick panics with
// ErrConflictingWrite. Otherwise the write opens a tick immediately, unless
// nothing reads the node, in which case the value is just stored.
func (d *DataNode[T]) Next(value T) T {
	rs := d.rs
	switch {
	case rs.running:
		if d.hasPending {
			if !identical(value, d.pending) {
				fail(ErrConflictingWrite, "%v !== %v", value, d.pending)
			}
		} else {
			d.pending, d.hasPending = value, true
			rs.clock.changes.add(d)
		}
	case d.log != nil:
		d.pending, d.hasPending = value, true
		rs.clock.changes.add(d)
		rs.drain(rs.event)
	default:
		d.value = value
	}
	return value
}

func (d *DataNode[T]) Get() T {
	return d.Current()
}

func (d *DataNode[T]) Set(value T) T {
	return d.Next(value)
}

func (d *DataNode[T]) Clock() Clock {
	return d.rs
}

func (d *DataNode[T]) sourceLog() *log {
	return d.log
}

func (d *DataNode[T]) applyChange(rs *Runtime) {
	var zero T
	d.value = d.pending
	d.pending, d.hasPending = zero, false
	if d.log != nil {
		rs.markComputationsStale(d.log)
	}
}

func (d *DataNode[T]) abandonChange() {
	var zero T
	d.pending, d.hasPending = zero, false
}

// ValueSignal is a data signal that ignores writes equal to its current
// value.
type ValueSignal[T any] struct {
	data *DataNode[T]
	eq   func(a, b T) bool

	// time and abort count of the last write
	age    int
	aborts uint64
}

var _ Signal[int] = (*ValueSignal[int])(nil)

// Value creates a value signal. A nil eq compares with == where possible and
// reflect.DeepEqual otherwise.
func Value[T any](rs *Runtime, value T, eq func(a, b T) bool) *ValueSignal[T] {
	if eq == nil {
		eq = identical[T]
	}
	return &ValueSignal[T]{
		data: MakeDataNode(rs, value),
		eq:   eq,
		age:  -1,
	}
}

func (v *ValueSignal[T]) Get() T {
	return v.data.Current()
}

// Set writes value unless it equals the current one. Two different values
// within the same tick panic with ErrConflictingWrite.
func (v *ValueSignal[T]) Set(value T) T {
	current := v.data.value
	if v.data.hasPending {
		current = v.data.pending
	}
	if v.eq(current, value) {
		return value
	}

	rs := v.data.rs
	if v.age == rs.clock.time && v.aborts == rs.stats.Aborts {
		fail(ErrConflictingWrite, "conflicting values: %v is not the same as %v", value, current)
	}
	v.age, v.aborts = rs.clock.time, rs.stats.Aborts
	v.data.Next(value)
	return value
}

func (v *ValueSignal[T]) Clock() Clock {
	return v.data.rs
}

func (v *ValueSignal[T]) sourceLog() *log {
	return v.data.log
}
