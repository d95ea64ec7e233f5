package sjs

// Computation creates a computation starting from the zero value of T.
func Computation[T any](rs *Runtime, fn func(prev T) T) Accessor[T] {
	var seed T
	return ComputationSeed(rs, fn, seed)
}

// ComputationSeed creates a computation whose first evaluation receives seed.
// If the first evaluation read nothing the accessor returns that value
// forever.
func ComputationSeed[T any](rs *Runtime, fn func(prev T) T, seed T) Accessor[T] {
	c, value := MakeComputationNode(rs, fn, seed)
	if c == nil {
		return func() T { return value }
	}
	return c.Current
}

// Effect is a computation whose value is not needed.
func Effect[T any](rs *Runtime, fn func(prev T) T) {
	var seed T
	MakeComputationNode(rs, fn, seed)
}

func EffectSeed[T any](rs *Runtime, fn func(prev T) T, seed T) {
	MakeComputationNode(rs, fn, seed)
}

// On re-runs fn whenever anything read by ev changes. Reads made by fn are
// not tracked. With skipFirst the initial run only subscribes and the
// accessor holds seed until the first change.
func On[T any](rs *Runtime, ev func(), fn func(prev T) T, seed T, skipFirst bool) Accessor[T] {
	skip := skipFirst
	return ComputationSeed(rs, func(value T) T {
		ev()
		if skip {
			skip = false
			return value
		}
		return Sample(rs, func() T { return fn(value) })
	}, seed)
}
