package sjs

import (
	"errors"
	"fmt"
)

var (
	// ErrConflictingWrite is raised when a data node receives two different
	// values within the same tick.
	ErrConflictingWrite = errors.New("sjs: conflicting changes")

	// ErrCircularDependency is raised when a computation is read while it is
	// being recomputed.
	ErrCircularDependency = errors.New("sjs: circular dependency")

	// ErrPrematureDispose is raised when a root is disposed from inside its
	// own creation function.
	ErrPrematureDispose = errors.New("sjs: cannot dispose of a root while it is still being created")

	// ErrRunawayClock is raised when a drain does not settle within the
	// configured number of passes.
	ErrRunawayClock = errors.New("sjs: runaway clock detected")
)

// Error is the value the engine panics with. Kind is one of the Err*
// sentinels, so errors.Is works on it once recovered with Catch.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func fail(kind error, format string, args ...any) {
	panic(&Error{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Catch runs fn and returns the engine error it panicked with, if any.
// Panics that did not come from the engine are re-raised untouched.
//
// Nothing is rolled back: changes applied and computations re-run before the
// failure stay in effect.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()

	fn()
	return nil
}

// IsConflict reports whether err is a conflicting write.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflictingWrite)
}

// IsCircular reports whether err is a circular dependency.
func IsCircular(err error) bool {
	return errors.Is(err, ErrCircularDependency)
}

// IsRunaway reports whether err is a runaway clock.
func IsRunaway(err error) bool {
	return errors.Is(err, ErrRunawayClock)
}
