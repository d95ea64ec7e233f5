// Package sjs is a clock based reactive engine.
//
// Data nodes hold values, computation nodes derive values from them and
// discover their dependencies by observing reads. A write opens a tick on the
// runtime clock; every computation affected by the write is re-evaluated
// exactly once within that tick and no reader ever observes a mix of values
// from two different ticks.
//
//	rs := sjs.New()
//	count := sjs.Data(rs, 1)
//	double := sjs.Computation(rs, func(int) int { return count.Get() * 2 })
//	count.Set(5)
//	double() // 10
//
// A Runtime is single threaded. Use one per goroutine, or Default() which
// keeps one per goroutine for you.
package sjs
