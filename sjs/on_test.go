package sjs_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/tickparty/sjs"
	"github.com/stretchr/testify/assert"
)

func TestOn(t *testing.T) {
	t.Run("runs on every change of the event", func(t *testing.T) {
		rs := newRuntime()
		a := sjs.Data(rs, 1)
		other := sjs.Data(rs, 100)

		calls := 0
		var count sjs.Accessor[int]
		sjs.Root(rs, func(dispose func()) none {
			count = sjs.On(rs, func() { a.Get() }, func(prev int) int {
				calls++
				// untracked
				return prev + other.Get()
			}, 0, false)
			return none{}
		})
		assert.Equal(t, 1, calls)
		assert.Equal(t, 100, count())

		other.Set(1)
		assert.Equal(t, 1, calls)

		a.Set(2)
		assert.Equal(t, 2, calls)
		assert.Equal(t, 101, count())
	})

	t.Run("skip first", func(t *testing.T) {
		rs := newRuntime()
		a := sjs.Data(rs, 1)

		calls := 0
		var count sjs.Accessor[int]
		sjs.Root(rs, func(dispose func()) none {
			count = sjs.On(rs, func() { a.Get() }, func(prev int) int {
				calls++
				return prev + 1
			}, 10, true)
			return none{}
		})
		assert.Equal(t, 0, calls)
		assert.Equal(t, 10, count())

		a.Set(2)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 11, count())
	})
}

func TestOnGenerated(t *testing.T) {
	rs := newRuntime()
	a := sjs.Data(rs, 1)
	b := sjs.Data(rs, "x")

	var label sjs.Accessor[string]
	sjs.Root(rs, func(dispose func()) none {
		label = sjs.On2[int, string, string](rs, a.Get, b.Get, func(n int, s string, prev string) string {
			return fmt.Sprintf("%s|%d%s", prev, n, s)
		}, "", false)
		return none{}
	})
	assert.Equal(t, "|1x", label())

	sjs.Freeze(rs, func() none {
		a.Set(2)
		b.Set("y")
		return none{}
	})
	assert.Equal(t, "|1x|2y", label())

	b.Set("z")
	assert.Equal(t, "|1x|2y|2z", label())

	c := sjs.Data(rs, 0.5)
	var sum sjs.Accessor[float64]
	sjs.Root(rs, func(dispose func()) none {
		sum = sjs.On3[int, string, float64, float64](rs, a.Get, b.Get, c.Get, func(n int, s string, f float64, prev float64) float64 {
			return float64(n) + float64(len(s)) + f
		}, 0, true)
		return none{}
	})
	assert.Equal(t, 0.0, sum())
	c.Set(1.5)
	assert.Equal(t, 4.5, sum())
}
