package sjs_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/tickparty/sjs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// from the package docs
func TestBasicUsage(t *testing.T) {
	rs := newRuntime()
	count := sjs.Data(rs, 1)
	double := sjs.Computation(rs, func(int) int {
		return count.Get() * 2
	})

	assert.Equal(t, 2, double())
	count.Set(5)
	assert.Equal(t, 10, double())
}

func TestWritesOutsideFreezeDrainIndependently(t *testing.T) {
	rs := newRuntime()
	a := sjs.Data(rs, 0)

	var seen []int
	sjs.Root(rs, func(dispose func()) none {
		sjs.Effect(rs, func(none) none {
			seen = append(seen, a.Get())
			return none{}
		})
		return none{}
	})

	a.Set(1)
	a.Set(2)
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, 2, rs.Time())
}

func TestFreeze(t *testing.T) {
	t.Run("batches writes into one tick", func(t *testing.T) {
		rs := newRuntime()
		a := sjs.Data(rs, 0)
		b := sjs.Data(rs, 0)

		var seen []string
		sjs.Root(rs, func(dispose func()) none {
			sjs.Effect(rs, func(none) none {
				seen = append(seen, fmt.Sprintf("%d %d", a.Get(), b.Get()))
				return none{}
			})
			return none{}
		})

		result := sjs.Freeze(rs, func() int {
			a.Set(1)
			b.Set(2)
			// still the old values until the batch closes
			assert.Equal(t, 0, a.Get())
			assert.True(t, rs.IsFrozen())
			return 42
		})

		assert.Equal(t, 42, result)
		assert.Equal(t, []string{"0 0", "1 2"}, seen)
		assert.False(t, rs.IsFrozen())
	})

	t.Run("same value twice is not a conflict", func(t *testing.T) {
		rs := newRuntime()
		a := sjs.Data(rs, 0)

		runs := 0
		sjs.Root(rs, func(dispose func()) none {
			sjs.Effect(rs, func(none) none {
				runs++
				a.Get()
				return none{}
			})
			return none{}
		})

		err := sjs.Catch(func() {
			sjs.Freeze(rs, func() none {
				a.Set(2)
				a.Set(2)
				return none{}
			})
		})
		require.NoError(t, err)
		assert.Equal(t, 2, a.Get())
		assert.Equal(t, 2, runs)
	})

	t.Run("nested freeze joins the outer batch", func(t *testing.T) {
		rs := newRuntime()
		a := sjs.Data(rs, 0)
		double := sjs.Root(rs, func(dispose func()) sjs.Accessor[int] {
			return sjs.Computation(rs, func(int) int { return a.Get() * 2 })
		})

		sjs.Freeze(rs, func() none {
			sjs.Freeze(rs, func() none {
				a.Set(3)
				return none{}
			})
			assert.Equal(t, 0, double())
			return none{}
		})
		assert.Equal(t, 6, double())
	})
}

func TestTopologyDiamond(t *testing.T) {
	rs := newRuntime()

	// D should only update once when A changes and must never see B and C
	// from different ticks.
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D
	a := sjs.Data(rs, 1)

	var d sjs.Accessor[string]
	var seen []string
	sjs.Root(rs, func(dispose func()) none {
		b := sjs.Computation(rs, func(int) int { return a.Get() + 1 })
		c := sjs.Computation(rs, func(int) int { return a.Get() * 2 })
		d = sjs.Computation(rs, func(string) string {
			v := fmt.Sprintf("%d %d", b(), c())
			seen = append(seen, v)
			return v
		})
		return none{}
	})

	assert.Equal(t, "2 2", d())
	seen = nil

	a.Set(5)
	assert.Equal(t, "6 10", d())
	assert.Equal(t, []string{"6 10"}, seen)
}

func TestTopologyChainUpdatesOncePerTick(t *testing.T) {
	rs := newRuntime()

	//  A
	//  | \
	//  B  |
	//  |  |
	//  C  |
	//   \ |
	//     D
	a := sjs.Data(rs, 1)
	counts := map[string]int{}

	var d sjs.Accessor[int]
	sjs.Root(rs, func(dispose func()) none {
		b := sjs.Computation(rs, func(int) int { counts["b"]++; return a.Get() + 1 })
		c := sjs.Computation(rs, func(int) int { counts["c"]++; return b() + 1 })
		d = sjs.Computation(rs, func(int) int { counts["d"]++; return c() + a.Get() })
		return none{}
	})
	assert.Equal(t, 4, d())

	for i := 2; i <= 4; i++ {
		a.Set(i)
		assert.Equal(t, 2*i+2, d())
	}
	assert.Equal(t, map[string]int{"b": 4, "c": 4, "d": 4}, counts)
}

func TestDependencyRebuild(t *testing.T) {
	rs := newRuntime()

	//  flag
	//   |   \
	//   a    b   (only one of them at a time)
	//    \  /
	//     c
	flag := sjs.Data(rs, true)
	a := sjs.Data(rs, "a")
	b := sjs.Data(rs, "b")

	runs := 0
	var c sjs.Accessor[string]
	sjs.Root(rs, func(dispose func()) none {
		c = sjs.Computation(rs, func(string) string {
			runs++
			if flag.Get() {
				return a.Get()
			}
			return b.Get()
		})
		return none{}
	})

	b.Set("b1")
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, sjs.Dependents(a))
	assert.Equal(t, 0, sjs.Dependents(b))

	flag.Set(false)
	assert.Equal(t, 2, runs)
	assert.Equal(t, "b1", c())

	a.Set("a1")
	assert.Equal(t, 2, runs)
	assert.Equal(t, 0, sjs.Dependents(a))

	b.Set("b2")
	assert.Equal(t, 3, runs)
	assert.Equal(t, "b2", c())
}

func TestSample(t *testing.T) {
	rs := newRuntime()
	a := sjs.Data(rs, 1)
	b := sjs.Data(rs, 10)

	runs := 0
	var c sjs.Accessor[int]
	sjs.Root(rs, func(dispose func()) none {
		c = sjs.Computation(rs, func(int) int {
			runs++
			assert.True(t, rs.IsListening())
			return a.Get() + sjs.Sample(rs, func() int {
				assert.False(t, rs.IsListening())
				return b.Get()
			})
		})
		return none{}
	})
	assert.Equal(t, 11, c())

	b.Set(20)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 11, c())

	a.Set(2)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 22, c())
	assert.False(t, rs.IsListening())
}

func TestComputationSeed(t *testing.T) {
	rs := newRuntime()
	a := sjs.Data(rs, 1)

	var sum sjs.Accessor[int]
	sjs.Root(rs, func(dispose func()) none {
		sum = sjs.ComputationSeed(rs, func(prev int) int {
			return prev + a.Get()
		}, 100)
		return none{}
	})
	assert.Equal(t, 101, sum())

	a.Set(2)
	a.Set(3)
	assert.Equal(t, 106, sum())
}

func TestConstantComputation(t *testing.T) {
	rs := newRuntime()

	runs := 0
	c := sjs.Root(rs, func(dispose func()) sjs.Accessor[int] {
		return sjs.Computation(rs, func(int) int {
			runs++
			return 7
		})
	})

	assert.Equal(t, 7, c())
	assert.Equal(t, 7, c())
	assert.Equal(t, 1, runs)
}

func TestComputationWritesPropagateInSameDrain(t *testing.T) {
	rs := newRuntime()

	// an effect mirrors A into B, C reads B
	//  A -> (effect) -> B -> C
	a := sjs.Data(rs, 1)
	b := sjs.Data(rs, 0)

	var c sjs.Accessor[int]
	sjs.Root(rs, func(dispose func()) none {
		sjs.Effect(rs, func(none) none {
			b.Set(a.Get() * 10)
			return none{}
		})
		c = sjs.Computation(rs, func(int) int { return b.Get() + 1 })
		return none{}
	})
	assert.Equal(t, 10, b.Get())
	assert.Equal(t, 11, c())

	a.Set(2)
	assert.Equal(t, 20, b.Get())
	assert.Equal(t, 21, c())
}
