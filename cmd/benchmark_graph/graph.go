package main

import (
	"math"
	"math/rand"

	"github.com/delaneyj/tickparty/sjs"
)

type graph struct {
	rs        *sjs.Runtime
	sources   []*sjs.DataNode[int]
	layers    [][]sjs.Accessor[int]
	isDynamic [][]bool
	dispose   func()
}

// makeGraph builds s.Layers-1 layers of computations on top of s.Width data
// sources. Node i of a layer reads nodes i..i+s.Sources of the layer below,
// wrapping around. Dynamic nodes skip one of their sources depending on the
// value of the first.
func makeGraph(rs *sjs.Runtime, s suite, counter *int64) *graph {
	g := &graph{rs: rs}

	g.sources = make([]*sjs.DataNode[int], s.Width)
	prevRow := make([]sjs.Accessor[int], s.Width)
	for i := range g.sources {
		g.sources[i] = sjs.Data(rs, i)
		prevRow[i] = g.sources[i].Get
	}

	random := rand.New(rand.NewSource(s.seed()))
	g.dispose = sjs.Root(rs, func(dispose func()) func() {
		for l := 1; l < s.Layers; l++ {
			row, isDynamic := makeRow(rs, prevRow, s, counter, random)
			g.layers = append(g.layers, row)
			g.isDynamic = append(g.isDynamic, isDynamic)
			prevRow = row
		}
		return dispose
	})

	return g
}

func makeRow(rs *sjs.Runtime, sources []sjs.Accessor[int], s suite, counter *int64, random *rand.Rand) (row []sjs.Accessor[int], isDynamic []bool) {
	row = make([]sjs.Accessor[int], len(sources))
	isDynamic = make([]bool, len(sources))

	for myDex := range sources {
		mySources := make([]sjs.Accessor[int], 0, s.Sources)
		for sourceDex := 0; sourceDex < s.Sources; sourceDex++ {
			mySources = append(mySources, sources[(myDex+sourceDex)%len(sources)])
		}

		if random.Float64() < s.StaticFraction {
			row[myDex] = sjs.Computation(rs, func(int) int {
				*counter++
				sum := 0
				for _, source := range mySources {
					sum += source()
				}
				return sum
			})
			continue
		}

		first := mySources[0]
		tail := mySources[1:]
		row[myDex] = sjs.Computation(rs, func(int) int {
			*counter++
			sum := first()
			shouldDrop := sum&0x1 > 0
			dropDex := sum % len(tail)

			for i := 0; i < len(tail); i++ {
				if shouldDrop && i == dropDex {
					continue
				}
				sum += tail[i]()
			}
			return sum
		})
		isDynamic[myDex] = true
	}

	return row, isDynamic
}

// run writes one source per iteration and reads a fixed random subset of the
// leaves after each write. It returns the sum of the subset at the end.
func (g *graph) run(s suite) int {
	random := rand.New(rand.NewSource(s.seed()))
	leaves := g.layers[len(g.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - s.ReadFraction)))
	readLeaves := removeElems(leaves, skipCount, random)

	for i := 0; i < s.Iterations; i++ {
		sourceDex := i % len(g.sources)
		g.sources[sourceDex].Set(i + sourceDex)

		for _, leaf := range readLeaves {
			leaf()
		}
	}

	sum := 0
	for _, leaf := range readLeaves {
		sum += leaf()
	}
	return sum
}

func (g *graph) dynamicCount() int {
	n := 0
	for _, row := range g.isDynamic {
		for _, d := range row {
			if d {
				n++
			}
		}
	}
	return n
}

func removeElems[T any](src []T, rmCount int, random *rand.Rand) []T {
	copyWithRemovals := make([]T, len(src))
	copy(copyWithRemovals, src)
	for i := 0; i < rmCount; i++ {
		rmDex := random.Intn(len(copyWithRemovals))
		copyWithRemovals[rmDex] = copyWithRemovals[len(copyWithRemovals)-1]
		copyWithRemovals = copyWithRemovals[:len(copyWithRemovals)-1]
	}
	return copyWithRemovals
}
