package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/delaneyj/tickparty/sjs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultSuites(t *testing.T) {
	suites, err := loadSuites("")
	require.NoError(t, err)
	require.Len(t, suites, 6)
	assert.Equal(t, "simple component", suites[0].Name)
	assert.Equal(t, 600000, suites[0].Iterations)
	assert.Equal(t, "10x5 2 sources read 20.00%", suites[0].title())
	assert.Equal(t, suites[0].seed(), suites[0].seed())
	assert.NotEqual(t, suites[0].seed(), suites[1].seed())
}

func TestLoadSuitesValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suites.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: broken
  width: 4
  layers: 3
  sources: 1
  staticFraction: 0.5
  readFraction: 1
  iterations: 10
`), 0o644))

	_, err := loadSuites(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 sources")
}

// every static node of layer n sums s.Sources nodes of layer n-1, so with
// all sources set to v each leaf holds v * s.Sources^(layers-1)
func TestGraphStaticSums(t *testing.T) {
	s := suite{
		Name:           "tiny",
		Width:          4,
		Layers:         3,
		Sources:        2,
		StaticFraction: 1,
		ReadFraction:   1,
		Iterations:     1,
	}
	require.NoError(t, s.validate())

	rs := sjs.New(sjs.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	counter := new(int64)
	g := makeGraph(rs, s, counter)
	defer g.dispose()

	assert.EqualValues(t, 8, *counter)
	assert.Zero(t, g.dynamicCount())

	sjs.Freeze(rs, func() struct{} {
		for _, src := range g.sources {
			src.Set(3)
		}
		return struct{}{}
	})
	for _, leaf := range g.layers[len(g.layers)-1] {
		assert.Equal(t, 12, leaf())
	}

	//  8 nodes, each recomputed once for the batched write
	assert.EqualValues(t, 16, *counter)
}
