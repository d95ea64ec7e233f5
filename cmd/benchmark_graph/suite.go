package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

//go:embed suites.yaml
var defaultSuites []byte

type suite struct {
	Name           string  `yaml:"name" json:"name"`
	Width          int     `yaml:"width" json:"width"`                   // nodes per layer
	Layers         int     `yaml:"layers" json:"layers"`                 // including the source layer
	Sources        int     `yaml:"sources" json:"sources"`               // reads per node
	StaticFraction float64 `yaml:"staticFraction" json:"staticFraction"` // nodes that always read all their sources
	ReadFraction   float64 `yaml:"readFraction" json:"readFraction"`     // leaves read after each write
	Iterations     int     `yaml:"iterations" json:"iterations"`

	// checked when set
	ExpectedSum   *int   `yaml:"expectedSum,omitempty" json:"expectedSum,omitempty"`
	ExpectedCount *int64 `yaml:"expectedCount,omitempty" json:"expectedCount,omitempty"`
}

func loadSuites(path string) ([]suite, error) {
	data := defaultSuites
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read suites: %w", err)
		}
	}

	var suites []suite
	if err := yaml.Unmarshal(data, &suites); err != nil {
		return nil, fmt.Errorf("parse suites: %w", err)
	}
	for i, s := range suites {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("suite %d (%q): %w", i, s.Name, err)
		}
	}
	return suites, nil
}

func (s suite) validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("name is required")
	case s.Width < 1, s.Layers < 2, s.Sources < 1, s.Iterations < 1:
		return fmt.Errorf("width, sources and iterations must be positive and layers at least 2")
	case s.Sources > s.Width:
		return fmt.Errorf("sources %d exceeds width %d", s.Sources, s.Width)
	case s.StaticFraction < 1 && s.Sources < 2:
		return fmt.Errorf("dynamic nodes need at least 2 sources")
	case s.StaticFraction < 0, s.StaticFraction > 1, s.ReadFraction < 0, s.ReadFraction > 1:
		return fmt.Errorf("fractions must be within [0, 1]")
	}
	return nil
}

// seed derives the graph shape from the suite name, so a suite builds the
// same graph on every run and renaming it reshuffles it.
func (s suite) seed() int64 {
	return int64(xxhash.Sum64String(s.Name))
}

func (s suite) title() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%dx%d %d sources", s.Width, s.Layers, s.Sources))
	if s.StaticFraction < 1 {
		sb.WriteString(" dynamic")
	}
	if s.ReadFraction < 1 {
		sb.WriteString(fmt.Sprintf(" read %0.2f%%", 100*s.ReadFraction))
	}
	return sb.String()
}
