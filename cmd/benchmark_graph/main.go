package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/delaneyj/tickparty/sjs"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/sugawarayuuta/sonnet"
	"github.com/urfave/cli/v3"
)

const (
	suitesKey  = "suites"
	repeatsKey = "repeats"
	onlyKey    = "only"
	jsonKey    = "json"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_graph",
		Usage: "Run layered graph suites against sjs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  suitesKey,
				Usage: "YAML file with suites, defaults to the built in set",
			},
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Timed runs per suite, the best one is reported",
				Value: 5,
			},
			&cli.StringFlag{
				Name:  onlyKey,
				Usage: "Only run the suite with this name",
			},
			&cli.BoolFlag{
				Name:  jsonKey,
				Usage: "Print results as JSON instead of a table",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type result struct {
	Suite          suite         `json:"suite"`
	Sum            int           `json:"sum"`
	Count          int64         `json:"count"`
	Dynamic        int           `json:"dynamic"`
	Duration       time.Duration `json:"duration"`
	UpdateRate     float64       `json:"updateRate"`
	Recomputations uint64        `json:"recomputations"`
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting graph benchmark, please wait...")
	defer log.Print("Finished graph benchmark")

	suites, err := loadSuites(cmd.String(suitesKey))
	if err != nil {
		return err
	}
	repeats := int(cmd.Uint(repeatsKey))
	if repeats < 1 {
		return fmt.Errorf("--%s must be at least 1", repeatsKey)
	}
	only := cmd.String(onlyKey)

	var results []result
	for _, s := range suites {
		if only != "" && s.Name != only {
			continue
		}
		r, err := runSuite(s, repeats)
		if err != nil {
			return err
		}
		results = append(results, r)
	}
	if only != "" && len(results) == 0 {
		return fmt.Errorf("no suite named %q", only)
	}

	if cmd.Bool(jsonKey) {
		b, err := sonnet.Marshal(results)
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		_, err = os.Stdout.Write(append(b, '\n'))
		return err
	}

	render(results)
	return nil
}

func runSuite(s suite, repeats int) (result, error) {
	log.Printf("Running '%s' suite", s.Name)

	rs := sjs.New(sjs.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	counter := new(int64)
	g := makeGraph(rs, s, counter)
	defer g.dispose()

	// warm up
	g.run(s)

	best := result{Suite: s, Dynamic: g.dynamicCount(), Duration: time.Hour}
	for i := 0; i < repeats; i++ {
		log.Printf("Running '%s' suite, iteration %d/%d %d%%", s.Name, i+1, repeats, (i+1)*100/repeats)
		*counter = 0
		before := rs.Stats().Recomputations
		start := time.Now()
		sum := g.run(s)
		duration := time.Since(start)

		if duration < best.Duration {
			best.Duration = duration
			best.Sum = sum
			best.Count = *counter
			best.Recomputations = rs.Stats().Recomputations - before
		}
	}
	best.UpdateRate = float64(best.Count) / (float64(best.Duration) / float64(time.Millisecond))

	if s.ExpectedSum != nil && best.Sum != *s.ExpectedSum {
		return best, fmt.Errorf("suite %q: sum %d, expected %d", s.Name, best.Sum, *s.ExpectedSum)
	}
	if s.ExpectedCount != nil && best.Count != *s.ExpectedCount {
		return best, fmt.Errorf("suite %q: count %d, expected %d", s.Name, best.Count, *s.ExpectedCount)
	}
	return best, nil
}

func render(results []result) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"framework", "size", "nSources", "read%", "static%",
		"nTimes", "test", "time", "updateRate", "title",
	})

	for _, r := range results {
		s := r.Suite
		table.Append([]string{
			"sjs",
			fmt.Sprintf("%dx%d", s.Width, s.Layers),
			fmt.Sprint(s.Sources),
			fmt.Sprint(s.ReadFraction),
			fmt.Sprint(s.StaticFraction),
			humanize.Comma(int64(s.Iterations)),
			s.Name,
			fmt.Sprint(r.Duration),
			humanize.Comma(int64(r.UpdateRate)),
			s.title(),
		})
	}
	table.Render()
}
