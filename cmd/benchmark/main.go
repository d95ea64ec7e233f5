package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/delaneyj/tickparty/sjs"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sugawarayuuta/sonnet"
	"github.com/urfave/cli/v3"
)

const (
	widthsKey  = "widths"
	heightsKey = "heights"
	itersKey   = "iters"
	profileKey = "profile"
	jsonKey    = "json"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Propagate a write through w chains of h computations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  widthsKey,
				Usage: "Comma separated chain counts",
				Value: "1,10,100,1000",
			},
			&cli.StringFlag{
				Name:  heightsKey,
				Usage: "Comma separated chain lengths",
				Value: "1,10,100,1000",
			},
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Writes per graph",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
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
	Name           string        `json:"name"`
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Avg            time.Duration `json:"avg"`
	Min            time.Duration `json:"min"`
	P75            time.Duration `json:"p75"`
	P99            time.Duration `json:"p99"`
	Max            time.Duration `json:"max"`
	Recomputations uint64        `json:"recomputations"`
}

func run(ctx context.Context, cmd *cli.Command) error {
	ww, err := parseSizes(cmd.String(widthsKey))
	if err != nil {
		return fmt.Errorf("--%s: %w", widthsKey, err)
	}
	hh, err := parseSizes(cmd.String(heightsKey))
	if err != nil {
		return fmt.Errorf("--%s: %w", heightsKey, err)
	}
	iters := int(cmd.Uint(itersKey))

	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkPropagate(ww[:1], hh[:1], iters)

	results := benchmarkPropagate(ww, hh, iters)
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

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("size %d must be positive", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func addOne(rs *sjs.Runtime, prev sjs.Accessor[int]) sjs.Accessor[int] {
	return sjs.Computation(rs, func(int) int {
		return prev() + 1
	})
}

func benchmarkPropagate(ww, hh []int, iters int) []result {
	var results []result
	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := sjs.New(sjs.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
			src := sjs.Data(rs, 1)
			dispose := sjs.Root(rs, func(dispose func()) func() {
				for i := 0; i < w; i++ {
					last := sjs.Accessor[int](src.Get)
					for j := 0; j < h; j++ {
						last = addOne(rs, last)
					}

					sjs.Effect(rs, func(struct{}) struct{} {
						last()
						return struct{}{}
					})
				}
				return dispose
			})

			before := rs.Stats().Recomputations
			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Get() + 1)
				tach.AddTime(time.Since(start))
			}
			recomputations := rs.Stats().Recomputations - before
			dispose()

			calc := tach.Calc()
			results = append(results, result{
				Name:           fmt.Sprintf("propagate: %d * %d", w, h),
				Width:          w,
				Height:         h,
				Avg:            calc.Time.Avg,
				Min:            calc.Time.Min,
				P75:            calc.Time.P75,
				P99:            calc.Time.P99,
				Max:            calc.Time.Max,
				Recomputations: recomputations,
			})
		}
	}
	return results
}

func render(results []result) {
	tbl := table.NewWriter()
	tbl.SetTitle("S Signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "recomputations"})

	for _, r := range results {
		tbl.AppendRow(table.Row{r.Name, r.Avg, r.Min, r.P75, r.P99, r.Max, r.Recomputations})
	}
	tbl.Render()
}
