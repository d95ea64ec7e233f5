package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/tickparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	sourceCountKey = "count"
	outputKey      = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed multi source On helpers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  sourceCountKey,
				Usage: "Highest number of event sources to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "sjs/on_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for sjs started !")
	defer func() {
		log.Printf("Codegen for sjs finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(sourceCountKey))
	if count < 1 {
		return fmt.Errorf("--%s must be at least 1", sourceCountKey)
	}
	out := cmd.String(outputKey)
	log.Printf("Sources: 1..%d -> %s", count, out)

	contents := templates.OnGen(count)
	if err := os.WriteFile(out, []byte(contents), 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	return nil
}
