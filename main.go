package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"sumry/format"
	"sumry/reader"
	"sumry/render"
	"sumry/summary"
)

func main() {
	app := &cli.App{
		Name:      "sumry",
		Usage:     "Summarize a data file (CSV, Excel, GeoJSON or Shapefile)",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "show detailed information",
			},
			&cli.IntFlag{
				Name:    "sample",
				Aliases: []string{"n"},
				Usage:   "number of sample records to display",
			},
			&cli.BoolFlag{
				Name:    "show-sample",
				Aliases: []string{"s"},
				Usage:   fmt.Sprintf("show sample records (first %d)", summary.DefaultSampleSize),
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if len(path) == 0 {
		return fmt.Errorf("provide the data file as the first argument")
	}

	f, err := format.Detect(path)
	if err != nil {
		return err
	}

	start := time.Now()
	ds, err := reader.Load(path, f)
	if err != nil {
		return err
	}
	if c.Bool("verbose") {
		log.Printf("[reader] %s loaded in %.2fms (%d records)",
			ds.Name, float64(time.Since(start).Nanoseconds())/1e6, len(ds.Records))
	}

	sampleSize := summary.DefaultSampleSize
	if c.IsSet("sample") {
		sampleSize = c.Int("sample")
	}
	rep := summary.Summarize(ds, summary.Options{
		ShowSample: c.Bool("show-sample") || c.IsSet("sample"),
		SampleSize: sampleSize,
		Verbose:    c.Bool("verbose"),
	})
	render.Print(os.Stdout, rep)
	return nil
}
