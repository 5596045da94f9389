// Command beaconzone answers the two distress-beacon questions for a file
// of sensor reports:
//
//	beaconzone count  --input input.txt --row 2000000
//	beaconzone locate --input input.txt --size 4000000 --workers 8
//	beaconzone render --input example.txt --out coverage.png --gap --size 20
//
// An input of "-" reads the reports from stdin.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/beaconzone/coverage"
	"github.com/katalvlaran/beaconzone/parse"
	"github.com/katalvlaran/beaconzone/render"
	"github.com/katalvlaran/beaconzone/search"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "beaconzone"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		log.Fatalf("%s: %v", AppName, err)
	}
}

// newApp builds the command tree writing results to out.
func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "locate the distress beacon no sensor can see",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log progress to stderr"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "count",
				Usage: "count the cells of one row that cannot hold the beacon",
				Flags: []cli.Flag{
					inputFlag(),
					&cli.IntFlag{Name: "row", Value: 2_000_000, Usage: "row to count", Sources: cli.EnvVars("BEACONZONE_ROW")},
					&cli.BoolFlag{Name: "intervals", Usage: "count with interval arithmetic instead of per-cell enumeration"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					pairs, err := load(cmd.String("input"))
					if err != nil {
						return err
					}
					row := cmd.Int("row")
					var n int
					if cmd.Bool("intervals") {
						n = search.CountByIntervals(pairs, row)
					} else {
						n = search.ExactCount(pairs, row)
					}
					_, err = fmt.Fprintln(cmd.Root().Writer, n)
					return err
				},
			},
			{
				Name:  "locate",
				Usage: "find the uncovered cell and its tuning frequency",
				Flags: []cli.Flag{
					inputFlag(),
					sizeFlag(),
					&cli.IntFlag{Name: "workers", Value: runtime.NumCPU(), Usage: "row-scanning goroutines", Sources: cli.EnvVars("BEACONZONE_WORKERS")},
					&cli.StringFlag{Name: "scan", Value: search.ScanCells.String(), Usage: "slow-path strategy: cells or intervals"},
					&cli.BoolFlag{Name: "sweep", Usage: "merge row ranges by sort-and-sweep"},
					&cli.Int64Flag{Name: "multiplier", Value: coverage.DefaultFrequencyMultiplier, Usage: "M in the tuning frequency x*M+y"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					pairs, err := load(cmd.String("input"))
					if err != nil {
						return err
					}
					scan, err := search.ParseScanMode(cmd.String("scan"))
					if err != nil {
						return err
					}
					merge := search.MergeFixpoint
					if cmd.Bool("sweep") {
						merge = search.MergeSweep
					}
					opts := []search.Option{
						search.WithContext(ctx),
						search.WithWorkers(cmd.Int("workers")),
						search.WithScanMode(scan),
						search.WithMerge(merge),
						search.WithFrequencyMultiplier(cmd.Int64("multiplier")),
					}
					if cmd.Root().Bool("verbose") {
						opts = append(opts, search.WithLogger(log.Default()))
					}
					res, err := search.GapSearch(pairs, cmd.Int("size"), opts...)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(cmd.Root().Writer, "%v %d\n", res.Point, res.Frequency)
					return err
				},
			},
			{
				Name:  "render",
				Usage: "draw the coverage map of a small instance",
				Flags: []cli.Flag{
					inputFlag(),
					sizeFlag(),
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "coverage.png", Usage: "image path; extension selects the format"},
					&cli.BoolFlag{Name: "gap", Usage: "locate and highlight the gap within --size"},
					&cli.IntFlag{Name: "max-cells", Value: render.DefaultOptions().MaxCells, Usage: "refuse instances with more diamond cells"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					pairs, err := load(cmd.String("input"))
					if err != nil {
						return err
					}
					opts := render.DefaultOptions()
					opts.MaxCells = cmd.Int("max-cells")
					if cmd.Bool("gap") {
						res, err := search.GapSearch(pairs, cmd.Int("size"), search.WithContext(ctx))
						if err != nil {
							return err
						}
						opts.Gap = &res.Point
					}
					out := cmd.String("out")
					if err := render.Save(pairs, out, opts); err != nil {
						return err
					}
					log.Printf("wrote %s", out)
					return nil
				},
			},
		},
	}
}

// inputFlag is shared by every subcommand; each gets its own instance.
func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Value:   "-",
		Usage:   "sensor report file, - for stdin",
		Sources: cli.EnvVars("BEACONZONE_INPUT"),
	}
}

func sizeFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "size",
		Value:   4_000_000,
		Usage:   "search domain is [0,size]x[0,size]",
		Sources: cli.EnvVars("BEACONZONE_SIZE"),
	}
}

// load parses the sensor reports and logs how many were read.
func load(name string) ([]coverage.Pair, error) {
	pairs, err := parse.File(name)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d sensor reports from %s", len(pairs), name)
	return pairs, nil
}
