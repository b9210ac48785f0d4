package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"labyrinth"
)

func main() {
	app := makeapp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		failWith(os.Stderr, err)
		os.Exit(1)
	}
}

func failWith(w io.Writer, err error) {
	fmt.Fprint(w, chalk.Red)
	fmt.Fprint(w, err.Error(), chalk.Reset, "\n")
}

func makeapp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "labyrinth"
	app.Usage = "shortest path between two points around line-segment walls"
	app.ArgsUsage = "WALLFILE X1 Y1 X2 Y2"
	app.Description = "Prints the path in the wall file format, one leg per line, or nothing if there is no path.\n" +
		"   Put -- before the arguments when a coordinate is negative."
	app.Writer = stdout
	app.ErrWriter = stderr
	app.HideVersion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "strategy", Value: labyrinth.FIFO.String(), Usage: "queue order: fifo or best-first"},
		cli.BoolFlag{Name: "geojson", Usage: "print walls and route as a GeoJSON FeatureCollection"},
		cli.DurationFlag{Name: "timeout", Usage: "give up after this long (0 waits forever)"},
		cli.BoolFlag{Name: "verbose", Usage: "log progress to stderr"},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 5 {
			return errors.Errorf("Args expected: %s", app.ArgsUsage)
		}

		strategy, err := labyrinth.ParseStrategy(c.String("strategy"))
		if err != nil {
			return err
		}

		args := c.Args()
		from, err := parsePoint(args.Get(1), args.Get(2))
		if err != nil {
			return err
		}
		to, err := parsePoint(args.Get(3), args.Get(4))
		if err != nil {
			return err
		}

		logger := log.New(io.Discard, "", 0)
		if c.Bool("verbose") {
			logger = log.New(stderr, "", log.LstdFlags)
		}

		return run(context.Background(), runConfig{
			wallsFile: args.Get(0),
			from:      from,
			to:        to,
			strategy:  strategy,
			geoJSON:   c.Bool("geojson"),
			timeout:   c.Duration("timeout"),
			logger:    logger,
		}, stdout)
	}

	return app
}

type runConfig struct {
	wallsFile string
	from, to  labyrinth.Point
	strategy  labyrinth.Strategy
	geoJSON   bool
	timeout   time.Duration
	logger    *log.Logger
}

func run(ctx context.Context, cfg runConfig, out io.Writer) error {
	walls, err := labyrinth.LoadWallsAuto(cfg.wallsFile)
	if err != nil {
		return err
	}
	cfg.logger.Printf("📂 Loaded %d walls from %s", len(walls), cfg.wallsFile)

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	planner := labyrinth.NewPlanner(walls,
		labyrinth.WithStrategy(cfg.strategy),
		labyrinth.WithLogger(cfg.logger),
	)
	result, err := planner.Search(ctx, cfg.from, cfg.to)
	if err != nil {
		return err
	}
	cfg.logger.Printf("   Took %s", result.Elapsed)

	if cfg.geoJSON {
		var route []labyrinth.Segment
		if result.Found {
			route = result.Segments
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(labyrinth.RouteGeoJSON(walls, cfg.from, route)), "could not write GeoJSON")
	}

	if !result.Found {
		return nil
	}
	return labyrinth.StoreWalls(out, result.Segments)
}

func parsePoint(x, y string) (labyrinth.Point, error) {
	px, err := parseCoord(x)
	if err != nil {
		return labyrinth.Point{}, err
	}
	py, err := parseCoord(y)
	if err != nil {
		return labyrinth.Point{}, err
	}
	return labyrinth.Point{X: px, Y: py}, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("bad coordinate %q", s)
	}
	return v, nil
}
