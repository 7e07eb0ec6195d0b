package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/term"

	"gridmesh/pkg/cfg"
	"gridmesh/pkg/convert"
	"gridmesh/pkg/logger"
	"gridmesh/pkg/rows"
)

// countFlag is a flag that counts how many times it is given, so -v -v
// means verbosity 2.
type countFlag int

func (c *countFlag) String() string   { return strconv.Itoa(int(*c)) }
func (c *countFlag) IsBoolFlag() bool { return true }
func (c *countFlag) Set(s string) error {
	if s == "true" {
		*c++
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*c = countFlag(n)
	return nil
}

var (
	defaults = convert.DefaultOptions()

	source      = flag.String("in", defaults.In, "Directory of subdirectories of .txt exports, or a single .txt file")
	destination = flag.String("out", defaults.Out, "Output directory")
	algo        = flag.String("algo", "auto", "Row orientation: auto, none, direct, rot30, rot45 or rot60")
	configPath  = flag.String("config", "", "Tuning JSON file")
	blind       = flag.Bool("blind", false, "Triangulate as a complete lattice when all rows have the same length")
	withPNG     = flag.Bool("png", false, "Write before/after PNG wireframes")
	withSVG     = flag.Bool("svg", false, "Write before/after SVG wireframes")
	withKeys    = flag.Bool("keys", false, "Write a chart of the projection keys")
	workers     = flag.Int("workers", 1, "Number of files converted at once")
	logPath     = flag.String("log", "", "Log file (default logs/<date>-gridmesh.log)")
	verbose     countFlag
)

func init() {
	flag.Var(&verbose, "v", "Verbosity; repeat for more (-v warnings, -v -v info, -v -v -v debug)")
}

// parseVerbosity reads a LOG_VERBOSITY value, defaulting to info when empty.
func parseVerbosity(s string) (logger.Verbosity, error) {
	if s == "" {
		return logger.Info, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("LOG_VERBOSITY: %w", err)
	}
	if n < int(logger.Normal) || n > int(logger.Debug) {
		return 0, fmt.Errorf("LOG_VERBOSITY: %d out of range [%d, %d]", n, logger.Normal, logger.Debug)
	}
	return logger.Verbosity(n), nil
}

func main() {
	flag.Parse()

	orientation, err := rows.ParseOrientation(*algo)
	if err != nil {
		log.Fatalf("invalid -algo: %s", err)
	}

	tuning := cfg.Default()
	if *configPath != "" {
		tuning, err = cfg.Load(*configPath)
		if err != nil {
			log.Fatalf("config error: %s", err)
		}
	}

	path := *logPath
	if path == "" {
		path = filepath.Join("logs", time.Now().Format("20060102")+"-gridmesh.log")
	}
	l, err := logger.Open(os.Stderr, path)
	if err != nil {
		log.Fatalf("unable to open log file: %s", err)
	}
	defer l.Close()
	l.PrintVerbosity = logger.Verbosity(verbose)
	l.LogVerbosity, err = parseVerbosity(os.Getenv("LOG_VERBOSITY"))
	if err != nil {
		log.Fatalf("%s", err)
	}
	rows.SetLogger(l.Debugf)

	opts := convert.Options{
		In:          *source,
		Out:         *destination,
		Orientation: orientation,
		Tuning:      tuning,
		Blind:       *blind,
		PNG:         *withPNG,
		SVG:         *withSVG,
		Keys:        *withKeys,
		Workers:     *workers,
		Log:         l,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	reports, err := convert.Batch(ctx, opts)
	if err != nil {
		l.Errorf("ERROR: %s", err)
		l.Close()
		os.Exit(1)
	}

	failed := convert.Failed(reports)
	summary(reports, failed, time.Since(start))
	if failed > 0 {
		l.Close()
		os.Exit(1)
	}
}

// summary prints one line per run to stderr, colored when stderr is a
// terminal.
func summary(reports []convert.Report, failed int, elapsed time.Duration) {
	green, red, reset := "\x1b[92m", "\x1b[91m", "\x1b[39m"
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		green, red, reset = "", "", ""
	}

	triangles := 0
	for _, r := range reports {
		triangles += r.Triangles
	}
	fmt.Fprintf(os.Stderr, "Converted %s%d%s files (%s%d%s failed), %d triangles in %.2fs\n",
		green, len(reports)-failed, reset, red, failed, reset, triangles, elapsed.Seconds())
}
