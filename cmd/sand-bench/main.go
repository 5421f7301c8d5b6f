package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/juju/errors"
	flag "github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"mad-sand/internal/bench"
	"mad-sand/internal/sims/sand"
)

var logger = loggo.GetLogger("madsand.cmd")

var (
	ticks   = flag.Int("ticks", 500, "ticks to simulate per job")
	size    = flag.Int("n", 64, "grid side length")
	workers = flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	scenes  = flag.String("scenes", strings.Join(sand.Scenes(), ","), "comma separated scenes to run")
	seeds   = flag.String("seeds", "1,2,3", "comma separated seeds")
	logSpec = flag.String("log", "<root>=WARNING", "logging configuration")
)

func main() {
	flag.Parse(true)
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sand-bench: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := loggo.ConfigureLoggers(*logSpec); err != nil {
		return errors.Annotatef(err, "bad --log value %q", *logSpec)
	}
	seedList, err := parseSeeds(*seeds)
	if err != nil {
		return errors.Trace(err)
	}
	sceneList := strings.Split(*scenes, ",")
	for _, s := range sceneList {
		if !isScene(s) {
			return errors.NotValidf("scene %q", s)
		}
	}

	jobs := bench.Jobs(sceneList, seedList, *size, *ticks)
	fmt.Printf("Running %d jobs (%d workers, %d ticks, n=%d)\n", len(jobs), *workers, *ticks, *size)
	start := time.Now()
	results, err := bench.Run(context.Background(), jobs, *workers)
	if err != nil {
		return errors.Trace(err)
	}
	logger.Infof("finished in %v", time.Since(start))
	return bench.WriteReport(os.Stdout, results)
}

func parseSeeds(s string) ([]int64, error) {
	var out []int64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.NotValidf("seed %q", field)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.NotValidf("empty seed list")
	}
	return out, nil
}

func isScene(name string) bool {
	for _, s := range sand.Scenes() {
		if s == name {
			return true
		}
	}
	return false
}
