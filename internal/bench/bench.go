// Package bench runs headless sand worlds in parallel and checks that the
// automaton conserves material.
package bench

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"golang.org/x/sync/errgroup"

	"mad-sand/internal/sims/sand"
)

var logger = loggo.GetLogger("madsand.bench")

// Job describes one headless run.
type Job struct {
	Scene string
	Seed  int64
	Size  int
	Ticks int

	DestroyerIncludesSelf bool
}

func (j Job) String() string {
	return fmt.Sprintf("%s/%d n=%d", j.Scene, j.Seed, j.Size)
}

// Result summarises a finished job.
type Result struct {
	Job     Job
	Elapsed time.Duration

	Falls     int
	Spills    int
	Bodies    int
	Leveled   int
	Abandoned int

	Final sand.TickStats
}

// TicksPerSecond reports the simulation throughput of the run.
func (r Result) TicksPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Job.Ticks) / r.Elapsed.Seconds()
}

// Jobs builds the cross product of scenes and seeds.
func Jobs(scenes []string, seeds []int64, size, ticks int) []Job {
	out := make([]Job, 0, len(scenes)*len(seeds))
	for _, scene := range scenes {
		for _, seed := range seeds {
			out = append(out, Job{Scene: scene, Seed: seed, Size: size, Ticks: ticks})
		}
	}
	return out
}

// Run executes jobs on at most workers goroutines. Results keep the order
// of jobs. The first failing job cancels the rest.
func Run(ctx context.Context, jobs []Job, workers int) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, job := range jobs {
		g.Go(func() error {
			res, err := RunJob(ctx, job)
			if err != nil {
				return errors.Annotatef(err, "job %s", job)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunJob advances one world for job.Ticks ticks. Every tick without
// clones, destroyed or normalized cells must keep the population of each
// material unchanged.
func RunJob(ctx context.Context, job Job) (Result, error) {
	cfg := sand.DefaultConfig()
	if job.Size > 0 {
		cfg.Size = job.Size
	}
	cfg.Scene = job.Scene
	cfg.Seed = job.Seed
	cfg.DestroyerIncludesSelf = job.DestroyerIncludesSelf
	w := sand.NewWithConfig(cfg)
	w.Reset(job.Seed)

	res := Result{Job: job}
	prev := w.LastStats()
	start := time.Now()
	for i := 0; i < job.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, errors.Trace(err)
		}
		w.Step()
		st := w.LastStats()
		if err := checkConserved(prev, st); err != nil {
			return Result{}, errors.Trace(err)
		}
		res.Falls += st.Falls
		res.Spills += st.Spills
		res.Bodies += st.Bodies
		res.Leveled += st.Leveled
		res.Abandoned += st.Abandoned
		prev = st
	}
	res.Elapsed = time.Since(start)
	res.Final = prev
	logger.Debugf("%s: %d ticks in %v", job, job.Ticks, res.Elapsed)
	return res, nil
}

func checkConserved(prev, st sand.TickStats) error {
	if st.Clones > 0 || st.Destroyed > 0 || st.Normalized > 0 {
		return nil
	}
	for _, c := range []sand.CellType{sand.Sand, sand.Rock, sand.Cloner, sand.Destroyer} {
		if prev.Count(c) != st.Count(c) {
			return errors.Errorf("tick %d: %s count changed from %d to %d", st.Tick, c, prev.Count(c), st.Count(c))
		}
	}
	if prev.Water() != st.Water() {
		return errors.Errorf("tick %d: water count changed from %d to %d", st.Tick, prev.Water(), st.Water())
	}
	return nil
}

// WriteReport prints one row per result followed by totals.
func WriteReport(out io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "job\tticks/s\tfalls\tspills\tbodies\tleveled\tabandoned\tsand\twater\trock\t")
	var total Result
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%.0f\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n",
			r.Job, r.TicksPerSecond(), r.Falls, r.Spills, r.Bodies, r.Leveled, r.Abandoned,
			r.Final.Count(sand.Sand), r.Final.Water(), r.Final.Count(sand.Rock))
		total.Job.Ticks += r.Job.Ticks
		total.Elapsed += r.Elapsed
		total.Leveled += r.Leveled
		total.Abandoned += r.Abandoned
	}
	fmt.Fprintf(tw, "total\t%.0f\t\t\t\t%d\t%d\t\t\t\t\n", total.TicksPerSecond(), total.Leveled, total.Abandoned)
	return errors.Trace(tw.Flush())
}
