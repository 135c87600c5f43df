// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/spconv/config"
	"github.com/ik5/spconv/converter"
)

const dirPerm = 0o755

// State is the phase of a Runner.
type State int32

const (
	StateIdle State = iota
	StateEnumerating
	StateConvertingFile
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEnumerating:
		return "enumerating"
	case StateConvertingFile:
		return "converting-file"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Converter is what the Runner drives for every task.
type Converter interface {
	Convert(ctx context.Context, input, output string) (converter.Outcome, error)
}

// Reporter receives progress while a batch runs. Calls are serialized.
type Reporter interface {
	// Progress is called before task index (1-based) of total starts.
	Progress(index, total int, task Task)
	// Copied reports a task that was byte-copied instead of resampled.
	Copied(task Task)
	// Failed reports a task that produced no output.
	Failed(task Task, err error)
}

// Result is the outcome of one task.
type Result struct {
	Task    Task
	Outcome converter.Outcome
	Err     error
}

// Report aggregates the results of a run, in plan order.
type Report struct {
	Results   []Result
	Converted int
	Copied    int
	Failed    int
	Canceled  int
	Elapsed   time.Duration
}

// Succeeded is the number of tasks that produced an output file.
func (r Report) Succeeded() int { return r.Converted + r.Copied }

// Runner executes plans. Per-task failures never stop the batch; they are
// recorded in the Report and passed to the Reporter.
type Runner struct {
	Converter Converter
	Reporter  Reporter
	// Workers bounds how many tasks convert at once; below 2 the batch runs
	// sequentially.
	Workers int
	Logger  *slog.Logger

	state atomic.Int32
	mu    sync.Mutex // serializes Reporter calls
}

func NewRunner(conv Converter, reporter Reporter, workers int, logger *slog.Logger) *Runner {
	return &Runner{
		Converter: conv,
		Reporter:  reporter,
		Workers:   workers,
		Logger:    logger,
	}
}

// State reports the current phase.
func (r *Runner) State() State { return State(r.state.Load()) }

func (r *Runner) setState(s State) { r.state.Store(int32(s)) }

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Run enumerates root and converts every task. The error is only non-nil
// when root itself cannot be planned, in which case nothing is converted.
func (r *Runner) Run(ctx context.Context, root string, cfg config.Config) (Report, error) {
	start := time.Now()
	r.setState(StateEnumerating)

	plan, err := Walk(root, cfg)
	if err != nil {
		r.setState(StateDone)
		return Report{Elapsed: time.Since(start)}, err
	}

	r.logger().Debug("planned",
		slog.String("root", plan.Root),
		slog.String("output_root", plan.OutputRoot),
		slog.Int("tasks", len(plan.Tasks)),
	)

	report := r.RunPlan(ctx, plan)
	report.Elapsed = time.Since(start)

	return report, nil
}

// RunPlan converts the tasks of an existing plan.
func (r *Runner) RunPlan(ctx context.Context, plan *Plan) Report {
	start := time.Now()
	defer r.setState(StateDone)

	r.setState(StateConvertingFile)

	var rootErr error
	if plan.OutputRoot != "" {
		rootErr = os.MkdirAll(plan.OutputRoot, dirPerm)
	}

	total := len(plan.Tasks)
	results := make([]Result, total)
	done := make([]bool, total)

	run := func(i int) {
		task := plan.Tasks[i]
		r.report(func(rep Reporter) { rep.Progress(i+1, total, task) })

		results[i] = r.runTask(ctx, task, rootErr)
		done[i] = true

		switch {
		case results[i].Err != nil:
			r.report(func(rep Reporter) { rep.Failed(task, results[i].Err) })
		case results[i].Outcome == converter.OutcomeCopied:
			r.report(func(rep Reporter) { rep.Copied(task) })
		}
	}

	if r.Workers < 2 {
		for i := range plan.Tasks {
			if ctx.Err() != nil {
				break
			}
			run(i)
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for range min(r.Workers, max(total, 1)) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					run(i)
				}
			}()
		}

	dispatch:
		for i := range plan.Tasks {
			select {
			case <-ctx.Done():
				break dispatch
			case jobs <- i:
			}
		}
		close(jobs)
		wg.Wait()
	}

	report := Report{Results: results}
	for i := range results {
		if !done[i] {
			results[i] = Result{Task: plan.Tasks[i], Outcome: converter.OutcomeFailed, Err: context.Cause(ctx)}
			report.Canceled++
			continue
		}

		switch {
		case results[i].Err != nil:
			report.Failed++
		case results[i].Outcome == converter.OutcomeCopied:
			report.Copied++
		default:
			report.Converted++
		}
	}
	report.Elapsed = time.Since(start)

	return report
}

func (r *Runner) runTask(ctx context.Context, task Task, rootErr error) Result {
	res := Result{Task: task, Outcome: converter.OutcomeFailed}

	if rootErr != nil {
		res.Err = converter.NewError(converter.KindDirectoryCreation, task.Output, rootErr)
		return res
	}

	// concurrent workers may race on shared parents; MkdirAll tolerates it
	if err := os.MkdirAll(filepath.Dir(task.Output), dirPerm); err != nil {
		res.Err = converter.NewError(converter.KindDirectoryCreation, task.Output, err)
		return res
	}

	outcome, err := r.Converter.Convert(ctx, task.Input, task.Output)
	res.Outcome, res.Err = outcome, err

	r.logger().Debug("task finished",
		slog.String("input", task.Input),
		slog.String("output", task.Output),
		slog.String("outcome", outcome.String()),
	)

	return res
}

func (r *Runner) report(fn func(Reporter)) {
	if r.Reporter == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.Reporter)
}
