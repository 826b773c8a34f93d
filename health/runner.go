package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a Run when the Runner has no timeout.
const DefaultTimeout = 10 * time.Second

// Report is the outcome of a Run.
type Report struct {
	Status  Status
	Results []Result // registration order
}

// Err returns nil unless the report is unhealthy.
func (r Report) Err() error {
	if r.Status != StatusUnhealthy {
		return nil
	}
	for _, res := range r.Results {
		if res.Status == StatusUnhealthy {
			return fmt.Errorf("%w: %s: %s", ErrCheckFailed, res.Name, res.Message)
		}
	}
	return ErrCheckFailed
}

// Runner runs a set of checkers.
type Runner struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []Checker
	names    map[string]bool
}

// NewRunner creates a Runner. A non-positive timeout means DefaultTimeout.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{timeout: timeout, names: make(map[string]bool)}
}

// Register adds checkers. Names must be unique.
func (r *Runner) Register(checkers ...Checker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range checkers {
		if c == nil {
			return ErrNilChecker
		}
		if r.names[c.Name()] {
			return fmt.Errorf("%w: %q", ErrDuplicateChecker, c.Name())
		}
		r.names[c.Name()] = true
		r.checkers = append(r.checkers, c)
	}
	return nil
}

// Run executes every checker in parallel. It returns once all checks finish
// or the timeout expires, whichever is first; a check still running then is
// reported unhealthy with the context error and its late result is dropped.
func (r *Runner) Run(ctx context.Context) Report {
	r.mu.RLock()
	checkers := append([]Checker(nil), r.checkers...)
	r.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var mu sync.Mutex
	results := make([]Result, len(checkers))
	done := make([]bool, len(checkers))

	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			res := runCheck(ctx, c)
			mu.Lock()
			results[i], done[i] = res, true
			mu.Unlock()
			return nil
		})
	}

	finished := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-ctx.Done():
	}

	mu.Lock()
	defer mu.Unlock()
	out := make([]Result, len(checkers))
	for i, c := range checkers {
		if done[i] {
			out[i] = results[i]
			continue
		}
		out[i] = Unhealthy("timed out", ctx.Err())
		out[i].Name = c.Name()
	}
	return Report{Status: Overall(out), Results: out}
}

func runCheck(ctx context.Context, c Checker) Result {
	if err := ctx.Err(); err != nil {
		res := Unhealthy("not run", err)
		res.Name = c.Name()
		return res
	}

	start := time.Now()
	res := c.Check(ctx)
	res.Duration = time.Since(start)
	res.Name = c.Name()
	return res
}

// Overall returns the worst status among results, or StatusHealthy when
// there are none.
func Overall(results []Result) Status {
	status := StatusHealthy
	for _, res := range results {
		if res.Status > status {
			status = res.Status
		}
	}
	return status
}
