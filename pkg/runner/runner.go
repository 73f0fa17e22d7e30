// Package runner executes the probe battery sequentially, records one
// immutable outcome per probe, reports progress to the console, and
// derives the aggregate run summary.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"rtcheck/pkg/probe"
)

// Runner owns the state of one smoke-test run: the probe battery, the
// ordered outcome list, and the attempted/passed counters. It is not
// safe for concurrent use; probes run strictly sequentially and only the
// running goroutine appends results.
type Runner struct {
	baseURL string
	client  *probe.Client
	battery []probe.Probe
	limiter *rate.Limiter
	logger  *logrus.Logger
	out     io.Writer

	clientOpts []probe.Option

	attempted int
	passed    int
	outcomes  []probe.Outcome
}

// Option is a functional option for configuring a Runner.
type Option func(*Runner) error

// WithLogger sets the logger used for diagnostics and export messages.
func WithLogger(l *logrus.Logger) Option {
	return func(r *Runner) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		r.logger = l
		return nil
	}
}

// WithOutput sets the writer receiving the per-probe status lines and
// the summary block.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) error {
		if w == nil {
			return fmt.Errorf("output writer must not be nil")
		}
		r.out = w
		return nil
	}
}

// WithTimeout sets the per-call HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) error {
		r.clientOpts = append(r.clientOpts, probe.WithTimeout(d))
		return nil
	}
}

// WithPacing replaces the limiter spacing consecutive probes.
func WithPacing(l *rate.Limiter) Option {
	return func(r *Runner) error {
		if l == nil {
			return fmt.Errorf("limiter must not be nil")
		}
		r.limiter = l
		return nil
	}
}

// New creates a Runner that executes battery in order against baseURL.
func New(baseURL string, battery []probe.Probe, opts ...Option) (*Runner, error) {
	r := &Runner{
		baseURL: baseURL,
		battery: battery,
		limiter: rate.NewLimiter(rate.Limit(4), 1),
		logger:  logrus.New(),
		out:     os.Stdout,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("runner: %w", err)
		}
	}

	client, err := probe.NewClient(baseURL, r.clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	r.client = client

	return r, nil
}

// Record appends one outcome, bumps the counters, and prints its status
// line. It is the sole place results are captured and must never fail;
// the outcome is stored before any reporting happens.
func (r *Runner) Record(o probe.Outcome) {
	r.outcomes = append(r.outcomes, o)
	r.attempted++
	if o.Success {
		r.passed++
	}
	r.printStatus(o)
}

// RunOne executes a single probe, converting any fault inside it into a
// failing outcome. The boolean return allows callers to short-circuit;
// RunAll ignores it and always continues.
func (r *Runner) RunOne(ctx context.Context, p probe.Probe) (passed bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.Record(probe.Fail(p.Name(), fmt.Sprintf("probe panicked: %v", rec)))
			passed = false
		}
	}()

	o := p.Run(ctx, r.client)
	r.Record(o)
	return o.Success
}

// RunAll executes the battery in order and prints the aggregate summary.
// It returns 0 when every probe passed and 1 otherwise. Cancelling ctx
// stops the run between probes but still yields a clean partial summary,
// reported as a failed run.
func (r *Runner) RunAll(ctx context.Context) int {
	r.printHeader()
	r.preflight(ctx)

	interrupted := false
	for _, p := range r.battery {
		if err := r.limiter.Wait(ctx); err != nil {
			r.logger.Warnf("run interrupted: %v", err)
			interrupted = true
			break
		}
		r.RunOne(ctx, p)
	}

	r.printSummary()

	if interrupted || r.passed != r.attempted {
		return 1
	}
	return 0
}

// Summary derives the read-only aggregate for the run so far.
func (r *Runner) Summary() Summary {
	pct := 0.0
	if r.attempted > 0 {
		pct = float64(r.passed) / float64(r.attempted) * 100
	}

	outcomes := make([]probe.Outcome, len(r.outcomes))
	copy(outcomes, r.outcomes)

	return Summary{
		Timestamp: time.Now(),
		BaseURL:   r.baseURL,
		Totals: Totals{
			TotalTests:  r.attempted,
			PassedTests: r.passed,
			FailedTests: r.attempted - r.passed,
			SuccessRate: pct,
		},
		Results: outcomes,
	}
}
