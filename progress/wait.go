package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/vecsdk"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ErrTimeout is matched by errors.Is for any wait that ran out of budget.
var ErrTimeout = errors.New("progress: wait timed out")

// TimeoutError is returned by Wait when the operation did not finish within
// the monitor's CheckTimeout. The operation itself may still be running.
type TimeoutError struct {
	Timeout time.Duration
	// Last is the most recent progress reported before the budget ran out.
	Last Progress
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("progress: wait timed out after %s at %s", e.Timeout, e.Last)
}

// Is makes errors.Is(err, ErrTimeout) succeed.
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// CheckFunc queries the current progress of an operation.
type CheckFunc func(ctx context.Context) (Progress, error)

type waitOptions struct {
	logger    *vecsdk.Logger
	metrics   vecsdk.MetricsCollector
	operation string
}

// WaitOption configures Wait and WaitAll.
type WaitOption func(*waitOptions)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *vecsdk.Logger) WaitOption {
	return func(o *waitOptions) {
		if l == nil {
			l = vecsdk.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. Pass nil to disable metrics collection.
func WithMetricsCollector(mc vecsdk.MetricsCollector) WaitOption {
	return func(o *waitOptions) {
		if mc == nil {
			mc = vecsdk.NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithOperation names the awaited operation in log records.
func WithOperation(name string) WaitOption {
	return func(o *waitOptions) {
		o.operation = name
	}
}

// Wait polls check until the reported progress is done, check fails, ctx is
// canceled, or m's budget runs out.
//
// The first check runs immediately and later checks are spaced by
// m.CheckInterval. m.DoProgress is called after every successful check and
// before Done is evaluated, so a callback may adjust the progress it is
// given. A CheckTimeout of 0 returns nil without calling check. A nil m uses
// the NewMonitor defaults.
//
// The callback runs on the calling goroutine and must not call Wait
// recursively.
func Wait(ctx context.Context, m *Monitor, check CheckFunc, opts ...WaitOption) error {
	if m == nil {
		m = NewMonitor()
	}
	if m.CheckTimeout() == 0 {
		return nil
	}

	o := waitOptions{
		logger:  vecsdk.NoopLogger(),
		metrics: vecsdk.NoopMetricsCollector{},
	}
	for _, fn := range opts {
		fn(&o)
	}

	log := o.logger.WithInterval(m.Interval())
	if o.operation != "" {
		log = log.WithOperation(o.operation)
	}

	var (
		start    = time.Now()
		deadline time.Time
		waitCtx  = ctx
	)
	if !m.IsForever() {
		log = log.WithTimeout(m.Timeout())
		deadline = start.Add(m.Timeout())
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithDeadline(ctx, deadline)
		defer cancel()
	}

	var (
		limiter = rate.NewLimiter(rate.Every(m.Interval()), 1)
		last    Progress
		polls   int
	)

	finish := func(err error) error {
		elapsed := time.Since(start)
		o.metrics.RecordWait(elapsed, polls, err)
		if errors.Is(err, ErrTimeout) {
			log.LogTimeout(ctx, elapsed, polls, last.Finished, last.Total)
		} else {
			log.LogWait(ctx, elapsed, polls, err)
		}
		return err
	}

	timedOut := func() error {
		return &TimeoutError{Timeout: m.Timeout(), Last: last}
	}

	for {
		// When the next slot lies beyond the deadline, the last check runs
		// at the deadline instead, under the caller's context.
		r := limiter.Reserve()
		delay, final := r.Delay(), false
		if !deadline.IsZero() {
			if left := time.Until(deadline); delay >= left {
				delay, final = max(left, 0), true
			}
		}
		if err := sleep(ctx, delay); err != nil {
			return finish(err)
		}

		checkCtx := waitCtx
		if final {
			checkCtx = ctx
		}

		pollStart := time.Now()
		p, err := check(checkCtx)
		polls++
		o.metrics.RecordPoll(time.Since(pollStart), err)
		log.LogPoll(ctx, p.Finished, p.Total, err)

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return finish(ctxErr)
			}
			if !final && waitCtx.Err() != nil {
				return finish(timedOut())
			}
			return finish(fmt.Errorf("progress: status check: %w", err))
		}

		m.DoProgress(&p)
		last = p
		if p.Done() {
			return finish(nil)
		}
		if final || waitCtx.Err() != nil {
			return finish(timedOut())
		}
	}
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// WaitAll waits for several operations concurrently using the same monitor
// settings. Callback invocations are serialized. The first failure cancels
// the remaining waits and is returned.
func WaitAll(ctx context.Context, m *Monitor, checks []CheckFunc, opts ...WaitOption) error {
	if m == nil {
		m = NewMonitor()
	}
	shared := m.serialized()

	g, gctx := errgroup.WithContext(ctx)
	for _, check := range checks {
		check := check
		g.Go(func() error {
			return Wait(gctx, shared, check, opts...)
		})
	}
	return g.Wait()
}

// serialized returns a copy of m whose callback holds a lock while it runs.
func (m *Monitor) serialized() *Monitor {
	c := *m
	if cb := m.callback; cb != nil {
		var mu sync.Mutex
		c.callback = func(p *Progress) {
			mu.Lock()
			defer mu.Unlock()
			cb(p)
		}
	}
	return &c
}
