package progress

import (
	"math"
	"time"
)

const (
	// DefaultCheckTimeout is the default wait budget in seconds.
	DefaultCheckTimeout uint32 = 60
	// DefaultCheckInterval is the default poll spacing in milliseconds.
	DefaultCheckInterval uint32 = 500

	forever = math.MaxUint32
)

// CallbackFunc receives progress notifications. It may modify p.
type CallbackFunc func(p *Progress)

// Monitor configures how long and how often a caller polls an operation,
// and whom to notify on each poll.
//
// A CheckTimeout of 0 means "do not wait" and math.MaxUint32 means "wait
// until done".
type Monitor struct {
	checkTimeout  uint32
	checkInterval uint32
	callback      CallbackFunc
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithCheckTimeout sets the wait budget in seconds.
func WithCheckTimeout(seconds uint32) Option {
	return func(m *Monitor) {
		m.checkTimeout = seconds
	}
}

// WithCheckInterval sets the poll spacing in milliseconds.
func WithCheckInterval(ms uint32) Option {
	return func(m *Monitor) {
		m.checkInterval = ms
	}
}

// WithCallback registers the progress callback.
func WithCallback(fn CallbackFunc) Option {
	return func(m *Monitor) {
		m.callback = fn
	}
}

// NewMonitor creates a Monitor with a 60 second budget and a 500 ms interval
// unless overridden by opts.
func NewMonitor(opts ...Option) *Monitor {
	m := &Monitor{
		checkTimeout:  DefaultCheckTimeout,
		checkInterval: DefaultCheckInterval,
	}
	for _, fn := range opts {
		fn(m)
	}
	return m
}

// NoWait returns a Monitor that returns immediately without waiting.
func NoWait() *Monitor {
	return NewMonitor(WithCheckTimeout(0))
}

// Forever returns a Monitor that waits until the operation is done.
func Forever() *Monitor {
	return NewMonitor(WithCheckTimeout(forever))
}

// CheckTimeout returns the wait budget in seconds.
func (m *Monitor) CheckTimeout() uint32 { return m.checkTimeout }

// CheckInterval returns the poll spacing in milliseconds.
func (m *Monitor) CheckInterval() uint32 { return m.checkInterval }

// SetCheckInterval sets the poll spacing in milliseconds.
func (m *Monitor) SetCheckInterval(ms uint32) { m.checkInterval = ms }

// SetCallbackFunc replaces the progress callback. nil removes it.
func (m *Monitor) SetCallbackFunc(fn CallbackFunc) { m.callback = fn }

// DoProgress invokes the callback with p. It is a no-op without a callback.
func (m *Monitor) DoProgress(p *Progress) {
	if m.callback != nil {
		m.callback(p)
	}
}

// Timeout returns the wait budget as a duration.
func (m *Monitor) Timeout() time.Duration {
	return time.Duration(m.checkTimeout) * time.Second
}

// Interval returns the poll spacing as a duration.
func (m *Monitor) Interval() time.Duration {
	return time.Duration(m.checkInterval) * time.Millisecond
}

// IsForever reports whether the monitor waits without a deadline.
func (m *Monitor) IsForever() bool { return m.checkTimeout == forever }
