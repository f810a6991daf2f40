package toptree

import "log/slog"

// Option configures a Tree via functional arguments.
type Option func(*Options)

// Options holds the tunables of a Tree.
type Options struct {
	// Logger receives debug records about rebalancing and degree capping.
	Logger *slog.Logger

	// Metrics, when non-nil, receives operation counters.
	Metrics *Metrics

	// CheckInvariants runs Check after every mutating operation and panics
	// on the first violation.
	CheckInvariants bool
}

// DefaultOptions returns Options with slog.Default(), no metrics and no
// invariant sweeps.
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithInvariantChecks enables a full Check after each Link and Cut.
func WithInvariantChecks() Option {
	return func(o *Options) { o.CheckInvariants = true }
}
