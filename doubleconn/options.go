package doubleconn

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/setnicka/top-trees/toptree"
)

const tracerName = "github.com/setnicka/top-trees/doubleconn"

// Option configures a Graph.
type Option func(*options)

type options struct {
	tracer   trace.TracerProvider
	logger   *slog.Logger
	treeOpts []toptree.Option
}

func defaultOptions() options {
	return options{
		tracer: otel.GetTracerProvider(),
		logger: slog.Default(),
	}
}

// WithTracerProvider sets the provider of the tracer used for spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracer = tp
		}
	}
}

// WithLogger sets the logger of the graph and of its spanning forest.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTreeOptions forwards options to the underlying toptree.Tree, e.g.
// toptree.WithMetrics.
func WithTreeOptions(opts ...toptree.Option) Option {
	return func(o *options) { o.treeOpts = append(o.treeOpts, opts...) }
}
