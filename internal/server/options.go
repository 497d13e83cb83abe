package server

import (
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dshills/lspcore/internal/config"
)

type options struct {
	cfg     config.Config
	logger  *slog.Logger
	in      io.Reader
	out     io.Writer
	metrics prometheus.Registerer // nil disables metrics
}

func defaultOptions() *options {
	return &options{
		cfg:    config.Default(),
		logger: slog.Default(),
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// Option configures a Server.
type Option func(*options)

// WithConfig sets the full configuration.
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger sets the logger shared by all components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStreams sets the transport byte channels. The default is stdio.
func WithStreams(in io.Reader, out io.Writer) Option {
	return func(o *options) {
		o.in = in
		o.out = out
	}
}

// WithMetrics registers dispatcher metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.metrics = reg }
}
