package creational

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Factory.
type Option interface {
	apply(*factoryOptions)
}

// factoryOptions holds factory configuration.
type factoryOptions struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
}

// optionFunc adapts a function to Option.
type optionFunc func(*factoryOptions)

func (f optionFunc) apply(opts *factoryOptions) {
	f(opts)
}

// WithLogger sets the logger used to report lookups and failures.
// A nil logger leaves the default (slog.Default) in place.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(opts *factoryOptions) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

// WithMetrics registers the factory's build and registration counters on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(opts *factoryOptions) {
		opts.registerer = reg
	})
}
