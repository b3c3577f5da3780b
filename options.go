package libemitter

type (
	// Option configures an Emitter.
	Option func(*options)

	options struct {
		logger  Logger
		metrics *Metrics
	}
)

// WithLogger sets the logger used to report registrations and swallowed listener failures.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics makes the emitter record emissions and listener outcomes on m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func newOptions(opts ...Option) options {
	o := options{logger: noopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
