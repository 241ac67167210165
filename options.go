package libemit

type (
	options struct {
		logger  Logger
		context any
	}

	// Option configures an Emitter or a Grafted value at construction time.
	Option func(*options)
)

// WithLogger sets the logger subscribe, unsubscribe and publish calls report to.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithContext overrides the default receiver handed to handlers through
// Event.Context. Without it the receiver is the owning emitter.
func WithContext(ctx any) Option {
	return func(o *options) {
		o.context = ctx
	}
}

func newOptions(opts []Option) options {
	o := options{logger: noopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = noopLogger{}
	}
	return o
}
