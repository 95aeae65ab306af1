package toolbelt

import (
	"github.com/go-logr/logr"
)

// Option configures Clone, OmitShallowProps and TryCatch.
type Option func(*options)

type options struct {
	log      logr.Logger
	logSet   bool
	strategy CopyStrategy
}

// WithLogr sets the logger failures are reported to. Without it TryCatch
// logs to stderr through pkg/log.
var WithLogr = func(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
		o.logSet = true
	}
}

// WithCopyStrategy selects how Clone copies values. Default is
// CopyStructural.
var WithCopyStrategy = func(s CopyStrategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		strategy: CopyStructural,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
