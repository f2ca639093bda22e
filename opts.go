package lazy

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/tychoish/lazy/ers"
)

// Strategy selects how materialization copies values.
type Strategy int

const (
	// Sequential traverses the view once, from begin to end, on the
	// calling goroutine.
	Sequential Strategy = iota
	// Parallel splits a random access view into contiguous chunks,
	// and copies each chunk on its own goroutine. Destination
	// containers must implement dt.Resizer.
	Parallel
)

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// MaterializeConf describes the runtime options for materialization.
// The zero value provides sequential materialization that logs to
// the logrus standard logger.
type MaterializeConf struct {
	// Strategy selects the copy algorithm.
	Strategy Strategy
	// NumWorkers is the number of goroutines used by the Parallel
	// strategy. Values less than 1 are converted to the number of
	// CPUs. Sequential materialization always uses one.
	NumWorkers int
	// Logger receives debug entries describing each
	// materialization.
	Logger logrus.FieldLogger
}

// OptionProvider is a function type for building functional
// arguments.
type OptionProvider[T any] func(T) error

// Validate ensures that the configuration is valid, and fills in
// defaults.
func (o *MaterializeConf) Validate() error {
	switch o.Strategy {
	case Sequential:
		o.NumWorkers = 1
	case Parallel:
		if o.NumWorkers < 1 {
			o.NumWorkers = runtime.NumCPU()
		}
	default:
		return ers.Wrapf(ers.Classify(ers.ErrUnsupportedStrategy, ers.ErrInvalidArgument), "%s", o.Strategy)
	}

	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return nil
}

// Apply calls every provider on the configuration, and then
// validates it.
func (o *MaterializeConf) Apply(opts ...OptionProvider[*MaterializeConf]) error {
	var errs []error
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		errs = append(errs, opt(o))
	}
	if err := ers.Join(errs...); err != nil {
		return err
	}
	return o.Validate()
}

func resolveConf(opts []OptionProvider[*MaterializeConf]) (*MaterializeConf, error) {
	conf := &MaterializeConf{}
	if err := conf.Apply(opts...); err != nil {
		return nil, err
	}
	return conf, nil
}

// WithConf overrides the configuration with the provided one.
func WithConf(conf *MaterializeConf) OptionProvider[*MaterializeConf] {
	return func(o *MaterializeConf) error {
		if conf == nil {
			return ers.Wrap(ers.ErrInvalidArgument, "nil configuration")
		}
		*o = *conf
		return nil
	}
}

// WithSequential selects the sequential strategy.
func WithSequential() OptionProvider[*MaterializeConf] {
	return func(o *MaterializeConf) error { o.Strategy = Sequential; return nil }
}

// WithParallel selects the parallel strategy with the given number of
// workers. Zero uses one worker per CPU.
func WithParallel(workers int) OptionProvider[*MaterializeConf] {
	return func(o *MaterializeConf) error {
		o.Strategy = Parallel
		return WithNumWorkers(workers)(o)
	}
}

// WithNumWorkers sets the number of parallel workers. Negative values
// are an error.
func WithNumWorkers(n int) OptionProvider[*MaterializeConf] {
	return func(o *MaterializeConf) error {
		if n < 0 {
			return ers.Wrapf(ers.ErrInvalidArgument, "%d workers", n)
		}
		o.NumWorkers = n
		return nil
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger logrus.FieldLogger) OptionProvider[*MaterializeConf] {
	return func(o *MaterializeConf) error {
		if logger == nil {
			return ers.Wrap(ers.ErrInvalidArgument, "nil logger")
		}
		o.Logger = logger
		return nil
	}
}

func (o *MaterializeConf) log(op string, size int) {
	o.Logger.WithFields(logrus.Fields{
		"op":       op,
		"strategy": o.Strategy.String(),
		"workers":  o.NumWorkers,
		"size":     size,
	}).Debug("materializing view")
}
