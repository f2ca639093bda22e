package lazy

import (
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/tychoish/lazy/assert"
	"github.com/tychoish/lazy/assert/check"
	"github.com/tychoish/lazy/ers"
)

func TestOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		conf := &MaterializeConf{}
		assert.NotError(t, conf.Apply())
		check.Equal(t, conf.Strategy, Sequential)
		check.Equal(t, conf.NumWorkers, 1)
		check.True(t, conf.Logger != nil)
	})
	t.Run("SequentialIgnoresWorkers", func(t *testing.T) {
		conf := &MaterializeConf{}
		assert.NotError(t, conf.Apply(WithNumWorkers(8)))
		check.Equal(t, conf.NumWorkers, 1)
	})
	t.Run("Parallel", func(t *testing.T) {
		conf := &MaterializeConf{}
		assert.NotError(t, conf.Apply(WithParallel(3)))
		check.Equal(t, conf.Strategy, Parallel)
		check.Equal(t, conf.NumWorkers, 3)

		conf = &MaterializeConf{}
		assert.NotError(t, conf.Apply(WithParallel(0)))
		check.Equal(t, conf.NumWorkers, runtime.NumCPU())
	})
	t.Run("LastOptionWins", func(t *testing.T) {
		conf := &MaterializeConf{}
		assert.NotError(t, conf.Apply(WithParallel(2), WithSequential()))
		check.Equal(t, conf.Strategy, Sequential)
	})
	t.Run("WithConf", func(t *testing.T) {
		logger := logrus.New()
		conf := &MaterializeConf{}
		assert.NotError(t, conf.Apply(WithConf(&MaterializeConf{Strategy: Parallel, NumWorkers: 5, Logger: logger})))
		check.Equal(t, conf.Strategy, Parallel)
		check.Equal(t, conf.NumWorkers, 5)
		check.True(t, conf.Logger == logrus.FieldLogger(logger))

		check.ErrorIs(t, (&MaterializeConf{}).Apply(WithConf(nil)), ers.ErrInvalidArgument)
	})
	t.Run("Invalid", func(t *testing.T) {
		check.ErrorIs(t, (&MaterializeConf{}).Apply(WithNumWorkers(-1)), ers.ErrInvalidArgument)
		check.ErrorIs(t, (&MaterializeConf{}).Apply(WithParallel(-2)), ers.ErrInvalidArgument)
		check.ErrorIs(t, (&MaterializeConf{}).Apply(WithLogger(nil)), ers.ErrInvalidArgument)

		err := (&MaterializeConf{Strategy: Strategy(42)}).Validate()
		check.ErrorIs(t, err, ers.ErrUnsupportedStrategy)
		check.ErrorIs(t, err, ers.ErrInvalidArgument)
	})
	t.Run("ErrorsAreJoined", func(t *testing.T) {
		err := (&MaterializeConf{}).Apply(WithNumWorkers(-1), nil, WithLogger(nil))
		assert.Error(t, err)
		check.Substring(t, err.Error(), "workers")
		check.Substring(t, err.Error(), "nil logger")

		_, err = RangeTo(3).ToSlice(WithNumWorkers(-1))
		check.ErrorIs(t, err, ers.ErrInvalidArgument)
	})
	t.Run("StrategyString", func(t *testing.T) {
		check.Equal(t, Sequential.String(), "sequential")
		check.Equal(t, Parallel.String(), "parallel")
		check.Equal(t, Strategy(9).String(), "Strategy(9)")
	})
}
