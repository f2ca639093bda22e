package lazy

import (
	"golang.org/x/sync/errgroup"

	"github.com/tychoish/lazy/dt"
	"github.com/tychoish/lazy/ers"
	"github.com/tychoish/lazy/internal"
)

func randomAccess[T any, P Forward[P, T]](v View[T, P]) (RandomAccess[P, T], error) {
	ra, ok := any(v.begin).(RandomAccess[P, T])
	if !ok {
		return nil, ers.Wrapf(ers.ErrUnsupportedStrategy, "positions of type %T are not random access", v.begin)
	}
	return ra, nil
}

// forChunks splits [0, size) into one chunk per worker and runs the
// operation on each chunk concurrently; the operation receives the
// ordinal of the chunk along with its bounds. Errors and panics from
// every chunk are collected.
func forChunks(size int, conf *MaterializeConf, op func(int, internal.Chunk) error) error {
	chunks := internal.Chunks(size, conf.NumWorkers)
	errs := make([]error, len(chunks))

	var wg errgroup.Group
	wg.SetLimit(conf.NumWorkers)
	for idx, chunk := range chunks {
		wg.Go(func() error {
			errs[idx] = ers.WithRecoverCall(func() error { return op(idx, chunk) })
			return errs[idx]
		})
	}

	if err := wg.Wait(); err != nil {
		return ers.Join(errs...)
	}
	return nil
}

// fillParallel writes every value of a random access view to the
// index it occupies in the view.
func fillParallel[T any, P Forward[P, T]](
	ra RandomAccess[P, T],
	size int,
	conf *MaterializeConf,
	set func(int, T),
) error {
	return forChunks(size, conf, func(_ int, chunk internal.Chunk) error {
		pos, err := ra.Offset(chunk.Low)
		if err != nil {
			return err
		}
		for idx := chunk.Low; idx < chunk.High; idx++ {
			set(idx, pos.Current())
			pos = pos.Next()
		}
		return nil
	})
}

// ParallelTo is To with the Parallel strategy, where the capability
// requirements are checked by the compiler: the positions must be
// random access and the container must be resizable.
func ParallelTo[T any, P RandomAccess[P, T], C interface {
	dt.Inserter[T]
	dt.Resizer[T]
}](
	v View[T, P],
	newContainer func() C,
	workers int,
	opts ...OptionProvider[*MaterializeConf],
) (C, error) {
	return To(v, newContainer, append(opts, WithParallel(workers))...)
}
