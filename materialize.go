package lazy

import (
	"cmp"
	"strings"

	"github.com/tychoish/lazy/dt"
	"github.com/tychoish/lazy/ers"
	"github.com/tychoish/lazy/internal"
)

// To materializes the view into a new container produced by the
// constructor. If the container implements dt.Reserver, the length
// of the view is reserved before any value is pushed.
//
// With the Parallel strategy the positions must be RandomAccess and
// the container must implement dt.Resizer: the container is resized
// to the length of the view and every worker writes its own indexes.
// Other combinations fail with ers.ErrUnsupportedStrategy or
// ers.ErrUnsupportedContainer.
//
// To either returns a fully populated container or an error, never
// a partial container.
func To[T any, P Forward[P, T], C dt.Inserter[T]](
	v View[T, P],
	newContainer func() C,
	opts ...OptionProvider[*MaterializeConf],
) (C, error) {
	var zero C

	conf, err := resolveConf(opts)
	if err != nil {
		return zero, err
	}

	n, known, err := v.size()
	if err != nil {
		return zero, err
	}

	out := newContainer()
	err = ers.WithRecoverCall(func() error {
		switch conf.Strategy {
		case Parallel:
			return copyParallel(v, out, n, conf)
		default:
			if !known {
				if _, ok := any(out).(dt.Reserver); ok {
					n = v.count()
				}
			}
			conf.log("to", n)
			return copySequential(v, out, n)
		}
	})
	if err != nil {
		return zero, err
	}
	return out, nil
}

func copySequential[T any, P Forward[P, T], C dt.Inserter[T]](v View[T, P], out C, n int) error {
	if r, ok := any(out).(dt.Reserver); ok {
		r.Reserve(n)
	}
	for pos := v.begin; !pos.Equal(v.end); pos = pos.Next() {
		out.Push(pos.Current())
	}
	return nil
}

func copyParallel[T any, P Forward[P, T], C dt.Inserter[T]](v View[T, P], out C, n int, conf *MaterializeConf) error {
	ra, err := randomAccess(v)
	if err != nil {
		return err
	}
	rs, ok := any(out).(dt.Resizer[T])
	if !ok {
		return ers.Wrapf(ers.ErrUnsupportedContainer, "%T cannot be resized for parallel materialization", out)
	}

	conf.log("to", n)
	rs.Resize(n)
	return fillParallel(ra, n, conf, rs.Set)
}

// ToSlice materializes the view into a new slice.
func (v View[T, P]) ToSlice(opts ...OptionProvider[*MaterializeConf]) ([]T, error) {
	out, err := To(v, dt.MakeSlice[T], opts...)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// CopyTo copies the values of the view into the destination, which
// is usually the whole of a fixed size array, and returns the number
// of values copied. When the view has more values than fit in the
// destination CopyTo returns ers.ErrOutOfBounds, and the destination
// is not modified.
func (v View[T, P]) CopyTo(dst []T, opts ...OptionProvider[*MaterializeConf]) (int, error) {
	conf, err := resolveConf(opts)
	if err != nil {
		return 0, err
	}

	n, known, err := v.size()
	if err != nil {
		return 0, err
	}

	var ra RandomAccess[P, T]
	if conf.Strategy == Parallel {
		if ra, err = randomAccess(v); err != nil {
			return 0, err
		}
	}

	if !known {
		n = v.count()
	}
	if n > len(dst) {
		return 0, ers.Wrapf(ers.ErrOutOfBounds, "view has %d values, destination holds %d", n, len(dst))
	}

	conf.log("copy", n)
	err = ers.WithRecoverCall(func() error {
		if ra != nil {
			return fillParallel(ra, n, conf, dt.Slice[T](dst).Set)
		}

		idx := 0
		for pos := v.begin; !pos.Equal(v.end); pos = pos.Next() {
			if idx >= len(dst) {
				return ers.Wrapf(ers.ErrOutOfBounds, "view produced more than %d values", n)
			}
			dst[idx] = pos.Current()
			idx++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ToArray materializes the view into a new slice of exactly size
// values. Slots after the last value of the view hold zero values.
// Views with more than size values return ers.ErrOutOfBounds.
func (v View[T, P]) ToArray(size int, opts ...OptionProvider[*MaterializeConf]) ([]T, error) {
	if size < 0 {
		return nil, ers.Wrapf(ers.ErrInvalidArgument, "array of size %d", size)
	}

	out := make([]T, size)
	if _, err := v.CopyTo(out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ToString renders every value with the fmt package's default
// format, separated by the delimiter. There is no delimiter after
// the last value, and an empty view renders as the empty string.
func (v View[T, P]) ToString(delim string, opts ...OptionProvider[*MaterializeConf]) (string, error) {
	conf, err := resolveConf(opts)
	if err != nil {
		return "", err
	}

	n, _, err := v.size()
	if err != nil {
		return "", err
	}

	if conf.Strategy != Parallel {
		conf.log("string", n)
		var buf strings.Builder
		if err := ers.WithRecoverCall(func() error { render(&buf, v.begin, v.end, delim); return nil }); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	ra, err := randomAccess(v)
	if err != nil {
		return "", err
	}

	conf.log("string", n)
	parts := make([]string, len(internal.Chunks(n, conf.NumWorkers)))
	err = forChunks(n, conf, func(idx int, chunk internal.Chunk) error {
		begin, err := ra.Offset(chunk.Low)
		if err != nil {
			return err
		}
		end, err := ra.Offset(chunk.High)
		if err != nil {
			return err
		}

		var buf strings.Builder
		render(&buf, begin, end, delim)
		parts[idx] = buf.String()
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.Join(parts, delim), nil
}

// ToMap materializes the view into a hash map, using the key function
// to derive the key of each value. When two values have the same key
// the later value wins.
func ToMap[K comparable, T any, P Forward[P, T]](v View[T, P], key func(T) K) (dt.Map[K, T], error) {
	n, known, err := v.size()
	if err != nil {
		return nil, err
	}
	if !known {
		n = 0
	}

	out := make(dt.Map[K, T], n)
	if err := ers.WithRecoverCall(func() error {
		for pos := v.begin; !pos.Equal(v.end); pos = pos.Next() {
			value := pos.Current()
			out.Store(key(value), value)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// ToOrderedMap materializes the view into a map ordered by its keys,
// using the key function to derive the key of each value. When two
// values have the same key the later value wins.
func ToOrderedMap[K cmp.Ordered, T any, P Forward[P, T]](v View[T, P], key func(T) K) (*dt.OrderedMap[K, T], error) {
	return ToOrderedMapFunc(v, key, cmp.Compare[K])
}

// ToOrderedMapFunc is ToOrderedMap with a custom key ordering.
func ToOrderedMapFunc[K any, T any, P Forward[P, T]](v View[T, P], key func(T) K, cf func(a, b K) int) (*dt.OrderedMap[K, T], error) {
	if cf == nil || key == nil {
		return nil, ers.Wrap(ers.ErrInvalidArgument, "ordered map requires key and comparison functions")
	}

	n, known, err := v.size()
	if err != nil {
		return nil, err
	}

	out := dt.NewOrderedMapFunc[K, T](cf)
	if known {
		out.Reserve(n)
	}
	if err := ers.WithRecoverCall(func() error {
		for pos := v.begin; !pos.Equal(v.end); pos = pos.Next() {
			value := pos.Current()
			out.Store(key(value), value)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}
