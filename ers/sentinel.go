package ers

// Broad classes. Every error produced by the lazy package is one of
// these, possibly joined with a more specific sentinel below.
const (
	// ErrInvalidArgument is returned when a constructor or operation
	// receives an argument outside of its domain.
	ErrInvalidArgument Error = Error("invalid argument")

	// ErrOutOfBounds is returned when an operation would read or
	// write outside of the valid range of a sequence or container.
	ErrOutOfBounds Error = Error("out of bounds")

	// ErrInvariantViolation is the class of panics raised when a
	// position is used in a way that its contract forbids.
	ErrInvariantViolation Error = Error("invariant violation")

	// ErrRecoveredPanic is attached to errors produced from a
	// recovered panic.
	ErrRecoveredPanic Error = Error("recovered panic")
)

const (
	// ErrZeroStep rejects arithmetic progressions that would never
	// terminate.
	ErrZeroStep Error = Error("step must not be zero")

	// ErrNegativeOffset rejects backwards movement of forward-only
	// positions.
	ErrNegativeOffset Error = Error("offset of a forward-only position must not be negative")

	// ErrIncompatiblePositions is returned (or raised) when two
	// positions built from different configurations are compared.
	ErrIncompatiblePositions Error = Error("incompatible positions")

	// ErrExhausted is returned when a caller reads the value at the
	// end of a sequence.
	ErrExhausted Error = Error("dereference of exhausted sequence")

	// ErrUnbounded is returned when materializing a sequence that
	// never ends.
	ErrUnbounded Error = Error("cannot materialize an unbounded sequence")

	// ErrUnsupportedStrategy is returned when a parallel strategy is
	// requested for positions that cannot be split.
	ErrUnsupportedStrategy Error = Error("unsupported execution strategy")

	// ErrUnsupportedContainer is returned when the destination
	// container cannot be used with the requested strategy.
	ErrUnsupportedContainer Error = Error("unsupported container")
)
