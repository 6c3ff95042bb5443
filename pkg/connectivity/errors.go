package connectivity

import "errors"

var (
	// ErrInvalidValue reports a field assignment or construction input that
	// failed validation, e.g. a network id outside the legal range or an
	// unknown building identifier.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnsupportedAlgorithm reports a mutation or crossover selector that
	// has no implementation for connectivity vectors.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)
