package labs

import "errors"

var (
	// ErrEmptySequence indicates a sequence with no elements.
	ErrEmptySequence = errors.New("labs: sequence must contain at least one element")
	// ErrInvalidSymbol indicates a sequence element outside {-1, +1}.
	ErrInvalidSymbol = errors.New("labs: sequence elements must be -1 or +1")
	// ErrInvalidLength indicates a requested sequence length below 1.
	ErrInvalidLength = errors.New("labs: sequence length must be positive")
	// ErrInvalidRestarts indicates a non-positive restart count.
	ErrInvalidRestarts = errors.New("labs: restart count must be positive")
	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("labs: random source must not be nil")
)
