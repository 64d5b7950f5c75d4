package floateq

import "github.com/pkg/errors"

var (
	// ErrNoTolerance is returned when a comparison is given no checks.
	ErrNoTolerance = errors.New("floateq: at least one tolerance is required")

	// ErrUnsupportedType is returned when the compared values do not implement the method a check needs.
	ErrUnsupportedType = errors.New("floateq: unsupported type")

	// ErrEpsilonType is returned when a check's epsilon cannot be used with the compared values.
	ErrEpsilonType = errors.New("floateq: invalid epsilon")
)
