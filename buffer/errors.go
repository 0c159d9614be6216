package buffer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrRange reports an out-of-bounds index, an invalid span, or a request
	// that does not fit in the buffer capacity.
	ErrRange = errors.New("buffer: out of range")

	// ErrAllocation reports a capacity at or above MaxCapacity, or storage
	// that could not be acquired.
	ErrAllocation = errors.New("buffer: allocation failed")

	// ErrLengthOverflow reports text whose length reaches MaxCapacity.
	// It matches ErrAllocation under errors.Is.
	ErrLengthOverflow = errors.WithMessage(ErrAllocation, "text length overflow")
)

func rangeErrorf(op string, format string, args ...any) error {
	return errors.Wrapf(ErrRange, "%s: %s", op, fmt.Sprintf(format, args...))
}

func spanError(op string, start, end, limit int) error {
	return rangeErrorf(op, "span [%d, %d) outside [0, %d]", start, end, limit)
}

func fitError(op string, need, avail int) error {
	return rangeErrorf(op, "%d bytes do not fit in %d available", need, avail)
}

func validSpan(start, end, limit int) bool {
	return start >= 0 && start <= end && end <= limit
}
