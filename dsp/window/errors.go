package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned for non-positive window lengths.
	ErrInvalidLength = errors.New("window: length must be > 0")
	// ErrZeroSum is returned when a window cannot be normalized.
	ErrZeroSum = errors.New("window: coefficients sum to zero")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}
	return nil
}
