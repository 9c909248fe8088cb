package container

import (
	"errors"
	"fmt"
)

var (
	ErrNilContainer     = errors.New("container is nil")
	ErrInvalidData      = errors.New("invalid data")
	ErrInvalidIndex     = errors.New("index out of range")
	ErrInvalidFunction  = errors.New("required function not set")
	ErrEmpty            = errors.New("container is empty")
	ErrInvalidCapacity  = errors.New("invalid capacity")
	ErrInvalidThreshold = errors.New("invalid threshold")
)

// IndexError wraps ErrInvalidIndex with the offending index and length.
func IndexError(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrInvalidIndex, index, length)
}

// ValidateThresholds checks grow and shrink load factors lie in [0,1].
func ValidateThresholds(grow, shrink float64) error {
	if !(grow >= 0 && grow <= 1) {
		return fmt.Errorf("%w: grow %v not in [0,1]", ErrInvalidThreshold, grow)
	}
	if !(shrink >= 0 && shrink <= 1) {
		return fmt.Errorf("%w: shrink %v not in [0,1]", ErrInvalidThreshold, shrink)
	}
	return nil
}
