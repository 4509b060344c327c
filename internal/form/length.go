package form

import (
	"errors"
	"strconv"
)

// MaxLength is the longest string the form will generate.
const MaxLength = 4096

var (
	ErrInvalidLength = errors.New("length must be a non-negative whole number")
	ErrLengthTooLong = errors.New("length must be at most 4096")
)

// IsPositiveIntegerText reports whether text is an acceptable state of the
// length entry: empty, or decimal digits only. Empty is valid while typing
// but resolves to zero.
func IsPositiveIntegerText(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// ResolveLength converts the length entry text into a length.
func ResolveLength(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	if !IsPositiveIntegerText(text) {
		return 0, ErrInvalidLength
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, ErrInvalidLength
	}
	return n, nil
}

// AdjustLength applies delta to current. A result below zero is rejected
// and current is returned unchanged.
func AdjustLength(current, delta int) int {
	if next := current + delta; next >= 0 {
		return next
	}
	return current
}
