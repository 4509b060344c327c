package charset

import (
	"errors"
	"strings"
)

// Class is a named, fixed set of characters a user may opt into.
type Class int

const (
	Uppercase Class = iota
	Lowercase
	Digit
	Symbol
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	// The ASCII punctuation block, 0x21-0x2F, 0x3A-0x40, 0x5B-0x60, 0x7B-0x7E.
	symbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var ErrUnknownClass = errors.New("unknown character class")

// All lists every class in display order.
var All = []Class{Uppercase, Lowercase, Digit, Symbol}

// String returns the stable name used by the HTTP form and JSON API.
func (c Class) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digits"
	case Symbol:
		return "symbols"
	default:
		return "unknown"
	}
}

// Label is the human readable checkbox caption.
func (c Class) Label() string {
	switch c {
	case Uppercase:
		return "Uppercase letters"
	case Lowercase:
		return "Lowercase letters"
	case Digit:
		return "Digits"
	case Symbol:
		return "Symbols"
	default:
		return ""
	}
}

// Chars returns the characters belonging to the class.
func (c Class) Chars() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	default:
		return ""
	}
}

// ParseClass maps a class name back to its Class.
func ParseClass(name string) (Class, error) {
	for _, c := range All {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}
	return 0, ErrUnknownClass
}

// Pool returns the de-duplicated union of the characters of classes.
// Characters keep the order in which they are first seen so that a seeded
// random source produces the same output for the same selection.
func Pool(classes ...Class) []rune {
	seen := make(map[rune]struct{})
	var pool []rune
	for _, c := range classes {
		for _, r := range c.Chars() {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			pool = append(pool, r)
		}
	}
	return pool
}

// Names returns the names of classes, in the given order.
func Names(classes []Class) []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}
