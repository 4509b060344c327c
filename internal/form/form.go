package form

import (
	"errors"
	"math/rand/v2"
	"strconv"

	"github.com/pgen/pgen-go/internal/charset"
	"github.com/pgen/pgen-go/internal/generator"
)

const DefaultLength = 20

// Request is one generation attempt built from the form.
type Request struct {
	Classes      []charset.Class
	Length       int
	AllowRepeats bool
}

// Form is the state shared by every control of the generator form: the
// toggles and length text feed a Request, Generate writes Result and the
// copy action reads it.
type Form struct {
	Uppercase    bool
	Lowercase    bool
	Digits       bool
	Symbols      bool
	AllowRepeats bool
	LengthText   string
	Result       string
}

// New returns a form with every class selected, repeats allowed and the
// default length.
func New() *Form {
	return &Form{
		Uppercase:    true,
		Lowercase:    true,
		Digits:       true,
		Symbols:      true,
		AllowRepeats: true,
		LengthText:   strconv.Itoa(DefaultLength),
	}
}

// Selected reports whether class is toggled on.
func (f *Form) Selected(c charset.Class) bool {
	switch c {
	case charset.Uppercase:
		return f.Uppercase
	case charset.Lowercase:
		return f.Lowercase
	case charset.Digit:
		return f.Digits
	case charset.Symbol:
		return f.Symbols
	}
	return false
}

// SetSelected toggles class on or off.
func (f *Form) SetSelected(c charset.Class, on bool) {
	switch c {
	case charset.Uppercase:
		f.Uppercase = on
	case charset.Lowercase:
		f.Lowercase = on
	case charset.Digit:
		f.Digits = on
	case charset.Symbol:
		f.Symbols = on
	}
}

// Classes returns the selected classes in display order.
func (f *Form) Classes() []charset.Class {
	var classes []charset.Class
	for _, c := range charset.All {
		if f.Selected(c) {
			classes = append(classes, c)
		}
	}
	return classes
}

// SetLengthText accepts text only if it is a valid intermediate state of
// the length entry. It reports whether the text was accepted.
func (f *Form) SetLengthText(text string) bool {
	if !IsPositiveIntegerText(text) {
		return false
	}
	f.LengthText = text
	return true
}

// Increment adds one to the length.
func (f *Form) Increment() { f.adjust(1) }

// Decrement subtracts one from the length, never going below zero.
func (f *Form) Decrement() { f.adjust(-1) }

func (f *Form) adjust(delta int) {
	current, err := ResolveLength(f.LengthText)
	if err != nil {
		return
	}
	next := AdjustLength(current, delta)
	if next == current {
		return
	}
	f.LengthText = strconv.Itoa(next)
}

// Request builds a generation request from the current state.
func (f *Form) Request() (Request, error) {
	length, err := ResolveLength(f.LengthText)
	if err != nil {
		return Request{}, err
	}
	if length > MaxLength {
		return Request{}, ErrLengthTooLong
	}
	return Request{
		Classes:      f.Classes(),
		Length:       length,
		AllowRepeats: f.AllowRepeats,
	}, nil
}

// Generate runs the generate action. With no class selected it does
// nothing. On error Result keeps its previous value.
func (f *Form) Generate(rnd *rand.Rand) (bool, error) {
	req, err := f.Request()
	if err != nil {
		return false, err
	}
	if len(req.Classes) == 0 {
		return false, nil
	}

	result, err := generator.Generate(rnd, charset.Pool(req.Classes...), req.Length, req.AllowRepeats)
	if err != nil {
		return false, err
	}
	f.Result = result
	return true, nil
}

// IsUserError reports whether err should be shown to the user rather than
// treated as a fault.
func IsUserError(err error) bool {
	return errors.Is(err, generator.ErrInsufficientPool) ||
		errors.Is(err, ErrInvalidLength) ||
		errors.Is(err, ErrLengthTooLong)
}
