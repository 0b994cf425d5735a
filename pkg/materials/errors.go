package materials

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a calculator receives a value outside its
// input contract. No computation is attempted in that case.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which input was rejected and why.
type InputError struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
	Rule  string  `json:"rule"`
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s = %g, %s", ErrInvalidInput, e.Field, e.Value, e.Rule)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

type dim struct {
	name  string
	value float64
}

// positive rejects zero, negative, NaN and infinite values.
func positive(dims ...dim) error {
	for _, d := range dims {
		if !(d.value > 0) || math.IsInf(d.value, 1) {
			return &InputError{Field: d.name, Value: d.value, Rule: "must be a finite number greater than 0"}
		}
	}
	return nil
}
