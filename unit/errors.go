package unit

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a quotient's denominator is exactly zero.
var ErrDivisionByZero = errors.New("unit: division by zero")

// DimensionError reports an operation between incompatible dimension classes.
type DimensionError struct {
	Op   string
	Got  Dims
	Want Dims
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("unit: %s: incompatible dimensions: got %s, want %s", e.Op, e.Got, e.Want)
}
