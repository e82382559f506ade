package probe

import "fmt"

// RangeError reports an interactive input outside its allowed domain. A UI
// clamps its sliders to the same bounds; the calculation still rejects
// out-of-domain values itself rather than trusting the caller.
type RangeError struct {
	Input    string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("probe: %s %d outside [%d, %d]", e.Input, e.Value, e.Min, e.Max)
}

func checkRange(input string, value, min, max int) error {
	if value < min || value > max {
		return &RangeError{Input: input, Value: value, Min: min, Max: max}
	}
	return nil
}
