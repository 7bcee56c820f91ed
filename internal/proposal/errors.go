package proposal

import "fmt"

// ValidationError reports the first violated constraint: the field path, the
// declared bound, and the measured value. The whole request fails on it; no
// silent truncation or auto-fix happens at validation time.
type ValidationError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

func violation(field, expectedFmt string, expected any, actualFmt string, actual any) *ValidationError {
	return &ValidationError{
		Field:    field,
		Expected: fmt.Sprintf(expectedFmt, expected),
		Actual:   fmt.Sprintf(actualFmt, actual),
	}
}
