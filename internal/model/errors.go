package model

import "fmt"

// InvalidParameterError reports malformed or inconsistent inputs detected
// before any solver interaction. Always caller-correctable.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}
