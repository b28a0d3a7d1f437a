package exhibit

import (
	"errors"
	"fmt"
)

// ErrSpan is returned when a grid dimension cannot be addressed with int16
// coordinates.
var ErrSpan = errors.New("exhibit: dimension out of range")

type ConstructionError struct {
	Dimension string
	Value     int
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("exhibit: grid %s %d outside [0, %d]", e.Dimension, e.Value, MaxSpan)
}

func (e *ConstructionError) Unwrap() error {
	return ErrSpan
}
