package wizard

import (
	"errors"
	"fmt"
)

var (
	ErrWrongStage           = errors.New("operation not allowed in current stage")
	ErrNoPreviousStage      = errors.New("no previous stage")
	ErrFinalized            = errors.New("registration already finalized")
	ErrIdentificationFailed = errors.New("breed identification failed")
	ErrPersistFailed        = errors.New("saving registration failed")
	ErrConcurrentChange     = errors.New("wizard changed while waiting for identification")
	ErrNotFound             = errors.New("wizard not found")
)

// ValidationError bloquea el avance; Animal es 1-based (0 = no aplica).
type ValidationError struct {
	Animal  int
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Animal > 0 {
		return fmt.Sprintf("animal %d: %s: %s", e.Animal, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfirmationError: reducir la cantidad descartaría animales con datos.
type ConfirmationError struct {
	Animals []int // 1-based
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("removing animals %v discards entered data; confirmation required", e.Animals)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
