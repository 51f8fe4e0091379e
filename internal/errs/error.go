package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrEmptyKeyword = errors.New("empty search keyword")
)

// ValidationError marks construction-time failures so callers can
// distinguish them from ordinary operational outcomes.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func Validation(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
