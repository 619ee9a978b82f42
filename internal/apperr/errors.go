package apperr

import "errors"

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// PipelineError is implemented by the typed errors of every formula stage.
type PipelineError interface {
	error
	Stage() string
	Position() int
}

// StageOf names the stage that produced err, or returns "" when err does not
// come from the formula pipeline.
func StageOf(err error) string {
	var pe PipelineError
	if errors.As(err, &pe) {
		return pe.Stage()
	}
	return ""
}
