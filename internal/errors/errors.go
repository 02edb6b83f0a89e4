// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// Stage identifies which part of the intake pipeline an error came from,
// so callers and tests can tell "storage failed" from "email failed"
// even though the client only ever sees a generic envelope.
type Stage string

const (
	StageValidate Stage = "validate"
	StageUpload   Stage = "upload"
	StagePersist  Stage = "persist"
	StageNotify   Stage = "notify"
)

// StageError wraps an underlying error with its pipeline stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Helper constructor
func NewStageError(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// IsStage reports whether err is a StageError from the given stage.
func IsStage(err error, stage Stage) bool {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage == stage
	}
	return false
}
