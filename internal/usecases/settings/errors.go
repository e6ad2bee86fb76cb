package settings

import (
	"errors"
	"fmt"
)

var (
	ErrReadSettings           = errors.New("error reading settings rows")
	ErrSubmissionFailed       = errors.New("autopilot settings were not accepted")
	ErrRejectedProductUnknown = errors.New("rejected product id not found in error detail")
)

// Etapas do fluxo de envio
const (
	StageRead   = "read"
	StageSubmit = "submit"
)

// SyncError é um erro com o contexto da etapa do fluxo onde ocorreu
type SyncError struct {
	Err     error
	Stage   string
	Details string
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Err.Error(), e.Stage, e.Details)
	}
	return fmt.Sprintf("%s [%s]", e.Err.Error(), e.Stage)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, stage string, details string) *SyncError {
	return &SyncError{Err: err, Stage: stage, Details: details}
}
