package gridcat

import "fmt"

// StageError reports which pipeline stage failed.
type StageError struct {
	Stage string // "shared strings", "styles", "workbook", "sheet"
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("extraction failed at %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
