package repository

import (
	"errors"
	"fmt"
)

// Sentinel kinds for store errors.
var (
	ErrNotFound           = errors.New("student not found")
	ErrPrerequisiteNotMet = errors.New("previous letter not passed")
)

// PrerequisiteError reports a sequential-gate rejection. It matches
// ErrPrerequisiteNotMet under errors.Is and carries the letter the student
// must pass first.
type PrerequisiteError struct {
	RequiredLetter string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("previous letter %s not passed", e.RequiredLetter)
}

func (e *PrerequisiteError) Is(target error) bool {
	return target == ErrPrerequisiteNotMet
}
