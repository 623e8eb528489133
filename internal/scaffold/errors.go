package scaffold

import (
	"errors"
	"fmt"
)

// ErrEmptyName is wrapped by EmptyNameError
var ErrEmptyName = errors.New("no name was provided")

// UsageError is returned when the scaffolder is invoked without any component names
type UsageError struct{}

func (e *UsageError) Error() string {
	return "no arguments were provided"
}

// EmptyNameError is returned by the creation steps when they are handed an empty name
type EmptyNameError struct {
	Op string
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, ErrEmptyName.Error())
}

func (e *EmptyNameError) Unwrap() error {
	return ErrEmptyName
}

// DirectoryCreationError wraps the filesystem error from creating a component directory, such as it already existing.
type DirectoryCreationError struct {
	Name string
	Err  error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("failed to create directory: %s, %s", e.Name, e.Err.Error())
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}
