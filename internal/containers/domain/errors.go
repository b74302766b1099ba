package domain

import (
	"errors"
	"fmt"
)

var (
	ErrExecFailed     = errors.New("failed to exec command")
	ErrAlreadyRunning = errors.New("project is already running")
	ErrAlreadyStopped = errors.New("project is already stopped")
	ErrNotRunning     = errors.New("project is not running")
)

// ExecError reports a CLI invocation that could not be spawned, timed out or
// exited non-zero. Output holds the combined stdout and stderr.
type ExecError struct {
	Command string
	Output  string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to exec command '%s' - %v", e.Command, e.Err)
}

func (e *ExecError) Is(target error) bool {
	return target == ErrExecFailed
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// StateError ties a lifecycle precondition failure to its project.
type StateError struct {
	Kind    error
	Project string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: '%s'", e.Kind, e.Project)
}

func (e *StateError) Is(target error) bool {
	return target == e.Kind
}
