package domain

import (
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/sandbox"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrFileNotFound         = errors.New("file not found")
	ErrInvalidPath          = sandbox.ErrInvalidPath
	ErrProjectAlreadyExists = errors.New("project already exists")
	ErrReadDir              = errors.New("failed to read directory")
	ErrReadFile             = errors.New("failed to read file")
	ErrWriteFile            = errors.New("failed to write file")
	ErrDeleteFile           = errors.New("failed to delete file")
	ErrDeleteProject        = errors.New("failed to delete project")
)

// Error carries one of the sentinels above as Kind together with the names
// involved. Path and Err are for logs; Error() only mentions names.
type Error struct {
	Kind    error
	Project string
	File    string
	Path    string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.File != "" && e.Project != "":
		return fmt.Sprintf("%s: '%s' in project '%s'", e.Kind, e.File, e.Project)
	case e.File != "":
		return fmt.Sprintf("%s: '%s'", e.Kind, e.File)
	case e.Project != "":
		return fmt.Sprintf("%s: '%s'", e.Kind, e.Project)
	default:
		return e.Kind.Error()
	}
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(project string) error {
	return &Error{Kind: ErrProjectNotFound, Project: project}
}

func FileNotFound(project, file string) error {
	return &Error{Kind: ErrFileNotFound, Project: project, File: file}
}
