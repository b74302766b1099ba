// Package sandbox confines caller supplied names to a single path component
// inside a trusted directory.
package sandbox

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

var ErrInvalidPath = errors.New("invalid path")

// InvalidPathError reports a name that does not resolve to exactly one
// component under its parent directory.
type InvalidPathError struct {
	Name string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q", e.Name)
}

func (e *InvalidPathError) Is(target error) bool {
	return target == ErrInvalidPath
}

// ResolveName returns name unchanged when it is a single, non-special path
// component.
func ResolveName(name string) (string, error) {
	switch {
	case name == "", name == ".", name == "..":
		return "", &InvalidPathError{Name: name}
	case strings.ContainsAny(name, "/\\\x00"):
		return "", &InvalidPathError{Name: name}
	case filepath.IsAbs(name), filepath.VolumeName(name) != "":
		return "", &InvalidPathError{Name: name}
	}
	return name, nil
}

// Join resolves name under dir. Symlinks inside dir are followed without
// leaving it, and the final path must still be a direct child of dir.
func Join(dir, name string) (string, error) {
	if _, err := ResolveName(name); err != nil {
		return "", err
	}

	joined, err := securejoin.SecureJoin(dir, name)
	if err != nil {
		return "", fmt.Errorf("join %q: %w", name, &InvalidPathError{Name: name})
	}

	if filepath.Dir(joined) != filepath.Clean(dir) {
		return "", &InvalidPathError{Name: name}
	}
	return joined, nil
}
