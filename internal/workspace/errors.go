package workspace

import (
	"errors"
	"fmt"
)

// ErrWorkspaceNotFound is matched by every NotFoundError via errors.Is.
var ErrWorkspaceNotFound = errors.New("workspace not found")

// NotFoundError reports a workspace name that is not registered.
type NotFoundError struct {
	Workspace string // Name that was looked up
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrWorkspaceNotFound, e.Workspace)
}

func (e *NotFoundError) Unwrap() error {
	return ErrWorkspaceNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(name string) *NotFoundError {
	return &NotFoundError{Workspace: name}
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrWorkspaceNotFound)
}
