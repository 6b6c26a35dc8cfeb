package cli

import (
	"errors"
	"fmt"
)

var (
	ErrDefinition     = errors.New("command definition error")
	ErrArgumentAlias  = errors.New("argument alias error")
	ErrRunning        = errors.New("command running error")
	ErrNameCollision  = errors.New("command name collision")
	ErrUnknownCommand = errors.New("unknown command")
)

// DefinitionError is returned when a [Definition] is malformed.
// This is a programming error, and should be fixed before shipping.
type DefinitionError struct {
	wrapped error
}

func (e *DefinitionError) Error() string {
	if e.wrapped == nil {
		return ErrDefinition.Error()
	}
	return ErrDefinition.Error() + ": " + e.wrapped.Error()
}

func (e *DefinitionError) Is(err error) bool {
	if _, ok := err.(*DefinitionError); ok {
		return true
	}
	return err == ErrDefinition
}

func (e *DefinitionError) Unwrap() error {
	return e.wrapped
}

func newDefinitionError(format string, args ...any) error {
	return &DefinitionError{wrapped: fmt.Errorf(format, args...)}
}

// ArgumentAliasError is returned when an alias is added for an argument that the [Definition] doesn't declare,
// or the alias is empty or already names an argument.
type ArgumentAliasError struct {
	Argument string
	Alias    string
}

func (e *ArgumentAliasError) Error() string {
	return fmt.Sprintf("%s: cannot alias '%s' to argument '%s'", ErrArgumentAlias, e.Alias, e.Argument)
}

func (e *ArgumentAliasError) Is(err error) bool {
	if _, ok := err.(*ArgumentAliasError); ok {
		return true
	}
	return err == ErrArgumentAlias
}

// RunningError signals that a command couldn't finish because of bad user input.
// It's reported to the user by the [Manager] and never escapes [Manager.Execute].
// Handlers may return one to stop early with a message.
type RunningError struct {
	wrapped error
}

func (e *RunningError) Error() string {
	if e.wrapped == nil {
		return ErrRunning.Error()
	}
	return e.wrapped.Error()
}

func (e *RunningError) Is(err error) bool {
	if _, ok := err.(*RunningError); ok {
		return true
	}
	return err == ErrRunning
}

func (e *RunningError) Unwrap() error {
	return e.wrapped
}

// NewRunningError is used to create a [RunningError].
// The format and args parameters are passed to [fmt.Errorf] to create the underlying error.
func NewRunningError(format string, args ...any) error {
	return &RunningError{wrapped: fmt.Errorf(format, args...)}
}
