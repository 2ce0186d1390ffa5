package fetch

import (
	"errors"
	"fmt"
)

// ErrEmptyURL marks an empty (or all-whitespace) request. Callers treat it as
// a no-op rather than a reportable failure.
var ErrEmptyURL = errors.New("empty url")

// ErrInvalidURL marks input with no extractable scheme://host prefix.
var ErrInvalidURL = errors.New("invalid URL")

// ConfigError reports a required external executable missing from PATH.
// It is raised once at wiring time; fetching stays disabled while it stands.
type ConfigError struct {
	Command string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("required command %q not found: %v", e.Command, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LaunchError reports that the pipeline could not be started at all.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// CommandError reports a nonzero exit from the pipeline. Its message is the
// captured stderr text when any was produced, else a generic code message.
type CommandError struct {
	Code   int
	Stderr string
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("Command exited with code %d", e.Code)
}
