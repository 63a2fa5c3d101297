package config

import (
	"errors"
	"fmt"
)

// UserError is a user or configuration mistake: duplicate project names,
// unknown keys, malformed JSON, an undeterminable home directory. These are
// rendered as a one-line message by the CLI.
type UserError struct {
	Msg   string
	Cause error
}

func (e *UserError) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *UserError) Unwrap() error { return e.Cause }

// InvalidConfigError reports a sanity violation: a project whose resolved
// workspace path is not absolute.
type InvalidConfigError struct {
	Project string
	Path    string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("misconfigured project %s: resolved path %q is relative which is not allowed", e.Project, e.Path)
}

// IsUserError reports whether err belongs to the user/config error class,
// as opposed to an I/O failure.
func IsUserError(err error) bool {
	var ue *UserError
	var ice *InvalidConfigError
	return errors.As(err, &ue) || errors.As(err, &ice)
}
