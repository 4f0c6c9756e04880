package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrIdeaRequired is returned by the idea validator for blank input.
	ErrIdeaRequired = errors.New("prompt: an idea is required")
)
