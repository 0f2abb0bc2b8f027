package engine

import "fmt"

// InvalidInputError rejects a post before any state changes.
// It should be shown to the user as a re-prompt.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
