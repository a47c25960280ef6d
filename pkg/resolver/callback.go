package resolver

import (
	"fmt"
	"strings"
)

// CallbackReplacement replaces Old with the string that NewFunc returns.
type CallbackReplacement struct {
	Old     string
	NewFunc func() (string, error)
}

func (c *CallbackReplacement) Resolve(in string) (string, error) {
	// NewFunc is only called when in contains Old, a failing NewFunc must
	// not fail strings that do not reference it.
	if !strings.Contains(in, c.Old) {
		return in, nil
	}

	new, err := c.NewFunc()
	if err != nil {
		return "", fmt.Errorf("could not replace %q: %w", c.Old, err)
	}

	return strings.ReplaceAll(in, c.Old, new), nil
}
