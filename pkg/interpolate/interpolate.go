// Package interpolate replaces {name} tokens in format strings with parameter
// values.
package interpolate

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSentinel is the text that is substituted for tokens without a
// parameter when the MissingSentinel policy is used.
const DefaultSentinel = "undefined"

// ErrMissingParameter is returned (wrapped in a *MissingParameterError) when
// a token references a parameter that does not exist and the MissingError
// policy is active.
var ErrMissingParameter = errors.New("missing parameter")

// MissingParameterError describes a token whose identifier has no entry in
// the parameter map.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %q", e.Name)
}

func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}

// MissingPolicy defines how tokens without a parameter are handled.
type MissingPolicy int

const (
	// MissingSentinel replaces the token with Interpolator.Sentinel.
	MissingSentinel MissingPolicy = iota
	// MissingError aborts the interpolation with a *MissingParameterError.
	MissingError
	// MissingKeep leaves the token unchanged in the result.
	MissingKeep
)

func (p MissingPolicy) String() string {
	switch p {
	case MissingSentinel:
		return "sentinel"
	case MissingError:
		return "error"
	case MissingKeep:
		return "keep"
	default:
		return fmt.Sprintf("MissingPolicy(%d)", int(p))
	}
}

// PolicyFromString returns the MissingPolicy with the name s, as returned by
// MissingPolicy.String().
func PolicyFromString(s string) (MissingPolicy, error) {
	switch strings.ToLower(s) {
	case "sentinel":
		return MissingSentinel, nil
	case "error":
		return MissingError, nil
	case "keep":
		return MissingKeep, nil
	default:
		return 0, fmt.Errorf("unsupported missing parameter policy: %q", s)
	}
}

// Interpolator replaces tokens in format strings.
// The zero value substitutes an empty string for missing parameters, use
// New() to get an Interpolator with the default sentinel.
type Interpolator struct {
	Missing  MissingPolicy
	Sentinel string
}

// New returns an Interpolator that applies the MissingSentinel policy with
// DefaultSentinel.
func New() *Interpolator {
	return &Interpolator{
		Missing:  MissingSentinel,
		Sentinel: DefaultSentinel,
	}
}

var defaultInterpolator = New()

// Interpolate returns format with every {identifier} token replaced by the
// string representation of params[identifier].
// Tokens without a parameter are replaced by DefaultSentinel.
func Interpolate(format string, params map[string]any) string {
	// MissingSentinel never fails
	res, _ := defaultInterpolator.Interpolate(format, params)
	return res
}

// Interpolate returns format with every {identifier} token replaced by the
// string representation of params[identifier].
// Replacement values are not scanned for tokens again.
// An error is only returned when the MissingError policy is set and a token
// references a parameter that is not in params.
func (i *Interpolator) Interpolate(format string, params map[string]any) (string, error) {
	tokens := Tokens(format)
	if len(tokens) == 0 {
		return format, nil
	}

	var sb strings.Builder
	sb.Grow(len(format))

	var last int
	for _, tok := range tokens {
		sb.WriteString(format[last:tok.Start])
		last = tok.End

		val, exists := params[tok.Name]
		if exists {
			sb.WriteString(Stringify(val))
			continue
		}

		switch i.Missing {
		case MissingError:
			return "", &MissingParameterError{Name: tok.Name}
		case MissingKeep:
			sb.WriteString(format[tok.Start:tok.End])
		default:
			sb.WriteString(i.Sentinel)
		}
	}

	sb.WriteString(format[last:])

	return sb.String(), nil
}
