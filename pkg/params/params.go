// Package params builds parameter maps for interpolation from command line
// assignments, files and environment variables.
package params

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"strings"

	"github.com/simplesurance/interpolate/pkg/interpolate"
)

// ErrNestedValue is returned when a parameter source contains a table, map
// or list as value.
var ErrNestedValue = errors.New("nested values are not supported")

// ParseAssignment parses a string in the format KEY=VALUE.
// VALUE may contain further '=' characters and may be empty.
func ParseAssignment(s string) (key, value string, err error) {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return "", "", fmt.Errorf("%q is not in the format KEY=VALUE", s)
	}

	if !interpolate.IsIdentifier(key) {
		return "", "", fmt.Errorf("%q: key %q is not a valid parameter name, only letters, digits and underscores are allowed", s, key)
	}

	return key, value, nil
}

// FromAssignments returns a parameter map from KEY=VALUE strings.
// When a key is assigned multiple times, the last assignment wins.
func FromAssignments(assignments []string) (map[string]any, error) {
	res := make(map[string]any, len(assignments))

	for _, a := range assignments {
		k, v, err := ParseAssignment(a)
		if err != nil {
			return nil, err
		}

		res[k] = v
	}

	return res, nil
}

// FromEnv returns a parameter map of all environment variables in environ
// that start with prefix. The prefix is removed from the parameter names.
// Variables whose remaining name is not a valid identifier are ignored.
// environ is in the format of os.Environ().
func FromEnv(prefix string, environ []string) map[string]any {
	res := map[string]any{}

	for _, kv := range environ {
		k, v, found := strings.Cut(kv, "=")
		if !found {
			continue
		}

		name, hasPrefix := strings.CutPrefix(k, prefix)
		if !hasPrefix || !interpolate.IsIdentifier(name) {
			continue
		}

		res[name] = v
	}

	return res
}

// Merge returns a new map containing the entries of all maps.
// Entries of later maps override entries with the same key of earlier ones.
func Merge(ms ...map[string]any) map[string]any {
	res := map[string]any{}

	for _, m := range ms {
		maps.Copy(res, m)
	}

	return res
}

// validateFlat returns ErrNestedValue if a value in m is a map, slice or
// array. []byte values are allowed.
func validateFlat(m map[string]any) error {
	for k, v := range m {
		if _, isBytes := v.([]byte); isBytes || v == nil {
			continue
		}

		switch reflect.TypeOf(v).Kind() {
		case reflect.Map, reflect.Slice, reflect.Array:
			return fmt.Errorf("parameter %q: %w", k, ErrNestedValue)
		}
	}

	return nil
}
