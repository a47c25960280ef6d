package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignment(t *testing.T) {
	testcases := []struct {
		in      string
		key     string
		value   string
		wantErr bool
	}{
		{in: "name=World", key: "name", value: "World"},
		{in: "a=b=c", key: "a", value: "b=c"},
		{in: "empty=", key: "empty", value: ""},
		{in: "_x1=1", key: "_x1", value: "1"},
		{in: "novalue", wantErr: true},
		{in: "=value", wantErr: true},
		{in: "a-b=1", wantErr: true},
		{in: "a b=1", wantErr: true},
	}

	for _, tc := range testcases {
		t.Run(tc.in, func(t *testing.T) {
			k, v, err := ParseAssignment(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.key, k)
			assert.Equal(t, tc.value, v)
		})
	}
}

func TestFromAssignments(t *testing.T) {
	res, err := FromAssignments([]string{"a=1", "b=2", "a=3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "3", "b": "2"}, res)

	_, err = FromAssignments([]string{"a=1", "broken"})
	require.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	environ := []string{
		"PARAM_name=World",
		"PARAM_with_eq=a=b",
		"PARAM_=ignored",
		"PARAM_in-valid=ignored",
		"OTHER=ignored",
		"malformed",
	}

	res := FromEnv("PARAM_", environ)
	assert.Equal(t, map[string]any{
		"name":    "World",
		"with_eq": "a=b",
	}, res)
}

func TestMerge(t *testing.T) {
	a := map[string]any{"a": 1, "b": 1}
	b := map[string]any{"b": 2, "c": 2}

	res := Merge(a, nil, b)
	assert.Equal(t, map[string]any{"a": 1, "b": 2, "c": 2}, res)
	assert.Equal(t, map[string]any{"a": 1, "b": 1}, a, "input map was modified")
}

func TestValidateFlat(t *testing.T) {
	require.NoError(t, validateFlat(map[string]any{
		"s":     "str",
		"i":     1,
		"nil":   nil,
		"bytes": []byte("b"),
	}))

	for name, v := range map[string]any{
		"map_any_keys": map[any]any{1: "x"},
		"map":          map[string]any{"a": 1},
		"slice":        []any{1},
		"typed_slice":  []string{"a"},
		"array":        [2]int{1, 2},
	} {
		t.Run(name, func(t *testing.T) {
			err := validateFlat(map[string]any{"p": v})
			assert.ErrorIs(t, err, ErrNestedValue)
		})
	}
}
