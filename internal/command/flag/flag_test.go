package flag

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneOf(t *testing.T) {
	f := NewOneOfFlag("on-missing", "sentinel", "handling of missing parameters", "sentinel", "error", "keep")
	assert.Equal(t, "sentinel", f.Value())
	assert.Equal(t, "ON-MISSING", f.Type())

	require.NoError(t, f.Set("ERROR"))
	assert.Equal(t, "error", f.Value())
	assert.Equal(t, "error", f.String())

	err := f.Set("ignore")
	require.EqualError(t, err, "on-missing must be one of: error, keep, sentinel")
	assert.Equal(t, "error", f.Value())

	assert.Equal(t,
		"handling of missing parameters\none of: error, keep, sentinel",
		f.Usage(fmt.Sprint),
	)
}

func TestOneOfPanicsOnUppercaseValues(t *testing.T) {
	assert.Panics(t, func() {
		NewOneOfFlag("x", "a", "", "a", "B")
	})
}

func TestFormat(t *testing.T) {
	f := NewFormatFlag()
	assert.Equal(t, FormatPlain, f.String())

	require.NoError(t, f.Set("JSON"))
	assert.Equal(t, FormatJSON, f.Val)

	require.Error(t, f.Set("xml"))
	assert.Equal(t, FormatJSON, f.Val)
}
