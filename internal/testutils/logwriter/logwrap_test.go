package logwriter

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritesEverythingToWriter(t *testing.T) {
	var buf bytes.Buffer

	l := New(t, &buf)

	_, err := io.WriteString(l, "line1\nline")
	require.NoError(t, err)
	_, err = io.WriteString(l, "2\npartial")
	require.NoError(t, err)

	require.NoError(t, l.Flush())
	require.NoError(t, l.Flush())

	assert.Equal(t, "line1\nline2\npartial", buf.String())
}
