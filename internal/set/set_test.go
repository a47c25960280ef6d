package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := From([]string{"a", "b", "a"})
	assert.Len(t, s, 2)

	s.Add("c")
	assert.True(t, s.Contains("c"))
	assert.False(t, s.Contains("d"))

	assert.ElementsMatch(t, []string{"a", "b", "c"}, s.Slice())
}
