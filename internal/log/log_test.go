package log

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bufOutput struct {
	lines []string
}

func (b *bufOutput) Printf(format string, v ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, v...))
}

func (b *bufOutput) Println(v ...any) {
	b.lines = append(b.lines, strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func TestDebugIsOnlyLoggedWhenEnabled(t *testing.T) {
	var out bufOutput

	l := New(false)
	l.SetOutput(&out)

	l.Debugf("hidden %d", 1)
	l.Debugln("hidden")
	assert.Empty(t, out.lines)

	l.EnableDebug(true)
	assert.True(t, l.DebugEnabled())

	l.Debugf("shown %d", 1)
	l.Debugln("shown", 2)
	assert.Equal(t, []string{"shown 1", "shown 2"}, out.lines)
}

func TestErrorsHavePrefix(t *testing.T) {
	var out bufOutput

	l := New(false)
	l.SetOutput(&out)

	l.Errorf("failed: %s", "reason")
	l.Errorln("failed")

	assert.Equal(t, []string{
		errorPrefix + " failed: reason",
		errorPrefix + " failed",
	}, out.lines)
}
