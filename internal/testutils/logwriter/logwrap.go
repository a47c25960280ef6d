// Package logwriter provides an io.Writer that mirrors written lines to the
// log of a testcase.
package logwriter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
)

type Logger struct {
	t   *testing.T
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
}

// New returns an io.writer compatible writer that writes everything to w and
// to t.Logf.
// It also registers Logger.Flush() as cleanup method for testing.T.
func New(t *testing.T, w io.Writer) *Logger {
	l := Logger{
		t: t,
		w: w,
	}

	t.Cleanup(func() { _ = l.Flush() })

	return &l
}

func (l *Logger) Write(p []byte) (int, error) {
	l.t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()

	n, writerErr := l.w.Write(p)
	_, _ = l.buf.Write(p[0:n]) // returns always a nil error

	if !bytes.ContainsRune(p, '\n') {
		return n, writerErr
	}

	for {
		line, err := l.buf.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				panic(fmt.Sprintf("logwrap: reading from buffer failed: %s", err))
			}
			// add chunk without line-ending back to buffer
			_, _ = l.buf.WriteString(line) // returns always a nil error
			break
		}

		l.t.Log(strings.TrimRight(line, "\n"))
	}

	return n, writerErr
}

// Flush logs the buffered bytes that were not terminated by a newline.
// They have already been written to the io.Writer by Write().
// It always returns a nil error.
func (l *Logger) Flush() error {
	l.t.Helper()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.buf.Len() == 0 {
		return nil
	}

	l.t.Log(l.buf.String())
	l.buf.Reset()

	return nil
}
