// utils_test.go -- Test harness utilities
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package conf

import (
	"fmt"
	"runtime"
	"testing"

	L "github.com/opencoff/go-logger"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

// io.Writer for logging
type logWriter struct {
	*testing.T
}

func (a *logWriter) Write(b []byte) (int, error) {
	var nl string

	if b[len(b)-1] != '\n' {
		nl = "\n"
	}
	a.Logf("# %s%s", string(b), nl)
	return len(b), nil
}

func newLogger(t *testing.T) *L.Logger {
	assert := newAsserter(t)
	a := &logWriter{T: t}
	log, err := L.New(a, L.LOG_DEBUG, "accessctl-test", 0)
	assert(err == nil, "can't create logger: %s", err)
	return log
}
