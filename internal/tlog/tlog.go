/*
Package tlog renders errors with their structured context in test output.
*/
package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// Log logs err.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(Render(err, bold))
}

// Error reports err as a test error.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(Render(err, red))
}

// Check returns false if err is nil. Otherwise it reports err as a test error and returns true.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(Render(err, red))
	return true
}

// Require stops the test if err is not nil.
func Require(t TestingPrinter, err error) {
	if err == nil {
		return
	}

	t.Helper()
	t.Fatal(Render(err, red))
}

// Render formats err followed by its context values, one per line.
func Render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c errorContextConsumer
	d.Deliver(&c)

	if len(c.vars) == 0 {
		return b.String()
	}

	var maxname int
	for _, v := range c.vars {
		maxname = max(maxname, len(v.name))
	}

	for _, v := range c.vars {
		b.WriteString("    ")
		b.WriteString(bold)
		b.WriteString(v.name)
		b.WriteString(reset)
		b.WriteString(": ")
		b.WriteString(strings.Repeat(" ", maxname-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}

	return b.String()
}
