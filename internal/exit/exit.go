// Package exit carries a command outcome from argument parsing and
// query execution back to main: the final message, where it goes, and
// the process exit code.
package exit

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Result is the final outcome of a command invocation.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the message to the result's destination, terminating it
// with a newline when the message does not already carry one.
func (r *Result) Print() {
	if r.Message == "" {
		return
	}
	if strings.HasSuffix(r.Message, "\n") {
		fmt.Fprint(r.Output, r.Message)
		return
	}
	fmt.Fprintln(r.Output, r.Message)
}

// Success returns a code-0 result writing to stdout.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: 0,
		Message:  message,
	}
}

// Error returns a code-1 result writing to stderr.
func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: 1,
		Message:  message,
	}
}

// Errorf is Error with fmt.Sprintf formatting.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}
