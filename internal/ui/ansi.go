package ui

import (
	"fmt"
	"os"
)

// OK prints a success line to stdout.
func OK(msg string) { fmt.Println(current.Success.Render(current.SymOK + " " + msg)) }

// Fail prints an error line to stderr.
func Fail(msg string) { fmt.Fprintln(os.Stderr, current.Error.Render(current.SymFail+" "+msg)) }

// Hint prints a muted line to stderr.
func Hint(msg string) { fmt.Fprintln(os.Stderr, current.Muted.Render(msg)) }
