// Package core holds process-level plumbing shared by the loop and the command.
package core

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

var resetHook atomic.Pointer[func()]

// exit is replaced in tests
var exit = os.Exit

// SetResetHook registers the function that restores the terminal before a panic is reported
// nil clears it
func SetResetHook(fn func()) {
	if fn == nil {
		resetHook.Store(nil)
		return
	}
	resetHook.Store(&fn)
}

// HandleCrash restores the terminal, reports r with its stack and exits with status 1
func HandleCrash(r any) {
	if r == nil {
		return
	}
	restoreTerminal()

	report := crashReport(r, debug.Stack())
	log.Print(report)
	// Raw mode may still be active on the way out, so lines end in \r\n
	fmt.Fprint(os.Stderr, strings.ReplaceAll(report, "\n", "\r\n"))
	os.Stderr.Sync()

	exit(1)
}

// Go runs fn on a new goroutine, routing a panic through HandleCrash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

func restoreTerminal() {
	if hook := resetHook.Load(); hook != nil {
		(*hook)()
	}
}

func crashReport(r any, stack []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\x1b[31mgrade-unboxing panicked: %v\x1b[0m\n", r)
	b.WriteString("goroutine stack:\n")
	b.Write(stack)
	if len(stack) == 0 || stack[len(stack)-1] != '\n' {
		b.WriteByte('\n')
	}
	return b.String()
}
