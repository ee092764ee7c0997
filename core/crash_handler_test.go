package core

import (
	"io"
	"log"
	"os"
	"strings"
	"testing"
)

func TestCrashReport(t *testing.T) {
	report := crashReport("boom", []byte("main.main()\n\tmain.go:10"))

	if !strings.Contains(report, "grade-unboxing panicked: boom") {
		t.Errorf("Expected panic value in banner, got %q", report)
	}
	if !strings.Contains(report, "main.go:10") {
		t.Error("Expected stack in report")
	}
	if !strings.HasSuffix(report, "\n") {
		t.Error("Expected report to end with newline")
	}
}

// TestHandleCrashRunsResetHook verifies the terminal hook runs before exit with status 1
func TestHandleCrashRunsResetHook(t *testing.T) {
	var order []string
	SetResetHook(func() { order = append(order, "reset") })
	t.Cleanup(func() { SetResetHook(nil) })

	code := -1
	exit = func(c int) {
		order = append(order, "exit")
		code = c
	}
	t.Cleanup(func() { exit = os.Exit })

	prev := log.Writer()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(prev) })

	HandleCrash("boom")

	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if len(order) != 2 || order[0] != "reset" || order[1] != "exit" {
		t.Errorf("Expected [reset exit], got %v", order)
	}
}

func TestHandleCrashNil(t *testing.T) {
	called := false
	SetResetHook(func() { called = true })
	t.Cleanup(func() { SetResetHook(nil) })

	HandleCrash(nil)
	if called {
		t.Error("Expected nil panic value to be ignored")
	}
}
