// Package core holds process-wide crash handling.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/vi-chess/terminal"
)

// Finalizer restores the terminal it owns
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer

	// Replaced in tests
	crashOut  io.Writer = os.Stdout
	crashErr  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashTerminal registers the terminal restored by HandleCrash
// nil unregisters it
func SetCrashTerminal(t Finalizer) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints r with a stack trace and exits 1
// A nil r is ignored
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()

	if t != nil {
		t.Fini()
	} else {
		terminal.EmergencyReset(crashOut)
	}

	// \r\n in case the tty is still in raw mode
	fmt.Fprintf(crashErr, "\r\n\x1b[31mVI-CHESS CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashErr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}
