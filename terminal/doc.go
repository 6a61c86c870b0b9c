// Package terminal drives an xterm-compatible terminal directly with ANSI sequences.
//
// Features:
//   - Raw mode through a pluggable Backend (golang.org/x/term or a tcell Tty)
//   - Synchronous input parsing: keys, UTF-8 runes, SGR mouse reports
//   - Alternate screen, cursor visibility and mouse reporting scoped by Init/Fini
//   - Clean terminal restoration on exit/panic
//
// Input is parsed on the caller's goroutine inside PollEvent; the package
// starts no goroutines of its own.
package terminal
