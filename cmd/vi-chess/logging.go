package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "vi-chess.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging points the standard logger at logs/vi-chess.log when debug is
// set, rotating the previous file once it exceeds maxLogSize
// Otherwise all log output is discarded, the terminal is never written
// Returns the open file, nil when logging is off or the file cannot be opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vi-chess-%s.log", time.Now().Format("20060102-150405")))
		// Best effort, a failed rename keeps appending to the old file
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Println("logging started")
	return f
}
