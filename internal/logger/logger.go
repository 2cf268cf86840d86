package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

const maxLogSize = 10 * 1024 * 1024

var (
	debugLog *os.File
	logPath  string
)

// Init opens ~/.napoleon/debug.log, rotating it past 10MB, and points the
// stdlib logger at it so the TUI never writes to the terminal.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, ".napoleon")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath = filepath.Join(logDir, "debug.log")
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		backup := filepath.Join(logDir, fmt.Sprintf("debug.log.%d", time.Now().Unix()))
		_ = os.Rename(logPath, backup)
	}

	debugLog, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(debugLog)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	Infof("logger initialized, log file: %s", logPath)
	return nil
}

// Close closes the debug log file.
func Close() {
	if debugLog != nil {
		_ = debugLog.Close()
	}
}

// Infof logs an info message.
func Infof(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...any) {
	log.Printf("[ERROR] "+format, args...)
}

// Panicf logs a recovered panic with its stack trace.
func Panicf(r any) {
	log.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// Path returns the current log file path.
func Path() string {
	return logPath
}
