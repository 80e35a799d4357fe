// Package debug provides optional file-based debug logging.
//
// When the MOSAIC_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op. A UI
// engine cannot write diagnostics to its own stdout, so this is the only
// logging channel the module has.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	opened  bool
)

// open lazily opens the log file named by MOSAIC_DEBUG. Caller must hold mu.
func open() {
	if opened {
		return
	}
	opened = true
	path := os.Getenv("MOSAIC_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	logFile = f
}

// Log writes a timestamped message to the debug log, if one is configured.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	open()
	if logFile == nil {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
