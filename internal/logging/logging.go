// Package logging wires the process-wide logger. Logging is off unless
// LOG_FILE names a destination, since the terminal is owned by the UI.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Setup points the standard logger at LOG_FILE when set and discards output
// otherwise. The returned writer doubles as the request-log sink; the cleanup
// func flushes and closes it.
func Setup() (io.Writer, func(), error) {
	path := os.Getenv("LOG_FILE")
	if path == "" {
		log.SetOutput(io.Discard)
		return io.Discard, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("quill ")
	return f, func() { f.Close() }, nil
}
