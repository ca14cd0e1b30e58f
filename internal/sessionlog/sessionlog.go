// Package sessionlog writes the per-run human-readable log artifact kept
// under the working directory's state folder. Each invocation gets its own
// timestamp-named file; nothing reads these back.
package sessionlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/tidycli/tidy/internal/ledger"
)

// Session appends timestamped lines to one log file. It implements the
// engines' Recorder contract.
type Session struct {
	f         *os.File
	mirror    io.Writer
	sessionID string
}

// Start opens a new log file under <dir>/Sort_Logs named for the current
// moment. Lines are echoed to mirror when it is non-nil.
func Start(dir string, mirror io.Writer) (*Session, error) {
	logDir := filepath.Join(dir, ledger.StateDirName)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	name := fmt.Sprintf("log_%s.txt", time.Now().Format("2006-01-02_150405"))
	f, err := os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}

	s := &Session{f: f, mirror: mirror, sessionID: uuid.NewString()}
	fmt.Fprintf(f, "# session %s\n", s.sessionID)
	return s, nil
}

// Eventf records one formatted line with a wall-clock timestamp.
func (s *Session) Eventf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(s.f, "[%s] %s\n", time.Now().Format("15:04:05"), line)
	if s.mirror != nil {
		fmt.Fprintln(s.mirror, line)
	}
}

// SessionID returns the identifier stamped into the log header.
func (s *Session) SessionID() string {
	return s.sessionID
}

// Path returns the log file's location.
func (s *Session) Path() string {
	return s.f.Name()
}

// Close flushes and closes the log file.
func (s *Session) Close() error {
	return s.f.Close()
}
