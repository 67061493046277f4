package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/commentstyle/commentstyle/internal/domain"
	"github.com/commentstyle/commentstyle/internal/domain/style"
)

// TextReporter implements domain.Reporter by writing violations in the plain
// `path:line: (code) message:` format. Safe for concurrent use.
type TextReporter struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

// NewTextReporter writes violations to out and read failures to errOut.
func NewTextReporter(out, errOut io.Writer) *TextReporter {
	return &TextReporter{out: out, errOut: errOut}
}

func (r *TextReporter) Report(v domain.Violation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := io.WriteString(r.out, style.FormatViolation(v))
	return err
}

func (r *TextReporter) ReportError(path string, cause error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintf(r.errOut, "%s: error: %v\n", path, cause)
	return err
}

// PathLogger implements domain.ProgressLogger. It prints nothing unless
// enabled.
type PathLogger struct {
	out     io.Writer
	enabled bool
}

func NewPathLogger(out io.Writer, enabled bool) *PathLogger {
	return &PathLogger{out: out, enabled: enabled}
}

func (l *PathLogger) Checking(path string) {
	if l.enabled {
		fmt.Fprintf(l.out, "Checking '%s'...\n", path)
	}
}
