package domain

// Preview is the excerpt shown under a violation: the lines of the offending
// comment block (or the single offending line) and the index of the flagged one.
type Preview struct {
	Lines []string `json:"lines"`
	Index int      `json:"index"`
}

// Violation is a single style problem found in a file.
type Violation struct {
	Path    string  `json:"path"`
	Line    int     `json:"line"`
	Code    Code    `json:"code"`
	Message string  `json:"message"`
	Preview Preview `json:"preview"`
}

// NewViolation builds a violation, filling in the message for code.
func NewViolation(path string, line int, code Code, preview Preview) Violation {
	return Violation{
		Path:    path,
		Line:    line,
		Code:    code,
		Message: code.Message(),
		Preview: preview,
	}
}

// FileResult records the outcome of checking one file under one rule.
type FileResult struct {
	Path       string      `json:"path"`
	Rule       int         `json:"rule"`
	Violations []Violation `json:"violations,omitempty"`
	Suppressed int         `json:"suppressed,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Clean reports whether the file produced no reported violations and was
// read successfully. Suppressed violations do not make a file dirty.
func (f FileResult) Clean() bool {
	return len(f.Violations) == 0 && f.Error == ""
}

// CheckResult aggregates the outcome of a whole run.
type CheckResult struct {
	Clean  bool         `json:"clean"`
	Commit string       `json:"commit,omitempty"`
	Files  []FileResult `json:"files"`
}

// ViolationCount returns the number of reported violations across all files.
func (r CheckResult) ViolationCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Violations)
	}
	return n
}

// DirtyFiles returns the number of files that were not clean.
func (r CheckResult) DirtyFiles() int {
	n := 0
	for _, f := range r.Files {
		if !f.Clean() {
			n++
		}
	}
	return n
}
