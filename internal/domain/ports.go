package domain

// ConfigLoader reads a rule set from a file.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// PathResolver expands ordered include/exclude patterns into files under root.
type PathResolver interface {
	Resolve(root string, patterns []PathPattern) ([]string, error)
}

// GitInfo answers questions about the git repository containing a path.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
	TrackedFiles(path string) (map[string]bool, error)
}

// Reporter receives violations and read failures as they are found.
type Reporter interface {
	Report(v Violation) error
	ReportError(path string, err error) error
}

// ProgressLogger is notified before each file is checked.
type ProgressLogger interface {
	Checking(path string)
}
