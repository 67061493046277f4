package domain

// CommentSyntax describes how comments are written in the checked files.
// An empty Block disables block-comment detection.
type CommentSyntax struct {
	Line  string `json:"line"`
	Block string `json:"block,omitempty"`
}

// Rule is a validated, resolved rule: the concrete files to check, how their
// comments are written, and which violation codes are tolerated.
type Rule struct {
	Index  int           `json:"index"`
	Paths  []string      `json:"paths"`
	Syntax CommentSyntax `json:"syntax"`
	Allow  map[Code]bool `json:"allow,omitempty"`
}

// Allows reports whether violations with code c are suppressed by the rule.
func (r Rule) Allows(c Code) bool {
	return r.Allow[c]
}
