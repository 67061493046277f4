package style

import "strings"

// Block is a run of consecutive comment lines.
type Block struct {
	// StartLine is the 1-based line number of the first line.
	StartLine int
	// Raw holds each line with leading whitespace removed.
	Raw []string
	// Stripped holds each line with the line-comment prefix also removed.
	Stripped []string
}

// Accumulator groups comment lines into blocks. It is either closed (no
// block in progress) or open (collecting lines of the current block).
type Accumulator struct {
	prefix string
	open   bool
	block  Block
}

// NewAccumulator returns a closed accumulator for the given line prefix.
func NewAccumulator(linePrefix string) *Accumulator {
	return &Accumulator{prefix: linePrefix}
}

// IsComment reports whether a left-trimmed line is a line comment.
func (a *Accumulator) IsComment(line string) bool {
	return strings.HasPrefix(line, a.prefix)
}

// Add appends the left-trimmed comment line at lineNum to the current block,
// opening a new block if none is in progress. It reports false, leaving the
// state untouched, if line is not a comment.
func (a *Accumulator) Add(lineNum int, line string) bool {
	if !a.IsComment(line) {
		return false
	}
	if !a.open {
		a.open = true
		a.block = Block{StartLine: lineNum}
	}
	a.block.Raw = append(a.block.Raw, line)
	a.block.Stripped = append(a.block.Stripped, line[len(a.prefix):])
	return true
}

// Close finishes the block in progress, if any, and returns it. The
// accumulator is closed afterwards.
func (a *Accumulator) Close() (Block, bool) {
	if !a.open {
		return Block{}, false
	}
	b := a.block
	a.open = false
	a.block = Block{}
	return b, true
}
