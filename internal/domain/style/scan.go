package style

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/commentstyle/commentstyle/internal/domain"
)

// Scan reads the lines of r and calls emit for every violation found, in
// line order. Each comment block yields at most one violation. path is only
// used to label violations.
func Scan(path string, r io.Reader, syntax domain.CommentSyntax, emit func(domain.Violation)) error {
	acc := NewAccumulator(syntax.Line)
	br := bufio.NewReader(r)

	closeBlock := func() {
		if b, ok := acc.Close(); ok {
			if f, bad := ValidateBlock(b.Stripped); bad {
				emit(domain.NewViolation(path, b.StartLine+f.Offset, f.Code, domain.Preview{
					Lines: b.Raw,
					Index: f.Offset,
				}))
			}
		}
	}

	for lineNum := 1; ; lineNum++ {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if raw == "" && err != nil {
			break
		}

		line := strings.TrimLeftFunc(trimNewline(raw), unicode.IsSpace)
		comment := acc.IsComment(line)

		// Close the block before checking the line that ends it, so the
		// block's violation (on an earlier line) is reported first and
		// output stays in line order.
		if !comment {
			closeBlock()
		}

		if syntax.Block != "" && strings.HasPrefix(line, syntax.Block) {
			emit(lineViolation(path, lineNum, domain.CodeBlockComment, line))
		}

		if comment {
			acc.Add(lineNum, line)
		} else if idx := TrailingComment(line, syntax.Line); idx >= 0 {
			emit(lineViolation(path, lineNum, domain.CodeTrailingComment, line))
		}

		if err != nil {
			break
		}
	}

	closeBlock()
	return nil
}

// TrailingComment returns the index of the first occurrence of prefix in
// line that is not inside a string, or -1. Occurrences are non-overlapping.
func TrailingComment(line, prefix string) int {
	if prefix == "" {
		return -1
	}
	for from := 0; from <= len(line); {
		i := strings.Index(line[from:], prefix)
		if i < 0 {
			return -1
		}
		i += from
		if !InString(line, i) {
			return i
		}
		from = i + len(prefix)
	}
	return -1
}

func lineViolation(path string, lineNum int, code domain.Code, line string) domain.Violation {
	return domain.NewViolation(path, lineNum, code, domain.Preview{Lines: []string{line}})
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
