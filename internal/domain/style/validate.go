package style

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/commentstyle/commentstyle/internal/domain"
)

// tags may prefix the first line of a section. The first match wins.
var tags = []string{"FIXME", "NOTE", "TODO"}

// codeIndent marks a line as a code sample, exempt from punctuation rules.
const codeIndent = "    "

// Finding is a violation located by its offset within a block.
type Finding struct {
	Offset int
	Code   domain.Code
}

// ValidateBlock checks the stripped lines of a comment block and returns the
// first violation found, if any.
func ValidateBlock(lines []string) (Finding, bool) {
	newSection := true
	prev := ""

	for i, line := range lines {
		if line == "" {
			switch {
			case i == 0:
				return Finding{i, domain.CodeBlockStartsEmpty}, true
			case i == len(lines)-1:
				return Finding{i, domain.CodeBlockEndsEmpty}, true
			case !endsSection(prev):
				return Finding{i - 1, domain.CodeNoSectionEndingPunctuation}, true
			}
			newSection = true
			prev = line
			continue
		}

		line, ok := trimPrefix(line, " ")
		if !ok {
			return Finding{i, domain.CodeNoLeadingSpace}, true
		}

		if newSection {
			rest, tagged, ok := trimTag(line)
			if tagged && !ok {
				return Finding{i, domain.CodeNoLeadingSpaceAfterTag}, true
			}
			line = rest

			if startsLower(line) {
				if tagged {
					return Finding{i, domain.CodeStartsWithLowercaseAfterTag}, true
				}
				return Finding{i, domain.CodeStartsWithLowercase}, true
			}
		}

		newSection = false
		prev = line
	}

	if !strings.HasPrefix(prev, codeIndent) && !strings.HasSuffix(prev, ".") {
		return Finding{len(lines) - 1, domain.CodeNoEndingPunctuation}, true
	}

	return Finding{}, false
}

func endsSection(line string) bool {
	return strings.HasPrefix(line, codeIndent) ||
		strings.HasSuffix(line, ".") ||
		strings.HasSuffix(line, ":")
}

// trimTag strips a leading tag and the single space that must follow it.
// tagged reports whether a tag was found; ok is false if the space is missing.
func trimTag(line string) (rest string, tagged, ok bool) {
	for _, tag := range tags {
		if after, found := trimPrefix(line, tag); found {
			rest, ok = trimPrefix(after, " ")
			return rest, true, ok
		}
	}
	return line, false, true
}

func trimPrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsLower(r)
}
