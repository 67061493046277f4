package style

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/commentstyle/commentstyle/internal/domain"
)

// FormatViolation renders v as
//
//	path:line: (code) message:
//	  context line
//	> flagged line
//
// followed by a blank line.
func FormatViolation(v domain.Violation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d: (%s) %s:", v.Path, v.Line, v.Code, v.Code.Message())
	for i, line := range v.Preview.Lines {
		marker := " "
		if i == v.Preview.Index {
			marker = ">"
		}
		fmt.Fprintf(&b, "\n%s %s", marker, strings.TrimLeftFunc(line, unicode.IsSpace))
	}
	b.WriteString("\n\n")
	return b.String()
}
