package style_test

import (
	"os"
	"strings"
	"testing"

	"github.com/commentstyle/commentstyle/internal/domain"
	"github.com/commentstyle/commentstyle/internal/domain/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hashSyntax  = domain.CommentSyntax{Line: "#", Block: "##"}
	slashSyntax = domain.CommentSyntax{Line: "//", Block: "/*"}
)

type found struct {
	Line int
	Code domain.Code
}

func scanString(t *testing.T, src string, syntax domain.CommentSyntax) []domain.Violation {
	t.Helper()
	var got []domain.Violation
	err := style.Scan("test.txt", strings.NewReader(src), syntax, func(v domain.Violation) {
		got = append(got, v)
	})
	require.NoError(t, err)
	return got
}

func summarize(vs []domain.Violation) []found {
	out := make([]found, 0, len(vs))
	for _, v := range vs {
		out = append(out, found{v.Line, v.Code})
	}
	return out
}

func TestScan_SingleLineBlockIsClean(t *testing.T) {
	assert.Empty(t, scanString(t, "# Hello world.\n", hashSyntax))
}

func TestScan_SectionWithoutPunctuation(t *testing.T) {
	got := scanString(t, "# Hello\n#\n# world.\n", hashSyntax)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, domain.CodeNoSectionEndingPunctuation, got[0].Code)
	assert.Equal(t, domain.Preview{Lines: []string{"# Hello", "#", "# world."}, Index: 0}, got[0].Preview)
}

func TestScan_BlockStartsEmpty(t *testing.T) {
	got := scanString(t, "# \n", domain.CommentSyntax{Line: "# ", Block: "##"})
	assert.Equal(t, []found{{1, domain.CodeBlockStartsEmpty}}, summarize(got))
}

func TestScan_TrailingComment(t *testing.T) {
	got := scanString(t, "x = 1  # trailing note\n", domain.CommentSyntax{Line: "# "})
	require.Len(t, got, 1)
	assert.Equal(t, domain.CodeTrailingComment, got[0].Code)
	assert.Equal(t, domain.Preview{Lines: []string{"x = 1  # trailing note"}}, got[0].Preview)
}

func TestScan_CommentMarkerInsideString(t *testing.T) {
	assert.Empty(t, scanString(t, "x = '# not a comment'\n", domain.CommentSyntax{Line: "# "}))
}

func TestScan_MarkerAfterString(t *testing.T) {
	got := scanString(t, "x = '# a' # b\n", domain.CommentSyntax{Line: "#"})
	assert.Equal(t, []found{{1, domain.CodeTrailingComment}}, summarize(got))
}

func TestScan_BlockComment(t *testing.T) {
	got := scanString(t, "## Block style\n", domain.CommentSyntax{Line: "# ", Block: "##"})
	require.NotEmpty(t, got)
	assert.Equal(t, found{1, domain.CodeBlockComment}, summarize(got)[0])
}

func TestScan_BlockCommentInsideCommentBlock(t *testing.T) {
	got := scanString(t, "# Intro.\n## Heading.\n", hashSyntax)
	assert.Equal(t, []found{
		{2, domain.CodeBlockComment},
		{2, domain.CodeNoLeadingSpace},
	}, summarize(got))
}

func TestScan_NoBlockPrefixDisablesBlockCheck(t *testing.T) {
	assert.Empty(t, scanString(t, "/* fine */\n", domain.CommentSyntax{Line: "//"}))
}

func TestScan_BlockClosedAtEOFWithoutNewline(t *testing.T) {
	got := scanString(t, "x := 1\n// No period", slashSyntax)
	assert.Equal(t, []found{{2, domain.CodeNoEndingPunctuation}}, summarize(got))
}

func TestScan_IndentedCommentsAndCRLF(t *testing.T) {
	src := "func f() {\r\n\t// Indented comment.\r\n\t\t// Still the same block.\r\n}\r\n"
	assert.Empty(t, scanString(t, src, slashSyntax))
}

func TestScan_BlockViolationPrecedesTerminatingLine(t *testing.T) {
	got := scanString(t, "// No period\nx := 1 // trailing.\n", slashSyntax)
	assert.Equal(t, []found{
		{1, domain.CodeNoEndingPunctuation},
		{2, domain.CodeTrailingComment},
	}, summarize(got))
}

func TestScan_BlockViolationPrecedesBlockCommentOnTerminatingLine(t *testing.T) {
	got := scanString(t, "// No period\n/* block */\n", slashSyntax)
	assert.Equal(t, []found{
		{1, domain.CodeNoEndingPunctuation},
		{2, domain.CodeBlockComment},
	}, summarize(got))
}

func TestScan_EmptyInput(t *testing.T) {
	assert.Empty(t, scanString(t, "", slashSyntax))
}

func TestScan_Fixture(t *testing.T) {
	f, err := os.Open("../../../testdata/comments/sample.go")
	require.NoError(t, err)
	defer f.Close()

	var got []domain.Violation
	require.NoError(t, style.Scan("sample.go", f, slashSyntax, func(v domain.Violation) {
		got = append(got, v)
	}))

	assert.Equal(t, []found{
		{5, domain.CodeBlockComment},
		{7, domain.CodeNoLeadingSpace},
		{9, domain.CodeStartsWithLowercase},
		{16, domain.CodeStartsWithLowercase},
		{18, domain.CodeNoEndingPunctuation},
		{20, domain.CodeNoSectionEndingPunctuation},
		{24, domain.CodeNoEndingPunctuation},
		{28, domain.CodeBlockStartsEmpty},
		{32, domain.CodeBlockEndsEmpty},
		{34, domain.CodeNoLeadingSpace},
		{36, domain.CodeStartsWithLowercaseAfterTag},
		{38, domain.CodeNoLeadingSpaceAfterTag},
		{41, domain.CodeTrailingComment},
		{42, domain.CodeNoEndingPunctuation},
	}, summarize(got))

	for _, v := range got {
		assert.Equal(t, "sample.go", v.Path)
	}
}

func TestScan_Idempotent(t *testing.T) {
	data, err := os.ReadFile("../../../testdata/comments/sample.go")
	require.NoError(t, err)

	first := scanString(t, string(data), slashSyntax)
	second := scanString(t, string(data), slashSyntax)
	assert.Equal(t, first, second)
}

func TestTrailingComment(t *testing.T) {
	assert.Equal(t, -1, style.TrailingComment("x := 1", "//"))
	assert.Equal(t, 7, style.TrailingComment("x := 1 // c", "//"))
	assert.Equal(t, -1, style.TrailingComment(`s := "// c"`, "//"))
	assert.Equal(t, 12, style.TrailingComment(`s := "//" + // c`, "//"))
	assert.Equal(t, -1, style.TrailingComment("x", ""))
}
