package tui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/commentstyle/commentstyle/internal/adapters/outbound/tui"
	"github.com/commentstyle/commentstyle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *domain.CheckResult {
	return &domain.CheckResult{
		Clean: false,
		Files: []domain.FileResult{
			{Path: "clean.go"},
			{Path: "quiet.go", Suppressed: 2},
			{Path: "dirty.go", Violations: []domain.Violation{
				domain.NewViolation("dirty.go", 3, domain.CodeTrailingComment, domain.Preview{Lines: []string{"x // y"}}),
			}},
			{Path: "locked.go", Error: "permission denied"},
		},
	}
}

func TestRenderSummary_ListsDirtyFiles(t *testing.T) {
	out := tui.RenderSummary(sampleResult())
	assert.Contains(t, out, "dirty.go")
	assert.Contains(t, out, "locked.go")
	assert.Contains(t, out, "permission denied")
	assert.NotContains(t, out, "clean.go")
	assert.NotContains(t, out, "quiet.go")
}

func TestRenderSummary_Verdict(t *testing.T) {
	out := tui.RenderSummary(sampleResult())
	assert.Contains(t, out, "1 violations in 2 files")
	assert.Contains(t, out, "4 files checked, 2 suppressed")
}

func TestRenderSummary_Clean(t *testing.T) {
	out := tui.RenderSummary(&domain.CheckResult{Clean: true, Files: []domain.FileResult{{Path: "a.go"}}})
	assert.Contains(t, out, "No comment style violations")
	assert.Contains(t, out, "1 files checked")
}

func TestRenderCodes_ListsEveryCode(t *testing.T) {
	out := tui.RenderCodes()
	for _, c := range domain.ValidCodes {
		assert.Contains(t, out, string(c))
	}
	assert.Contains(t, out, "Comments must be on their own line")
}

func TestTextReporter(t *testing.T) {
	var out, errOut bytes.Buffer
	r := tui.NewTextReporter(&out, &errOut)

	v := domain.NewViolation("a.go", 7, domain.CodeNoEndingPunctuation, domain.Preview{Lines: []string{"// Hi"}})
	require.NoError(t, r.Report(v))
	require.NoError(t, r.ReportError("b.go", errors.New("boom")))

	assert.Equal(t, "a.go:7: (no_ending_punctuation) Comment blocks must end with `.`:\n> // Hi\n\n", out.String())
	assert.Equal(t, "b.go: error: boom\n", errOut.String())
}

func TestPathLogger(t *testing.T) {
	var out bytes.Buffer
	tui.NewPathLogger(&out, false).Checking("a.go")
	assert.Empty(t, out.String())

	tui.NewPathLogger(&out, true).Checking("a.go")
	assert.Equal(t, "Checking 'a.go'...\n", out.String())
}
