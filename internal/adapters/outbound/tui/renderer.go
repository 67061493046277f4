package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/commentstyle/commentstyle/internal/domain"
	"github.com/olekukonko/tablewriter"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(success)
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(danger)
)

// RenderSummary renders a per-file table of dirty files followed by a
// one-line verdict.
func RenderSummary(res *domain.CheckResult) string {
	var b strings.Builder

	var dirty []domain.FileResult
	suppressed := 0
	for _, f := range res.Files {
		suppressed += f.Suppressed
		if !f.Clean() {
			dirty = append(dirty, f)
		}
	}

	if len(dirty) > 0 {
		var buf bytes.Buffer
		table := tablewriter.NewWriter(&buf)
		table.SetHeader([]string{"File", "Violations", "Suppressed", "Error"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetAutoWrapText(false)
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
		})
		for _, f := range dirty {
			table.Append([]string{
				f.Path,
				fmt.Sprintf("%d", len(f.Violations)),
				fmt.Sprintf("%d", f.Suppressed),
				f.Error,
			})
		}
		table.Render()
		b.WriteString(buf.String())
		b.WriteString("\n")
	}

	checked := fmt.Sprintf("%d files checked", len(res.Files))
	if suppressed > 0 {
		checked += fmt.Sprintf(", %d suppressed", suppressed)
	}

	if res.Clean {
		b.WriteString(passStyle.Render("✔ No comment style violations"))
	} else {
		b.WriteString(failStyle.Render(fmt.Sprintf("✘ %d violations in %d files", res.ViolationCount(), res.DirtyFiles())))
	}
	b.WriteString("  " + dimStyle.Render(checked) + "\n")

	return b.String()
}

// RenderCodes renders the table of violation codes and their messages.
func RenderCodes() string {
	var buf bytes.Buffer
	buf.WriteString(titleStyle.Render("Violation codes") + "\n\n")

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Code", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	for _, c := range domain.ValidCodes {
		table.Append([]string{string(c), c.Message()})
	}
	table.Render()

	return buf.String()
}
