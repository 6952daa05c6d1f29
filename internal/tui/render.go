package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/vvka-141/tabload/pkg/tabload"
)

// RenderText writes a bordered head of data, up to limit rows, with each
// header annotated by its column type.
func RenderText(out io.Writer, title string, data *tabload.Table, limit int) error {
	rows := previewRows(data, limit)

	headers := data.Columns()
	for i, typ := range data.Types() {
		headers[i] = fmt.Sprintf("%s (%s)", headers[i], typ)
	}

	body := make([][]string, len(rows))
	for i, row := range rows {
		body[i] = row
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorSecondary)).
		Headers(headers...).
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return HeaderStyle
			}
			if row >= 0 && row < len(body) && body[row][col] == SymbolNull {
				return NullStyle
			}
			return CellStyle
		})

	r, c := data.Shape()
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("showing %d of %d rows, %d columns", len(rows), r, c)))
	b.WriteString("\n")

	_, err := io.WriteString(out, b.String())
	return err
}

// Summary is the outcome line printed after a load.
type Summary struct {
	Source   string
	Rows     int
	Columns  int
	Loaded   int
	Skipped  []string
	Warnings int
}

// RenderSummary formats a one-paragraph load summary.
func RenderSummary(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %d rows × %d columns", SuccessStyle.Render(SymbolCheck), s.Source, s.Rows, s.Columns)
	if s.Loaded > 1 {
		fmt.Fprintf(&b, " from %d files", s.Loaded)
	}
	b.WriteString("\n")

	if s.Warnings > 0 {
		fmt.Fprintf(&b, "  %s %d file(s) disagree with the reference columns\n", WarningStyle.Render(SymbolBullet), s.Warnings)
	}
	for _, name := range s.Skipped {
		fmt.Fprintf(&b, "  %s skipped %s\n", ErrorStyle.Render(SymbolCross), name)
	}
	return b.String()
}
