package tui

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/tabload/pkg/tabload"
)

const (
	maxColumnWidth = 32
	chromeHeight   = 6 // title, subtitle, help and borders around the table
)

// Preview is a scrollable full-screen view of the first rows of a table.
type Preview struct {
	title    string
	subtitle string
	table    table.Model
	keys     KeyMap
	help     help.Model
}

// NewPreview builds a Preview of up to limit rows. A non-positive limit shows every row.
func NewPreview(title string, data *tabload.Table, limit int) Preview {
	rows := previewRows(data, limit)
	names := data.Columns()

	columns := make([]table.Column, len(names))
	for i, name := range names {
		width := utf8.RuneCountInString(name)
		for _, row := range rows {
			width = max(width, utf8.RuneCountInString(row[i]))
		}
		columns[i] = table.Column{Title: name, Width: min(width, maxColumnWidth)}
	}

	keys := DefaultKeyMap()
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorSecondary).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(ColorHighlight).
		Background(ColorPrimary).
		Bold(false)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows), tabload.DefaultPreviewRows)+1),
		table.WithKeyMap(keys.KeyMap),
		table.WithStyles(styles),
	)

	r, c := data.Shape()
	return Preview{
		title:    title,
		subtitle: fmt.Sprintf("%d rows × %d columns, showing %d", r, c, len(rows)),
		table:    t,
		keys:     keys,
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (p Preview) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.table.SetHeight(max(msg.Height-chromeHeight, 3))
		p.table.SetWidth(msg.Width)
		p.help.Width = msg.Width
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			return p, tea.Quit
		case key.Matches(msg, p.keys.Help):
			p.help.ShowAll = !p.help.ShowAll
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p Preview) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(p.title),
		SubtitleStyle.Render(p.subtitle),
		p.table.View(),
		HelpStyle.Render(p.help.View(p.keys)),
	)
}

// Cursor returns the selected row.
func (p Preview) Cursor() int {
	return p.table.Cursor()
}

// RunPreview shows data interactively when attached to a terminal and
// falls back to RenderText on out otherwise.
func RunPreview(out io.Writer, title string, data *tabload.Table, limit int) error {
	if !IsInteractive() {
		return RenderText(out, title, data, limit)
	}

	_, err := tea.NewProgram(NewPreview(title, data, limit), tea.WithAltScreen()).Run()
	return err
}

func previewRows(data *tabload.Table, limit int) []table.Row {
	n := data.Rows()
	if limit > 0 {
		n = min(n, limit)
	}

	rows := make([]table.Row, n)
	for i := range rows {
		values := data.Row(i)
		row := make(table.Row, len(values))
		for j, v := range values {
			if v == nil {
				row[j] = SymbolNull
			} else {
				row[j] = tabload.FormatValue(v)
			}
		}
		rows[i] = row
	}
	return rows
}
