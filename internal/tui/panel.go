package tui

import (
	"github.com/charmbracelet/x/ansi"
	ghub "github.com/stahnma/gh-repopick/internal/github"
)

// Panel is the autocomplete dropdown under the search input. It owns the
// suggestions of the most recent search only.
type Panel struct {
	items   []ghub.Repo
	visible bool
	cursor  int
}

// NewPanel returns a hidden, empty panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Display replaces the rows with results, keeping their order. An empty
// result set hides the panel.
func (p *Panel) Display(results []ghub.Repo) {
	p.items = nil
	p.cursor = 0
	if len(results) == 0 {
		p.visible = false
		return
	}
	p.items = append([]ghub.Repo(nil), results...)
	p.visible = true
}

// Hide makes the panel non-visible. The rows are kept until the next Display.
func (p *Panel) Hide() {
	p.visible = false
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// Len returns the number of rows.
func (p *Panel) Len() int {
	return len(p.items)
}

// At returns the row at i.
func (p *Panel) At(i int) (ghub.Repo, bool) {
	if i < 0 || i >= len(p.items) {
		return ghub.Repo{}, false
	}
	return p.items[i], true
}

// Cursor returns the highlighted row.
func (p *Panel) Cursor() int {
	return p.cursor
}

// MoveUp moves the highlight up, stopping at the first row.
func (p *Panel) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the highlight down, stopping at the last row.
func (p *Panel) MoveDown() {
	if p.cursor < len(p.items)-1 {
		p.cursor++
	}
}

// Lines renders one line per row, or nothing when hidden.
func (p *Panel) Lines(width int, styles *Styles) []string {
	if !p.visible {
		return nil
	}
	lines := make([]string, 0, len(p.items))
	for i, item := range p.items {
		row := ansi.Truncate("  "+item.FullName, width, "…")
		if i == p.cursor {
			lines = append(lines, styles.Highlight.Render(row))
		} else {
			lines = append(lines, styles.Suggestion.Render(row))
		}
	}
	return lines
}
