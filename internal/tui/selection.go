package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	ghub "github.com/stahnma/gh-repopick/internal/github"
)

const (
	entryHeight   = 3
	entryIndent   = 2
	removeControl = "[x]"
	removeGap     = 1
)

// Entry is one selected repository. Entries are compared by pointer.
type Entry struct {
	Repo ghub.Repo
}

// SelectionList holds the chosen repositories in insertion order, at most one
// per repository ID.
type SelectionList struct {
	entries []*Entry
	ids     map[string]*Entry
	cursor  int
}

// NewSelectionList returns an empty list.
func NewSelectionList() *SelectionList {
	return &SelectionList{ids: make(map[string]*Entry)}
}

// Add appends repo unless an entry with the same ID exists. It reports
// whether a row was added.
func (l *SelectionList) Add(repo ghub.Repo) bool {
	key := repo.Key()
	if _, exists := l.ids[key]; exists {
		return false
	}
	e := &Entry{Repo: repo}
	l.entries = append(l.entries, e)
	l.ids[key] = e
	return true
}

// Remove deletes exactly e, reporting whether it was present.
func (l *SelectionList) Remove(e *Entry) bool {
	for i, cur := range l.entries {
		if cur != e {
			continue
		}
		l.entries = append(l.entries[:i], l.entries[i+1:]...)
		if l.ids[e.Repo.Key()] == e {
			delete(l.ids, e.Repo.Key())
		}
		if l.cursor >= len(l.entries) && l.cursor > 0 {
			l.cursor = len(l.entries) - 1
		}
		return true
	}
	return false
}

// Len returns the number of entries.
func (l *SelectionList) Len() int {
	return len(l.entries)
}

// Entries returns the entries in insertion order.
func (l *SelectionList) Entries() []*Entry {
	return append([]*Entry(nil), l.entries...)
}

// Repos returns the selected repositories in insertion order.
func (l *SelectionList) Repos() []ghub.Repo {
	repos := make([]ghub.Repo, 0, len(l.entries))
	for _, e := range l.entries {
		repos = append(repos, e.Repo)
	}
	return repos
}

// At returns the entry at i.
func (l *SelectionList) At(i int) (*Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return nil, false
	}
	return l.entries[i], true
}

// Selected returns the entry under the cursor.
func (l *SelectionList) Selected() (*Entry, bool) {
	return l.At(l.cursor)
}

// Cursor returns the cursor index.
func (l *SelectionList) Cursor() int {
	return l.cursor
}

// SetCursor moves the cursor to i if it names an entry.
func (l *SelectionList) SetCursor(i int) {
	if i >= 0 && i < len(l.entries) {
		l.cursor = i
	}
}

// MoveUp moves the cursor up.
func (l *SelectionList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveDown moves the cursor down.
func (l *SelectionList) MoveDown() {
	if l.cursor < len(l.entries)-1 {
		l.cursor++
	}
}

// nameLine is the first line of an entry without indent or control.
func nameLine(e *Entry) string {
	return "Name: " + e.Repo.Name
}

// removeSpan returns the columns [start, end) of an entry's removal control.
// The control leads the name line so truncation never cuts it off.
func removeSpan() (int, int) {
	return entryIndent, entryIndent + len(removeControl)
}

// Lines renders entryHeight lines per entry.
func (l *SelectionList) Lines(width int, focused bool, styles *Styles) []string {
	gap := strings.Repeat(" ", removeGap)
	detailIndent := strings.Repeat(" ", entryIndent+len(removeControl)+removeGap)
	lines := make([]string, 0, len(l.entries)*entryHeight)
	for i, e := range l.entries {
		marker := "  "
		if focused && i == l.cursor {
			marker = styles.Cursor.Render("> ")
		}
		lines = append(lines,
			ansi.Truncate(marker+styles.Remove.Render(removeControl)+gap+styles.Entry.Render(nameLine(e)), width, "…"),
			ansi.Truncate(detailIndent+styles.Entry.Render("Owner: "+e.Repo.Owner), width, "…"),
			ansi.Truncate(detailIndent+styles.Entry.Render(fmt.Sprintf("Stars: %d", e.Repo.Stars)), width, "…"),
		)
	}
	return lines
}
