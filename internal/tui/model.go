package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stahnma/gh-repopick/internal/debounce"
	ghub "github.com/stahnma/gh-repopick/internal/github"
)

// Screen rows above the panel. Row 0 is the title.
const (
	inputLine = 1
	panelTop  = 2
)

const defaultWidth = 80

// footerLines is the blank line and the help line under the list.
const footerLines = 2

// Fetcher looks up repositories for a query without ever failing.
type Fetcher interface {
	FetchRepositories(ctx context.Context, query string) []ghub.Repo
}

// Options tunes the model.
type Options struct {
	Delay        time.Duration
	DiscardStale bool
}

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Model is the root bubbletea model. It wires keystrokes through the
// debouncer to the fetcher, and suggestions from the panel to the list.
type Model struct {
	ctx     context.Context
	fetcher Fetcher
	opts    Options

	input     textinput.Model
	lastValue string
	panel     *Panel
	list      *SelectionList
	focus     focusArea

	debouncer *debounce.Debouncer[string]
	queries   chan string

	// seq numbers issued fetches; shown is the newest one displayed.
	seq   uint64
	shown uint64

	keys   keyMap
	help   help.Model
	styles *Styles
	width  int
	// height is zero until the first WindowSizeMsg; the list is not
	// windowed before then.
	height int

	// listOffset is the first entry drawn when the list is windowed.
	listOffset int
}

// NewModel creates the model. fetcher is called off the event loop.
func NewModel(ctx context.Context, fetcher Fetcher, opts Options) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search GitHub repositories"
	ti.CharLimit = 256
	ti.Focus()

	// queries carries the value each debounced call fired with. The model
	// reads the input itself when it arrives.
	queries := make(chan string, 1)
	m := &Model{
		ctx:     ctx,
		fetcher: fetcher,
		opts:    opts,
		input:   ti,
		panel:   NewPanel(),
		list:    NewSelectionList(),
		queries: queries,
		keys:    newKeyMap(),
		help:    help.New(),
		styles:  NewStyles(),
		width:   defaultWidth,
	}
	m.debouncer = debounce.New(opts.Delay, func(q string) {
		// Keep only the newest value if the loop has not read the last one.
		select {
		case <-queries:
		default:
		}
		select {
		case queries <- q:
		default:
		}
	})
	return m
}

// Selected returns the chosen repositories in insertion order.
func (m *Model) Selected() []ghub.Repo {
	return m.list.Repos()
}

// Add puts repo in the selection list as if it had been picked from the
// panel and moves the list cursor to it. It reports false for a repository
// that is already listed.
func (m *Model) Add(repo ghub.Repo) bool {
	if !m.list.Add(repo) {
		return false
	}
	m.list.SetCursor(m.list.Len() - 1)
	return true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForQuery())
}

func (m *Model) waitForQuery() tea.Cmd {
	ch := m.queries
	return func() tea.Msg {
		<-ch
		return queryMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.scrollToCursor()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return nil

	case queryMsg:
		// The input may have changed since the timer fired, e.g. cleared
		// by a pick.
		return tea.Batch(m.waitForQuery(), m.handleQuery(m.input.Value()))

	case resultsMsg:
		m.handleResults(msg)
		return nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInput(msg)
}

// handleQuery runs on the event loop once the input has been quiet.
func (m *Model) handleQuery(raw string) tea.Cmd {
	query := strings.TrimSpace(raw)
	m.seq++
	if query == "" {
		m.panel.Hide()
		m.shown = m.seq
		return nil
	}

	seq, fetcher, ctx := m.seq, m.fetcher, m.ctx
	return func() tea.Msg {
		return resultsMsg{seq: seq, query: query, repos: fetcher.FetchRepositories(ctx, query)}
	}
}

func (m *Model) handleResults(msg resultsMsg) {
	if m.opts.DiscardStale && msg.seq < m.shown {
		return
	}
	if msg.seq > m.shown {
		m.shown = msg.seq
	}
	m.panel.Display(msg.repos)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.debouncer.Cancel()
		return tea.Quit

	case key.Matches(msg, m.keys.Hide):
		if m.focus == focusList {
			m.focusInput()
			return nil
		}
		if m.panel.Visible() {
			m.panel.Hide()
			return nil
		}
		m.debouncer.Cancel()
		return tea.Quit

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusInput {
			m.focusList()
		} else {
			m.focusInput()
		}
		return nil
	}

	if m.focus == focusList {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.list.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.list.MoveDown()
		case key.Matches(msg, m.keys.Remove):
			if e, ok := m.list.Selected(); ok {
				m.list.Remove(e)
			}
		}
		return nil
	}

	if m.panel.Visible() {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.panel.MoveUp()
			return nil
		case key.Matches(msg, m.keys.Down):
			m.panel.MoveDown()
			return nil
		case key.Matches(msg, m.keys.Select):
			m.choose(m.panel.Cursor())
			return nil
		}
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the text input and debounces any change.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.lastValue {
		m.lastValue = v
		m.debouncer.Call(v)
	}
	return cmd
}

// choose adds the suggestion at i, clears the input and hides the panel.
// Clearing the input is not an input change and starts no search, and a
// search still waiting on the debouncer is dropped.
func (m *Model) choose(i int) {
	repo, ok := m.panel.At(i)
	if !ok {
		return
	}
	m.Add(repo)
	m.input.SetValue("")
	m.lastValue = ""
	m.debouncer.Cancel()
	m.panel.Hide()
}

func (m *Model) focusInput() {
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) focusList() {
	if m.list.Len() == 0 {
		return
	}
	m.focus = focusList
	m.input.Blur()
}

// listTop is the first row of the selection entries in the full frame.
func (m *Model) listTop() int {
	top := panelTop
	if m.panel.Visible() {
		top += m.panel.Len()
	}
	// blank line, then the header
	return top + 2
}

// listCapacity is how many entries fit between the header and the footer.
func (m *Model) listCapacity() int {
	if m.height <= 0 {
		return max(m.list.Len(), 1)
	}
	return max((m.height-m.listTop()-footerLines)/entryHeight, 1)
}

// scrollToCursor keeps the list cursor inside the drawn window.
func (m *Model) scrollToCursor() {
	capacity := m.listCapacity()
	cursor := m.list.Cursor()
	if cursor < m.listOffset {
		m.listOffset = cursor
	}
	if cursor >= m.listOffset+capacity {
		m.listOffset = cursor - capacity + 1
	}
	m.listOffset = max(min(m.listOffset, m.list.Len()-capacity), 0)
}

// clippedRows is how many rows at the top of lines do not fit on screen.
// The renderer drops those rows, so View drops them too.
func (m *Model) clippedRows(lines []string) int {
	if m.height <= 0 || len(lines) <= m.height {
		return 0
	}
	return len(lines) - m.height
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.MoveUp()
		return
	case tea.MouseButtonWheelDown:
		m.list.MoveDown()
		return
	case tea.MouseButtonLeft:
	default:
		return
	}

	y := msg.Y + m.clippedRows(m.frame())
	if m.panel.Visible() && y >= panelTop && y < panelTop+m.panel.Len() {
		m.choose(y - panelTop)
		return
	}
	if y == inputLine {
		m.focusInput()
		return
	}

	// Anything else is outside both the input and the panel. Resolve the
	// entry against the layout the user clicked on before hiding.
	top, capacity := m.listTop(), m.listCapacity()
	m.panel.Hide()
	if y < top {
		return
	}
	row := (y - top) / entryHeight
	if row >= capacity {
		return
	}
	idx := m.listOffset + row
	e, ok := m.list.At(idx)
	if !ok {
		return
	}
	start, end := removeSpan()
	if (y-top)%entryHeight == 0 && msg.X >= start && msg.X < end {
		m.list.Remove(e)
		return
	}
	m.list.SetCursor(idx)
}

// frame lays out every row of the view, with the list windowed.
func (m *Model) frame() []string {
	lines := []string{
		m.styles.Title.Render(ansi.Truncate("GitHub repository search", m.width, "…")),
		m.input.View(),
	}
	lines = append(lines, m.panel.Lines(m.width, m.styles)...)

	n, capacity := m.list.Len(), m.listCapacity()
	header := fmt.Sprintf("Selected repositories (%d)", n)
	if n > capacity {
		header += fmt.Sprintf(", showing %d-%d", m.listOffset+1, min(m.listOffset+capacity, n))
	}
	lines = append(lines, "", m.styles.Header.Render(ansi.Truncate(header, m.width, "…")))

	entries := m.list.Lines(m.width, m.focus == focusList, m.styles)
	lo := min(m.listOffset*entryHeight, len(entries))
	hi := min(lo+capacity*entryHeight, len(entries))
	lines = append(lines, entries[lo:hi]...)
	lines = append(lines, "", m.styles.Dim.Render(m.help.View(m.keys)))
	return lines
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := m.frame()
	return strings.Join(lines[m.clippedRows(lines):], "\n")
}
