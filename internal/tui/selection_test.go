package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	ghub "github.com/stahnma/gh-repopick/internal/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionList_AddDeduplicatesByID(t *testing.T) {
	l := NewSelectionList()

	assert.True(t, l.Add(repo(1, "octo", "cat", 42)))
	assert.False(t, l.Add(repo(1, "octo", "cat", 42)))
	// Same ID with different content is still a duplicate.
	assert.False(t, l.Add(repo(1, "other", "renamed", 0)))
	assert.True(t, l.Add(repo(2, "octo", "dog", 1)))

	require.Equal(t, 2, l.Len())
	want := []ghub.Repo{repo(1, "octo", "cat", 42), repo(2, "octo", "dog", 1)}
	if diff := cmp.Diff(want, l.Repos()); diff != "" {
		t.Errorf("Repos mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectionList_ManyAddsOneEntryPerID(t *testing.T) {
	l := NewSelectionList()
	ids := []int64{3, 1, 3, 2, 1, 1, 3, 2}
	for _, id := range ids {
		l.Add(repo(id, "o", "r", 0))
	}

	var got []int64
	for _, r := range l.Repos() {
		got = append(got, r.ID)
	}
	assert.Equal(t, []int64{3, 1, 2}, got, "insertion order of first occurrence")
}

func TestSelectionList_RemoveExactEntry(t *testing.T) {
	l := NewSelectionList()
	// Identical visual content, distinct IDs.
	l.Add(repo(1, "octo", "cat", 42))
	l.Add(repo(2, "octo", "cat", 42))
	l.Add(repo(3, "octo", "cat", 42))

	middle, ok := l.At(1)
	require.True(t, ok)
	assert.True(t, l.Remove(middle))
	assert.False(t, l.Remove(middle), "removing twice should be a no-op")

	var got []int64
	for _, r := range l.Repos() {
		got = append(got, r.ID)
	}
	assert.Equal(t, []int64{1, 3}, got)
}

func TestSelectionList_RemoveFreesID(t *testing.T) {
	l := NewSelectionList()
	l.Add(repo(1, "octo", "cat", 42))
	e, _ := l.At(0)
	l.Remove(e)

	assert.True(t, l.Add(repo(1, "octo", "cat", 42)), "a removed ID can be added again")
	assert.Equal(t, 1, l.Len())
}

func TestSelectionList_RemoveForeignEntry(t *testing.T) {
	l := NewSelectionList()
	l.Add(repo(1, "octo", "cat", 42))

	stranger := &Entry{Repo: repo(1, "octo", "cat", 42)}
	assert.False(t, l.Remove(stranger))
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.Add(repo(1, "octo", "cat", 42)), "membership must survive a foreign remove")
}

func TestSelectionList_CursorClampsAfterRemove(t *testing.T) {
	l := NewSelectionList()
	l.Add(repo(1, "a", "one", 0))
	l.Add(repo(2, "a", "two", 0))
	l.MoveDown()
	require.Equal(t, 1, l.Cursor())

	e, _ := l.Selected()
	l.Remove(e)
	assert.Equal(t, 0, l.Cursor())

	l.MoveUp()
	assert.Equal(t, 0, l.Cursor())
	l.SetCursor(5)
	assert.Equal(t, 0, l.Cursor())
}

func TestSelectionList_Lines(t *testing.T) {
	l := NewSelectionList()
	l.Add(repo(1, "octo", "cat", 42))

	lines := l.Lines(80, false, NewStyles())
	require.Len(t, lines, entryHeight)
	assert.Contains(t, lines[0], "Name: cat")
	assert.Contains(t, lines[0], removeControl)
	assert.Contains(t, lines[1], "Owner: octo")
	assert.Contains(t, lines[2], "Stars: 42")

	start, end := removeSpan()
	plain := ansi.Strip(lines[0])
	assert.Equal(t, removeControl, plain[start:end])
}

func TestSelectionList_LinesNarrowKeepsRemoveControl(t *testing.T) {
	l := NewSelectionList()
	l.Add(repo(1, "octo", "a-repository-name-far-wider-than-the-terminal", 42))

	lines := l.Lines(12, false, NewStyles())
	start, end := removeSpan()
	plain := ansi.Strip(lines[0])
	require.GreaterOrEqual(t, len(plain), end)
	assert.Equal(t, removeControl, plain[start:end])
	assert.LessOrEqual(t, ansi.StringWidth(lines[0]), 12)
}

func TestSelectionList_LinesCursorMarker(t *testing.T) {
	l := NewSelectionList()
	l.Add(repo(1, "a", "one", 0))
	l.Add(repo(2, "a", "two", 0))
	l.MoveDown()

	lines := l.Lines(80, true, NewStyles())
	assert.True(t, strings.HasPrefix(ansi.Strip(lines[entryHeight]), "> "))
	assert.True(t, strings.HasPrefix(ansi.Strip(lines[0]), "  "))
}
