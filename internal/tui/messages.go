package tui

import ghub "github.com/stahnma/gh-repopick/internal/github"

// queryMsg reports that the input has been quiet for the debounce delay.
type queryMsg struct{}

// resultsMsg carries a finished search back to the model.
type resultsMsg struct {
	seq   uint64
	query string
	repos []ghub.Repo
}
