package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-repopick/internal/format"
)

func (a *App) newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>...",
		Short: "Run one search and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, strings.Join(args, " "))
		},
	}
}

func (a *App) runSearch(cmd *cobra.Command, query string) error {
	w := cmd.OutOrStdout()

	repos, err := a.Searcher.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("searching repositories: %w", err)
	}

	if a.JSON {
		return format.WriteJSON(w, repos)
	}
	fmt.Fprintf(w, "Total repositories found: %d\n", len(repos))
	return format.WriteStars(w, repos)
}
