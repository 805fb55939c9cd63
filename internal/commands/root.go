package commands

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stahnma/gh-repopick/internal/cache"
	"github.com/stahnma/gh-repopick/internal/config"
	"github.com/stahnma/gh-repopick/internal/format"
	ghub "github.com/stahnma/gh-repopick/internal/github"
	"github.com/stahnma/gh-repopick/internal/tui"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the picker is started without a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal; use the search command instead")

// App holds shared application state.
type App struct {
	Config   config.Config
	Cache    *cache.Cache
	GHClient ghub.Client
	Searcher *ghub.Searcher
	Logger   *zap.Logger
	JSON     bool
	GitSHA   string
	GitDirty string

	// Overridable for tests.
	runProgram func(m *tui.Model) (*tui.Model, error)
	isTerminal func() bool
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, gitSHA, gitDirty string) *App {
	return &App{
		Config:   cfg,
		Cache:    cache.New(),
		GitSHA:   gitSHA,
		GitDirty: gitDirty,
	}
}

// setup validates the configuration and builds the logger and searcher.
func (a *App) setup() error {
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if a.Logger == nil {
		a.Logger = NewLogger(a.Config)
	}
	return a.ensureSearcher()
}

// ensureSearcher creates the GitHub client and searcher if they don't exist.
func (a *App) ensureSearcher() error {
	if a.Searcher != nil {
		return nil
	}
	if a.GHClient == nil {
		client, err := ghub.NewClient(nil, a.Config.APIURL)
		if err != nil {
			return err
		}
		a.GHClient = client
	}
	if a.Cache == nil {
		a.Cache = cache.New()
	}
	a.Searcher = ghub.NewSearcher(a.GHClient, a.Cache, a.Logger, ghub.SearchOptions{
		PerPage: a.Config.PerPage,
		NoCache: a.Config.NoCache,
	})
	return nil
}

// Close flushes the logger.
func (a *App) Close() {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}

// NewRootCommand creates the root cobra command with all subcommands.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gh-repopick",
		Short: "Search GitHub repositories as you type and pick a list of them.",
		Long: `Starts an interactive picker. Type to search GitHub repositories,
click a suggestion (or press enter) to add it, and click [x] to remove one.
The picked repositories are printed to stdout on exit.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPicker(cmd)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&a.Config.NoCache, config.KeyNoCache, a.Config.NoCache, "Disable the in-memory result cache")
	flags.BoolVar(&a.Config.DebugMode, config.KeyDebug, a.Config.DebugMode, "Log at debug level")
	flags.DurationVar(&a.Config.Delay, config.KeyDelay, a.Config.Delay, "Quiet period after typing before searching")
	flags.IntVar(&a.Config.PerPage, config.KeyPerPage, a.Config.PerPage, "Number of suggestions per search")
	flags.BoolVar(&a.Config.DiscardStale, config.KeyDiscardStale, a.Config.DiscardStale, "Drop search responses that arrive after a newer one")
	flags.StringVar(&a.Config.APIURL, config.KeyAPIURL, a.Config.APIURL, "GitHub API base URL")
	flags.StringVar(&a.Config.LogFile, config.KeyLogFile, a.Config.LogFile, "File for diagnostic logs (empty disables logging)")
	flags.BoolVar(&a.JSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(a.newSearchCommand())
	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}

func (a *App) runPicker(cmd *cobra.Command) error {
	isTerminal := a.isTerminal
	if isTerminal == nil {
		isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	}
	if !isTerminal() {
		return ErrNotTerminal
	}
	run := a.runProgram
	if run == nil {
		run = runProgram
	}

	m := tui.NewModel(cmd.Context(), a.Searcher, tui.Options{
		Delay:        a.Config.Delay,
		DiscardStale: a.Config.DiscardStale,
	})
	a.Logger.Debug("starting picker",
		zap.Duration("delay", a.Config.Delay),
		zap.Int("per_page", a.Config.PerPage))

	final, err := run(m)
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	repos := final.Selected()
	w := cmd.OutOrStdout()
	if a.JSON {
		return format.WriteJSON(w, repos)
	}
	return format.WriteNames(w, repos)
}

// runProgram draws on stderr so stdout only carries the selection.
func runProgram(m *tui.Model) (*tui.Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	fm, ok := final.(*tui.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return fm, nil
}
