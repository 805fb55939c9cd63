package main

import (
	"fmt"
	"os"

	"github.com/stahnma/gh-repopick/internal/commands"
	"github.com/stahnma/gh-repopick/internal/config"
)

var (
	GitSHA   string
	GitDirty string
)

func main() {
	cfg := config.FromEnvironment()

	app := commands.NewApp(cfg, GitSHA, GitDirty)
	rootCmd := app.NewRootCommand()
	err := rootCmd.Execute()
	app.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
