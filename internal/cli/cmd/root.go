// Package cmd provides Cobra CLI commands for dimmer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/cli"
	"github.com/bnema/dimmer/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
)

var rootCmd = &cobra.Command{
	Use:   "dimmer",
	Short: "A minimal single-tab browser shell",
	Long: `Dimmer - a deliberately dim browser with one tab and one job.

A minimal single-tab browser shell for keyboard-driven desktops, built
with GTK4 and WebKitGTK.

Features:
  - One window, one tab, one address bar
  - Address bar input resolved as URL or search query
  - Search shortcuts via prefixes (gh:, w:, ddg:, etc.)
  - Per-domain zoom levels persisted across sessions
  - Live config reload (search engine, shortcuts, default zoom)

Use 'dimmer browse' to launch the graphical browser, or explore the
subcommands for CLI-based operations.`,
	PersistentPreRunE: initApp,
	PersistentPostRun: closeApp,
}

// initApp builds the shared App container. Commands without app
// dependencies skip it.
func initApp(cmd *cobra.Command, _ []string) error {
	switch cmd.Name() {
	case "help", "completion":
		return nil
	}

	a, err := cli.NewApp()
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	a.BuildInfo = buildInfo
	app = a
	return nil
}

func closeApp(*cobra.Command, []string) {
	if app != nil {
		_ = app.Close()
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app for use by subcommands.
func GetApp() *cli.App {
	return app
}

// browseCmd exists for help output only; main.go intercepts "browse"
// before cobra dispatch so the GTK main loop owns the process.
var browseCmd = &cobra.Command{
	Use:   "browse [url|query]",
	Short: "Launch the graphical browser",
	Long: `Launch the GTK4 graphical browser.

If an argument is provided it is resolved like address bar input: a URL
navigates directly, anything else goes to the configured search engine.

Examples:
  dimmer browse                  # Open browser to homepage
  dimmer browse example.com      # Open browser to URL`,
	Run: func(*cobra.Command, []string) {},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// SetBuildInfo records version info injected at link time; main.go calls
// it before Execute.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
