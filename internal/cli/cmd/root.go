// Package cmd provides Cobra CLI commands for floatpane.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/floatpane/internal/cli"
	"github.com/bnema/floatpane/internal/cli/styles"
	"github.com/bnema/floatpane/internal/domain/build"
)

// ownsTerminal marks commands whose UI takes over the terminal.
const ownsTerminal = "owns-terminal"

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "floatpane",
		Short: "A draggable overlay window that docks to screen edges",
		Long: `Floatpane - a floating overlay window you can drag, resize and park.

Drag the title bar against the left or right edge and the window docks as a
narrow peek; tap the peek to bring it back where it was.

Features:
  - Drag, resize and edge docking with animated snap and restore
  - Rounded corners while floating, half-circle peeks while docked
  - Content gestures: double tap to top, swipes and flings for history
  - Geometry survives restarts (sqlite or file storage)
  - Terminal simulator and scripted replays for headless use

Use 'floatpane run' to open the overlay on an X11 display, 'floatpane sim'
to try it in the terminal, or 'floatpane replay' to run a scripted session.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile:   configFile,
				OwnsTerminal: cmd.Annotations[ownsTerminal] == "true",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/floatpane/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

// confirm asks a yes/no question on the terminal. skip answers yes without
// prompting.
func confirm(theme *styles.Theme, message string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}
	final, err := tea.NewProgram(styles.NewConfirm(theme, message)).Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return final.(styles.ConfirmModel).Result(), nil
}
