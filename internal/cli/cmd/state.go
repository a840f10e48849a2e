package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/floatpane/internal/cli/styles"
)

var stateYes bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset the persisted window geometry",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored window geometry",
	RunE:  runStateShow,
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored window geometry",
	Long: `Delete the stored window geometry. The next launch opens the window at
its default size, centred horizontally.`,
	RunE: runStateReset,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateShowCmd, stateResetCmd)
	stateResetCmd.Flags().BoolVarP(&stateYes, "yes", "y", false, "skip confirmation prompt")
}

func runStateShow(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	g, err := app.WindowState.Get(app.Ctx())
	if err != nil {
		return fmt.Errorf("read window state: %w", err)
	}
	fmt.Print(styles.NewStateRenderer(app.Theme).Render(string(app.Config.Storage.Backend), g))
	return nil
}

func runStateReset(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ok, err := confirm(app.Theme, "Forget the stored window geometry?", stateYes)
	if err != nil || !ok {
		return err
	}
	if err := app.WindowState.Delete(app.Ctx()); err != nil {
		return fmt.Errorf("reset window state: %w", err)
	}
	fmt.Print(styles.NewStateRenderer(app.Theme).RenderReset())
	return nil
}
