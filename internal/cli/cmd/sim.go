package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/floatpane/internal/cli/model"
	"github.com/bnema/floatpane/internal/infrastructure/config"
	"github.com/bnema/floatpane/internal/logging"
)

var (
	simWidth   int
	simHeight  int
	simDensity float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Drive the overlay on a virtual screen in the terminal",
	Long: `Open the overlay on a virtual screen drawn in the terminal.

Drag the title bar with the mouse to move the window, drag the bottom-right
corner to resize it and push it against a side to dock it. Keyboard shortcuts
cover docking, restoring, expanding and rotating the screen; press ? for the
full list.

Logs go to the session log file while the simulator owns the terminal; use
'floatpane logs' to read them.`,
	Annotations: map[string]string{ownsTerminal: "true"},
	RunE:        runSim,
}

func init() {
	rootCmd.AddCommand(simCmd)
	simCmd.Flags().IntVar(&simWidth, "width", 0, "virtual screen width in pixels (default from config)")
	simCmd.Flags().IntVar(&simHeight, "height", 0, "virtual screen height in pixels (default from config)")
	simCmd.Flags().Float64Var(&simDensity, "density", 0, "virtual screen density (default from config)")
}

func runSim(_ *cobra.Command, _ []string) (err error) {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)
	defer logging.RecoverPanic(ctx)

	screen := app.Config.VirtualScreen()
	if simWidth > 0 {
		screen.Width = simWidth
	}
	if simHeight > 0 {
		screen.Height = simHeight
	}
	if simDensity > 0 {
		screen.Density = simDensity
	}

	host := app.NewVirtualHost(screen)
	defer host.Close()
	if err := host.Overlay.Open(ctx); err != nil {
		return fmt.Errorf("open overlay: %w", err)
	}

	m := model.NewSimModel(ctx, app.Theme, model.SimDeps{
		Overlay:  host.Overlay,
		Frames:   host.Frames,
		Surface:  host.Surface,
		Document: host.Document,
		Hints:    host.Hints,
		Limits:   app.Config.Limits,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		log.Info().Msg("config changed, applying overlay options")
		p.Send(model.OptionsMsg(cfg.OverlayOptions(screen)))
	})
	if err := app.Manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config watching unavailable")
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run simulator: %w", err)
	}
	return nil
}
