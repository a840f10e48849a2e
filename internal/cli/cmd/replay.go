package cmd

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/floatpane/internal/cli"
	"github.com/bnema/floatpane/internal/cli/styles"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/bnema/floatpane/internal/ui/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.toml>...",
	Short: "Run scripted pointer sessions against a virtual overlay",
	Long: `Run one or more TOML replay scripts on a virtual screen and virtual clock.

Each step fires at its at_ms offset and may carry an expect table checked
against the window state after the step. Stored window state is neither read
nor written. The command fails when any expectation fails.

Example script:

  name = "dock left"
  [screen]
  width = 1080
  height = 2340
  [[step]]
  at_ms = 0
  action = "snap"
  edge = "left"
  [[step]]
  at_ms = 500
  action = "wait"
  expect = { mode = "hidden", edge = "left" }`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

// replayEpoch anchors every virtual clock so runs are reproducible.
var replayEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func runReplay(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	reports := make([]*replay.Report, len(args))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			report, err := replayScript(gctx, app, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	renderer := styles.NewReplayRenderer(app.Theme)
	failed := 0
	for _, report := range reports {
		fmt.Print(renderer.Render(report))
		if report.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d replay scripts failed", failed, len(reports))
	}
	return nil
}

func replayScript(ctx context.Context, app *cli.App, path string) (*replay.Report, error) {
	script, err := replay.Load(path)
	if err != nil {
		return nil, err
	}
	ctx = logging.With(ctx, map[string]any{"script": path})

	screen := script.EntityScreen()
	clock := replay.NewClock(replayEpoch)
	host := cli.NewVirtualHost(ctx, app.Config.OverlayOptions(screen), nil, clock.Now)
	defer host.Close()

	return replay.Run(ctx, script, clock, replay.Target{
		Overlay:  host.Overlay,
		Frames:   host.Frames,
		Viewport: host.Document,
		Limits:   app.Config.Limits,
	})
}
