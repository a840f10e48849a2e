package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/floatpane/internal/cli"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/infrastructure/config"
	"github.com/bnema/floatpane/internal/infrastructure/viewport"
	"github.com/bnema/floatpane/internal/infrastructure/x11"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/bnema/floatpane/internal/ui/coordinator"
	"github.com/bnema/floatpane/internal/ui/mainloop"
)

const eventLoopGrace = time.Second

var runDensity float64

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the overlay on the X11 display",
	Long: `Open the overlay as an override-redirect window on $DISPLAY.

The window keeps its last position and size between runs. Mouse buttons 8 and
9 navigate the content history. Stop with Ctrl+C or SIGTERM; the settled
geometry is saved on the way out.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Float64Var(&runDensity, "density", 0, "pixels per density-independent pixel (default from config)")
}

func runRun(_ *cobra.Command, _ []string) error {
	start := time.Now()
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logging.RecoverPanic(ctx)

	conn, err := x11.NewConnection()
	if err != nil {
		return err
	}
	defer conn.Close()
	trace := logging.NewStartupTrace(logging.FromContext(ctx), start, nil)
	trace.Mark("x11_connected")

	density := app.Config.Screen.Density
	if runDensity > 0 {
		density = runDensity
	}
	return runX11(ctx, app, conn, conn.Screen(density), trace)
}

func runX11(ctx context.Context, app *cli.App, conn *x11.Connection, screen entity.Screen, trace *logging.StartupTrace) error {
	log := logging.FromContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	window := x11.NewWindow(conn)
	frames := mainloop.NewFrameQueue(nil)
	loop := mainloop.NewLoop(frames)
	doc := viewport.NewDocument(ctx, cli.DefaultPages...)
	defer doc.Close()
	store := app.NewStore(screen)
	defer store.Close()
	trace.Mark("store_ready")

	overlay := coordinator.NewOverlay(ctx, coordinator.Deps{
		Compositor: window,
		Shapes:     window,
		Panel:      window,
		Viewport:   doc,
		Hints:      viewport.NewHintBoard(),
		Store:      store,
		Scheduler:  frames,
	}, app.Config.OverlayOptions(screen))

	events := x11.NewEventSource(ctx, conn, window, loop, x11.Handlers{
		Pointer: func(ev entity.PointerEvent) { overlay.HandlePointer(ev) },
		Button:  func(button uint) { overlay.HandleButton(button) },
		Screen: func(width, height int) {
			next := entity.Screen{Width: width, Height: height, Density: screen.Density}
			overlay.SetScreen(ctx, next, app.Config.Limits(next))
		},
		Gone: func() {
			log.Warn().Msg("overlay window destroyed by the X server")
			cancel()
		},
	})
	defer events.Close()

	var openErr error
	loop.Post(func() {
		if openErr = overlay.Open(ctx); openErr != nil {
			cancel()
			return
		}
		events.Connect()
		trace.Mark("overlay_open")
		trace.Finish()
		log.Info().
			Int("width", screen.Width).
			Int("height", screen.Height).
			Msg("overlay running")
	})

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		loop.Post(func() {
			log.Info().Msg("config changed, applying overlay options")
			overlay.SetOptions(cfg.OverlayOptions(screen))
		})
	})
	if err := app.Manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config watching unavailable")
	}

	// xevent.Main only checks for Quit between events; destroying the window
	// below delivers the event that lets it return.
	eventsDone := make(chan struct{})
	go func() {
		defer close(eventsDone)
		conn.EventLoop()
	}()

	err := loop.Run(ctx)

	// The loop goroutine is gone; the overlay is only touched from here on.
	conn.Quit()
	if openErr != nil {
		return fmt.Errorf("open overlay: %w", openErr)
	}
	if closeErr := overlay.Close(context.WithoutCancel(ctx)); closeErr != nil {
		log.Warn().Err(closeErr).Msg("failed to close overlay")
	}
	select {
	case <-eventsDone:
	case <-time.After(eventLoopGrace):
		log.Debug().Msg("x event loop still blocked, closing connection")
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
