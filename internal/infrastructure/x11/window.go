package x11

import (
	"context"
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/bnema/floatpane/internal/application/port"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
)

const (
	colorBackground = 0x1f2933

	windowEventMask = xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskButtonMotion |
		xproto.EventMaskStructureNotify
)

// Window is the overlay's X11 window.
type Window struct {
	conn *Connection

	mu          sync.Mutex
	id          xproto.Window
	geometry    entity.Geometry
	interactive bool
	gone        bool
}

var (
	_ port.Compositor    = (*Window)(nil)
	_ port.ShapeRenderer = (*Window)(nil)
	_ port.Panel         = (*Window)(nil)
)

// NewWindow creates an overlay window host on conn. The X window is created
// by AddWindow.
func NewWindow(conn *Connection) *Window {
	return &Window{conn: conn, interactive: true}
}

// ID returns the X window id, or 0 before AddWindow.
func (w *Window) ID() xproto.Window {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.id
}

// AddWindow creates and maps an override-redirect window at geometry.
func (w *Window) AddWindow(ctx context.Context, geometry entity.Geometry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.id != 0 {
		return fmt.Errorf("window already added")
	}
	conn := w.conn.XUtil.Conn()
	screen := w.conn.XUtil.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return fmt.Errorf("allocate window id: %w", err)
	}
	// Values follow the bit order of the mask: back pixel, override redirect, event mask.
	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		w.conn.Root,
		int16(geometry.X), int16(geometry.Y),
		uint16(max(geometry.Width, 1)), uint16(max(geometry.Height, 1)),
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		[]uint32{colorBackground, 1, windowEventMask},
	).Check()
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	if err := xproto.MapWindowChecked(conn, wid).Check(); err != nil {
		return fmt.Errorf("map window: %w", err)
	}

	w.id = wid
	w.geometry = geometry
	w.gone = false
	logging.FromContext(ctx).Debug().
		Uint32("window", uint32(wid)).
		Int("x", geometry.X).
		Int("y", geometry.Y).
		Int("width", geometry.Width).
		Int("height", geometry.Height).
		Msg("x11 window created")
	return nil
}

// UpdateWindow moves and resizes the window and keeps it on top.
func (w *Window) UpdateWindow(_ context.Context, geometry entity.Geometry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkLocked(); err != nil {
		return err
	}
	xproto.ConfigureWindow(
		w.conn.XUtil.Conn(),
		w.id,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|xproto.ConfigWindowStackMode,
		[]uint32{
			uint32(int32(geometry.X)),
			uint32(int32(geometry.Y)),
			uint32(max(geometry.Width, 1)),
			uint32(max(geometry.Height, 1)),
			xproto.StackModeAbove,
		},
	)
	w.geometry = geometry
	return nil
}

// RemoveWindow destroys the window.
func (w *Window) RemoveWindow(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.id == 0 {
		return nil
	}
	if !w.gone {
		xproto.DestroyWindow(w.conn.XUtil.Conn(), w.id)
	}
	logging.FromContext(ctx).Debug().Uint32("window", uint32(w.id)).Msg("x11 window destroyed")
	w.id = 0
	return nil
}

// ApplyShape sets the bounding shape to the silhouette and the window
// opacity to the content alpha.
func (w *Window) ApplyShape(ctx context.Context, s entity.Shape) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkLocked(); err != nil {
		return err
	}

	rects := ShapeRectangles(s, w.geometry.Width, w.geometry.Height)
	shape.Rectangles(
		w.conn.XUtil.Conn(),
		shape.SoSet,
		shape.SkBounding,
		xproto.ClipOrderingYXBanded,
		w.id,
		0, 0,
		rects,
	)
	if err := ewmh.WmWindowOpacitySet(w.conn.XUtil, w.id, s.ContentAlpha); err != nil {
		logging.FromContext(ctx).Trace().Err(err).Msg("failed to set window opacity")
	}
	return nil
}

// SetInteractive only records the flag. The X11 window has no separate
// content surface to disable and keeps receiving pointer events either way;
// while docked the overlay routes every pointer to the chrome instead
// (coordinator.Overlay.isChrome), which is what keeps content gestures off.
func (w *Window) SetInteractive(ctx context.Context, interactive bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.checkLocked(); err != nil {
		return err
	}
	w.interactive = interactive
	logging.FromContext(ctx).Debug().Bool("interactive", interactive).Msg("x11 panel surfaces toggled")
	return nil
}

// Interactive reports whether the panel surfaces are enabled.
func (w *Window) Interactive() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.interactive
}

// markGone records that the X server destroyed the window.
func (w *Window) markGone() {
	w.mu.Lock()
	w.gone = true
	w.mu.Unlock()
}

func (w *Window) checkLocked() error {
	if w.id == 0 || w.gone {
		return fmt.Errorf("x11 window %d: %w", w.id, port.ErrSurfaceGone)
	}
	return nil
}

// ShapeRectangles converts a silhouette over a width×height window into
// y-x banded rectangles. Consecutive rows with the same span share a
// rectangle.
func ShapeRectangles(s entity.Shape, width, height int) []xproto.Rectangle {
	local := entity.Geometry{Width: width, Height: height}
	var rects []xproto.Rectangle

	rowSpan := func(y int) (int, int) {
		cy := float64(y) + 0.5
		x0 := 0
		for x0 < width && !s.Covers(local, float64(x0)+0.5, cy) {
			x0++
		}
		x1 := width
		for x1 > x0 && !s.Covers(local, float64(x1)-0.5, cy) {
			x1--
		}
		return x0, x1
	}

	for y := 0; y < height; {
		x0, x1 := rowSpan(y)
		end := y + 1
		for end < height {
			nx0, nx1 := rowSpan(end)
			if nx0 != x0 || nx1 != x1 {
				break
			}
			end++
		}
		if x1 > x0 {
			rects = append(rects, xproto.Rectangle{
				X:      int16(x0),
				Y:      int16(y),
				Width:  uint16(x1 - x0),
				Height: uint16(end - y),
			})
		}
		y = end
	}
	return rects
}
