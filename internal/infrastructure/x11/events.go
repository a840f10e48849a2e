package x11

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/bnema/floatpane/internal/ui/mainloop"
)

// Mouse buttons carried by ButtonPress events.
const (
	buttonPrimary = 1
	buttonBack    = 8
	buttonForward = 9
)

const motionKey = "motion"

// Handlers receive translated events on the main loop goroutine.
type Handlers struct {
	Pointer func(entity.PointerEvent)
	Button  func(button uint)
	// Screen is called with the new root size after a RandR or root resize.
	Screen func(width, height int)
	// Gone is called once the X server destroyed the overlay window.
	Gone func()
}

// EventSource forwards X events of the overlay window to the main loop.
// Motion bursts collapse to the latest sample.
type EventSource struct {
	ctx      context.Context
	conn     *Connection
	window   *Window
	handlers Handlers

	coalescer *mainloop.Coalescer[string]
	seq       atomic.Uint64
	now       func() time.Time
}

// NewEventSource creates an event source posting to loop.
func NewEventSource(ctx context.Context, conn *Connection, window *Window, loop *mainloop.Loop, handlers Handlers) *EventSource {
	return &EventSource{
		ctx:       logging.WithComponent(ctx, "x11-events"),
		conn:      conn,
		window:    window,
		handlers:  handlers,
		coalescer: mainloop.NewCoalescer[string](loop.Post),
		now:       time.Now,
	}
}

// Connect attaches the callbacks to the overlay window and the root window.
// It must be called after the window was added.
func (s *EventSource) Connect() {
	xu := s.conn.XUtil
	wid := s.window.ID()

	xevent.ButtonPressFun(func(_ *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		s.button(ev.Detail, entity.PointerDown, ev.RootX, ev.RootY)
	}).Connect(xu, wid)
	xevent.ButtonReleaseFun(func(_ *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		s.button(ev.Detail, entity.PointerUp, ev.RootX, ev.RootY)
	}).Connect(xu, wid)
	xevent.MotionNotifyFun(func(_ *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		pe := s.pointer(entity.PointerMove, ev.RootX, ev.RootY)
		s.coalescer.Post(motionKey, func() { s.handlers.Pointer(pe) })
	}).Connect(xu, wid)
	xevent.DestroyNotifyFun(func(_ *xgbutil.XUtil, _ xevent.DestroyNotifyEvent) {
		s.window.markGone()
		s.post(func() {
			if s.handlers.Gone != nil {
				s.handlers.Gone()
			}
		})
	}).Connect(xu, wid)

	xproto.ChangeWindowAttributes(xu.Conn(), s.conn.Root, xproto.CwEventMask,
		[]uint32{xproto.EventMaskStructureNotify})
	xevent.ConfigureNotifyFun(func(_ *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		if ev.Window != s.conn.Root || s.handlers.Screen == nil {
			return
		}
		width, height := int(ev.Width), int(ev.Height)
		s.coalescer.Post("screen", func() { s.handlers.Screen(width, height) })
	}).Connect(xu, s.conn.Root)

	logging.FromContext(s.ctx).Debug().Uint32("window", uint32(wid)).Msg("x11 events connected")
}

// Close detaches the callbacks and drops pending motion.
func (s *EventSource) Close() {
	xevent.Detach(s.conn.XUtil, s.window.ID())
	s.coalescer.Destroy()
}

func (s *EventSource) button(detail xproto.Button, action entity.PointerAction, x, y int16) {
	switch detail {
	case buttonPrimary:
		pe := s.pointer(action, x, y)
		s.post(func() { s.handlers.Pointer(pe) })
	case buttonBack, buttonForward:
		if action != entity.PointerDown || s.handlers.Button == nil {
			return
		}
		b := uint(detail)
		s.post(func() { s.handlers.Button(b) })
	}
}

// post queues fn behind any pending motion so ordering is preserved.
func (s *EventSource) post(fn func()) {
	s.coalescer.Post("event:"+strconv.FormatUint(s.seq.Add(1), 10), fn)
}

func (s *EventSource) pointer(action entity.PointerAction, x, y int16) entity.PointerEvent {
	return entity.PointerEvent{
		ID:     0,
		Action: action,
		X:      float64(x),
		Y:      float64(y),
		Time:   s.now(),
	}
}
