// Package model holds the Bubble Tea models of the interactive commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/floatpane/internal/cli/styles"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/infrastructure/viewport"
	"github.com/bnema/floatpane/internal/infrastructure/virtual"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/bnema/floatpane/internal/ui/coordinator"
	"github.com/bnema/floatpane/internal/ui/mainloop"
)

const (
	frameInterval = 16 * time.Millisecond
	headerLines   = 2 // title and blank line above the screen box
	sidebarWidth  = 30
	minRows       = 8

	mouseBack    = 8
	mouseForward = 9
)

// SimDeps are the collaborators of the simulator.
type SimDeps struct {
	Overlay  *coordinator.Overlay
	Frames   *mainloop.FrameQueue
	Surface  *virtual.Surface
	Document *viewport.Document
	Hints    *viewport.HintBoard
	// Limits resolves the minimum window size after a rotation.
	Limits func(entity.Screen) entity.Limits
}

// SimModel drives an overlay on a virtual screen with the terminal mouse.
type SimModel struct {
	ctx   context.Context
	deps  SimDeps
	theme *styles.Theme
	keys  styles.SimKeyMap
	help  help.Model

	screen     entity.Screen
	cols, rows int
	width      int
	height     int
	err        error
	quitting   bool
}

// frameMsg drives the frame queue.
type frameMsg time.Time

// OptionsMsg replaces the overlay tunables, typically after a config reload.
type OptionsMsg coordinator.Options

// NewSimModel creates a simulator model. The overlay must already be open.
func NewSimModel(ctx context.Context, theme *styles.Theme, deps SimDeps) SimModel {
	m := SimModel{
		ctx:    logging.WithComponent(ctx, "sim"),
		deps:   deps,
		theme:  theme,
		keys:   styles.DefaultSimKeyMap(),
		help:   styles.NewStyledHelp(theme),
		screen: deps.Overlay.Options().Screen,
		width:  100,
		height: 40,
	}
	m.layout()
	return m
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init implements tea.Model.
func (m SimModel) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m SimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case frameMsg:
		m.deps.Frames.RunFrame(time.Time(msg))
		return m, tick()

	case OptionsMsg:
		m.deps.Overlay.SetOptions(coordinator.Options(msg))

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m SimModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	o := m.deps.Overlay
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if err := o.Close(m.ctx); err != nil {
			m.err = err
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.SnapLeft):
		o.SnapTo(entity.EdgeLeft)
	case key.Matches(msg, m.keys.SnapRight):
		o.SnapTo(entity.EdgeRight)
	case key.Matches(msg, m.keys.Restore):
		o.Restore()
	case key.Matches(msg, m.keys.Expand):
		o.ToggleExpand()
	case key.Matches(msg, m.keys.Reset):
		o.ResetToDefault(m.ctx)
	case key.Matches(msg, m.keys.Rotate):
		m.rotate()
	case key.Matches(msg, m.keys.Back):
		o.HandleButton(mouseBack)
	case key.Matches(msg, m.keys.Forward):
		o.HandleButton(mouseForward)
	}
	return m, nil
}

func (m *SimModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonBackward:
		if msg.Action == tea.MouseActionPress {
			m.deps.Overlay.HandleButton(mouseBack)
		}
		return
	case tea.MouseButtonForward:
		if msg.Action == tea.MouseActionPress {
			m.deps.Overlay.HandleButton(mouseForward)
		}
		return
	}

	var action entity.PointerAction
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		action = entity.PointerDown
	case tea.MouseActionMotion:
		action = entity.PointerMove
	case tea.MouseActionRelease:
		action = entity.PointerUp
	default:
		return
	}

	x, y := m.toScreen(msg.X, msg.Y)
	m.deps.Overlay.HandlePointer(entity.PointerEvent{
		Action: action,
		X:      x,
		Y:      y,
		Time:   m.deps.Frames.Now(),
	})
}

// toScreen maps a terminal cell to the screen pixel at its center. Cells
// outside the box are clamped to its border.
func (m SimModel) toScreen(col, row int) (float64, float64) {
	col-- // box border
	row -= headerLines + 1
	col = max(0, min(col, m.cols-1))
	row = max(0, min(row, m.rows-1))
	x := (float64(col) + 0.5) * float64(m.screen.Width) / float64(m.cols)
	y := (float64(row) + 0.5) * float64(m.screen.Height) / float64(m.rows)
	return x, y
}

func (m *SimModel) rotate() {
	rotated := entity.Screen{Width: m.screen.Height, Height: m.screen.Width, Density: m.screen.Density}
	limits := m.deps.Overlay.Window().Limits()
	if m.deps.Limits != nil {
		limits = m.deps.Limits(rotated)
	}
	m.deps.Overlay.SetScreen(m.ctx, rotated, limits)
	m.screen = rotated
	m.layout()
}

// layout fits the screen box into the terminal. Cells are about twice as
// tall as they are wide.
func (m *SimModel) layout() {
	rows := max(m.height-headerLines-6, minRows)
	cols := rows * 2 * m.screen.Width / max(m.screen.Height, 1)
	if maxCols := m.width - sidebarWidth - 4; cols > maxCols && maxCols > 0 {
		cols = maxCols
		rows = max(cols*m.screen.Height/(2*max(m.screen.Width, 1)), 1)
	}
	m.cols, m.rows = max(cols, 1), rows
}

// View implements tea.Model.
func (m SimModel) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme
	o := m.deps.Overlay
	win := o.Window()

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.Title.Render("floatpane sim"),
		" ",
		t.Badge.Render(win.Mode().String()),
		" ",
		t.BadgeMuted.Render("edge "+win.Edge().String()),
	)

	state := m.deps.Surface.State()
	raster := virtual.String(virtual.Raster(state, m.screen, o.Options().TitleBarHeight, m.cols, m.rows))
	screenView := styles.RenderScreen(t, strings.Split(raster, "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, screenView, "  ", m.sidebar(state))

	parts := []string{header, "", body}
	if m.err != nil {
		parts = append(parts, t.ErrorStyle.Render("Error: "+m.err.Error()))
	}
	parts = append(parts, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m SimModel) sidebar(state virtual.State) string {
	t := m.theme
	g := state.Geometry
	doc := m.deps.Document.Snapshot()
	label := t.Subtle.Width(10)

	lines := []string{
		t.Subtitle.Render("Window"),
		label.Render("position") + t.Normal.Render(fmt.Sprintf("%d, %d", g.X, g.Y)),
		label.Render("size") + t.Normal.Render(fmt.Sprintf("%d × %d", g.Width, g.Height)),
		label.Render("screen") + t.Normal.Render(fmt.Sprintf("%d × %d", m.screen.Width, m.screen.Height)),
		label.Render("panel") + t.Normal.Render(onOff(state.Interactive)),
		"",
		t.Subtitle.Render("Content"),
		label.Render("page") + t.Normal.Render(doc.Page),
		label.Render("scale") + t.Normal.Render(fmt.Sprintf("%d%%", entity.ScalePercentage(doc.Scale))),
		label.Render("scroll") + t.Normal.Render(doc.Scroll.String()),
		label.Render("scrolling") + t.Normal.Render(onOff(doc.ScrollEnabled)),
	}
	if text, ok := m.deps.Hints.Current(); ok {
		lines = append(lines, "", t.Highlight.Render(styles.IconInfo+" "+text))
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// Ensure interface compliance.
var _ tea.Model = (*SimModel)(nil)
