// Package replay runs scripted pointer and command sequences against an
// overlay on a virtual clock and checks the resulting window state.
package replay

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/floatpane/internal/domain/entity"
)

// Action names a script step.
type Action string

const (
	ActionDown    Action = "down"
	ActionMove    Action = "move"
	ActionUp      Action = "up"
	ActionCancel  Action = "cancel"
	ActionButton  Action = "button"
	ActionSnap    Action = "snap"
	ActionRestore Action = "restore"
	ActionExpand  Action = "expand"
	ActionReset   Action = "reset"
	ActionRotate  Action = "rotate"
	ActionWait    Action = "wait"
)

// Script is a replay document.
type Script struct {
	Name   string        `toml:"name"`
	Screen ScreenSpec    `toml:"screen"`
	Start  *GeometrySpec `toml:"start,omitempty"`
	Steps  []Step        `toml:"step"`
}

// ScreenSpec is the virtual screen of a script.
type ScreenSpec struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Density float64 `toml:"density"`
}

// GeometrySpec is a window geometry in pixels.
type GeometrySpec struct {
	X      int `toml:"x"`
	Y      int `toml:"y"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Step is one scripted action at AtMs milliseconds after the start.
type Step struct {
	AtMs    int64   `toml:"at_ms"`
	Action  Action  `toml:"action"`
	Pointer int     `toml:"pointer,omitempty"`
	X       float64 `toml:"x,omitempty"`
	Y       float64 `toml:"y,omitempty"`
	Button  uint    `toml:"button,omitempty"`
	Edge    string  `toml:"edge,omitempty"`
	Expect  *Expect `toml:"expect,omitempty"`
}

// Expect lists the window state checked after a step. Unset fields are not
// checked.
type Expect struct {
	Mode   string `toml:"mode,omitempty"`
	Edge   string `toml:"edge,omitempty"`
	X      *int   `toml:"x,omitempty"`
	Y      *int   `toml:"y,omitempty"`
	Width  *int   `toml:"width,omitempty"`
	Height *int   `toml:"height,omitempty"`
	Scale  *int   `toml:"scale_percent,omitempty"`
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse decodes and validates a script. Steps are ordered by time; steps at
// the same time keep their document order.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(s.Steps, func(i, j int) bool { return s.Steps[i].AtMs < s.Steps[j].AtMs })
	return &s, nil
}

func (s *Script) validate() error {
	var errs []string
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		errs = append(errs, "screen.width and screen.height must be positive")
	}
	if s.Screen.Density < 0 {
		errs = append(errs, "screen.density must not be negative")
	}
	for i, step := range s.Steps {
		if step.AtMs < 0 {
			errs = append(errs, fmt.Sprintf("step %d: at_ms must not be negative", i+1))
		}
		switch step.Action {
		case ActionDown, ActionMove, ActionUp, ActionCancel,
			ActionRestore, ActionExpand, ActionReset, ActionRotate, ActionWait:
		case ActionButton:
			if step.Button == 0 {
				errs = append(errs, fmt.Sprintf("step %d: button requires a button number", i+1))
			}
		case ActionSnap:
			if _, ok := parseEdge(step.Edge); !ok || step.Edge == "none" {
				errs = append(errs, fmt.Sprintf("step %d: snap requires edge left or right", i+1))
			}
		default:
			errs = append(errs, fmt.Sprintf("step %d: unknown action %q", i+1, step.Action))
		}
		if step.Expect != nil && step.Expect.Edge != "" {
			if _, ok := parseEdge(step.Expect.Edge); !ok {
				errs = append(errs, fmt.Sprintf("step %d: unknown edge %q", i+1, step.Expect.Edge))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid script:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// EntityScreen returns the script screen.
func (s *Script) EntityScreen() entity.Screen {
	density := s.Screen.Density
	if density == 0 {
		density = 1
	}
	return entity.Screen{Width: s.Screen.Width, Height: s.Screen.Height, Density: density}
}

func parseEdge(name string) (entity.EdgeState, bool) {
	switch strings.ToLower(name) {
	case "none", "":
		return entity.EdgeNone, true
	case "left":
		return entity.EdgeLeft, true
	case "right":
		return entity.EdgeRight, true
	default:
		return entity.EdgeNone, false
	}
}
