package entity

// Mode is the overlay's interaction state. Exactly one value holds at a time
// and it decides who may mutate the geometry: the touch classifier while
// Dragging or Resizing, the animation engine while Snapping, Restoring or
// Morphing.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
	ModeSnapping
	ModeHidden
	ModeRestoring
	// ModeMorphing animates between two free-floating geometries
	// (expand, collapse, reset to default).
	ModeMorphing
	// ModeDetached is terminal: the host surface is gone.
	ModeDetached
)

// IsAnimating reports whether the animation engine holds geometry control.
func (m Mode) IsAnimating() bool {
	switch m {
	case ModeSnapping, ModeRestoring, ModeMorphing:
		return true
	default:
		return false
	}
}

// IsGesture reports whether the touch classifier holds geometry control.
func (m Mode) IsGesture() bool {
	return m == ModeDragging || m == ModeResizing
}

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	case ModeSnapping:
		return "snapping"
	case ModeHidden:
		return "hidden"
	case ModeRestoring:
		return "restoring"
	case ModeMorphing:
		return "morphing"
	case ModeDetached:
		return "detached"
	default:
		return "unknown"
	}
}
