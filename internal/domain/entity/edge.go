package entity

// EdgeState records which screen edge the overlay is docked against.
type EdgeState uint8

const (
	EdgeNone EdgeState = iota
	EdgeLeft
	EdgeRight
)

// IsHidden reports whether the overlay is docked as a peek affordance.
func (e EdgeState) IsHidden() bool {
	return e != EdgeNone
}

func (e EdgeState) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "none"
	}
}
