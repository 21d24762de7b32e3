// Package entity contains domain value types for the docking engine.
// These are pure Go types with no infrastructure dependencies.
package entity

// DockPos indicates where a node should be placed relative to a target.
type DockPos int

const (
	DockLeft DockPos = iota
	DockRight
	DockTop
	DockBottom
	DockCenter
)

// String returns the lowercase name of the position.
func (p DockPos) String() string {
	switch p {
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	case DockCenter:
		return "center"
	}
	return "unknown"
}

// Orientation indicates how a split container arranges its children.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// SplitOrientation returns the orientation a split must have for this
// position, and whether the new child goes before the target.
// DockCenter has no split orientation; ok is false.
func (p DockPos) SplitOrientation() (o Orientation, before bool, ok bool) {
	switch p {
	case DockLeft:
		return OrientationHorizontal, true, true
	case DockRight:
		return OrientationHorizontal, false, true
	case DockTop:
		return OrientationVertical, true, true
	case DockBottom:
		return OrientationVertical, false, true
	}
	return 0, false, false
}
