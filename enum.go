package ternary

import "strings"

// Axis identifies one of the three ternary axes.
type Axis int

const (
	// T is the top axis.
	T Axis = iota
	// L is the left axis.
	L
	// R is the right axis.
	R
)

// allAxes lists T, L, R in index order.
var allAxes = [3]Axis{T, L, R}

// String returns the one-letter axis name.
func (a Axis) String() string {
	switch a {
	case T:
		return "t"
	case L:
		return "l"
	case R:
		return "r"
	default:
		return unknownStr
	}
}

// next returns the axis k steps after a in cyclic order.
func (a Axis) next(k int) Axis {
	return Axis((int(a) + k) % 3)
}

// ParseAxis parses "t", "l", "r" or the long forms "top", "left", "right".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "t", "top":
		return T, nil
	case "l", "left":
		return L, nil
	case "r", "right":
		return R, nil
	}
	return 0, &InvalidOptionError{Option: "axis", Value: s, Allowed: []string{"t", "l", "r"}}
}

const unknownStr = "unknown"

// RotationMode selects how label text is oriented.
type RotationMode int

const (
	// RotateAxis follows the local axis direction, kept readable.
	RotateAxis RotationMode = iota
	// RotateHorizontal keeps text upright and varies only the anchors.
	RotateHorizontal
	// RotateManual uses the caller's rotation and anchors verbatim.
	RotateManual
)

var rotationModeNames = []string{"axis", "horizontal", "manual"}

func (m RotationMode) String() string {
	if m < 0 || int(m) >= len(rotationModeNames) {
		return unknownStr
	}
	return rotationModeNames[m]
}

// ParseRotationMode parses "axis", "horizontal" or "manual".
func ParseRotationMode(s string) (RotationMode, error) {
	for i, n := range rotationModeNames {
		if s == n {
			return RotationMode(i), nil
		}
	}
	return 0, &InvalidOptionError{Option: "rotation mode", Value: s, Allowed: rotationModeNames}
}

// LabelPosition selects where an axis label is placed.
type LabelPosition int

const (
	// LabelTick1 places the label beside the tick1 side.
	LabelTick1 LabelPosition = iota
	// LabelTick2 places the label beside the tick2 side.
	LabelTick2
	// LabelCorner places the label at the corner where the axis is maximal.
	LabelCorner
)

var labelPositionNames = []string{"tick1", "tick2", "corner"}

func (p LabelPosition) String() string {
	if p < 0 || int(p) >= len(labelPositionNames) {
		return unknownStr
	}
	return labelPositionNames[p]
}

// ParseLabelPosition parses "tick1", "tick2" or "corner".
func ParseLabelPosition(s string) (LabelPosition, error) {
	for i, n := range labelPositionNames {
		if s == n {
			return LabelPosition(i), nil
		}
	}
	return 0, &InvalidOptionError{Option: "label position", Value: s, Allowed: labelPositionNames}
}

// TickPosition selects on which sides tick marks are drawn.
type TickPosition int

const (
	TicksTick1 TickPosition = iota
	TicksTick2
	TicksBoth
	TicksNone
)

var tickPositionNames = []string{"tick1", "tick2", "both", "none"}

func (p TickPosition) String() string {
	if p < 0 || int(p) >= len(tickPositionNames) {
		return unknownStr
	}
	return tickPositionNames[p]
}

// sides returns the side selectors (0 for tick1, 1 for tick2) enabled by p.
func (p TickPosition) sides() []int {
	switch p {
	case TicksTick1:
		return []int{0}
	case TicksTick2:
		return []int{1}
	case TicksBoth:
		return []int{0, 1}
	default:
		return nil
	}
}

// ParseTickPosition parses "tick1", "tick2", "both" or "none".
func ParseTickPosition(s string) (TickPosition, error) {
	for i, n := range tickPositionNames {
		if s == n {
			return TickPosition(i), nil
		}
	}
	return 0, &InvalidOptionError{Option: "tick position", Value: s, Allowed: tickPositionNames}
}

// TickDirection selects whether tick marks point into or out of the triangle.
type TickDirection int

const (
	TickOut TickDirection = iota
	TickIn
	TickInOut
)

var tickDirectionNames = []string{"out", "in", "inout"}

func (d TickDirection) String() string {
	if d < 0 || int(d) >= len(tickDirectionNames) {
		return unknownStr
	}
	return tickDirectionNames[d]
}

// ParseTickDirection parses "out", "in" or "inout".
func ParseTickDirection(s string) (TickDirection, error) {
	for i, n := range tickDirectionNames {
		if s == n {
			return TickDirection(i), nil
		}
	}
	return 0, &InvalidOptionError{Option: "tick direction", Value: s, Allowed: tickDirectionNames}
}

// extents returns how far the tick reaches outward and inward, as fractions
// of the tick length.
func (d TickDirection) extents() (out, in float64) {
	switch d {
	case TickIn:
		return 0, 1
	case TickInOut:
		return 0.5, 0.5
	default:
		return 1, 0
	}
}

// HAlign is the horizontal text anchor.
type HAlign int

const (
	HAlignCenter HAlign = iota
	HAlignLeft
	HAlignRight
)

func (a HAlign) String() string {
	switch a {
	case HAlignCenter:
		return "center"
	case HAlignLeft:
		return "left"
	case HAlignRight:
		return "right"
	default:
		return unknownStr
	}
}

// VAlign is the vertical text anchor.
type VAlign int

const (
	VAlignCenter VAlign = iota
	VAlignTop
	VAlignBottom
	VAlignBaseline
)

func (a VAlign) String() string {
	switch a {
	case VAlignCenter:
		return "center"
	case VAlignTop:
		return "top"
	case VAlignBottom:
		return "bottom"
	case VAlignBaseline:
		return "baseline"
	default:
		return unknownStr
	}
}
