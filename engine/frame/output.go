package frame

import (
	"fmt"

	"github.com/npillmayer/flexui/core/dimen"
)

// Output is the computed layout of a node: its border box in root coordinates
// and an optional clipping rectangle inherited from its ancestors.
//
// Outputs are immutable.
type Output struct {
	position dimen.Vec2
	size     dimen.Vec2
	preserve bool
	clip     dimen.Rect
	clipped  bool
}

// MakeOutput creates the output for a node. It is called by layout solvers.
// Negative sizes are treated as 0.
func MakeOutput(position, size dimen.Vec2, preserveAspectRatio bool) Output {
	return Output{
		position: position,
		size:     dimen.V(dimen.Max(0, size.X), dimen.Max(0, size.Y)),
		preserve: preserveAspectRatio,
	}
}

// WithClip returns a copy of o clipped to r.
func (o Output) WithClip(r dimen.Rect) Output {
	o.clip, o.clipped = r, true
	return o
}

// Size returns the size of the border box.
func (o Output) Size() dimen.Vec2 {
	return o.size
}

// Position returns the top-left corner of the border box.
func (o Output) Position() dimen.Vec2 {
	return o.position
}

// Rect returns the border box.
func (o Output) Rect() dimen.Rect {
	return dimen.R(o.position, o.size)
}

// Center returns the center point of the border box.
func (o Output) Center() dimen.Vec2 {
	return dimen.V(o.position.X+o.size.X/2, o.position.Y+o.size.Y/2)
}

// PreserveAspectRatio tells renderers to keep the aspect ratio of the node's
// content.
func (o Output) PreserveAspectRatio() bool {
	return o.preserve
}

// Clip returns the clipping rectangle and true, if an ancestor hides its
// overflow. Otherwise it returns false.
func (o Output) Clip() (dimen.Rect, bool) {
	return o.clip, o.clipped
}

// IsZero is true for the output of nodes which do not take part in layout.
func (o Output) IsZero() bool {
	return o == Output{}
}

func (o Output) String() string {
	s := fmt.Sprintf("%v+%v", o.position, o.size)
	if o.clipped {
		s += fmt.Sprintf(" clip=%v", o.clip)
	}
	return s
}
