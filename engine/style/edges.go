package style

import "fmt"

// Edges holds four lengths, one per side of a box. Used for margin, padding,
// border and the offsets of absolutely positioned nodes.
// Sides are independent of each other.
type Edges struct {
	Left   Length
	Right  Length
	Top    Length
	Bottom Length
}

// DefaultEdges has all four sides undefined.
var DefaultEdges = Edges{}

// NewEdges creates edges from left, right, top and bottom lengths.
func NewEdges(left, right, top, bottom Length) Edges {
	return Edges{Left: left, Right: right, Top: top, Bottom: bottom}
}

// EdgesAll sets all four sides to v.
func EdgesAll(v Length) Edges {
	return Edges{Left: v, Right: v, Top: v, Bottom: v}
}

// EdgesHorizontal sets left and right to v; top and bottom stay undefined.
func EdgesHorizontal(v Length) Edges {
	return Edges{Left: v, Right: v}
}

// EdgesVertical sets top and bottom to v; left and right stay undefined.
func EdgesVertical(v Length) Edges {
	return Edges{Top: v, Bottom: v}
}

// EdgesXY sets left and right to h, top and bottom to v.
func EdgesXY(h, v Length) Edges {
	return Edges{Left: h, Right: h, Top: v, Bottom: v}
}

func (e Edges) String() string {
	return fmt.Sprintf("{l=%v r=%v t=%v b=%v}", e.Left, e.Right, e.Top, e.Bottom)
}

// --- Size ------------------------------------------------------------------

// Size is a pair of lengths for width and height.
type Size struct {
	Width  Length
	Height Length
}

// SizeAuto returns (auto, auto), the default of target, min and max sizes.
func SizeAuto() Size {
	return Size{Width: Auto(), Height: Auto()}
}

// SizeUndefined returns (undefined, undefined). As a gap it means "no gap".
// It is not the same as SizeAuto.
func SizeUndefined() Size {
	return Size{}
}

// NewSize creates a size from width and height.
func NewSize(w, h Length) Size {
	return Size{Width: w, Height: h}
}

// SizeAll sets width and height to v.
func SizeAll(v Length) Size {
	return Size{Width: v, Height: v}
}

func (s Size) String() string {
	return fmt.Sprintf("(%v × %v)", s.Width, s.Height)
}
