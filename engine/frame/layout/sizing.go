package layout

import (
	"math"

	"github.com/npillmayer/flexui/core/dimen"
	"github.com/npillmayer/flexui/engine/frame"
	"github.com/npillmayer/flexui/engine/style"
)

// Axes, used as indices into per-axis arrays.
const (
	horizontal = 0
	vertical   = 1
)

func mainAxis(row bool) int {
	if row {
		return horizontal
	}
	return vertical
}

// mainCross splits a vector into its main and cross components.
func mainCross(v dimen.Vec2, row bool) (float32, float32) {
	if row {
		return v.X, v.Y
	}
	return v.Y, v.X
}

// fromMainCross is the inverse of mainCross.
func fromMainCross(m, c float32, row bool) dimen.Vec2 {
	if row {
		return dimen.V(m, c)
	}
	return dimen.V(c, m)
}

func component(v dimen.Vec2, axis int) float32 {
	if axis == horizontal {
		return v.X
	}
	return v.Y
}

func axisLength(s style.Size, axis int) style.Length {
	if axis == horizontal {
		return s.Width
	}
	return s.Height
}

// sizes are the size constraints of a node, resolved to border-box pixels.
type sizes struct {
	pref    [2]float32
	hasPref [2]bool
	derived [2]bool // pref follows from the aspect ratio
	min     [2]float32
	max     [2]float32
	ratio   float32 // width / height, 0 if none
}

// clamp restricts v to the min and max sizes of an axis, min winning over
// max. Negative results are set to 0.
func (sz sizes) clamp(axis int, v float32) float32 {
	return dimen.Max(0, dimen.Clamp(v, sz.min[axis], sz.max[axis]))
}

// resolveSizes resolves the size, min-size and max-size of a node against
// the content size of its parent. Min-sizes are never smaller than padding
// plus border.
func (p *flexPass) resolveSizes(n *Node, parent dimen.Vec2, box frame.Box) sizes {
	var sz sizes
	scale := p.scale()
	deco := box.Decoration()
	for axis := horizontal; axis <= vertical; axis++ {
		ref := component(parent, axis)
		if v := frame.Resolve(axisLength(n.style.Size, axis), ref, scale); !v.IsNone() {
			sz.pref[axis], sz.hasPref[axis] = dimen.Max(0, v.Unwrap()), true
		}
		sz.min[axis] = dimen.Max(component(deco, axis),
			frame.Resolve(axisLength(n.style.MinSize, axis), ref, scale).UnwrapOr(0))
		sz.max[axis] = frame.Resolve(axisLength(n.style.MaxSize, axis), ref, scale).
			UnwrapOr(math.MaxFloat32)
	}
	if r := n.style.AspectRatio.UnwrapOr(0); r > 0 && dimen.IsFinite(r) {
		sz.ratio = r
	} else if in, ok := n.Intrinsic(); ok {
		if r, ok := in.AspectRatio(); ok {
			sz.ratio = r
		}
	}
	if sz.ratio > 0 {
		if sz.hasPref[horizontal] && !sz.hasPref[vertical] {
			sz.pref[vertical] = sz.pref[horizontal] / sz.ratio
			sz.hasPref[vertical], sz.derived[vertical] = true, true
		} else if sz.hasPref[vertical] && !sz.hasPref[horizontal] {
			sz.pref[horizontal] = sz.pref[vertical] * sz.ratio
			sz.hasPref[horizontal], sz.derived[horizontal] = true, true
		}
	}
	return sz
}

// fromRatio derives the size of one axis from the size of the other one.
func (sz sizes) fromRatio(axis int, other float32) float32 {
	if axis == vertical {
		return other / sz.ratio
	}
	return other * sz.ratio
}

// measure returns the border-box size a node needs for its content: the
// intrinsic hint, if present, or else the sum of its in-flow children along
// its main axis and their maximum along its cross axis.
// Lines are not wrapped while measuring.
func (p *flexPass) measure(n *Node, box frame.Box, avail dimen.Vec2) dimen.Vec2 {
	deco := box.Decoration()
	if in, ok := n.Intrinsic(); ok {
		return in.Size.Add(deco)
	}
	inner := dimen.V(dimen.Max(0, avail.X-deco.X), dimen.Max(0, avail.Y-deco.Y))
	row := n.style.FlexDirection.IsRow()
	var main, cross float32
	count := 0
	for _, c := range n.children {
		if c.style.Display == style.DisplayNone || c.style.PositionType == style.PositionAbsolute {
			continue
		}
		cbox := frame.ResolveBox(c.style, inner.X, p.scale())
		size := p.hypothetical(c, cbox, p.resolveSizes(c, inner, cbox), inner)
		m, cr := mainCross(size.Add(cbox.Margins()), row)
		main += m
		cross = dimen.Max(cross, cr)
		count++
	}
	if count > 1 {
		colGap, rowGap := p.gaps(n.style, inner)
		if row {
			main += colGap * float32(count-1)
		} else {
			main += rowGap * float32(count-1)
		}
	}
	return fromMainCross(main, cross, row).Add(deco)
}

// hypothetical returns the clamped border-box size of a node, taken from its
// preferred size where present and from its content otherwise.
func (p *flexPass) hypothetical(n *Node, box frame.Box, sz sizes, avail dimen.Vec2) dimen.Vec2 {
	var v [2]float32
	var measured *dimen.Vec2
	for axis := horizontal; axis <= vertical; axis++ {
		if sz.hasPref[axis] {
			v[axis] = sz.pref[axis]
			continue
		}
		if measured == nil {
			m := p.measure(n, box, avail)
			measured = &m
		}
		v[axis] = component(*measured, axis)
	}
	return dimen.V(sz.clamp(horizontal, v[horizontal]), sz.clamp(vertical, v[vertical]))
}

// gaps resolves the column gap against the content width and the row gap
// against the content height. Undefined and auto gaps are 0.
func (p *flexPass) gaps(s style.Style, content dimen.Vec2) (column, row float32) {
	column = frame.Resolve(s.Gap.Width, content.X, p.scale()).UnwrapOr(0)
	row = frame.Resolve(s.Gap.Height, content.Y, p.scale()).UnwrapOr(0)
	return dimen.Max(0, column), dimen.Max(0, row)
}
