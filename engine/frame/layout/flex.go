package layout

import (
	"github.com/npillmayer/flexui/core/dimen"
	"github.com/npillmayer/flexui/core/option"
	"github.com/npillmayer/flexui/engine/frame"
	"github.com/npillmayer/flexui/engine/style"
)

// flexItem is an in-flow child of a flex container during layout.
type flexItem struct {
	node      *Node
	box       frame.Box
	sz        sizes
	grow      float32
	shrink    float32
	basis     float32 // flex base size
	hyp       float32 // hypothetical main size
	main      float32 // target main size
	cross     float32 // cross size
	margins   dimen.Vec2
	align     style.AlignItems
	frozen    bool
	violation float32
	measured  *dimen.Vec2
}

func (it *flexItem) outerMain(row bool) float32 {
	m, _ := mainCross(it.margins, row)
	return it.main + m
}

func (it *flexItem) outerCross(row bool) float32 {
	_, c := mainCross(it.margins, row)
	return it.cross + c
}

func (p *flexPass) measureItem(it *flexItem, avail dimen.Vec2) dimen.Vec2 {
	if it.measured == nil {
		m := p.measure(it.node, it.box, avail)
		it.measured = &m
	}
	return *it.measured
}

// container is a flex container during layout of its children.
type container struct {
	style    style.Style
	content  dimen.Rect
	size     dimen.Vec2 // of the content box
	row      bool
	reverse  bool
	main     float32 // content size along the main axis
	cross    float32 // content size along the cross axis
	gapMain  float32 // gap between items of a line
	gapCross float32 // gap between lines
}

// layoutChildren places the children of a flex container with a given
// content box, then recurses into the children.
func (p *flexPass) layoutChildren(parent style.Style, content dimen.Rect, children []*Node, clip *dimen.Rect) {
	if len(children) == 0 {
		return
	}
	c := p.newContainer(parent, content)
	var items []*flexItem
	var absolutes []*Node
	for _, child := range children {
		switch {
		case child.style.Display == style.DisplayNone:
			p.hide(child)
		case child.style.PositionType == style.PositionAbsolute:
			absolutes = append(absolutes, child)
		default:
			items = append(items, p.newItem(child, c))
		}
	}
	lines := breakLines(items, c)
	for _, line := range lines {
		resolveFlexibleLengths(line, c)
		for _, it := range line {
			p.resolveCross(it, c)
		}
	}
	lineSizes, lineOffsets := p.alignLines(lines, c)
	for i, line := range lines {
		p.placeLine(line, lineSizes[i], lineOffsets[i], c, clip)
	}
	for _, child := range absolutes {
		p.placeAbsolute(child, c, clip)
	}
}

func (p *flexPass) newContainer(s style.Style, content dimen.Rect) *container {
	c := &container{style: s, content: content, size: content.Size()}
	c.row = s.FlexDirection.IsRow()
	c.reverse = s.FlexDirection.IsReverse()
	if c.row && p.rtl() {
		c.reverse = !c.reverse
	}
	c.main, c.cross = mainCross(c.size, c.row)
	colGap, rowGap := p.gaps(s, c.size)
	if c.row {
		c.gapMain, c.gapCross = colGap, rowGap
	} else {
		c.gapMain, c.gapCross = rowGap, colGap
	}
	return c
}

// newItem determines the flex base size and hypothetical main size of a child.
// The flex basis takes precedence over the preferred size; without either,
// the size of the content is used.
func (p *flexPass) newItem(n *Node, c *container) *flexItem {
	box := frame.ResolveBox(n.style, c.size.X, p.scale())
	it := &flexItem{
		node:    n,
		box:     box,
		sz:      p.resolveSizes(n, c.size, box),
		grow:    factor(n.style.FlexGrow),
		shrink:  factor(n.style.FlexShrink),
		margins: box.Margins(),
		align:   n.style.AlignSelf.Resolve(c.style.AlignItems),
	}
	axis := mainAxis(c.row)
	if basis := frame.Resolve(n.style.FlexBasis, c.main, p.scale()); !basis.IsNone() {
		it.basis = basis.Unwrap()
	} else if it.sz.hasPref[axis] {
		it.basis = it.sz.pref[axis]
	} else {
		it.basis = component(p.measureItem(it, c.size), axis)
	}
	it.basis = dimen.Max(0, it.basis)
	it.hyp = it.sz.clamp(axis, it.basis)
	it.main = it.hyp
	return it
}

// factor sanitizes a flex factor. Negative and non-finite factors count as 0.
func factor(f float32) float32 {
	if !dimen.IsFinite(f) || f < 0 {
		return 0
	}
	return f
}

// breakLines collects items into flex lines. Without wrapping, all items are
// on a single line.
func breakLines(items []*flexItem, c *container) [][]*flexItem {
	if c.style.FlexWrap == style.NoWrap || len(items) == 0 {
		return [][]*flexItem{items}
	}
	var lines [][]*flexItem
	var line []*flexItem
	var used float32
	for _, it := range items {
		outer := it.outerMain(c.row)
		if len(line) > 0 && used+c.gapMain+outer > c.main {
			lines = append(lines, line)
			line, used = nil, 0
		}
		if len(line) > 0 {
			used += c.gapMain
		}
		used += outer
		line = append(line, it)
	}
	return append(lines, line)
}

// resolveFlexibleLengths grows or shrinks the items of a line to fill the
// main size of the container. Items violating their min or max size are
// frozen at the clamped size and the remaining space is distributed again.
// Shrinking is weighted by the flex base size.
func resolveFlexibleLengths(line []*flexItem, c *container) {
	if len(line) == 0 {
		return
	}
	axis := mainAxis(c.row)
	gaps := c.gapMain * float32(len(line)-1)
	used := gaps
	for _, it := range line {
		used += it.outerMain(c.row)
	}
	free := c.main - used
	growing := free > 0
	for _, it := range line {
		it.frozen = free == 0 || (growing && it.grow == 0) || (!growing && it.shrink == 0)
	}
	for range line {
		remaining := c.main - gaps
		var sumGrow, sumShrink float32
		active := 0
		for _, it := range line {
			mm, _ := mainCross(it.margins, c.row)
			if it.frozen {
				remaining -= it.main + mm
				continue
			}
			remaining -= it.basis + mm
			sumGrow += it.grow
			sumShrink += it.shrink * it.basis
			active++
		}
		if active == 0 {
			break
		}
		var total float32
		for _, it := range line {
			if it.frozen {
				continue
			}
			target := it.basis
			if remaining > 0 && growing && sumGrow > 0 {
				target += remaining * it.grow / sumGrow
			} else if remaining < 0 && !growing && sumShrink > 0 {
				target += remaining * it.shrink * it.basis / sumShrink
			}
			clamped := it.sz.clamp(axis, target)
			it.violation = clamped - target
			it.main = clamped
			total += it.violation
		}
		for _, it := range line {
			if it.frozen {
				continue
			}
			if total == 0 || (total > 0 && it.violation > 0) || (total < 0 && it.violation < 0) {
				it.frozen = true
			}
		}
	}
}

// resolveCross determines the cross size of an item before stretching.
func (p *flexPass) resolveCross(it *flexItem, c *container) {
	axis := 1 - mainAxis(c.row)
	var v float32
	switch {
	case it.sz.hasPref[axis] && !it.sz.derived[axis]:
		v = it.sz.pref[axis]
	case it.sz.ratio > 0:
		v = it.sz.fromRatio(axis, it.main)
	default:
		v = component(p.measureItem(it, c.size), axis)
	}
	it.cross = it.sz.clamp(axis, v)
}

// stretches is true if an item is stretched to the cross size of its line.
// Items with a definite cross size or an aspect ratio keep their size.
func (it *flexItem) stretches(c *container) bool {
	axis := 1 - mainAxis(c.row)
	return it.align == style.AlignItemsStretch && !it.sz.hasPref[axis] && it.sz.ratio == 0
}

// alignLines computes the cross size of every line and distributes the lines
// along the cross axis. The single line of a non-wrapping container always takes
// the container's cross size.
func (p *flexPass) alignLines(lines [][]*flexItem, c *container) (sizes, offsets []float32) {
	sizes = make([]float32, len(lines))
	offsets = make([]float32, len(lines))
	if c.style.FlexWrap == style.NoWrap {
		sizes[0] = c.cross
		return
	}
	var used float32
	for i, line := range lines {
		for _, it := range line {
			sizes[i] = dimen.Max(sizes[i], it.outerCross(c.row))
		}
		used += sizes[i]
	}
	n := float32(len(lines))
	used += c.gapCross * (n - 1)
	free := c.cross - used
	start, between := float32(0), c.gapCross
	switch c.style.AlignContent {
	case style.AlignContentFlexEnd:
		start = free
	case style.AlignContentCenter:
		start = free / 2
	case style.AlignContentStretch:
		if free > 0 {
			for i := range sizes {
				sizes[i] += free / n
			}
		}
	case style.AlignContentSpaceBetween:
		if free > 0 && len(lines) > 1 {
			between += free / (n - 1)
		}
	case style.AlignContentSpaceAround:
		if free > 0 {
			start = free / n / 2
			between += free / n
		}
	}
	pos := start
	for i := range sizes {
		offsets[i] = pos
		pos += sizes[i] + between
	}
	return
}

// justify returns the offsets of the outer boxes of a line's items along the
// main axis, in flow direction.
func justify(line []*flexItem, c *container) []float32 {
	offsets := make([]float32, len(line))
	if len(line) == 0 {
		return offsets
	}
	n := float32(len(line))
	used := c.gapMain * (n - 1)
	for _, it := range line {
		used += it.outerMain(c.row)
	}
	free := c.main - used
	start, between := float32(0), c.gapMain
	switch c.style.JustifyContent {
	case style.JustifyFlexEnd:
		start = free
	case style.JustifyCenter:
		start = free / 2
	case style.JustifySpaceBetween:
		if free > 0 && len(line) > 1 {
			between += free / (n - 1)
		}
	case style.JustifySpaceAround:
		if free > 0 {
			start = free / n / 2
			between += free / n
		} else {
			start = free / 2
		}
	case style.JustifySpaceEvenly:
		if free > 0 {
			start = free / (n + 1)
			between += free / (n + 1)
		} else {
			start = free / 2
		}
	}
	pos := start
	for i, it := range line {
		offsets[i] = pos
		pos += it.outerMain(c.row) + between
	}
	return offsets
}

// placeLine positions the items of a line and finishes them.
func (p *flexPass) placeLine(line []*flexItem, lineSize, lineOffset float32, c *container, clip *dimen.Rect) {
	crossAxis := 1 - mainAxis(c.row)
	for _, it := range line {
		if it.stretches(c) {
			_, mc := mainCross(it.margins, c.row)
			it.cross = it.sz.clamp(crossAxis, lineSize-mc)
		}
	}
	offsets := justify(line, c)
	for i, it := range line {
		outerMain, outerCross := it.outerMain(c.row), it.outerCross(c.row)
		flowCross := lineOffset
		switch it.align {
		case style.AlignItemsFlexEnd:
			flowCross += lineSize - outerCross
		case style.AlignItemsCenter:
			flowCross += (lineSize - outerCross) / 2
		}
		m, x := offsets[i], flowCross
		if c.reverse {
			m = c.main - m - outerMain
		}
		if c.style.FlexWrap == style.WrapReverse {
			x = c.cross - x - outerCross
		}
		pos := c.content.Min.
			Add(fromMainCross(m, x, c.row)).
			Add(dimen.V(it.box.Margin[frame.Left], it.box.Margin[frame.Top]))
		size := fromMainCross(it.main, it.cross, c.row)
		p.finish(it.node, dimen.R(pos, size), it.box, clip)
	}
}

// placeAbsolute positions a child taken out of flow by its position edges.
// Offsets refer to the content box of the parent. Without offsets, the child
// sits at the start of the content box.
func (p *flexPass) placeAbsolute(n *Node, c *container, clip *dimen.Rect) {
	scale := p.scale()
	box := frame.ResolveBox(n.style, c.size.X, scale)
	sz := p.resolveSizes(n, c.size, box)
	pos := n.style.Position
	offsets := [2][2]option.Float32T{
		horizontal: {frame.Resolve(pos.Left, c.size.X, scale), frame.Resolve(pos.Right, c.size.X, scale)},
		vertical:   {frame.Resolve(pos.Top, c.size.Y, scale), frame.Resolve(pos.Bottom, c.size.Y, scale)},
	}
	margins := [2][2]float32{
		horizontal: {box.Margin[frame.Left], box.Margin[frame.Right]},
		vertical:   {box.Margin[frame.Top], box.Margin[frame.Bottom]},
	}
	var size [2]float32
	var known [2]bool
	for axis := horizontal; axis <= vertical; axis++ {
		start, end := offsets[axis][0], offsets[axis][1]
		if sz.hasPref[axis] && !sz.derived[axis] {
			size[axis], known[axis] = sz.pref[axis], true
		} else if !start.IsNone() && !end.IsNone() {
			size[axis] = component(c.size, axis) - start.Unwrap() - end.Unwrap() -
				margins[axis][0] - margins[axis][1]
			known[axis] = true
		}
	}
	var measured *dimen.Vec2
	for axis := horizontal; axis <= vertical; axis++ {
		other := 1 - axis
		switch {
		case known[axis]:
		case sz.ratio > 0 && known[other]:
			size[axis] = sz.fromRatio(axis, size[other])
		default:
			if measured == nil {
				m := p.measure(n, box, c.size)
				measured = &m
			}
			size[axis] = component(*measured, axis)
		}
		size[axis] = sz.clamp(axis, size[axis])
	}
	var topL [2]float32
	for axis := horizontal; axis <= vertical; axis++ {
		start, end := offsets[axis][0], offsets[axis][1]
		origin := component(c.content.Min, axis)
		switch {
		case !start.IsNone():
			topL[axis] = origin + start.Unwrap() + margins[axis][0]
		case !end.IsNone():
			topL[axis] = origin + component(c.size, axis) - end.Unwrap() - margins[axis][1] - size[axis]
		default:
			topL[axis] = origin + margins[axis][0]
		}
	}
	border := dimen.R(dimen.V(topL[horizontal], topL[vertical]), dimen.V(size[horizontal], size[vertical]))
	p.finish(n, border, box, clip)
}
