package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/flexui/core/dimen"
	"github.com/npillmayer/flexui/core/option"
	"github.com/npillmayer/flexui/engine/style"
)

// Box holds the edges of the CSS box model, resolved to pixels.
//
// Sizes of boxes are always border-box sizes: padding and border lie inside
// of a box's size, margins outside.
type Box struct {
	Padding [4]float32 // inside of border, >= 0
	Border  [4]float32 // thickness of border, >= 0
	Margin  [4]float32 // outside of border, may be negative
}

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// ResolveBox resolves the margin, padding and border lengths of a style.
// Percentages refer to ref, which is the content width of the parent box,
// for all four sides. Pixel lengths are multiplied by scale.
func ResolveBox(s style.Style, ref float32, scale float32) Box {
	box := Box{
		Padding: ResolveEdges(s.Padding, ref, scale),
		Border:  ResolveEdges(s.Border, ref, scale),
		Margin:  ResolveEdges(s.Margin, ref, scale),
	}
	for dir := Top; dir <= Left; dir++ {
		box.Padding[dir] = dimen.Max(0, box.Padding[dir])
		box.Border[dir] = dimen.Max(0, box.Border[dir])
	}
	return box
}

// ResolveEdges resolves four edge lengths to pixels. Undefined and auto
// edges resolve to 0.
func ResolveEdges(e style.Edges, ref float32, scale float32) [4]float32 {
	return [4]float32{
		Top:    Resolve(e.Top, ref, scale).UnwrapOr(0),
		Right:  Resolve(e.Right, ref, scale).UnwrapOr(0),
		Bottom: Resolve(e.Bottom, ref, scale).UnwrapOr(0),
		Left:   Resolve(e.Left, ref, scale).UnwrapOr(0),
	}
}

// Resolve evaluates a length to pixels, with percentages referring to ref and
// pixel lengths multiplied by scale. Undefined and auto lengths resolve to
// an unset option.
func Resolve(l style.Length, ref float32, scale float32) option.Float32T {
	v, err := l.Match(option.Of{
		option.None:    option.Float32(),
		style.KindAuto: option.Float32(),
		style.KindPx:   option.SomeFloat32(l.Scale(scale).Amount()),
		option.Some:    option.SomeFloat32(l.EvaluateOr(ref, 0)),
	})
	if err != nil {
		tracer().Errorf("cannot resolve length %v: %v", l, err)
		return option.Float32()
	}
	return v.(option.Float32T)
}

// DecorationWidth returns the sum of horizontal padding and border widths.
func (box Box) DecorationWidth() float32 {
	return box.Padding[Left] + box.Padding[Right] + box.Border[Left] + box.Border[Right]
}

// DecorationHeight returns the sum of vertical padding and border widths.
func (box Box) DecorationHeight() float32 {
	return box.Padding[Top] + box.Padding[Bottom] + box.Border[Top] + box.Border[Bottom]
}

// Decoration returns DecorationWidth and DecorationHeight as a vector.
func (box Box) Decoration() dimen.Vec2 {
	return dimen.V(box.DecorationWidth(), box.DecorationHeight())
}

// MarginWidth returns the sum of the left and right margins.
func (box Box) MarginWidth() float32 {
	return box.Margin[Left] + box.Margin[Right]
}

// MarginHeight returns the sum of the top and bottom margins.
func (box Box) MarginHeight() float32 {
	return box.Margin[Top] + box.Margin[Bottom]
}

// Margins returns MarginWidth and MarginHeight as a vector.
func (box Box) Margins() dimen.Vec2 {
	return dimen.V(box.MarginWidth(), box.MarginHeight())
}

// ContentRect returns the content box for a border box rectangle.
func (box Box) ContentRect(border dimen.Rect) dimen.Rect {
	return border.Inset(
		box.Padding[Left]+box.Border[Left],
		box.Padding[Right]+box.Border[Right],
		box.Padding[Top]+box.Border[Top],
		box.Padding[Bottom]+box.Border[Bottom],
	)
}

// DebugString returns a textual representation of a box's edges.
// Intended for debugging.
func (box Box) DebugString() string {
	s := "box{\n"
	s += fmt.Sprintf("   p.top=%v, p.right=%v, p.bottom=%v, p.left=%v\n",
		box.Padding[Top], box.Padding[Right],
		box.Padding[Bottom], box.Padding[Left])
	s += fmt.Sprintf("   b.top=%v, b.right=%v, b.bottom=%v, b.left=%v\n",
		box.Border[Top], box.Border[Right],
		box.Border[Bottom], box.Border[Left])
	s += fmt.Sprintf("   m.top=%v, m.right=%v, m.bottom=%v, m.left=%v\n",
		box.Margin[Top], box.Margin[Right],
		box.Margin[Bottom], box.Margin[Left])
	s += "}"
	return s
}
