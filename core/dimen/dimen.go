// Package dimen implements logical-pixel geometry for layout results.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
)

// Vec2 is a pair of logical pixel values, used both for points and for extents.
type Vec2 struct {
	X, Y float32
}

// Zero is the origin, or an empty extent.
var Zero = Vec2{0, 0}

// V is a shortcut to create a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Stringer implementation.
func (v Vec2) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

// Add returns the component-wise sum of v and w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns the component-wise difference of v and w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Rect is an axis-aligned rectangle in logical pixels.
// Min is the top-left corner, Max the bottom-right corner.
type Rect struct {
	Min, Max Vec2
}

// R creates a rectangle from a top-left position and an extent.
func R(topL Vec2, size Vec2) Rect {
	return Rect{Min: topL, Max: topL.Add(size)}
}

// Width returns the width of a rectangle, i.e. the difference between x-coordinates
// of bottom-right and top-left corner.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the height of a rectangle, i.e. the difference between y-coordinates
// of bottom-right and top-left corner.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns width and height of r.
func (r Rect) Size() Vec2 {
	return Vec2{r.Width(), r.Height()}
}

// IsEmpty is true if r has no area.
func (r Rect) IsEmpty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p lies within r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the largest rectangle contained in both r and s.
// If they do not overlap, the empty rectangle at r.Min is returned.
func (r Rect) Intersect(s Rect) Rect {
	x := Rect{
		Min: Vec2{Max(r.Min.X, s.Min.X), Max(r.Min.Y, s.Min.Y)},
		Max: Vec2{Min(r.Max.X, s.Max.X), Min(r.Max.Y, s.Max.Y)},
	}
	if x.IsEmpty() {
		return Rect{Min: r.Min, Max: r.Min}
	}
	return x
}

// Inset shrinks r by the given amounts on each side. The result never has
// negative extent.
func (r Rect) Inset(left, right, top, bottom float32) Rect {
	x := Rect{
		Min: Vec2{r.Min.X + left, r.Min.Y + top},
		Max: Vec2{r.Max.X - right, r.Max.Y - bottom},
	}
	if x.Max.X < x.Min.X {
		x.Max.X = x.Min.X
	}
	if x.Max.Y < x.Min.Y {
		x.Max.Y = x.Min.Y
	}
	return x
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v-%v]", r.Min, r.Max)
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts v to [min, max]. If min > max, min wins.
func Clamp(v, min, max float32) float32 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

// IsFinite is false for NaN and infinities.
func IsFinite(f float32) bool {
	x := float64(f)
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
