package layout

import (
	"fmt"

	"github.com/npillmayer/flexui/core/dimen"
	"github.com/npillmayer/flexui/engine/frame"
	"github.com/npillmayer/flexui/engine/style"
)

// DemoScene builds a tree demonstrating how AlignItems and JustifyContent
// compose: a wrapping grid of 30 cells, one per combination, each holding
// two labels, and a sidebar with a legend.
//
// Labels carry intrinsic sizes estimated for a 16px font.
func DemoScene() *Node {
	margin := style.Px(5)
	root := NewNode("root", style.Default().
		WithWidth(style.Percent(100)).
		WithHeight(style.Percent(100)).
		WithAlignItems(style.AlignItemsCenter))
	grid := NewNode("grid", style.Default().
		WithFlexWrap(style.Wrap).
		WithFlexGrow(1).
		WithFlexBasis(style.Px(0)).
		WithHeight(style.Percent(100)))
	root.AddChild(grid)
	justifications := []style.JustifyContent{
		style.JustifyFlexStart,
		style.JustifyCenter,
		style.JustifyFlexEnd,
		style.JustifySpaceEvenly,
		style.JustifySpaceAround,
		style.JustifySpaceBetween,
	}
	alignments := []style.AlignItems{
		style.AlignItemsBaseline,
		style.AlignItemsFlexStart,
		style.AlignItemsCenter,
		style.AlignItemsFlexEnd,
		style.AlignItemsStretch,
	}
	for _, j := range justifications {
		for _, a := range alignments {
			cell := NewNode(fmt.Sprintf("cell-%v-%v", a, j), style.Column().
				WithAlignItems(a).
				WithJustifyContent(j).
				WithWidth(style.Percent(18)).
				WithFlexGrow(1).
				WithMargin(margin))
			cell.AddChild(label(a.String(), style.Px(0)))
			cell.AddChild(label(j.String(), style.Px(3)))
			grid.AddChild(cell)
		}
	}
	sidebar := NewNode("sidebar", style.Column().
		WithMarginTop(margin).
		WithPadding(style.Px(10)).
		WithWidth(style.Px(300)).
		WithAlignItems(style.AlignItemsStretch))
	sidebar.AddChild(label("AlignItems", style.Undefined()).withMarginBottom(margin))
	sidebar.AddChild(label("JustifyContent", style.Undefined()))
	root.AddChild(sidebar)
	return root
}

// label creates a padded node wrapping a text node of estimated size.
func label(text string, top style.Length) *Node {
	box := NewNode("label:"+text, style.Default().
		WithMarginTop(top).
		WithPaddingVertical(style.Px(1)).
		WithPaddingHorizontal(style.Px(5)))
	t := NewNode("text:"+text, style.Default())
	t.SetIntrinsic(frame.Intrinsic{Size: dimen.V(float32(len(text))*8.5, 19)})
	box.AddChild(t)
	return box
}

func (n *Node) withMarginBottom(l style.Length) *Node {
	n.SetStyle(n.style.WithMarginBottom(l))
	return n
}
