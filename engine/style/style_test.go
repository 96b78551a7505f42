package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaultStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.style")
	defer teardown()
	//
	s := Default()
	assert.Equal(t, DisplayFlex, s.Display)
	assert.Equal(t, PositionRelative, s.PositionType)
	assert.Equal(t, DirectionInherit, s.Direction)
	assert.Equal(t, FlexRow, s.FlexDirection)
	assert.Equal(t, NoWrap, s.FlexWrap)
	assert.Equal(t, AlignItemsStretch, s.AlignItems)
	assert.Equal(t, AlignSelfAuto, s.AlignSelf)
	assert.Equal(t, AlignContentStretch, s.AlignContent)
	assert.Equal(t, JustifyFlexStart, s.JustifyContent)
	for _, e := range []Edges{s.Position, s.Margin, s.Padding, s.Border} {
		assert.Equal(t, EdgesAll(Undefined()), e)
	}
	assert.Equal(t, float32(0), s.FlexGrow)
	assert.Equal(t, float32(1), s.FlexShrink)
	assert.Equal(t, Auto(), s.FlexBasis)
	assert.Equal(t, SizeAuto(), s.Size)
	assert.Equal(t, SizeAuto(), s.MinSize)
	assert.Equal(t, SizeAuto(), s.MaxSize)
	assert.True(t, s.AspectRatio.IsNone())
	assert.Equal(t, OverflowVisible, s.Overflow)
	assert.Equal(t, SizeUndefined(), s.Gap)
	assert.NotEqual(t, SizeAuto(), SizeUndefined())
}

func TestRowAndColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.style")
	defer teardown()
	//
	assert.Equal(t, FlexRow, Row().FlexDirection)
	assert.Equal(t, FlexColumn, Column().FlexDirection)
	assert.Equal(t, DisplayFlex, Column().Display)
}

func TestSetters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.style")
	defer teardown()
	//
	s := Default().
		WithMargin(Px(5)).
		WithMarginLeft(Percent(10)).
		WithPaddingVertical(Px(2)).
		WithBorderHorizontal(Px(1)).
		WithPositionHorizontal(Px(3)).
		WithTop(Percent(50)).
		WithRowGap(Px(4)).
		WithColumnGap(Px(6)).
		WithAspectRatio(2).
		WithFlexGrow(1).
		WithFlexShrink(0).
		WithFlexBasis(Px(100)).
		WithMinWidth(Px(200)).
		WithMaxWidth(Px(100)) // min > max is valid data
	assert.Equal(t, NewEdges(Percent(10), Px(5), Px(5), Px(5)), s.Margin)
	assert.Equal(t, EdgesVertical(Px(2)), s.Padding)
	assert.Equal(t, EdgesHorizontal(Px(1)), s.Border)
	assert.Equal(t, NewEdges(Px(3), Px(3), Percent(50), Undefined()), s.Position)
	assert.Equal(t, NewSize(Px(6), Px(4)), s.Gap)
	assert.Equal(t, float32(2), s.AspectRatio.Unwrap())
	assert.Equal(t, Px(200), s.MinSize.Width)
	assert.Equal(t, Px(100), s.MaxSize.Width)
	assert.Equal(t, Auto(), s.Size.Width)
	//
	d := Default()
	_ = d.WithWidth(Px(1))
	assert.Equal(t, Auto(), d.Size.Width, "setters must not modify the receiver")
}

func TestAlignSelfResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.style")
	defer teardown()
	//
	assert.Equal(t, AlignItemsCenter, AlignSelfAuto.Resolve(AlignItemsCenter))
	assert.Equal(t, AlignItemsFlexEnd, AlignSelfFlexEnd.Resolve(AlignItemsCenter))
	assert.Equal(t, "space-evenly", JustifySpaceEvenly.String())
	assert.Equal(t, "FlexWrap(9)", FlexWrap(9).String())
	assert.True(t, FlexRowReverse.IsRow() && FlexRowReverse.IsReverse())
	assert.False(t, FlexColumn.IsRow())
}
