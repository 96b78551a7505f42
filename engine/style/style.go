package style

import (
	"github.com/npillmayer/flexui/core/option"
)

// Style is the layout configuration of a node.
//
// Percentages of Margin, Padding and Border resolve against the width of the
// parent's content box, for all four sides. Size, MinSize and MaxSize are
// resolved as clamp(Size, MinSize, MaxSize) per axis, where MinSize wins over
// MaxSize. FlexBasis, if not auto, takes the place of Size on the main axis.
type Style struct {
	Display        Display
	PositionType   PositionType
	Direction      Direction
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	AlignItems     AlignItems
	AlignSelf      AlignSelf
	AlignContent   AlignContent
	JustifyContent JustifyContent

	Position Edges // offsets, used with PositionAbsolute only
	Margin   Edges
	Padding  Edges
	Border   Edges

	FlexGrow   float32 // share of surplus space, >= 0
	FlexShrink float32 // share of deficit space, >= 0
	FlexBasis  Length

	Size    Size
	MinSize Size
	MaxSize Size

	AspectRatio option.Float32T // width / height
	Overflow    Overflow
	Gap         Size // Width is the gap between columns, Height between rows
}

// Default returns a style with every field set to its default.
func Default() Style {
	return Style{
		Display:        DefaultDisplay,
		PositionType:   DefaultPositionType,
		Direction:      DefaultDirection,
		FlexDirection:  DefaultFlexDirection,
		FlexWrap:       DefaultFlexWrap,
		AlignItems:     DefaultAlignItems,
		AlignSelf:      DefaultAlignSelf,
		AlignContent:   DefaultAlignContent,
		JustifyContent: DefaultJustifyContent,
		Position:       DefaultEdges,
		Margin:         DefaultEdges,
		Padding:        DefaultEdges,
		Border:         DefaultEdges,
		FlexGrow:       0,
		FlexShrink:     1,
		FlexBasis:      Auto(),
		Size:           SizeAuto(),
		MinSize:        SizeAuto(),
		MaxSize:        SizeAuto(),
		AspectRatio:    option.Float32(),
		Overflow:       DefaultOverflow,
		Gap:            SizeUndefined(),
	}
}

// Row returns the default style with a row main axis.
func Row() Style {
	return Default().WithFlexDirection(FlexRow)
}

// Column returns the default style with a column main axis.
func Column() Style {
	return Default().WithFlexDirection(FlexColumn)
}

// --- Setters ---------------------------------------------------------------

// WithDisplay sets the display mode.
func (s Style) WithDisplay(v Display) Style {
	s.Display = v
	return s
}

// WithPositionType sets the positioning strategy.
func (s Style) WithPositionType(v PositionType) Style {
	s.PositionType = v
	return s
}

// WithDirection sets the text direction.
func (s Style) WithDirection(v Direction) Style {
	s.Direction = v
	return s
}

// WithFlexDirection sets the orientation of the main axis.
func (s Style) WithFlexDirection(v FlexDirection) Style {
	s.FlexDirection = v
	return s
}

// WithFlexWrap sets whether items wrap onto multiple lines.
func (s Style) WithFlexWrap(v FlexWrap) Style {
	s.FlexWrap = v
	return s
}

// WithAlignItems sets the default cross axis alignment of children.
func (s Style) WithAlignItems(v AlignItems) Style {
	s.AlignItems = v
	return s
}

// WithAlignSelf sets the cross axis alignment of this node, overriding the parent.
func (s Style) WithAlignSelf(v AlignSelf) Style {
	s.AlignSelf = v
	return s
}

// WithAlignContent sets the distribution of wrapped lines.
func (s Style) WithAlignContent(v AlignContent) Style {
	s.AlignContent = v
	return s
}

// WithJustifyContent sets the distribution of items on the main axis.
func (s Style) WithJustifyContent(v JustifyContent) Style {
	s.JustifyContent = v
	return s
}

// Position offsets.

// WithLeft sets the left offset.
func (s Style) WithLeft(v Length) Style {
	s.Position.Left = v
	return s
}

// WithRight sets the right offset.
func (s Style) WithRight(v Length) Style {
	s.Position.Right = v
	return s
}

// WithTop sets the top offset.
func (s Style) WithTop(v Length) Style {
	s.Position.Top = v
	return s
}

// WithBottom sets the bottom offset.
func (s Style) WithBottom(v Length) Style {
	s.Position.Bottom = v
	return s
}

// WithPositionHorizontal sets the left and right offsets.
func (s Style) WithPositionHorizontal(v Length) Style {
	s.Position.Left, s.Position.Right = v, v
	return s
}

// WithPositionVertical sets the top and bottom offsets.
func (s Style) WithPositionVertical(v Length) Style {
	s.Position.Top, s.Position.Bottom = v, v
	return s
}

// WithPosition sets all four offsets.
func (s Style) WithPosition(v Length) Style {
	s.Position = EdgesAll(v)
	return s
}

// Margin.

// WithMarginLeft sets the left margin.
func (s Style) WithMarginLeft(v Length) Style {
	s.Margin.Left = v
	return s
}

// WithMarginRight sets the right margin.
func (s Style) WithMarginRight(v Length) Style {
	s.Margin.Right = v
	return s
}

// WithMarginTop sets the top margin.
func (s Style) WithMarginTop(v Length) Style {
	s.Margin.Top = v
	return s
}

// WithMarginBottom sets the bottom margin.
func (s Style) WithMarginBottom(v Length) Style {
	s.Margin.Bottom = v
	return s
}

// WithMarginHorizontal sets the left and right margins.
func (s Style) WithMarginHorizontal(v Length) Style {
	s.Margin.Left, s.Margin.Right = v, v
	return s
}

// WithMarginVertical sets the top and bottom margins.
func (s Style) WithMarginVertical(v Length) Style {
	s.Margin.Top, s.Margin.Bottom = v, v
	return s
}

// WithMargin sets all four margins.
func (s Style) WithMargin(v Length) Style {
	s.Margin = EdgesAll(v)
	return s
}

// Padding.

// WithPaddingLeft sets the left padding.
func (s Style) WithPaddingLeft(v Length) Style {
	s.Padding.Left = v
	return s
}

// WithPaddingRight sets the right padding.
func (s Style) WithPaddingRight(v Length) Style {
	s.Padding.Right = v
	return s
}

// WithPaddingTop sets the top padding.
func (s Style) WithPaddingTop(v Length) Style {
	s.Padding.Top = v
	return s
}

// WithPaddingBottom sets the bottom padding.
func (s Style) WithPaddingBottom(v Length) Style {
	s.Padding.Bottom = v
	return s
}

// WithPaddingHorizontal sets the left and right paddings.
func (s Style) WithPaddingHorizontal(v Length) Style {
	s.Padding.Left, s.Padding.Right = v, v
	return s
}

// WithPaddingVertical sets the top and bottom paddings.
func (s Style) WithPaddingVertical(v Length) Style {
	s.Padding.Top, s.Padding.Bottom = v, v
	return s
}

// WithPadding sets all four paddings.
func (s Style) WithPadding(v Length) Style {
	s.Padding = EdgesAll(v)
	return s
}

// Border widths.

// WithBorderLeft sets the left border width.
func (s Style) WithBorderLeft(v Length) Style {
	s.Border.Left = v
	return s
}

// WithBorderRight sets the right border width.
func (s Style) WithBorderRight(v Length) Style {
	s.Border.Right = v
	return s
}

// WithBorderTop sets the top border width.
func (s Style) WithBorderTop(v Length) Style {
	s.Border.Top = v
	return s
}

// WithBorderBottom sets the bottom border width.
func (s Style) WithBorderBottom(v Length) Style {
	s.Border.Bottom = v
	return s
}

// WithBorderHorizontal sets the left and right border widths.
func (s Style) WithBorderHorizontal(v Length) Style {
	s.Border.Left, s.Border.Right = v, v
	return s
}

// WithBorderVertical sets the top and bottom border widths.
func (s Style) WithBorderVertical(v Length) Style {
	s.Border.Top, s.Border.Bottom = v, v
	return s
}

// WithBorder sets all four border widths.
func (s Style) WithBorder(v Length) Style {
	s.Border = EdgesAll(v)
	return s
}

// Flex factors.

// WithFlexGrow sets the share of surplus space.
func (s Style) WithFlexGrow(v float32) Style {
	s.FlexGrow = v
	return s
}

// WithFlexShrink sets the share of deficit space.
func (s Style) WithFlexShrink(v float32) Style {
	s.FlexShrink = v
	return s
}

// WithFlexBasis sets the initial main size.
func (s Style) WithFlexBasis(v Length) Style {
	s.FlexBasis = v
	return s
}

// Sizes.

// WithWidth sets the preferred width.
func (s Style) WithWidth(v Length) Style {
	s.Size.Width = v
	return s
}

// WithHeight sets the preferred height.
func (s Style) WithHeight(v Length) Style {
	s.Size.Height = v
	return s
}

// WithMinWidth sets the minimum width.
func (s Style) WithMinWidth(v Length) Style {
	s.MinSize.Width = v
	return s
}

// WithMinHeight sets the minimum height.
func (s Style) WithMinHeight(v Length) Style {
	s.MinSize.Height = v
	return s
}

// WithMaxWidth sets the maximum width.
func (s Style) WithMaxWidth(v Length) Style {
	s.MaxSize.Width = v
	return s
}

// WithMaxHeight sets the maximum height.
func (s Style) WithMaxHeight(v Length) Style {
	s.MaxSize.Height = v
	return s
}

// WithAspectRatio sets the ratio of width to height.
func (s Style) WithAspectRatio(v float32) Style {
	s.AspectRatio = option.SomeFloat32(v)
	return s
}

// WithOverflow sets whether overflowing content is clipped.
func (s Style) WithOverflow(v Overflow) Style {
	s.Overflow = v
	return s
}

// Gaps.

// WithRowGap sets the gap between rows, i.e. the vertical gap.
func (s Style) WithRowGap(v Length) Style {
	s.Gap.Height = v
	return s
}

// WithColumnGap sets the gap between columns, i.e. the horizontal gap.
func (s Style) WithColumnGap(v Length) Style {
	s.Gap.Width = v
	return s
}

// WithGap sets both gaps.
func (s Style) WithGap(v Length) Style {
	s.Gap = SizeAll(v)
	return s
}
