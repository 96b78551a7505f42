package style

import "fmt"

// Display tells whether a node takes part in layout.
type Display uint8

const (
	DisplayFlex Display = iota // lay out with the flexbox model
	DisplayNone                // no layout and no rendering, for the node and its children
)

// PositionType is the strategy used to position a node.
type PositionType uint8

const (
	PositionRelative PositionType = iota // flows with its siblings
	PositionAbsolute                     // placed by its position edges, ignored by sibling flow
)

// Direction is the text direction of a node.
type Direction uint8

const (
	DirectionInherit     Direction = iota // inherit from the parent node
	DirectionLeftToRight                  // e.g. English
	DirectionRightToLeft                  // e.g. Arabic
)

// FlexDirection is the orientation of the main axis.
type FlexDirection uint8

const (
	FlexRow           FlexDirection = iota // in text direction
	FlexColumn                             // top to bottom
	FlexRowReverse                         // against text direction
	FlexColumnReverse                      // bottom to top
)

// FlexWrap tells if flex items are placed on one or on multiple lines.
type FlexWrap uint8

const (
	NoWrap      FlexWrap = iota // single line, may overflow
	Wrap                        // multiple lines if needed
	WrapReverse                 // like Wrap, new lines before previous ones
)

// AlignItems is the default cross axis alignment of children.
type AlignItems uint8

const (
	AlignItemsFlexStart AlignItems = iota
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

// AlignSelf overrides the parent's AlignItems for one node.
type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota // use the parent's AlignItems
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

// AlignContent distributes wrapped lines on the cross axis.
// It applies only with more than one line.
type AlignContent uint8

const (
	AlignContentFlexStart AlignContent = iota
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

// JustifyContent distributes items on the main axis.
type JustifyContent uint8

const (
	JustifyFlexStart JustifyContent = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Overflow tells whether content exceeding a node's box is clipped.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
)

// Default values of the enumerations.
const (
	DefaultDisplay        = DisplayFlex
	DefaultPositionType   = PositionRelative
	DefaultDirection      = DirectionInherit
	DefaultFlexDirection  = FlexRow
	DefaultFlexWrap       = NoWrap
	DefaultAlignItems     = AlignItemsStretch
	DefaultAlignSelf      = AlignSelfAuto
	DefaultAlignContent   = AlignContentStretch
	DefaultJustifyContent = JustifyFlexStart
	DefaultOverflow       = OverflowVisible
)

// --- Helpers ---------------------------------------------------------------

// IsRow is true for row and row-reverse.
func (d FlexDirection) IsRow() bool {
	return d == FlexRow || d == FlexRowReverse
}

// IsReverse is true for row-reverse and column-reverse.
func (d FlexDirection) IsReverse() bool {
	return d == FlexRowReverse || d == FlexColumnReverse
}

// Resolve returns the effective alignment of a node inside a parent with
// alignment parent.
func (a AlignSelf) Resolve(parent AlignItems) AlignItems {
	switch a {
	case AlignSelfFlexStart:
		return AlignItemsFlexStart
	case AlignSelfFlexEnd:
		return AlignItemsFlexEnd
	case AlignSelfCenter:
		return AlignItemsCenter
	case AlignSelfBaseline:
		return AlignItemsBaseline
	case AlignSelfStretch:
		return AlignItemsStretch
	}
	return parent
}

// Symbol returns a Unicode symbol for a display mode, for debugging output.
func (d Display) Symbol() string {
	if d == DisplayNone {
		return "□"
	}
	return "▤"
}

// --- Stringers -------------------------------------------------------------

func enumString(names []string, v uint8, typ string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}

func (d Display) String() string {
	return enumString([]string{"flex", "none"}, uint8(d), "Display")
}

func (p PositionType) String() string {
	return enumString([]string{"relative", "absolute"}, uint8(p), "PositionType")
}

func (d Direction) String() string {
	return enumString([]string{"inherit", "ltr", "rtl"}, uint8(d), "Direction")
}

func (d FlexDirection) String() string {
	return enumString([]string{"row", "column", "row-reverse", "column-reverse"},
		uint8(d), "FlexDirection")
}

func (w FlexWrap) String() string {
	return enumString([]string{"nowrap", "wrap", "wrap-reverse"}, uint8(w), "FlexWrap")
}

func (a AlignItems) String() string {
	return enumString([]string{"flex-start", "flex-end", "center", "baseline", "stretch"},
		uint8(a), "AlignItems")
}

func (a AlignSelf) String() string {
	return enumString([]string{"auto", "flex-start", "flex-end", "center", "baseline", "stretch"},
		uint8(a), "AlignSelf")
}

func (a AlignContent) String() string {
	return enumString([]string{"flex-start", "flex-end", "center", "stretch",
		"space-between", "space-around"}, uint8(a), "AlignContent")
}

func (j JustifyContent) String() string {
	return enumString([]string{"flex-start", "flex-end", "center", "space-between",
		"space-around", "space-evenly"}, uint8(j), "JustifyContent")
}

func (o Overflow) String() string {
	return enumString([]string{"visible", "hidden"}, uint8(o), "Overflow")
}
