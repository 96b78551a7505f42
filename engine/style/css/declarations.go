package css

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/flexui/core"
	"github.com/npillmayer/flexui/core/dimen"
	"github.com/npillmayer/flexui/engine/style"
)

var errUnknownKeyword = errors.New("unknown keyword")

// Apply parses CSS-like declarations and applies them to s, returning the
// modified style:
//
//     width: 50%; flex-grow: 1; margin: 5px 10px
//
// Declarations are applied in order; later ones override earlier ones.
// Apply is atomic: if any declaration fails, s is returned unchanged together
// with an error of code core.EINVALID (malformed value) or core.EUNSUPPORTED
// (unknown property).
func Apply(s style.Style, declarations string) (style.Style, error) {
	decls, err := parser.ParseDeclarations(terminate(declarations))
	if err != nil {
		return s, core.WrapError(err, core.EINVALID, "cannot parse declarations")
	}
	result := s
	for _, d := range decls {
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		tracer().Debugf("declaration %s = %q", prop, d.Value)
		if result, err = applyProperty(result, prop, strings.TrimSpace(d.Value)); err != nil {
			tracer().Infof("declaration %s rejected: %v", prop, err)
			return s, err
		}
	}
	return result, nil
}

// terminate makes sure the last declaration is followed by a semicolon.
// The parser drops the value of an unterminated declaration.
func terminate(declarations string) string {
	d := strings.TrimSpace(declarations)
	if d == "" || strings.HasSuffix(d, ";") {
		return d
	}
	return d + ";"
}

// MustApply is like Apply, but panics on error. Intended for static styles
// in tests and demos.
func MustApply(s style.Style, declarations string) style.Style {
	r, err := Apply(s, declarations)
	if err != nil {
		panic(err)
	}
	return r
}

func applyProperty(s style.Style, prop, value string) (style.Style, error) {
	var err error
	if setter, ok := lengthProperties[prop]; ok {
		var l style.Length
		if l, err = style.ParseLength(value); err == nil {
			setter(&s, l)
		}
		return s, err
	}
	if setter, ok := edgeProperties[prop]; ok {
		var e style.Edges
		if e, err = parseEdges(value); err == nil {
			setter(&s, e)
		}
		return s, err
	}
	if setter, ok := keywordProperties[prop]; ok {
		if !setter(&s, strings.ToLower(value)) {
			err = core.WrapError(errUnknownKeyword, core.EINVALID,
				"illegal value %q for property %s", value, prop)
		}
		return s, err
	}
	switch prop {
	case "flex-grow":
		s.FlexGrow, err = parseFactor(prop, value)
	case "flex-shrink":
		s.FlexShrink, err = parseFactor(prop, value)
	case "flex":
		s, err = parseFlex(s, value)
	case "aspect-ratio":
		s, err = parseAspectRatio(s, value)
	case "gap":
		s, err = parseGap(s, value)
	default:
		err = core.Error(core.EUNSUPPORTED, "unsupported property %s", prop)
	}
	return s, err
}

// --- Property tables -------------------------------------------------------

var lengthProperties = map[string]func(*style.Style, style.Length){
	"width":        func(s *style.Style, l style.Length) { s.Size.Width = l },
	"height":       func(s *style.Style, l style.Length) { s.Size.Height = l },
	"min-width":    func(s *style.Style, l style.Length) { s.MinSize.Width = l },
	"min-height":   func(s *style.Style, l style.Length) { s.MinSize.Height = l },
	"max-width":    func(s *style.Style, l style.Length) { s.MaxSize.Width = l },
	"max-height":   func(s *style.Style, l style.Length) { s.MaxSize.Height = l },
	"flex-basis":   func(s *style.Style, l style.Length) { s.FlexBasis = l },
	"row-gap":      func(s *style.Style, l style.Length) { s.Gap.Height = l },
	"column-gap":   func(s *style.Style, l style.Length) { s.Gap.Width = l },
	"left":         func(s *style.Style, l style.Length) { s.Position.Left = l },
	"right":        func(s *style.Style, l style.Length) { s.Position.Right = l },
	"top":          func(s *style.Style, l style.Length) { s.Position.Top = l },
	"bottom":       func(s *style.Style, l style.Length) { s.Position.Bottom = l },
	"margin-left":  func(s *style.Style, l style.Length) { s.Margin.Left = l },
	"margin-right": func(s *style.Style, l style.Length) { s.Margin.Right = l },
	"margin-top":   func(s *style.Style, l style.Length) { s.Margin.Top = l },
	"margin-bottom": func(s *style.Style, l style.Length) {
		s.Margin.Bottom = l
	},
	"padding-left":  func(s *style.Style, l style.Length) { s.Padding.Left = l },
	"padding-right": func(s *style.Style, l style.Length) { s.Padding.Right = l },
	"padding-top":   func(s *style.Style, l style.Length) { s.Padding.Top = l },
	"padding-bottom": func(s *style.Style, l style.Length) {
		s.Padding.Bottom = l
	},
	"border-left-width":   func(s *style.Style, l style.Length) { s.Border.Left = l },
	"border-right-width":  func(s *style.Style, l style.Length) { s.Border.Right = l },
	"border-top-width":    func(s *style.Style, l style.Length) { s.Border.Top = l },
	"border-bottom-width": func(s *style.Style, l style.Length) { s.Border.Bottom = l },
}

var edgeProperties = map[string]func(*style.Style, style.Edges){
	"margin":       func(s *style.Style, e style.Edges) { s.Margin = e },
	"padding":      func(s *style.Style, e style.Edges) { s.Padding = e },
	"border":       func(s *style.Style, e style.Edges) { s.Border = e },
	"border-width": func(s *style.Style, e style.Edges) { s.Border = e },
	"inset":        func(s *style.Style, e style.Edges) { s.Position = e },
}

var keywordProperties = map[string]func(*style.Style, string) bool{
	"display": func(s *style.Style, v string) (ok bool) {
		s.Display, ok = displayMap[v]
		return
	},
	"position": func(s *style.Style, v string) (ok bool) {
		s.PositionType, ok = positionMap[v]
		return
	},
	"direction": func(s *style.Style, v string) (ok bool) {
		s.Direction, ok = directionMap[v]
		return
	},
	"flex-direction": func(s *style.Style, v string) (ok bool) {
		s.FlexDirection, ok = flexDirectionMap[v]
		return
	},
	"flex-wrap": func(s *style.Style, v string) (ok bool) {
		s.FlexWrap, ok = flexWrapMap[v]
		return
	},
	"align-items": func(s *style.Style, v string) (ok bool) {
		s.AlignItems, ok = alignItemsMap[v]
		return
	},
	"align-self": func(s *style.Style, v string) (ok bool) {
		s.AlignSelf, ok = alignSelfMap[v]
		return
	},
	"align-content": func(s *style.Style, v string) (ok bool) {
		s.AlignContent, ok = alignContentMap[v]
		return
	},
	"justify-content": func(s *style.Style, v string) (ok bool) {
		s.JustifyContent, ok = justifyMap[v]
		return
	},
	"overflow": func(s *style.Style, v string) (ok bool) {
		s.Overflow, ok = overflowMap[v]
		return
	},
}

var displayMap = map[string]style.Display{
	"flex": style.DisplayFlex,
	"none": style.DisplayNone,
}

var positionMap = map[string]style.PositionType{
	"relative": style.PositionRelative,
	"absolute": style.PositionAbsolute,
}

var directionMap = map[string]style.Direction{
	"inherit": style.DirectionInherit,
	"ltr":     style.DirectionLeftToRight,
	"rtl":     style.DirectionRightToLeft,
}

var flexDirectionMap = map[string]style.FlexDirection{
	"row":            style.FlexRow,
	"column":         style.FlexColumn,
	"row-reverse":    style.FlexRowReverse,
	"column-reverse": style.FlexColumnReverse,
}

var flexWrapMap = map[string]style.FlexWrap{
	"nowrap":       style.NoWrap,
	"wrap":         style.Wrap,
	"wrap-reverse": style.WrapReverse,
}

var alignItemsMap = map[string]style.AlignItems{
	"flex-start": style.AlignItemsFlexStart,
	"start":      style.AlignItemsFlexStart,
	"flex-end":   style.AlignItemsFlexEnd,
	"end":        style.AlignItemsFlexEnd,
	"center":     style.AlignItemsCenter,
	"baseline":   style.AlignItemsBaseline,
	"stretch":    style.AlignItemsStretch,
}

var alignSelfMap = map[string]style.AlignSelf{
	"auto":       style.AlignSelfAuto,
	"flex-start": style.AlignSelfFlexStart,
	"start":      style.AlignSelfFlexStart,
	"flex-end":   style.AlignSelfFlexEnd,
	"end":        style.AlignSelfFlexEnd,
	"center":     style.AlignSelfCenter,
	"baseline":   style.AlignSelfBaseline,
	"stretch":    style.AlignSelfStretch,
}

var alignContentMap = map[string]style.AlignContent{
	"flex-start":    style.AlignContentFlexStart,
	"flex-end":      style.AlignContentFlexEnd,
	"center":        style.AlignContentCenter,
	"stretch":       style.AlignContentStretch,
	"space-between": style.AlignContentSpaceBetween,
	"space-around":  style.AlignContentSpaceAround,
}

var justifyMap = map[string]style.JustifyContent{
	"flex-start":    style.JustifyFlexStart,
	"start":         style.JustifyFlexStart,
	"flex-end":      style.JustifyFlexEnd,
	"end":           style.JustifyFlexEnd,
	"center":        style.JustifyCenter,
	"space-between": style.JustifySpaceBetween,
	"space-around":  style.JustifySpaceAround,
	"space-evenly":  style.JustifySpaceEvenly,
}

var overflowMap = map[string]style.Overflow{
	"visible": style.OverflowVisible,
	"hidden":  style.OverflowHidden,
}

// --- Value parsers ---------------------------------------------------------

func parseLengths(value string, atLeast, atMost int) ([]style.Length, error) {
	fields := strings.Fields(value)
	if len(fields) < atLeast || len(fields) > atMost {
		return nil, core.Error(core.EINVALID, "expected %d to %d values, have %q", atLeast, atMost, value)
	}
	lengths := make([]style.Length, len(fields))
	for i, f := range fields {
		l, err := style.ParseLength(f)
		if err != nil {
			return nil, err
		}
		lengths[i] = l
	}
	return lengths, nil
}

// parseEdges follows the CSS shorthand convention: top, right, bottom, left,
// with missing values copied from the opposite side.
func parseEdges(value string) (style.Edges, error) {
	l, err := parseLengths(value, 1, 4)
	if err != nil {
		return style.Edges{}, err
	}
	switch len(l) {
	case 1:
		return style.EdgesAll(l[0]), nil
	case 2:
		return style.EdgesXY(l[1], l[0]), nil
	case 3:
		return style.NewEdges(l[1], l[1], l[0], l[2]), nil
	}
	return style.NewEdges(l[3], l[1], l[0], l[2]), nil
}

func parseGap(s style.Style, value string) (style.Style, error) {
	l, err := parseLengths(value, 1, 2)
	if err != nil {
		return s, err
	}
	if len(l) == 1 {
		return s.WithGap(l[0]), nil
	}
	return s.WithRowGap(l[0]).WithColumnGap(l[1]), nil
}

func parseFactor(prop, value string) (float32, error) {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil || f < 0 || !dimen.IsFinite(float32(f)) {
		return 0, core.Error(core.EINVALID, "%s must be a non-negative number, is %q", prop, value)
	}
	return float32(f), nil
}

// parseFlex handles the shorthand 'flex: <grow> [<shrink>] [<basis>]' as well
// as the keywords 'none' and 'auto'.
func parseFlex(s style.Style, value string) (style.Style, error) {
	switch value {
	case "none":
		return s.WithFlexGrow(0).WithFlexShrink(0).WithFlexBasis(style.Auto()), nil
	case "auto":
		return s.WithFlexGrow(1).WithFlexShrink(1).WithFlexBasis(style.Auto()), nil
	}
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 3 {
		return s, core.Error(core.EINVALID, "illegal flex shorthand %q", value)
	}
	grow, err := parseFactor("flex-grow", fields[0])
	if err != nil {
		return s, err
	}
	s = s.WithFlexGrow(grow).WithFlexShrink(1).WithFlexBasis(style.Px(0))
	rest := fields[1:]
	if len(rest) > 0 {
		if shrink, err := parseFactor("flex-shrink", rest[0]); err == nil {
			s.FlexShrink = shrink
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		basis, err := style.ParseLength(rest[0])
		if err != nil {
			return s, err
		}
		s.FlexBasis = basis
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return s, core.Error(core.EINVALID, "illegal flex shorthand %q", value)
	}
	return s, nil
}

// parseAspectRatio accepts 'auto', a number, or a fraction 'w / h'.
func parseAspectRatio(s style.Style, value string) (style.Style, error) {
	if value == "auto" {
		s.AspectRatio = style.Default().AspectRatio
		return s, nil
	}
	num, den := value, "1"
	if i := strings.Index(value, "/"); i >= 0 {
		num, den = strings.TrimSpace(value[:i]), strings.TrimSpace(value[i+1:])
	}
	w, err1 := strconv.ParseFloat(num, 32)
	h, err2 := strconv.ParseFloat(den, 32)
	ratio := float32(w / h)
	if err1 != nil || err2 != nil || !dimen.IsFinite(ratio) || ratio <= 0 {
		return s, core.Error(core.EINVALID, "illegal aspect ratio %q", value)
	}
	return s.WithAspectRatio(ratio), nil
}
