package style

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/flexui/core"
	"github.com/npillmayer/flexui/core/option"
)

// Kind tells how a Length is interpreted.
type Kind uint8

// Kinds of lengths. Use them as keys for option-matching:
//
//     option.Of{
//          option.None:      …   // undefined
//          style.KindAuto:   …
//          style.KindPx:     …
//          style.KindPercent: …
//     }
//
const (
	KindUndefined Kind = iota // no value; does not take part in layout
	KindAuto                  // inferred by the solver from content or free space
	KindPx                    // logical pixels
	KindPercent               // percent of a reference size, on a 0–100 scale
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindAuto:
		return "auto"
	case KindPx:
		return "px"
	case KindPercent:
		return "percent"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// --- Length ----------------------------------------------------------------

// Length is a layout length of one of four kinds. The zero value is an
// undefined length.
type Length struct {
	amount float32
	kind   Kind
}

// Undefined returns a length without a value.
func Undefined() Length {
	return Length{}
}

// Auto returns a length to be inferred by the layout solver.
func Auto() Length {
	return Length{kind: KindAuto}
}

// Px returns a length of f logical pixels.
func Px(f float32) Length {
	return Length{amount: f, kind: KindPx}
}

// Percent returns a length of p percent of a reference size. p is not
// pre-divided, i.e. 50 means half of the reference size.
func Percent(p float32) Length {
	return Length{amount: p, kind: KindPercent}
}

// FromInt converts an integer to a pixel length.
func FromInt(n int) Length {
	return Px(float32(n))
}

// FromFloat converts a float to a pixel length.
func FromFloat(f float32) Length {
	return Px(f)
}

// Kind returns the kind of l.
func (l Length) Kind() Kind {
	return l.kind
}

// Amount returns the numeric payload of l. It is 0 for undefined and auto
// lengths.
func (l Length) Amount() float32 {
	return l.amount
}

// IsUndefined is true for undefined lengths.
func (l Length) IsUndefined() bool {
	return l.kind == KindUndefined
}

// IsAuto is true for auto lengths.
func (l Length) IsAuto() bool {
	return l.kind == KindAuto
}

// IsNumeric is true for pixel and percent lengths, i.e. for lengths which
// can be evaluated.
func (l Length) IsNumeric() bool {
	return l.kind == KindPx || l.kind == KindPercent
}

// Match is part of interface option.Type.
func (l Length) Match(choices interface{}) (value interface{}, err error) {
	return option.Match(l, choices)
}

// Equals is part of interface option.Type.
func (l Length) Equals(other interface{}) bool {
	switch x := other.(type) {
	case Length:
		return l == x
	case Kind:
		return l.kind == x
	case float32:
		return l.kind == KindPx && l.amount == x
	case int:
		return l.kind == KindPx && l.amount == float32(x)
	case string:
		return x == "%" && l.kind == KindPercent
	}
	return false
}

// IsNone is part of interface option.Type. Undefined lengths are unset.
func (l Length) IsNone() bool {
	return l.kind == KindUndefined
}

var _ option.Type = Length{}

func (l Length) String() string {
	switch l.kind {
	case KindUndefined:
		return "undefined"
	case KindAuto:
		return "auto"
	case KindPx:
		return strconv.FormatFloat(float64(l.amount), 'g', -1, 32) + "px"
	case KindPercent:
		return strconv.FormatFloat(float64(l.amount), 'g', -1, 32) + "%"
	}
	return fmt.Sprintf("Length(%d,%g)", l.kind, l.amount)
}

// ---------------------------------------------------------------------------

var lengthPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(px|%)?$`)

var errLengthFormat = errors.New("format error parsing length")

// ParseLength parses a string to return a length. Valid lengths are
//
//     auto
//     undefined
//     15px
//     15        (pixels)
//     80%
//     -2.5px
//
// Errors are of code core.EINVALID.
func ParseLength(s string) (Length, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "auto":
		return Auto(), nil
	case "undefined", "none":
		return Undefined(), nil
	}
	m := lengthPattern.FindStringSubmatch(s)
	if len(m) < 2 {
		return Undefined(), core.WrapError(errLengthFormat, core.EINVALID,
			"cannot parse length %q", s)
	}
	f, err := strconv.ParseFloat(m[1], 32)
	if err != nil { // out of float32 range
		return Undefined(), core.WrapError(err, core.EINVALID, "cannot parse length %q", s)
	}
	if m[2] == "%" {
		return Percent(float32(f)), nil
	}
	return Px(float32(f)), nil
}
