package option

import (
	"errors"
	"math"
	"strconv"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

// MaybeOption labels the unset, set and failure cases of a match.
type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]interface{}

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// then try a Maybe match.
type Of map[interface{}]interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match will do a standard matching of o against choices.
// Option types usually implement their Match method by calling this function.
//
// choices are expected to be a map type, where keys of the map are either
// concrete values for o, or of type MaybeOption. Values of the map may be
// of any type.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
//
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

func (of Of) Match(o Type) (value interface{}, err error) {
	tracer().Debugf("Match(Type=%T) for %T", of, o)
	if o.IsNone() {
		tracer().Debugf("o is None")
		if expr, ok := of[None]; ok {
			tracer().Debugf("matched nil expr=%T %v", expr, expr)
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
	} else {
		err = ErrCannotMatchValue
		matched := false
		for k, expr := range of {
			if o.Equals(k) {
				matched = true
				tracer().Debugf("matched expr=%T %v", expr, expr)
				value, err = valueOrExpr(expr, o, Some)
			}
		}
		if !matched {
			if expr, ok := of[Some]; ok {
				tracer().Debugf("matched some expr=%T %v", expr, expr)
				value, err = valueOrExpr(expr, o, Some)
			}
		}
		if err != nil {
			tracer().Errorf(err.Error())
			if expr, ok := of[Error]; ok {
				value, err = valueOrExpr(expr, o, Error)
			}
		}
	}
	tracer().Debugf("===> return %v (%T) with error=%v", value, value, err)
	return value, err
}

func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	tracer().Debugf("Match(Type=%T) for %T", maybe, o)
	if o.IsNone() {
		tracer().Debugf("o is None")
		if expr, ok := maybe[None]; ok {
			tracer().Debugf("matched nil expr=%T %v", expr, expr)
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
	} else {
		if expr, ok := maybe[Some]; ok {
			tracer().Debugf("matched some expr=%T %v", expr, expr)
			value, err = valueOrExpr(expr, o, Some)
		}
		if err != nil {
			tracer().Errorf(err.Error())
			if expr, ok := maybe[Error]; ok {
				value, err = valueOrExpr(expr, o, Error)
			}
		}
	}
	tracer().Debugf("===> return %v (%T) with error=%v", value, value, err)
	return value, err
}

func valueOrExpr(op interface{}, value Type, t MaybeOption) (interface{}, error) {
	tracer().Debugf("value or expr %v(%v), t=%v", op, value, t)
	switch x := op.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		tracer().Debugf("calling func(value, type)")
		return x(value, t)
	case func(interface{}) (interface{}, error):
		tracer().Debugf("calling func(value)")
		return x(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//     _, err := o.Match(option.Of{
//          option.None: …,
//          99:          option.Fail(errors.New("99 is illegal")),
//          option.Some: …,
//     })
//
func Fail(err error) func(interface{}) (interface{}, error) {
	localErr := err
	return func(interface{}) (interface{}, error) {
		return nil, localErr
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x interface{}, err error) interface{} {
	return x
}

// --- Float32T---------------------------------------------------------------

// Float32T is an option type for float32, e.g. for an optional aspect ratio.
type Float32T float32

// Float32None is used as an in-band null value for optional float32 values.
const Float32None float32 = math.MaxFloat32

// SomeFloat32 creates an optional float32 with an initial value of x.
func SomeFloat32(x float32) Float32T {
	return Float32T(x)
}

// Float32 creates an optional float32 without an initial value.
func Float32() Float32T {
	return Float32T(Float32None)
}

// Match is part of interface option.Type.
func (o Float32T) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

// Equals is part of interface option.Type.
func (o Float32T) Equals(other interface{}) bool {
	if o.IsNone() {
		return false
	}
	switch x := other.(type) {
	case Float32T:
		return o == x
	case float32:
		return float32(o) == x
	case float64:
		return float64(o) == x
	case int:
		return float32(o) == float32(x)
	}
	return false
}

// Unwrap returns the value of o. For an unset option, Float32None is returned.
func (o Float32T) Unwrap() float32 {
	return float32(o)
}

// UnwrapOr returns the value of o, or d if o is unset.
func (o Float32T) UnwrapOr(d float32) float32 {
	if o.IsNone() {
		return d
	}
	return float32(o)
}

// IsNone returns true if o is unset.
func (o Float32T) IsNone() bool {
	return float32(o) == Float32None
}

func (o Float32T) String() string {
	if o.IsNone() {
		return "Float32.None"
	}
	return strconv.FormatFloat(float64(o), 'g', -1, 32)
}

var _ Type = Float32T(0)
