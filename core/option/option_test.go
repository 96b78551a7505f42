package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/flexui/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOptionMaybe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.core")
	defer teardown()
	//
	var y1, y2, y3 interface{}
	x := option.SomeFloat32(1.5)
	t.Logf("x = %v, x.T = %T, x.unwrap = %v", x, x, x.Unwrap())
	y1, _ = x.Match(option.Maybe{
		option.None: 7,
		option.Some: x.Unwrap() * 2,
	})
	//
	x = option.Float32()
	y2, _ = x.Match(option.Maybe{
		option.None: "No Value",
		option.Some: stringify,
	})
	//
	x = option.SomeFloat32(2)
	y3, _ = x.Match(option.Maybe{
		option.None:  "No Value",
		option.Some:  nonsense,
		option.Error: stringify,
	})
	//
	t.Logf("y1 = %v, y2 = %s, y3 = %v", y1, y2, y3)
	if y1.(float32) != 3 {
		t.Errorf("expected Some(1.5) to match to 3, is %v", y1)
	}
	if y2.(string) != "No Value" {
		t.Errorf("expected unset float to match to No Value, is %v", y2)
	}
	if y3 != "Value = 2" {
		t.Errorf("expected Some(2) to match to Value = 2, is %v", y3)
	}
}

func TestOptionOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.core")
	defer teardown()
	//
	x := option.SomeFloat32(1)
	y1, err := x.Match(option.Of{
		option.None: "free",
		1.0:         "square",
		option.Some: "ratio",
	})
	if err != nil || y1 != "square" {
		t.Errorf("expected Some(1) to match to square, is %v (err=%v)", y1, err)
	}
	x = option.SomeFloat32(1.7778)
	y2, _ := x.Match(option.Of{
		option.None: "free",
		1.0:         "square",
		option.Some: "ratio",
	})
	if y2 != "ratio" {
		t.Errorf("expected Some(1.7778) to match to ratio, is %v", y2)
	}
	_, err = option.Float32().Match(option.Of{1.0: "square"})
	if !errors.Is(err, option.ErrCannotMatchUnsetValue) {
		t.Errorf("expected unset float to fail matching, error is %v", err)
	}
}

func TestOptionFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.core")
	defer teardown()
	//
	x := option.SomeFloat32(1)
	_, err := x.Match(option.Of{
		option.None:  7,
		1:            option.Fail(errors.New("Fail")),
		option.Some:  x.Unwrap(),
		option.Error: option.Fail(errors.New("Caught Fail")),
	})
	//
	t.Logf("err = %v", err)
	if err == nil {
		t.Fatalf("expected Some(1) to match to an error, hasn't")
	}
	if err.Error() != "Caught Fail" {
		t.Errorf("expected Some(1) error to be caught, isn't")
	}
}

func TestFloat32UnwrapOr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.core")
	defer teardown()
	//
	if r := option.Float32().UnwrapOr(4); r != 4 {
		t.Errorf("expected unset float to unwrap to default 4, is %v", r)
	}
	if r := option.SomeFloat32(0.5).UnwrapOr(4); r != 0.5 {
		t.Errorf("expected Some(0.5) to unwrap to 0.5, is %v", r)
	}
	if s := option.Float32().String(); s != "Float32.None" {
		t.Errorf("unexpected string for unset float: %q", s)
	}
}

// ---------------------------------------------------------------------------

func nonsense(x interface{}) (interface{}, error) {
	return nil, errors.New("ERROR")
}

func stringify(x interface{}) (interface{}, error) {
	if f, ok := x.(option.Float32T); ok {
		return fmt.Sprintf("Value = %v", f.Unwrap()), nil
	}
	return fmt.Sprintf("Value = %v", x), nil
}
