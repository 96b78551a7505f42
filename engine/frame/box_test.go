package frame

import (
	"testing"

	"github.com/npillmayer/flexui/core/dimen"
	"github.com/npillmayer/flexui/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBoxNullbox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.frame")
	defer teardown()
	//
	box := ResolveBox(style.Default(), 500, 1)
	assert.Equal(t, Box{}, box)
	assert.Equal(t, float32(0), box.DecorationWidth())
	r := dimen.R(dimen.V(10, 10), dimen.V(50, 20))
	assert.Equal(t, r, box.ContentRect(r))
}

func TestBoxPercentagesReferToWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.frame")
	defer teardown()
	//
	s := style.Default().
		WithPadding(style.Percent(10)).
		WithBorder(style.Px(2)).
		WithMarginTop(style.Percent(50)).
		WithMarginLeft(style.Auto())
	box := ResolveBox(s, 200, 1)
	assert.Equal(t, float32(20), box.Padding[Top], "vertical percentages use the width")
	assert.Equal(t, float32(20), box.Padding[Left])
	assert.Equal(t, float32(100), box.Margin[Top])
	assert.Equal(t, float32(0), box.Margin[Left], "auto margins resolve to 0")
	assert.Equal(t, float32(44), box.DecorationWidth())
	assert.Equal(t, float32(44), box.DecorationHeight())
	assert.Equal(t, dimen.V(0, 100), box.Margins())
	t.Logf(box.DebugString())
}

func TestBoxScaleAndNegative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.frame")
	defer teardown()
	//
	s := style.Default().
		WithPaddingHorizontal(style.Px(-4)).
		WithMarginHorizontal(style.Px(-4)).
		WithBorderTop(style.Px(3))
	box := ResolveBox(s, 100, 2)
	assert.Equal(t, float32(0), box.Padding[Left], "negative padding is 0")
	assert.Equal(t, float32(-8), box.Margin[Left], "negative margins are legal")
	assert.Equal(t, float32(6), box.Border[Top], "pixels are scaled")
	assert.Equal(t, float32(12.5), Resolve(style.Percent(25), 50, 2).Unwrap(), "percentages are not scaled")
	assert.True(t, Resolve(style.Auto(), 50, 2).IsNone())
	assert.True(t, Resolve(style.Undefined(), 50, 2).IsNone())
}

func TestBoxContentRect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.frame")
	defer teardown()
	//
	box := ResolveBox(style.Default().WithPadding(style.Px(5)).WithBorderLeft(style.Px(1)), 0, 1)
	r := box.ContentRect(dimen.R(dimen.V(0, 0), dimen.V(100, 8)))
	assert.Equal(t, dimen.V(6, 5), r.Min)
	assert.Equal(t, dimen.V(95, 5), r.Max, "content box never has negative extent")
}

func TestOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.frame")
	defer teardown()
	//
	o := MakeOutput(dimen.V(10, 20), dimen.V(30, -5), true)
	assert.Equal(t, dimen.V(30, 0), o.Size())
	assert.Equal(t, dimen.V(10, 20), o.Position())
	assert.True(t, o.PreserveAspectRatio())
	_, clipped := o.Clip()
	assert.False(t, clipped)
	c := o.WithClip(dimen.R(dimen.Zero, dimen.V(15, 15)))
	r, clipped := c.Clip()
	assert.True(t, clipped)
	assert.Equal(t, float32(15), r.Width())
	_, clipped = o.Clip()
	assert.False(t, clipped, "WithClip must not change the receiver")
	assert.True(t, Output{}.IsZero())
	assert.False(t, o.IsZero())
	assert.Equal(t, dimen.V(25, 20), o.Center())
}

func TestIntrinsicAspectRatio(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.frame")
	defer teardown()
	//
	_, ok := Intrinsic{Size: dimen.V(40, 20)}.AspectRatio()
	assert.False(t, ok)
	r, ok := Intrinsic{Size: dimen.V(40, 20), PreserveAspectRatio: true}.AspectRatio()
	assert.True(t, ok)
	assert.Equal(t, float32(2), r)
	_, ok = Intrinsic{Size: dimen.V(40, 0), PreserveAspectRatio: true}.AspectRatio()
	assert.False(t, ok)
}
