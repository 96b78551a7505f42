package css

import (
	"testing"

	"github.com/npillmayer/flexui/core"
	"github.com/npillmayer/flexui/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.style")
	defer teardown()
	//
	s, err := Apply(style.Default(), `display: none; position: absolute; direction: rtl;
		flex-direction: column-reverse; flex-wrap: wrap; align-items: center;
		align-self: flex-end; align-content: space-between;
		justify-content: space-evenly; overflow: hidden`)
	require.NoError(t, err)
	assert.Equal(t, style.DisplayNone, s.Display)
	assert.Equal(t, style.PositionAbsolute, s.PositionType)
	assert.Equal(t, style.DirectionRightToLeft, s.Direction)
	assert.Equal(t, style.FlexColumnReverse, s.FlexDirection)
	assert.Equal(t, style.Wrap, s.FlexWrap)
	assert.Equal(t, style.AlignItemsCenter, s.AlignItems)
	assert.Equal(t, style.AlignSelfFlexEnd, s.AlignSelf)
	assert.Equal(t, style.AlignContentSpaceBetween, s.AlignContent)
	assert.Equal(t, style.JustifySpaceEvenly, s.JustifyContent)
	assert.Equal(t, style.OverflowHidden, s.Overflow)
}

func TestApplyLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.style")
	defer teardown()
	//
	s, err := Apply(style.Default(), "width: 50%; height: 20px; min-width: 10; max-height: auto; top: 5px")
	require.NoError(t, err)
	assert.Equal(t, style.NewSize(style.Percent(50), style.Px(20)), s.Size)
	assert.Equal(t, style.Px(10), s.MinSize.Width)
	assert.Equal(t, style.Auto(), s.MaxSize.Height)
	assert.Equal(t, style.Px(5), s.Position.Top)
}

func TestApplyEdgeShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.style")
	defer teardown()
	//
	px := style.Px
	for decl, expected := range map[string]style.Edges{
		"margin: 1px":             style.EdgesAll(px(1)),
		"margin: 1px 2px":         style.EdgesXY(px(2), px(1)),
		"margin: 1px 2px 3px":     style.NewEdges(px(2), px(2), px(1), px(3)),
		"margin: 1px 2px 3px 4px": style.NewEdges(px(4), px(2), px(1), px(3)),
	} {
		s, err := Apply(style.Default(), decl)
		require.NoError(t, err, decl)
		assert.Equal(t, expected, s.Margin, decl)
	}
	s := MustApply(style.Default(), "padding: 10%; border-width: 1px 0; padding-left: 3px")
	assert.Equal(t, style.NewEdges(px(3), style.Percent(10), style.Percent(10), style.Percent(10)), s.Padding)
	assert.Equal(t, style.EdgesXY(px(0), px(1)), s.Border)
}

func TestApplyFlexAndGap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.style")
	defer teardown()
	//
	s := MustApply(style.Default(), "flex: 2 0 30%; gap: 4px 8px; aspect-ratio: 16 / 9")
	assert.Equal(t, float32(2), s.FlexGrow)
	assert.Equal(t, float32(0), s.FlexShrink)
	assert.Equal(t, style.Percent(30), s.FlexBasis)
	assert.Equal(t, style.Px(4), s.Gap.Height, "row gap")
	assert.Equal(t, style.Px(8), s.Gap.Width, "column gap")
	assert.InDelta(t, 16.0/9.0, s.AspectRatio.Unwrap(), 0.0001)
	//
	s = MustApply(s, "flex: none; aspect-ratio: auto; column-gap: 1px")
	assert.Equal(t, float32(0), s.FlexGrow)
	assert.Equal(t, style.Auto(), s.FlexBasis)
	assert.True(t, s.AspectRatio.IsNone())
	assert.Equal(t, style.Px(1), s.Gap.Width)
	//
	s = MustApply(style.Default(), "flex: 1")
	assert.Equal(t, float32(1), s.FlexGrow)
	assert.Equal(t, float32(1), s.FlexShrink)
	assert.Equal(t, style.Px(0), s.FlexBasis)
}

func TestApplyUnterminated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.style")
	defer teardown()
	//
	s, err := Apply(style.Default(), "flex-grow: 2")
	require.NoError(t, err)
	assert.Equal(t, float32(2), s.FlexGrow)
	s, err = Apply(style.Default(), "  width: 50%; height: 10px  ")
	require.NoError(t, err)
	assert.Equal(t, style.NewSize(style.Percent(50), style.Px(10)), s.Size)
	s, err = Apply(style.Default(), "margin: 5px 10px;")
	require.NoError(t, err)
	assert.Equal(t, style.EdgesXY(style.Px(10), style.Px(5)), s.Margin)
	s, err = Apply(style.Default(), "")
	require.NoError(t, err)
	assert.Equal(t, style.Default(), s)
}

func TestApplyErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.style")
	defer teardown()
	//
	base := style.Default()
	s, err := Apply(base, "width: 10px; float: left")
	assert.Equal(t, core.EUNSUPPORTED, core.Code(err))
	assert.Equal(t, base, s, "failed Apply must not change the style")
	_, err = Apply(base, "display: grid")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Apply(base, "width: 3em")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Apply(base, "margin: 1px 2px 3px 4px 5px")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Apply(base, "flex-grow: -1")
	assert.Equal(t, core.EINVALID, core.Code(err))
	for _, decl := range []string{"flex-grow: inf", "flex-shrink: NaN", "flex: +Inf",
		"aspect-ratio: NaN", "aspect-ratio: inf / inf"} {
		_, err = Apply(base, decl)
		assert.Equal(t, core.EINVALID, core.Code(err), decl)
	}
	_, err = Apply(base, "aspect-ratio: 0")
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Panics(t, func() { MustApply(base, "color: red") })
}
