package framedebug

import (
	"strings"
	"testing"

	"github.com/npillmayer/flexui/core/dimen"
	"github.com/npillmayer/flexui/engine/frame/layout"
	"github.com/npillmayer/flexui/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.frame")
	defer teardown()
	//
	hidden := layout.NewNode("hidden", style.Default().WithDisplay(style.DisplayNone))
	root := layout.NewNode("root", style.Row().WithWidth(style.Px(100)).WithHeight(style.Px(50)),
		layout.NewNode("a", style.Default()), hidden)
	require.NoError(t, layout.NewFlexSolver().Solve(root, dimen.V(100, 50)))
	var b strings.Builder
	require.NoError(t, ToGraphViz(root, &b, nil))
	dot := b.String()
	t.Logf("\n%s", dot)
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Equal(t, 2, strings.Count(dot, "->"))
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "dashed")
}
