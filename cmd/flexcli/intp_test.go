package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/flexui/core"
	"github.com/npillmayer/flexui/core/dimen"
	"github.com/npillmayer/flexui/engine/frame/layout"
	"github.com/npillmayer/flexui/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntpCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.cli")
	defer teardown()
	//
	intp := NewIntp(layout.DemoScene(), dimen.V(1000, 700))
	require.NoError(t, intp.solve())
	quit, err := intp.execute("select sidebar")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, "sidebar", intp.current.Name())
	//
	_, err = intp.execute("style width: 200px")
	require.NoError(t, err)
	assert.Equal(t, style.Px(200), intp.current.Style().Size.Width)
	assert.InDelta(t, 200, intp.current.Output().Size().X, 0.01)
	//
	_, err = intp.execute("solve 500 400")
	require.NoError(t, err)
	assert.InDelta(t, 500, intp.root.Output().Size().X, 0.01)
	//
	_, err = intp.execute("hit 10 10")
	require.NoError(t, err)
	assert.NotEqual(t, "root", intp.current.Name(), "hit test should find a node above the root")
	//
	quit, err = intp.execute("quit")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestIntpErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.cli")
	defer teardown()
	//
	intp := NewIntp(layout.DemoScene(), dimen.V(1000, 700))
	_, err := intp.execute("select nobody")
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = intp.execute("style float: left")
	assert.Equal(t, core.EUNSUPPORTED, core.Code(err))
	_, err = intp.execute("frobnicate")
	assert.Equal(t, core.EUNSUPPORTED, core.Code(err))
	_, err = intp.execute("solve 1")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = intp.execute("scale -2")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = intp.execute("solve -5 10")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestIntpDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.cli")
	defer teardown()
	//
	intp := NewIntp(layout.DemoScene(), dimen.V(1000, 700))
	require.NoError(t, intp.solve())
	path := filepath.Join(t.TempDir(), "scene.dot")
	_, err := intp.execute("dot " + path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph g {"))
	_, err = intp.execute("dot")
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = intp.execute("dot " + filepath.Join(t.TempDir(), "missing", "scene.dot"))
	assert.Equal(t, core.EINVALID, core.Code(err))
}
