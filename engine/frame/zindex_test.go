package frame

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

type stackNode struct {
	name     string
	z        ZIndex
	children []*stackNode
}

func (n *stackNode) ZIndex() ZIndex { return n.z }

func (n *stackNode) StackingChildren() []Stackable {
	c := make([]Stackable, len(n.children))
	for i, ch := range n.children {
		c[i] = ch
	}
	return c
}

func sn(name string, z ZIndex, children ...*stackNode) *stackNode {
	return &stackNode{name: name, z: z, children: children}
}

func names(order []Stackable) []string {
	s := make([]string, len(order))
	for i, n := range order {
		s[i] = n.(*stackNode).name
	}
	return s
}

func TestZIndexZeroValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.frame")
	defer teardown()
	//
	assert.Equal(t, Local(0), ZIndex{})
	assert.NotEqual(t, Global(0), ZIndex{})
	assert.Equal(t, "global(3)", Global(3).String())
}

func TestPaintOrderTreeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.frame")
	defer teardown()
	//
	root := sn("root", ZIndex{},
		sn("a", ZIndex{}, sn("a1", ZIndex{})),
		sn("b", ZIndex{}),
	)
	assert.Equal(t, []string{"root", "a", "a1", "b"}, names(PaintOrder(root)))
	assert.Equal(t, []string{"b", "a1", "a", "root"}, names(HitOrder(root)))
}

func TestPaintOrderLocal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.frame")
	defer teardown()
	//
	root := sn("root", ZIndex{},
		sn("a", Local(2), sn("a1", Local(-1))),
		sn("b", Local(1)),
		sn("c", Local(1)),
	)
	// a1 stays inside a's context, even with a negative index
	assert.Equal(t, []string{"root", "b", "c", "a", "a1"}, names(PaintOrder(root)))
}

func TestPaintOrderGlobal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.frame")
	defer teardown()
	//
	root := sn("root", ZIndex{},
		sn("a", Local(5), sn("popup", Global(1))),
		sn("b", Local(0)),
	)
	other := sn("other", Global(0)) // global at root level equals local
	order := names(PaintOrder(root, other))
	assert.Equal(t, []string{"root", "b", "a", "other", "popup"}, order)
}
