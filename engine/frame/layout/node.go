package layout

import (
	"fmt"
	"strings"

	"github.com/npillmayer/flexui/engine/frame"
	"github.com/npillmayer/flexui/engine/style"
)

// Node is a node of the layout tree. It holds the style input of layout and
// the output of the last solver pass.
//
// Nodes are not safe for concurrent use. A solver pass must not run
// concurrently with modifications of the tree.
type Node struct {
	name      string
	style     style.Style
	zindex    frame.ZIndex
	intrinsic *frame.Intrinsic
	parent    *Node
	children  []*Node
	output    frame.Output
	dirty     bool
}

// NewNode creates a node with a style and optional children.
func NewNode(name string, s style.Style, children ...*Node) *Node {
	n := &Node{name: name, style: s, dirty: true}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// Name returns the name of a node. Names are for debugging and lookup; they
// need not be unique.
func (n *Node) Name() string {
	return n.name
}

// Style returns the style of a node.
func (n *Node) Style() style.Style {
	return n.style
}

// SetStyle replaces the style of a node.
func (n *Node) SetStyle(s style.Style) {
	n.style = s
	n.markDirty()
}

// ZIndex returns the z-index of a node. Part of interface frame.Stackable.
func (n *Node) ZIndex() frame.ZIndex {
	return n.zindex
}

// SetZIndex sets the z-index of a node.
func (n *Node) SetZIndex(z frame.ZIndex) {
	n.zindex = z
}

// Intrinsic returns the content size hint of a node, if any.
func (n *Node) Intrinsic() (frame.Intrinsic, bool) {
	if n.intrinsic == nil {
		return frame.Intrinsic{}, false
	}
	return *n.intrinsic, true
}

// SetIntrinsic sets a content size hint for a node.
func (n *Node) SetIntrinsic(in frame.Intrinsic) {
	n.intrinsic = &in
	n.markDirty()
}

// ClearIntrinsic removes the content size hint of a node.
func (n *Node) ClearIntrinsic() {
	n.intrinsic = nil
	n.markDirty()
}

// Output returns the result of the last layout pass. Before the first pass
// the output is zero.
func (n *Node) Output() frame.Output {
	return n.output
}

// IsDirty is true if the node or one of its descendants changed since the
// last layout pass.
func (n *Node) IsDirty() bool {
	return n.dirty
}

func (n *Node) markDirty() {
	for p := n; p != nil && !p.dirty; p = p.parent {
		p.dirty = true
	}
	n.dirty = true
}

// --- Tree ------------------------------------------------------------------

// Parent returns the parent of a node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children of a node in order.
// The slice is a copy.
func (n *Node) Children() []*Node {
	c := make([]*Node, len(n.children))
	copy(c, n.children)
	return c
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at index i, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// AddChild appends a child. If the child is attached to another parent, it
// is detached from there first.
func (n *Node) AddChild(child *Node) {
	n.InsertChild(len(n.children), child)
}

// InsertChild inserts a child at index i, clamped to the valid range.
func (n *Node) InsertChild(i int, child *Node) {
	if child == nil || child == n || child.isAncestorOf(n) {
		tracer().Errorf("refusing to insert node %q into %q", child, n)
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	if i < 0 {
		i = 0
	} else if i > len(n.children) {
		i = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	child.parent = n
	n.markDirty()
}

// RemoveChild detaches a child, keeping the order of the remaining children.
// It returns false if child is not a child of n.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.markDirty()
			return true
		}
	}
	return false
}

func (n *Node) isAncestorOf(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// StackingChildren is part of interface frame.Stackable.
// Children with display 'none' do not paint and are left out.
func (n *Node) StackingChildren() []frame.Stackable {
	c := make([]frame.Stackable, 0, len(n.children))
	for _, ch := range n.children {
		if ch.style.Display != style.DisplayNone {
			c = append(c, ch)
		}
	}
	return c
}

var _ frame.Stackable = &Node{}

// Walk calls f for n and all of its descendants in tree order, with the depth
// relative to n. If f returns false, the descendants of a node are skipped.
func (n *Node) Walk(f func(node *Node, depth int) bool) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(*Node, int) bool, depth int) {
	if !f(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(f, depth+1)
	}
}

// Find returns the first node in tree order with the given name, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if found == nil && node.name == name {
			found = node
		}
		return found == nil
	})
	return found
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%s", n.style.Display.Symbol(), n.name)
}

// Dump returns an indented listing of a tree and its outputs.
// Intended for debugging.
func (n *Node) Dump() string {
	var b strings.Builder
	n.Walk(func(node *Node, depth int) bool {
		fmt.Fprintf(&b, "%s%v  %v\n", strings.Repeat("  ", depth), node, node.output)
		return true
	})
	return b.String()
}
