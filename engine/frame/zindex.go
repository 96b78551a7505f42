package frame

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
)

// ZIndex places a node in a stacking context.
//
// A local index orders a node among the siblings in its parent's context.
// A global index moves the node (and the nodes stacked above it) into the
// root context. For root nodes both kinds are equivalent.
//
// The zero value is Local(0).
type ZIndex struct {
	global bool
	index  int32
}

// Local creates a z-index relative to the siblings of a node.
func Local(n int32) ZIndex {
	return ZIndex{index: n}
}

// Global creates a z-index relative to the root context.
func Global(n int32) ZIndex {
	return ZIndex{global: true, index: n}
}

// IsGlobal is true for global indices.
func (z ZIndex) IsGlobal() bool {
	return z.global
}

// Index returns the numeric index.
func (z ZIndex) Index() int32 {
	return z.index
}

func (z ZIndex) String() string {
	if z.global {
		return fmt.Sprintf("global(%d)", z.index)
	}
	return fmt.Sprintf("local(%d)", z.index)
}

// Stackable is a node of a tree taking part in stacking order resolution.
type Stackable interface {
	ZIndex() ZIndex
	StackingChildren() []Stackable
}

// --- Stacking contexts -----------------------------------------------------

type stackEntry struct {
	node    Stackable
	index   int32
	seq     int // tree order, tie breaker for equal indices
	context *arraylist.List
}

// compareEntries orders entries by z-index, then by tree order.
var compareEntries utils.Comparator = func(a, b interface{}) int {
	e1, e2 := a.(*stackEntry), b.(*stackEntry)
	if c := utils.Int32Comparator(e1.index, e2.index); c != 0 {
		return c
	}
	return utils.IntComparator(e1.seq, e2.seq)
}

type stacker struct {
	root *arraylist.List
	seq  int
}

func (st *stacker) entry(node Stackable) *stackEntry {
	st.seq++
	e := &stackEntry{
		node:    node,
		index:   node.ZIndex().Index(),
		seq:     st.seq,
		context: arraylist.New(),
	}
	for _, child := range node.StackingChildren() {
		if child == nil {
			continue
		}
		if child.ZIndex().IsGlobal() {
			st.root.Add(st.entry(child))
		} else {
			e.context.Add(st.entry(child))
		}
	}
	return e
}

func flatten(context *arraylist.List, order []Stackable) []Stackable {
	context.Sort(compareEntries)
	it := context.Iterator()
	for it.Next() {
		e := it.Value().(*stackEntry)
		order = append(order, e.node)
		order = flatten(e.context, order)
	}
	return order
}

// PaintOrder returns the nodes of the trees starting at roots in back-to-front
// order. Nodes with a local z-index paint after their parent. Within a
// stacking context, nodes are ordered by z-index; equal indices keep tree
// order.
func PaintOrder(roots ...Stackable) []Stackable {
	st := &stacker{root: arraylist.New()}
	for _, root := range roots {
		if root != nil {
			st.root.Add(st.entry(root))
		}
	}
	order := flatten(st.root, make([]Stackable, 0, st.seq))
	tracer().Debugf("resolved paint order of %d nodes", len(order))
	return order
}

// HitOrder returns the nodes of the trees starting at roots in front-to-back
// order, i.e. reverse paint order. It is the order for hit testing.
func HitOrder(roots ...Stackable) []Stackable {
	order := PaintOrder(roots...)
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}
