/*
Package layout computes the geometry of a tree of styled nodes.

Overview

Clients build a tree of nodes, each carrying a style.Style, and hand the root
to a Solver together with the size of the viewport:

	root := layout.NewNode("root", style.Column().WithWidth(style.Percent(100)))
	root.AddChild(layout.NewNode("header", style.Default().WithHeight(style.Px(40))))
	err := layout.NewFlexSolver().Solve(root, dimen.V(800, 600))
	fmt.Println(root.Children()[0].Output().Rect())

A pass of the solver overwrites the output of every node in the tree. Nodes
with display 'none', and all of their descendants, receive a zero output.

FlexSolver implements the flexbox model as described by package style. The
root node is laid out as the only child of a virtual default-styled row
container with the size of the viewport.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flexui.layout'.
func tracer() tracing.Trace {
	return tracing.Select("flexui.layout")
}
