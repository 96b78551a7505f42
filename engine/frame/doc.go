/*
Package frame holds the geometry shared between the layout solver and its
clients: box model edges resolved to pixels, content size hints, the computed
output of a layout node, and stacking order.

Layout may be understood as the process of placing boxes within larger
boxes. Boxes follow the CSS box model, with sizes always measured as
border-box sizes. Coordinates are logical pixels with the origin in the
top-left corner of the root node and the y-axis pointing down.

Output

Outputs are values. Only the layout solver creates them; nodes hand out
copies, so clients cannot change the results of a layout pass.

Stacking

Nodes paint in an order defined by their ZIndex:

	order := frame.PaintOrder(root)      // back to front
	hits := frame.HitOrder(root)         // front to back

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flexui.frame'.
func tracer() tracing.Trace {
	return tracing.Select("flexui.frame")
}
