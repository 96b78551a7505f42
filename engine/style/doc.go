/*
Package style defines the declarative input of layout: lengths, box edges,
size pairs and the style schema of a layout node.

Lengths

A Length is one of four kinds: undefined, auto, pixels or percent.

	w := style.Px(120)
	p := style.Percent(30)
	x, err := w.AddWithSize(p, 250)   // 120 + 75 = 195

Arithmetic on lengths of the same kind is symbolic (Add, Sub), and fails with
NonIdenticalVariants for mixed kinds. Once a reference size is known, the
*WithSize operations evaluate both operands to pixels first and therefore
accept mixed numeric kinds. Undefined and auto lengths never evaluate to a
number; Evaluate returns NonEvaluateable for them. Callers decide on the
fallback, nothing is substituted silently.

Style

A Style is a plain value. Start from Default (or Row, Column) and chain the
With… setters, or set fields directly. No setter validates combinations of
fields; a minimum size larger than the maximum size is valid data, and the
layout solver decides how to resolve it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flexui.style'.
func tracer() tracing.Trace {
	return tracing.Select("flexui.style")
}
