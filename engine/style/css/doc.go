/*
Package css applies CSS-like property declarations to layout styles.

	s, err := css.Apply(style.Column(), "width: 50%; padding: 4px 8px; flex-grow: 1")

Declarations are parsed with douceur, so the usual CSS syntax for declaration
lists applies. Supported properties are the flexbox subset modeled by package
style; values use the length syntax of style.ParseLength. Shorthands for
margin, padding, border, inset and gap follow CSS ordering (top, right,
bottom, left; rows before columns).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flexui.style'.
func tracer() tracing.Trace {
	return tracing.Select("flexui.style")
}
