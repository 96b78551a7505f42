/*
Package option implements matching of optional values.

Option types know whether they carry a value. Clients match them against a
map of cases instead of branching on sentinel values:

	x, err := ratio.Match(option.Of{
	     option.None: "free",
	     1.0:         "square",
	     option.Some: func(v interface{}) (interface{}, error) { … },
	})

Layout lengths implement option.Type as well, with 'undefined' as the
unset case.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flexui.core'.
func tracer() tracing.Trace {
	return tracing.Select("flexui.core")
}
