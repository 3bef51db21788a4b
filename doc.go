/*
Package variants provides the building blocks for sum types in Go: a payload
holder for variants and a name-keyed dispatch, which simulates pattern
matching over the concrete variant of a value.

Every variant type implements Matchable, reporting its variant name. Clients
dispatch on it by handing a map of handlers to MatchesWith:

	r := variants.MatchesWith(x, variants.Handlers[Shape, float64]{
	    "Circle": func(s Shape) float64 { return … },
	    "Square": func(s Shape) float64 { return … },
	    variants.Fallback: func(s Shape) float64 { return 0 },
	})

The result is a maybe.Maybe, which is None if no handler applies. Go cannot
check such a match for exhaustiveness; sub-packages therefore offer a
switch-style matcher as well (see packages maybe, either and infer).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package variants

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'variants'.
func tracer() tracing.Trace {
	return tracing.Select("variants")
}
