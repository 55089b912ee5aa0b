/*
Package ad evaluates expression trees with bound variables, over plain
floats as well as over dual and hyper-dual numbers.

Forward-mode automatic differentiation yields derivatives which are exact up
to floating point rounding, without building a derivative tree. This makes it
an independent oracle for symbolic differentiation: Check compares the value
of a symbolic derivative against the dual-number tangent at a point.

	f := symex.Sin(symex.Var("x")).Times(symex.Var("x"))
	v, dv, err := ad.Tangent(f, "x", ad.Bindings{"x": 1.5})

Evaluation in this package never recurses, so trees of any depth may be
evaluated.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ad

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.ad'.
func tracer() tracing.Trace {
	return tracing.Select("symex.ad")
}
