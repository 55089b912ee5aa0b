/*
Package symex is a small engine for symbolic expressions.

Expressions are immutable trees built bottom-up from literals, variables,
unary functions (negation, exp, log, sin, cos) and binary arithmetic
(add, subtract, multiply, divide). Three operations work on any tree:

■ Evaluate reduces a tree to a float64. Trees containing variables cannot be
evaluated, as there are no bindings in this package.

■ Differentiate builds a new tree, the symbolic derivative with respect to a
named variable. The result is not simplified.

■ ToText renders a tree as a fully parenthesized string.

Trees are built with the construction functions:

    x := symex.Var("x")
    f := symex.Sin(x).Times(symex.Lit(2))   // ≡ Multiply(Sin(x), Lit(2))
    df, err := symex.Differentiate(f, "x")

All operations are pure. Subtrees may be shared between trees and trees may
be used from several goroutines at once. Operations recurse along the tree, so
stack usage grows with tree depth.

Package structure is as follows:

■ walk: Package walk traverses expression trees without recursion.

■ ad: Package ad evaluates trees with variable bindings over dual numbers and
serves as a numeric oracle for symbolic derivatives.

■ codec: Package codec encodes trees as structured JSON or YAML documents.

■ runtime: Package runtime provides scopes and symbol tables for named expressions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex'.
func tracer() tracing.Trace {
	return tracing.Select("symex")
}
