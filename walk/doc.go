/*
Package walk traverses expression trees.

Traversals do not recurse. They keep an explicit stack of pending nodes, so
they work for trees of any depth, including trees too deep for the recursive
operations of package symex.

The example tree

          *
        /   \
      +       sin
     / \       |
    x   2      x

is visited in post-order as

	x 2 + x sin *

and in pre-order as

	* + x 2 sin x

Shared subtrees are visited once per reference, i.e. traversal sees a tree,
not a DAG. Use Distinct to count nodes by identity.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package walk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.walk'.
func tracer() tracing.Trace {
	return tracing.Select("symex.walk")
}
