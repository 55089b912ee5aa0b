/*
Package codec converts expression trees to and from structured documents.

A document mirrors the tree node by node. In YAML notation:

	lit: 2                 # literal
	var: x                 # variable
	op: sin                # unary operation
	arg: { var: x }
	op: add                # binary operation
	left: { lit: 1 }
	right: { var: x }

Operator names are neg, exp, log, sin, cos, add, sub, mul and div. Documents
marshal to JSON with encoding/json and to YAML with gopkg.in/yaml.v3. This is
not a formula parser: text written by symex.ToText cannot be read back.

A file holds either a single tree or a workspace, i.e. a map of named trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.codec'.
func tracer() tracing.Trace {
	return tracing.Select("symex.codec")
}
