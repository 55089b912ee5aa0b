/*
Package runtime manages named expressions, organized in scopes.

Symbol Table and Scope Tree

A symbol table maps names to tags, where a tag carries an expression tree
and a note about where the tree came from. Symbol tables are attached to
scopes, and scopes link to a parent scope. Resolving a name searches the
current scope first, then its ancestors.

Workspace

A workspace is a small scope tree: a scope 'std' holding the sample
expressions of the demo driver, and a scope 'user' on top of it. User
definitions may shadow standard ones, but never modify them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'symex.runtime'.
func T() tracing.Trace {
	return tracing.Select("symex.runtime")
}
