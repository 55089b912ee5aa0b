package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/symex"
	"golang.org/x/exp/slices"
)

// ErrUndefined is matched by errors for names without an expression.
var ErrUndefined = errors.New("undefined expression")

// Workspace holds named expressions in two scopes, 'std' and 'user'.
type Workspace struct {
	scopes *ScopeTree
}

// NewWorkspace constructs a workspace with the standard samples defined in
// scope 'std' and an empty scope 'user'.
func NewWorkspace() *Workspace {
	ws := &Workspace{scopes: new(ScopeTree)}
	std := ws.scopes.PushNewScope("std")
	for _, sample := range Samples() {
		tag, _ := std.DefineTag(sample.Name)
		tag.WithExpr(sample.Expr, "std")
	}
	ws.scopes.PushNewScope("user")
	return ws
}

// Std returns the scope of standard samples.
func (ws *Workspace) Std() *Scope {
	return ws.scopes.Globals()
}

// User returns the scope of user definitions.
func (ws *Workspace) User() *Scope {
	return ws.scopes.Current()
}

// Define binds name to e in the user scope, shadowing a standard sample of
// the same name. A previous user definition is re-bound in place and its
// expression is returned; otherwise the result is nil.
func (ws *Workspace) Define(name string, e *symex.Expr, origin string) (*symex.Expr, error) {
	if name == "" {
		return nil, errors.New("expression name must not be empty")
	}
	if e == nil {
		return nil, fmt.Errorf("cannot bind %q to a nil expression", name)
	}
	tag, found := ws.User().Tags().ResolveOrDefineTag(name)
	var old *symex.Expr
	if found {
		old = tag.Expr
		T().P("origin", tag.Origin).Debugf("re-defining %s", name)
	}
	tag.WithExpr(e, origin)
	T().Debugf("defined %s = %v", name, e)
	return old, nil
}

// Undefine removes a user definition. Standard samples cannot be removed.
// Returns false if there was no user definition for name.
func (ws *Workspace) Undefine(name string) bool {
	return ws.User().Tags().RemoveTag(name) != nil
}

// Resolve finds the tag for name, searching the user scope first.
func (ws *Workspace) Resolve(name string) (*Tag, *Scope) {
	return ws.User().ResolveTag(name)
}

// Lookup returns the expression bound to name.
func (ws *Workspace) Lookup(name string) (*symex.Expr, error) {
	tag, _ := ws.Resolve(name)
	if tag == nil || tag.Expr == nil {
		return nil, fmt.Errorf("%w %q", ErrUndefined, name)
	}
	return tag.Expr, nil
}

// Names returns all visible names, sorted and without duplicates.
func (ws *Workspace) Names() []string {
	names := append(ws.Std().Tags().Names(), ws.User().Tags().Names()...)
	slices.Sort(names)
	return slices.Compact(names)
}

// Import defines all expressions of a map in the user scope. Returns the
// names imported, sorted.
func (ws *Workspace) Import(exprs map[string]*symex.Expr, origin string) ([]string, error) {
	names := make([]string, 0, len(exprs))
	for name := range exprs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, err := ws.Define(name, exprs[name], origin); err != nil {
			return nil, err
		}
	}
	return names, nil
}

// Export collects the expressions bound to names. With no names given, it
// collects every visible expression.
func (ws *Workspace) Export(names ...string) (map[string]*symex.Expr, error) {
	if len(names) == 0 {
		names = ws.Names()
	}
	exprs := make(map[string]*symex.Expr, len(names))
	for _, name := range names {
		e, err := ws.Lookup(name)
		if err != nil {
			return nil, err
		}
		exprs[name] = e
	}
	return exprs, nil
}

// --- Samples ---------------------------------------------------------------

// Sample is a named sample expression.
type Sample struct {
	Name string
	Expr *symex.Expr
}

// Samples returns the expressions of the demo driver, in order of
// construction:
//
//    expr3 = log(2 * (2 + (sin(3)/2 + 3)) - 3)
//    expr4 = log(foo)
//    expr5 = d/da expr4
//    expr6 = d/dfoo expr4
//    sum   = expr3 + expr4 + expr5 + expr6
//
// Every call returns fresh trees.
func Samples() []Sample {
	a, b := symex.Lit(2), symex.Lit(3)
	expr3 := symex.Log(symex.Subtract(
		symex.Multiply(a, symex.Add(a, symex.Add(symex.Divide(symex.Sin(b), a), b))),
		b))
	expr4 := symex.Log(symex.Var("foo"))
	expr5 := mustDiff(expr4, "a")
	expr6 := mustDiff(expr4, "foo")
	return []Sample{
		{"expr3", expr3},
		{"expr4", expr4},
		{"expr5", expr5},
		{"expr6", expr6},
		{"sum", expr3.Plus(expr4).Plus(expr5).Plus(expr6)},
	}
}

func mustDiff(e *symex.Expr, wrt string) *symex.Expr {
	d, err := symex.Differentiate(e, wrt)
	if err != nil {
		panic(err) // unary trees are always differentiable
	}
	return d
}
