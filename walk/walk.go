package walk

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/symex"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Node is a tree node as seen during a traversal. Depth of the root is 0.
type Node struct {
	Expr   *symex.Expr
	Parent *symex.Expr // nil for the root
	Depth  int
}

// Visitor is called for every node of a traversal. Returning false stops the
// traversal.
type Visitor func(node Node) bool

// frame is an entry of the traversal stack. For post-order walks an inner
// node is pushed twice. The second push is marked as expanded and happens
// before its children are pushed, so it is visited after them.
type frame struct {
	node     Node
	expanded bool
}

// PostOrder visits the nodes of e children first, left to right.
// It returns false if the visitor stopped the traversal.
//
// PostOrder panics if e is nil or contains nil children.
func PostOrder(e *symex.Expr, visit Visitor) bool {
	if e == nil {
		panic("attempt to walk a nil tree")
	}
	stack := arraystack.New()
	stack.Push(frame{node: Node{Expr: e}})
	for !stack.Empty() {
		top, _ := stack.Pop()
		f := top.(frame)
		if f.expanded || f.node.Expr.IsLeaf() {
			if !visit(f.node) {
				tracer().Debugf("post-order walk stopped at %v", f.node.Expr.Kind())
				return false
			}
			continue
		}
		f.expanded = true
		stack.Push(f)
		pushChildren(stack, f.node)
	}
	return true
}

// PreOrder visits the nodes of e parents first, left to right.
// It returns false if the visitor stopped the traversal.
//
// PreOrder panics if e is nil or contains nil children.
func PreOrder(e *symex.Expr, visit Visitor) bool {
	if e == nil {
		panic("attempt to walk a nil tree")
	}
	stack := arraystack.New()
	stack.Push(frame{node: Node{Expr: e}})
	for !stack.Empty() {
		top, _ := stack.Pop()
		f := top.(frame)
		if !visit(f.node) {
			tracer().Debugf("pre-order walk stopped at %v", f.node.Expr.Kind())
			return false
		}
		pushChildren(stack, f.node)
	}
	return true
}

// pushChildren pushes right to left, so the leftmost child is on top.
func pushChildren(stack *arraystack.Stack, n Node) {
	ch := n.Expr.Children()
	for i := len(ch) - 1; i >= 0; i-- {
		if ch[i] == nil {
			panic("malformed expression: nil child")
		}
		stack.Push(frame{node: Node{Expr: ch[i], Parent: n.Expr, Depth: n.Depth + 1}})
	}
}

// --- Queries ---------------------------------------------------------------

// Depth returns the number of nodes on the longest path from the root of e
// to a leaf. A single literal has depth 1.
func Depth(e *symex.Expr) int {
	deepest := 0
	PreOrder(e, func(n Node) bool {
		if n.Depth+1 > deepest {
			deepest = n.Depth + 1
		}
		return true
	})
	return deepest
}

// Size counts the nodes of e. Shared subtrees count once per reference.
func Size(e *symex.Expr) int {
	cnt := 0
	PreOrder(e, func(Node) bool {
		cnt++
		return true
	})
	return cnt
}

// Distinct counts the distinct nodes of e by identity. For a tree without
// shared subtrees, Distinct(e) = Size(e).
func Distinct(e *symex.Expr) int {
	seen := make(map[*symex.Expr]struct{})
	PreOrder(e, func(n Node) bool {
		seen[n.Expr] = struct{}{}
		return true
	})
	return len(seen)
}

// Variables returns the names of all variables occurring in e, sorted and
// without duplicates.
func Variables(e *symex.Expr) []string {
	names := make(map[string]struct{})
	PreOrder(e, func(n Node) bool {
		if n.Expr.Kind() == symex.Variable {
			names[n.Expr.Name()] = struct{}{}
		}
		return true
	})
	vars := maps.Keys(names)
	slices.Sort(vars)
	return vars
}

// Leaves returns the literals and variables of e, left to right.
func Leaves(e *symex.Expr) []*symex.Expr {
	nodes := Collect(e, IsLeaf())
	leaves := make([]*symex.Expr, len(nodes))
	for i, n := range nodes {
		leaves[i] = n.Expr
	}
	return leaves
}

// IsGround is a predicate: does e contain no variables, i.e. can it be
// evaluated?
func IsGround(e *symex.Expr) bool {
	return PreOrder(e, func(n Node) bool {
		return n.Expr.Kind() != symex.Variable
	})
}

// --- Filters ---------------------------------------------------------------

// A NodeFilter selects nodes of a traversal.
type NodeFilter func(node Node) bool

// IsLeaf is a filter accepting literals and variables.
func IsLeaf() NodeFilter {
	return func(node Node) bool {
		return node.Expr.IsLeaf()
	}
}

// OfKind is a filter accepting nodes of kind k.
func OfKind(k symex.Kind) NodeFilter {
	return func(node Node) bool {
		return node.Expr.Kind() == k
	}
}

// Collect returns the nodes of e accepted by filt, in pre-order.
func Collect(e *symex.Expr, filt NodeFilter) []Node {
	var nodes []Node
	PreOrder(e, func(n Node) bool {
		if filt(n) {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}
