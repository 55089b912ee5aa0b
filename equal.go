package symex

import (
	"math"
	"strconv"

	"github.com/cnf/structhash"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Equal is a predicate: are a and b structurally identical trees?
// Node identity does not matter, so a tree sharing a subtree twice equals a
// tree holding two distinct copies of it. Literals compare by bit pattern,
// so Lit(0) and Lit(-0) differ, except that every NaN equals every NaN.
func Equal(a, b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Literal:
		return math.Float64bits(a.value) == math.Float64bits(b.value) ||
			(math.IsNaN(a.value) && math.IsNaN(b.value))
	case Variable:
		return a.name == b.name
	case Unary:
		return a.uop == b.uop && Equal(a.left, b.left)
	case Binary:
		return a.bop == b.bop && Equal(a.left, b.left) && Equal(a.right, b.right)
	}
	return false
}

// shape mirrors a tree with exported fields only, as input for structhash.
type shape struct {
	Kind  string
	Op    string
	Value string
	Name  string
	Args  []shape
}

func shapeOf(e *Expr) shape {
	s := shape{Kind: e.kind.String()}
	switch e.kind {
	case Literal:
		s.Value = strconv.FormatFloat(e.value, 'g', -1, 64)
	case Variable:
		s.Name = e.name
	case Unary:
		s.Op = e.uop.String()
		s.Args = []shape{shapeOf(e.left)}
	case Binary:
		s.Op = e.bop.String()
		s.Args = []shape{shapeOf(e.left), shapeOf(e.right)}
	}
	return s
}

// Fingerprint returns a structural hash of e. Trees which are Equal have the
// same fingerprint, no matter how their subtrees are shared.
func Fingerprint(e *Expr) (string, error) {
	if e == nil {
		return "", nil
	}
	return structhash.Hash(shapeOf(e), 1)
}
