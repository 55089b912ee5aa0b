package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/walk"
	"github.com/pterm/pterm"
)

// leveledList flattens an expression tree in pre-order, with the depth of
// each node as its level, as pterm needs for tree rendering.
func leveledList(e *symex.Expr) pterm.LeveledList {
	ll := pterm.LeveledList{}
	walk.PreOrder(e, func(n walk.Node) bool {
		ll = append(ll, pterm.LeveledListItem{
			Level: n.Depth,
			Text:  nodeLabel(n.Expr),
		})
		return true
	})
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}

func nodeLabel(e *symex.Expr) string {
	switch e.Kind() {
	case symex.Literal:
		return symex.FormatFloat(e.Value())
	case symex.Variable:
		return e.Name()
	case symex.Unary:
		if e.UnaryOp() == symex.OpNeg {
			return "neg"
		}
		return e.UnaryOp().Func()
	}
	return e.BinaryOp().Symbol()
}

// renderTree prints an expression tree on the terminal.
func renderTree(label string, ll pterm.LeveledList) {
	pterm.Println(label)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
