package symex

import (
	"math"
	"strconv"
	"strings"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// ToText renders an expression tree as text. Every binary operation is
// enclosed in parentheses, regardless of precedence:
//
//    (2.000000 + (x * sin(y)))
//
// Unary functions use prefix call notation, negation is a bare minus sign
// without parentheses around its operand. Literals print with six decimals.
func ToText(e *Expr) string {
	var sb strings.Builder
	writeText(&sb, e)
	return sb.String()
}

func writeText(sb *strings.Builder, e *Expr) {
	switch e.kind {
	case Literal:
		sb.WriteString(FormatFloat(e.value))
	case Variable:
		sb.WriteString(e.name)
	case Unary:
		if e.uop == OpNeg {
			sb.WriteString("-")
			writeText(sb, e.left)
			return
		}
		sb.WriteString(e.uop.Func())
		sb.WriteByte('(')
		writeText(sb, e.left)
		sb.WriteByte(')')
	case Binary:
		sb.WriteByte('(')
		writeText(sb, e.left)
		sb.WriteByte(' ')
		sb.WriteString(e.bop.Symbol())
		sb.WriteByte(' ')
		writeText(sb, e.right)
		sb.WriteByte(')')
	default:
		panic("unknown expression kind")
	}
}

// FormatFloat formats a number the way literals are rendered: fixed point
// with six decimals, "inf", "-inf" or "nan" for special values.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
