package symex

import (
	"math"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Evaluate reduces an expression tree to a number. Children are evaluated
// before their parent combines them. Shared subtrees are evaluated once per
// reference; there is no caching.
//
// Evaluating a variable fails with an *UnboundVariableError, aborting the
// whole evaluation. Floating point domain problems (log of a negative number,
// division by zero) are not errors: they yield NaN or ±Inf as IEEE 754
// prescribes.
func Evaluate(e *Expr) (float64, error) {
	v, err := eval(e)
	if err != nil {
		tracer().Debugf("evaluation of %v failed: %v", e, err)
	}
	return v, err
}

func eval(e *Expr) (float64, error) {
	switch e.kind {
	case Literal:
		return e.value, nil
	case Variable:
		return 0, &UnboundVariableError{Name: e.name}
	case Unary:
		x, err := eval(e.left)
		if err != nil {
			return 0, err
		}
		return Apply1Float(e.uop, x), nil
	case Binary:
		l, err := eval(e.left)
		if err != nil {
			return 0, err
		}
		r, err := eval(e.right)
		if err != nil {
			return 0, err
		}
		return Apply2Float(e.bop, l, r), nil
	}
	panic("unknown expression kind")
}

// Apply1Float applies the scalar function of a unary operator to x.
func Apply1Float(op UnaryOp, x float64) float64 {
	switch op {
	case OpNeg:
		return -x
	case OpExp:
		return math.Exp(x)
	case OpLog:
		return math.Log(x)
	case OpSin:
		return math.Sin(x)
	case OpCos:
		return math.Cos(x)
	}
	return math.NaN()
}

// Apply2Float applies a binary operator to l and r, in this order.
func Apply2Float(op BinaryOp, l, r float64) float64 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	}
	return math.NaN()
}
