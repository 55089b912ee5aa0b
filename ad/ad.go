package ad

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"

	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/walk"
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/hyperdual"
)

// Bindings maps variable names to values.
type Bindings map[string]float64

// arith is the arithmetic of a number type N.
type arith[N any] struct {
	lift   func(c float64) N
	bind   func(name string) (N, error)
	unary  func(op symex.UnaryOp, x N) N
	binary func(op symex.BinaryOp, l, r N) N
}

// run evaluates e over numbers of type N. Children are evaluated before their
// parent, using an explicit operand stack.
func run[N any](e *symex.Expr, a arith[N]) (N, error) {
	var zero N
	var err error
	operands := make([]N, 0, 16)
	pop := func() N {
		x := operands[len(operands)-1]
		operands = operands[:len(operands)-1]
		return x
	}
	walk.PostOrder(e, func(n walk.Node) bool {
		switch x := n.Expr; x.Kind() {
		case symex.Literal:
			operands = append(operands, a.lift(x.Value()))
		case symex.Variable:
			var v N
			if v, err = a.bind(x.Name()); err != nil {
				return false
			}
			operands = append(operands, v)
		case symex.Unary:
			operands = append(operands, a.unary(x.UnaryOp(), pop()))
		case symex.Binary:
			r := pop()
			l := pop()
			operands = append(operands, a.binary(x.BinaryOp(), l, r))
		}
		return true
	})
	if err != nil {
		return zero, err
	}
	if len(operands) != 1 {
		panic(fmt.Sprintf("operand stack corrupt, size is %d", len(operands)))
	}
	return operands[0], nil
}

func binder[N any](env Bindings, lift func(name string, v float64) N) func(string) (N, error) {
	return func(name string) (N, error) {
		v, ok := env[name]
		if !ok {
			var zero N
			return zero, &symex.UnboundVariableError{Name: name}
		}
		return lift(name, v), nil
	}
}

// Eval evaluates e, substituting variables from env. It fails with an
// *symex.UnboundVariableError for the first variable missing in env.
func Eval(e *symex.Expr, env Bindings) (float64, error) {
	v, err := run(e, arith[float64]{
		lift:   func(c float64) float64 { return c },
		bind:   binder(env, func(_ string, v float64) float64 { return v }),
		unary:  symex.Apply1Float,
		binary: symex.Apply2Float,
	})
	if err != nil {
		tracer().Debugf("evaluation of %v failed: %v", e, err)
	}
	return v, err
}

// Tangent evaluates e and its first derivative with respect to wrt, at the
// point given by env. Variable wrt must be bound in env.
func Tangent(e *symex.Expr, wrt string, env Bindings) (value, derivative float64, err error) {
	d, err := run(e, arith[dual.Number]{
		lift: func(c float64) dual.Number { return dual.Number{Real: c} },
		bind: binder(env, func(name string, v float64) dual.Number {
			if name == wrt {
				return dual.Number{Real: v, Emag: 1}
			}
			return dual.Number{Real: v}
		}),
		unary:  dualUnary,
		binary: dualBinary,
	})
	if err != nil {
		tracer().Debugf("tangent of %v failed: %v", e, err)
		return 0, 0, err
	}
	return d.Real, d.Emag, nil
}

func dualUnary(op symex.UnaryOp, x dual.Number) dual.Number {
	switch op {
	case symex.OpNeg:
		return dual.Scale(-1, x)
	case symex.OpExp:
		return dual.Exp(x)
	case symex.OpLog:
		return dual.Log(x)
	case symex.OpSin:
		return dual.Sin(x)
	case symex.OpCos:
		return dual.Cos(x)
	}
	return dual.Number{Real: math.NaN(), Emag: math.NaN()}
}

func dualBinary(op symex.BinaryOp, l, r dual.Number) dual.Number {
	switch op {
	case symex.OpAdd:
		return dual.Add(l, r)
	case symex.OpSub:
		return dual.Sub(l, r)
	case symex.OpMul:
		return dual.Mul(l, r)
	case symex.OpDiv:
		return dual.Mul(l, dual.Inv(r))
	}
	return dual.Number{Real: math.NaN(), Emag: math.NaN()}
}

// Second evaluates e together with its first and second derivative with
// respect to wrt, at the point given by env.
func Second(e *symex.Expr, wrt string, env Bindings) (value, d1, d2 float64, err error) {
	h, err := run(e, arith[hyperdual.Number]{
		lift: func(c float64) hyperdual.Number { return hyperdual.Number{Real: c} },
		bind: binder(env, func(name string, v float64) hyperdual.Number {
			if name == wrt {
				return hyperdual.Number{Real: v, E1mag: 1, E2mag: 1}
			}
			return hyperdual.Number{Real: v}
		}),
		unary:  hyperUnary,
		binary: hyperBinary,
	})
	if err != nil {
		tracer().Debugf("second derivative of %v failed: %v", e, err)
		return 0, 0, 0, err
	}
	return h.Real, h.E1mag, h.E1E2mag, nil
}

func hyperUnary(op symex.UnaryOp, x hyperdual.Number) hyperdual.Number {
	switch op {
	case symex.OpNeg:
		return hyperdual.Scale(-1, x)
	case symex.OpExp:
		return hyperdual.Exp(x)
	case symex.OpLog:
		return hyperdual.Log(x)
	case symex.OpSin:
		return hyperdual.Sin(x)
	case symex.OpCos:
		return hyperdual.Cos(x)
	}
	nan := math.NaN()
	return hyperdual.Number{Real: nan, E1mag: nan, E2mag: nan, E1E2mag: nan}
}

func hyperBinary(op symex.BinaryOp, l, r hyperdual.Number) hyperdual.Number {
	switch op {
	case symex.OpAdd:
		return hyperdual.Add(l, r)
	case symex.OpSub:
		return hyperdual.Sub(l, r)
	case symex.OpMul:
		return hyperdual.Mul(l, r)
	case symex.OpDiv:
		return hyperdual.Mul(l, hyperdual.Inv(r))
	}
	nan := math.NaN()
	return hyperdual.Number{Real: nan, E1mag: nan, E2mag: nan, E1E2mag: nan}
}
