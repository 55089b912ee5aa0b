package symex

import (
	"fmt"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// DiffOption configures differentiation.
type DiffOption func(*diffConfig)

type diffConfig struct {
	legacyExp bool // d/dx exp(u) = exp(u) + u'
	noBinary  bool // binary nodes are not differentiable
}

// LegacyExpRule selects the historic rule d/dx exp(u) = exp(u) + u', which
// does not implement the chain rule. Use it only to reproduce results of
// older versions of this engine.
func LegacyExpRule() DiffOption {
	return func(c *diffConfig) {
		c.legacyExp = true
	}
}

// WithoutBinaryRules switches off the sum, difference, product and quotient
// rules. Differentiating any binary node will then fail with an
// *UnsupportedDerivativeError.
func WithoutBinaryRules() DiffOption {
	return func(c *diffConfig) {
		c.noBinary = true
	}
}

// Differentiate returns the symbolic derivative of e with respect to the
// variable named wrt. The result is a new tree, which references subtrees of e
// where the differentiation rules call for the original operand. No
// simplification is done, so d/dx(3) is Lit(0) and d/dx(x*x) is
// ((1 * x) + (x * 1)).
//
// Rules per node:
//
//    c            ↦ 0
//    v            ↦ 1 if v = wrt, 0 otherwise
//    -u           ↦ -u'
//    exp(u)       ↦ exp(u) * u'
//    log(u)       ↦ u' / u
//    sin(u)       ↦ u' * cos(u)
//    cos(u)       ↦ u' * -sin(u)
//    a ± b        ↦ a' ± b'
//    a * b        ↦ (a' * b) + (a * b')
//    a / b        ↦ ((a' * b) - (a * b')) / (b * b)
//
func Differentiate(e *Expr, wrt string, opts ...DiffOption) (*Expr, error) {
	var conf diffConfig
	for _, opt := range opts {
		opt(&conf)
	}
	d, err := conf.deriv(e, wrt)
	if err != nil {
		tracer().Debugf("d/d%s of %v failed: %v", wrt, e, err)
		return nil, err
	}
	return d, nil
}

// DifferentiateN applies Differentiate n times. For n = 0 it returns e.
func DifferentiateN(e *Expr, wrt string, n int, opts ...DiffOption) (*Expr, error) {
	if n < 0 {
		return nil, fmt.Errorf("order of derivative must not be negative, is %d", n)
	}
	var err error
	for i := 0; i < n; i++ {
		if e, err = Differentiate(e, wrt, opts...); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (conf diffConfig) deriv(e *Expr, wrt string) (*Expr, error) {
	switch e.kind {
	case Literal:
		return Lit(0), nil
	case Variable:
		if e.name == wrt {
			return Lit(1), nil
		}
		return Lit(0), nil
	case Unary:
		return conf.derivUnary(e, wrt)
	case Binary:
		return conf.derivBinary(e, wrt)
	}
	panic("unknown expression kind")
}

func (conf diffConfig) derivUnary(e *Expr, wrt string) (*Expr, error) {
	u := e.left
	du, err := conf.deriv(u, wrt)
	if err != nil {
		return nil, err
	}
	switch e.uop {
	case OpNeg:
		return Negate(du), nil
	case OpExp:
		if conf.legacyExp {
			return Add(Exp(u), du), nil
		}
		return Multiply(Exp(u), du), nil
	case OpLog:
		return Divide(du, u), nil
	case OpSin:
		return Multiply(du, Cos(u)), nil
	case OpCos:
		return Multiply(du, Negate(Sin(u))), nil
	}
	panic(fmt.Sprintf("unknown unary operator %v", e.uop))
}

func (conf diffConfig) derivBinary(e *Expr, wrt string) (*Expr, error) {
	if conf.noBinary {
		return nil, &UnsupportedDerivativeError{Op: e.bop}
	}
	a, b := e.left, e.right
	da, err := conf.deriv(a, wrt)
	if err != nil {
		return nil, err
	}
	db, err := conf.deriv(b, wrt)
	if err != nil {
		return nil, err
	}
	switch e.bop {
	case OpAdd:
		return Add(da, db), nil
	case OpSub:
		return Subtract(da, db), nil
	case OpMul:
		return Add(Multiply(da, b), Multiply(a, db)), nil
	case OpDiv:
		numer := Subtract(Multiply(da, b), Multiply(a, db))
		return Divide(numer, Multiply(b, b)), nil
	}
	panic(fmt.Sprintf("unknown binary operator %v", e.bop))
}
