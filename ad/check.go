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
)

// Report is the outcome of comparing a symbolic derivative with the
// dual-number tangent at a point.
type Report struct {
	Derivative *symex.Expr // symbolic derivative
	Value      float64     // value of the function at the point
	Symbolic   float64     // value of Derivative at the point
	Numeric    float64     // tangent computed with dual numbers
	Tolerance  float64
}

// Deviation is the difference between the symbolic and the numeric
// derivative, relative to the magnitude of the numeric one if it exceeds 1.
func (r Report) Deviation() float64 {
	d := math.Abs(r.Symbolic - r.Numeric)
	if m := math.Abs(r.Numeric); m > 1 {
		d /= m
	}
	return d
}

// Agrees is true if the symbolic derivative matches the tangent within
// tolerance. Two NaNs or two equal infinities agree.
func (r Report) Agrees() bool {
	if math.IsNaN(r.Symbolic) || math.IsNaN(r.Numeric) {
		return math.IsNaN(r.Symbolic) && math.IsNaN(r.Numeric)
	}
	if math.IsInf(r.Symbolic, 0) || math.IsInf(r.Numeric, 0) {
		return r.Symbolic == r.Numeric
	}
	return r.Deviation() <= r.Tolerance
}

func (r Report) String() string {
	verdict := "agrees"
	if !r.Agrees() {
		verdict = "DIFFERS"
	}
	return fmt.Sprintf("f=%s  f'=%s  dual=%s  %s", symex.FormatFloat(r.Value),
		symex.FormatFloat(r.Symbolic), symex.FormatFloat(r.Numeric), verdict)
}

// Check differentiates e symbolically with respect to wrt, using opts, and
// compares the result at env with the dual-number tangent. An error is
// returned if differentiation fails or a variable is unbound; disagreement is
// reported in the Report, not as an error.
func Check(e *symex.Expr, wrt string, env Bindings, tol float64, opts ...symex.DiffOption) (Report, error) {
	r := Report{Tolerance: tol}
	var err error
	if r.Derivative, err = symex.Differentiate(e, wrt, opts...); err != nil {
		return r, err
	}
	if r.Symbolic, err = Eval(r.Derivative, env); err != nil {
		return r, err
	}
	if r.Value, r.Numeric, err = Tangent(e, wrt, env); err != nil {
		return r, err
	}
	if !r.Agrees() {
		tracer().Infof("d/d%s %v: symbolic %g, numeric %g", wrt, e, r.Symbolic, r.Numeric)
	}
	return r, nil
}
