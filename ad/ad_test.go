package ad

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var x, y = symex.Var("x"), symex.Var("y")

func TestEvalWithBindings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.ad")
	defer teardown()
	//
	e := symex.Multiply(symex.Add(x, symex.Lit(2)), symex.Sin(x))
	v, err := Eval(e, Bindings{"x": 1.5})
	require.NoError(t, err)
	assert.InDelta(t, 3.5*math.Sin(1.5), v, 1e-12)
	//
	ground := symex.Divide(symex.Lit(1), symex.Lit(4))
	v, err = Eval(ground, nil)
	require.NoError(t, err)
	w, _ := symex.Evaluate(ground)
	assert.Equal(t, w, v)
}

func TestEvalUnbound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.ad")
	defer teardown()
	//
	_, err := Eval(symex.Add(x, symex.Cos(y)), Bindings{"x": 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, symex.ErrUnboundVariable))
	var ue *symex.UnboundVariableError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "y", ue.Name)
	//
	_, _, err = Tangent(y, "x", Bindings{"x": 1})
	assert.ErrorIs(t, err, symex.ErrUnboundVariable)
}

func TestTangent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.ad")
	defer teardown()
	//
	f := symex.Multiply(symex.Sin(x), x)
	v, dv, err := Tangent(f, "x", Bindings{"x": 1.5})
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(1.5)*1.5, v, 1e-12)
	assert.InDelta(t, math.Cos(1.5)*1.5+math.Sin(1.5), dv, 1e-12)
	//
	g := symex.Multiply(x, y) // partial derivative
	_, dv, err = Tangent(g, "y", Bindings{"x": 3, "y": 5})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, dv, 1e-12)
}

func TestSecond(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.ad")
	defer teardown()
	//
	cube := symex.Multiply(symex.Multiply(x, x), x)
	v, d1, d2, err := Second(cube, "x", Bindings{"x": 2})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, v, 1e-12)
	assert.InDelta(t, 12.0, d1, 1e-12)
	assert.InDelta(t, 12.0, d2, 1e-12)
	//
	// second symbolic derivative agrees with hyper-dual numbers
	f := symex.Divide(symex.Exp(symex.Sin(x)), symex.Add(x, symex.Lit(1)))
	dd, err := symex.DifferentiateN(f, "x", 2)
	require.NoError(t, err)
	sym, err := Eval(dd, Bindings{"x": 0.7})
	require.NoError(t, err)
	_, _, d2, err = Second(f, "x", Bindings{"x": 0.7})
	require.NoError(t, err)
	assert.InDelta(t, d2, sym, 1e-9)
}

func TestCheckDefaultRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.ad")
	defer teardown()
	//
	exprs := []*symex.Expr{
		symex.Lit(7),
		x,
		y,
		symex.Negate(symex.Sin(x)),
		symex.Exp(symex.Multiply(symex.Lit(2), x)),
		symex.Log(symex.Add(symex.Multiply(x, x), symex.Lit(1))),
		symex.Cos(symex.Divide(x, y)),
		symex.Subtract(symex.Multiply(x, y), symex.Exp(symex.Negate(x))),
		symex.Divide(symex.Sin(x), symex.Cos(symex.Multiply(x, y))),
	}
	env := Bindings{"x": 0.8, "y": 2.5}
	for _, e := range exprs {
		for _, wrt := range []string{"x", "y"} {
			r, err := Check(e, wrt, env, 1e-9)
			require.NoError(t, err, "d/d%s %v", wrt, e)
			assert.True(t, r.Agrees(), "d/d%s %v: %v", wrt, e, r)
		}
	}
}

func TestCheckLegacyExpRuleDisagrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.ad")
	defer teardown()
	//
	e := symex.Exp(symex.Multiply(symex.Lit(2), x))
	r, err := Check(e, "x", Bindings{"x": 1}, 1e-9, symex.LegacyExpRule())
	require.NoError(t, err)
	assert.False(t, r.Agrees())
	assert.InDelta(t, math.Exp(2)+2, r.Symbolic, 1e-9)
	assert.InDelta(t, 2*math.Exp(2), r.Numeric, 1e-9)
	assert.Contains(t, r.String(), "DIFFERS")
}

func TestCheckWithoutBinaryRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.ad")
	defer teardown()
	//
	_, err := Check(symex.Add(x, x), "x", Bindings{"x": 1}, 1e-9, symex.WithoutBinaryRules())
	assert.ErrorIs(t, err, symex.ErrDerivativeUnsupported)
}

func TestReportSpecialValues(t *testing.T) {
	inf := math.Inf(1)
	assert.True(t, Report{Symbolic: math.NaN(), Numeric: math.NaN()}.Agrees())
	assert.False(t, Report{Symbolic: math.NaN(), Numeric: 1}.Agrees())
	assert.True(t, Report{Symbolic: inf, Numeric: inf}.Agrees())
	assert.False(t, Report{Symbolic: inf, Numeric: -inf}.Agrees())
	assert.True(t, Report{Symbolic: 1000.001, Numeric: 1000, Tolerance: 1e-5}.Agrees())
}

func TestEvalDeepTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.ad")
	defer teardown()
	//
	e := x
	for i := 0; i < 100001; i++ {
		e = symex.Negate(e)
	}
	v, err := Eval(e, Bindings{"x": 2})
	require.NoError(t, err)
	assert.Equal(t, -2.0, v)
}

// randomTree builds a tree of bounded values: exp only wraps a sine.
func randomTree(rnd *rand.Rand, depth int) *symex.Expr {
	if depth == 0 || rnd.Intn(4) == 0 {
		switch rnd.Intn(3) {
		case 0:
			return symex.Lit(float64(rnd.Intn(9)-4) / 2)
		case 1:
			return x
		}
		return y
	}
	u := randomTree(rnd, depth-1)
	switch rnd.Intn(7) {
	case 0:
		return symex.Negate(u)
	case 1:
		return symex.Sin(u)
	case 2:
		return symex.Cos(u)
	case 3:
		return symex.Exp(symex.Sin(u))
	case 4:
		return symex.Add(u, randomTree(rnd, depth-1))
	case 5:
		return symex.Subtract(u, randomTree(rnd, depth-1))
	}
	return symex.Multiply(u, randomTree(rnd, depth-1))
}

func TestCheckRandomTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.ad")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	for i := 0; i < 200; i++ {
		e := randomTree(rnd, 5)
		env := Bindings{"x": 0.5 + rnd.Float64(), "y": 0.5 + rnd.Float64()}
		r, err := Check(e, "x", env, 1e-8)
		require.NoError(t, err)
		assert.True(t, r.Agrees(), "d/dx %v: %v", e, r)
		//
		// division by a term bounded away from zero
		q := symex.Divide(e, symex.Add(symex.Lit(3), symex.Sin(e)))
		r, err = Check(q, "y", env, 1e-8)
		require.NoError(t, err)
		assert.True(t, r.Agrees(), "d/dy %v: %v", q, r)
	}
}
