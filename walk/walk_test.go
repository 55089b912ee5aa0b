package walk

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// (x + 2) * sin(x)
func sample() *symex.Expr {
	x := symex.Var("x")
	return symex.Multiply(symex.Add(x, symex.Lit(2)), symex.Sin(x))
}

func label(e *symex.Expr) string {
	switch e.Kind() {
	case symex.Literal:
		return symex.FormatFloat(e.Value())
	case symex.Variable:
		return e.Name()
	case symex.Unary:
		return e.UnaryOp().Func()
	}
	return e.BinaryOp().Symbol()
}

func order(t *testing.T, e *symex.Expr, walker func(*symex.Expr, Visitor) bool) string {
	var labels []string
	ok := walker(e, func(n Node) bool {
		labels = append(labels, label(n.Expr))
		return true
	})
	require.True(t, ok)
	return strings.Join(labels, " ")
}

func TestTraversalOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.walk")
	defer teardown()
	//
	e := sample()
	assert.Equal(t, "x 2.000000 + x sin *", order(t, e, PostOrder))
	assert.Equal(t, "* + x 2.000000 sin x", order(t, e, PreOrder))
	assert.Equal(t, "x", order(t, symex.Var("x"), PostOrder))
}

func TestParentAndDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.walk")
	defer teardown()
	//
	e := sample()
	PreOrder(e, func(n Node) bool {
		if n.Expr == e {
			assert.Nil(t, n.Parent)
			assert.Equal(t, 0, n.Depth)
			return true
		}
		require.NotNil(t, n.Parent)
		found := false
		for _, ch := range n.Parent.Children() {
			found = found || ch == n.Expr
		}
		assert.True(t, found, "parent of %v does not reference it", n.Expr)
		return true
	})
}

func TestStop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.walk")
	defer teardown()
	//
	cnt := 0
	ok := PostOrder(sample(), func(n Node) bool {
		cnt++
		return n.Expr.Kind() != symex.Binary
	})
	assert.False(t, ok)
	assert.Equal(t, 3, cnt, "walk should stop at the first binary node")
}

func TestQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.walk")
	defer teardown()
	//
	e := sample()
	assert.Equal(t, 3, Depth(e))
	assert.Equal(t, 1, Depth(symex.Lit(1)))
	assert.Equal(t, 6, Size(e))
	assert.Equal(t, 5, Distinct(e), "variable x is shared")
	assert.Equal(t, []string{"x"}, Variables(e))
	assert.False(t, IsGround(e))
	assert.True(t, IsGround(symex.Cos(symex.Lit(0))))
	//
	f := symex.Add(symex.Var("z"), symex.Multiply(symex.Var("a"), symex.Var("z")))
	assert.Equal(t, []string{"a", "z"}, Variables(f))
	leaves := Leaves(f)
	require.Len(t, leaves, 3)
	assert.Equal(t, "z", leaves[0].Name())
	assert.Equal(t, "a", leaves[1].Name())
	assert.Len(t, Collect(f, OfKind(symex.Binary)), 2)
}

func TestSharedSubtrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.walk")
	defer teardown()
	//
	u := symex.Sin(symex.Var("x"))
	e := symex.Multiply(u, u)
	assert.Equal(t, 5, Size(e))
	assert.Equal(t, 3, Distinct(e))
}

func TestDeepTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.walk")
	defer teardown()
	//
	const depth = 100000
	e := symex.Var("x")
	for i := 0; i < depth; i++ {
		e = symex.Negate(e)
	}
	assert.Equal(t, depth+1, Depth(e))
	assert.Equal(t, depth+1, Size(e))
	assert.Equal(t, []string{"x"}, Variables(e))
}

func TestNilTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.walk")
	defer teardown()
	//
	assert.Panics(t, func() { PreOrder(nil, func(Node) bool { return true }) })
}

func recursiveDepth(e *symex.Expr) int {
	d := 0
	for _, ch := range e.Children() {
		if cd := recursiveDepth(ch); cd > d {
			d = cd
		}
	}
	return d + 1
}

func TestDepthAgreesWithRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.walk")
	defer teardown()
	//
	x := symex.Var("x")
	trees := []*symex.Expr{
		sample(),
		symex.Divide(symex.Log(symex.Exp(x)), symex.Subtract(x, symex.Negate(symex.Cos(x)))),
		symex.Add(symex.Lit(1), symex.Multiply(symex.Lit(2), symex.Sin(symex.Sin(x)))),
	}
	for _, e := range trees {
		assert.Equal(t, recursiveDepth(e), Depth(e), "%v", e)
		assert.Equal(t, len(Leaves(e)), len(Collect(e, IsLeaf())))
	}
}
