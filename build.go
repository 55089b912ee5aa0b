package symex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Construction functions never fail and never copy: they wrap the child
// references they are handed. Passing a nil child results in a malformed
// tree which will panic when walked.

// Lit creates a literal.
func Lit(v float64) *Expr {
	return &Expr{kind: Literal, value: v}
}

// Var creates a variable.
func Var(name string) *Expr {
	return &Expr{kind: Variable, name: name}
}

// Apply1 creates a unary node applying op to e.
func Apply1(op UnaryOp, e *Expr) *Expr {
	return &Expr{kind: Unary, uop: op, left: e}
}

// Apply2 creates a binary node applying op to a and b, in this order.
func Apply2(op BinaryOp, a, b *Expr) *Expr {
	return &Expr{kind: Binary, bop: op, left: a, right: b}
}

// Negate creates -e.
func Negate(e *Expr) *Expr { return Apply1(OpNeg, e) }

// Exp creates exp(e).
func Exp(e *Expr) *Expr { return Apply1(OpExp, e) }

// Log creates log(e), the natural logarithm.
func Log(e *Expr) *Expr { return Apply1(OpLog, e) }

// Sin creates sin(e).
func Sin(e *Expr) *Expr { return Apply1(OpSin, e) }

// Cos creates cos(e).
func Cos(e *Expr) *Expr { return Apply1(OpCos, e) }

// Add creates (a + b).
func Add(a, b *Expr) *Expr { return Apply2(OpAdd, a, b) }

// Subtract creates (a - b).
func Subtract(a, b *Expr) *Expr { return Apply2(OpSub, a, b) }

// Multiply creates (a * b).
func Multiply(a, b *Expr) *Expr { return Apply2(OpMul, a, b) }

// Divide creates (a / b).
func Divide(a, b *Expr) *Expr { return Apply2(OpDiv, a, b) }

// --- Infix helpers ---------------------------------------------------------

// Plus is shorthand for Add(e, b). Use as
//
//    sum := x.Plus(y).Plus(z)    // ((x + y) + z)
//
func (e *Expr) Plus(b *Expr) *Expr { return Add(e, b) }

// Minus is shorthand for Subtract(e, b).
func (e *Expr) Minus(b *Expr) *Expr { return Subtract(e, b) }

// Times is shorthand for Multiply(e, b).
func (e *Expr) Times(b *Expr) *Expr { return Multiply(e, b) }

// Over is shorthand for Divide(e, b).
func (e *Expr) Over(b *Expr) *Expr { return Divide(e, b) }
