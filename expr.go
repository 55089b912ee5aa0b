package symex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

//go:generate stringer -type=Kind -output=kind_string.go
//go:generate stringer -type=UnaryOp,BinaryOp -trimprefix=Op -output=ops_string.go

// --- Node kinds and operator tags ------------------------------------------

// Kind is the variant tag of an expression node. The set of kinds is closed.
type Kind int8

// Node kinds.
const (
	Literal  Kind = iota // fixed real value, no children
	Variable             // named symbol, no children
	Unary                // unary operator with one operand
	Binary               // binary operator with left and right operand
)

// UnaryOp identifies the scalar function a unary node applies.
type UnaryOp int8

// Unary operators.
const (
	OpNeg UnaryOp = iota // -x
	OpExp                // e^x
	OpLog                // natural logarithm
	OpSin
	OpCos
)

// Func returns the name a unary operator is rendered with.
// Negation renders as a bare minus sign.
func (op UnaryOp) Func() string {
	switch op {
	case OpNeg:
		return "-"
	case OpExp:
		return "exp"
	case OpLog:
		return "log"
	case OpSin:
		return "sin"
	case OpCos:
		return "cos"
	}
	return "?"
}

// BinaryOp identifies the arithmetic operator a binary node applies.
type BinaryOp int8

// Binary operators.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// Symbol returns the infix symbol of a binary operator.
func (op BinaryOp) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// --- Expression nodes ------------------------------------------------------

// Expr is a node of an expression tree. There is exactly one node type for
// all kinds of expressions; the kind tag decides which fields are in use.
//
// Nodes are immutable once created. Clients may therefore share subtrees
// freely between trees, and between goroutines, without copying or locking.
// Nodes are only created by the construction functions of this package
// (Lit, Var, Sin, Add, …); an Expr zero value is a literal 0.
//
// Nodes never reference their ancestors, so every tree is acyclic.
type Expr struct {
	kind  Kind
	uop   UnaryOp
	bop   BinaryOp
	value float64 // literals
	name  string  // variables
	left  *Expr   // operand of unary nodes, left operand of binary nodes
	right *Expr   // right operand of binary nodes
}

// Kind returns the variant tag of e.
func (e *Expr) Kind() Kind {
	return e.kind
}

// Value returns the value of a literal. For other kinds it returns 0.
func (e *Expr) Value() float64 {
	return e.value
}

// Name returns the name of a variable. For other kinds it returns "".
func (e *Expr) Name() string {
	return e.name
}

// UnaryOp returns the operator tag of a unary node.
// The result is meaningless for other kinds.
func (e *Expr) UnaryOp() UnaryOp {
	return e.uop
}

// BinaryOp returns the operator tag of a binary node.
// The result is meaningless for other kinds.
func (e *Expr) BinaryOp() BinaryOp {
	return e.bop
}

// Operand returns the child of a unary node, nil otherwise.
func (e *Expr) Operand() *Expr {
	if e.kind != Unary {
		return nil
	}
	return e.left
}

// Left returns the left child of a binary node, nil otherwise.
func (e *Expr) Left() *Expr {
	if e.kind != Binary {
		return nil
	}
	return e.left
}

// Right returns the right child of a binary node, nil otherwise.
func (e *Expr) Right() *Expr {
	if e.kind != Binary {
		return nil
	}
	return e.right
}

// Children returns the children of e, left to right. The slice is fresh and
// may be modified by the caller; the children themselves are shared.
func (e *Expr) Children() []*Expr {
	switch e.kind {
	case Unary:
		return []*Expr{e.left}
	case Binary:
		return []*Expr{e.left, e.right}
	}
	return nil
}

// IsLeaf is a predicate: is e a literal or a variable?
func (e *Expr) IsLeaf() bool {
	return e.kind == Literal || e.kind == Variable
}

// String returns the fully parenthesized text form of e. See ToText.
func (e *Expr) String() string {
	return ToText(e)
}
