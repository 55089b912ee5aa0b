package codec

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/symex"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is matched by all errors reporting a document which does not
// describe an expression tree.
var ErrMalformed = errors.New("malformed expression document")

// Doc is the document form of a tree node. Exactly one of Lit, Var and Op is
// set. Unary operations carry Arg, binary operations Left and Right.
type Doc struct {
	Lit   *Number `json:"lit,omitempty" yaml:"lit,omitempty"`
	Var   *string `json:"var,omitempty" yaml:"var,omitempty"`
	Op    string  `json:"op,omitempty" yaml:"op,omitempty"`
	Arg   *Doc    `json:"arg,omitempty" yaml:"arg,omitempty"`
	Left  *Doc    `json:"left,omitempty" yaml:"left,omitempty"`
	Right *Doc    `json:"right,omitempty" yaml:"right,omitempty"`
}

// Number is a literal value. JSON has no notation for NaN and infinities, so
// Number writes these as strings "nan", "inf" and "-inf". YAML handles them
// natively.
type Number float64

// MarshalJSON is part of interface json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(symex.FormatFloat(f))
	}
	return json.Marshal(f)
}

// UnmarshalJSON is part of interface json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: literal %s is not a number", ErrMalformed, string(b))
	}
	switch strings.ToLower(s) {
	case "nan":
		*n = Number(math.NaN())
	case "inf", "+inf":
		*n = Number(math.Inf(1))
	case "-inf":
		*n = Number(math.Inf(-1))
	default:
		return fmt.Errorf("%w: literal %q is not a number", ErrMalformed, s)
	}
	return nil
}

// --- Operator names --------------------------------------------------------

var unaryOps = map[string]symex.UnaryOp{}
var binaryOps = map[string]symex.BinaryOp{}

func init() {
	for _, op := range []symex.UnaryOp{symex.OpNeg, symex.OpExp, symex.OpLog, symex.OpSin, symex.OpCos} {
		unaryOps[opName(op)] = op
	}
	for _, op := range []symex.BinaryOp{symex.OpAdd, symex.OpSub, symex.OpMul, symex.OpDiv} {
		binaryOps[opName(op)] = op
	}
}

func opName(op fmt.Stringer) string {
	return strings.ToLower(op.String())
}

// UnaryOpNamed finds a unary operator by its document name, e.g. "sin".
func UnaryOpNamed(name string) (symex.UnaryOp, bool) {
	op, ok := unaryOps[strings.ToLower(name)]
	return op, ok
}

// BinaryOpNamed finds a binary operator by its document name, e.g. "div".
func BinaryOpNamed(name string) (symex.BinaryOp, bool) {
	op, ok := binaryOps[strings.ToLower(name)]
	return op, ok
}

// --- Encoding and decoding -------------------------------------------------

// Encode returns the document form of e.
func Encode(e *symex.Expr) Doc {
	switch e.Kind() {
	case symex.Literal:
		n := Number(e.Value())
		return Doc{Lit: &n}
	case symex.Variable:
		name := e.Name()
		return Doc{Var: &name}
	case symex.Unary:
		arg := Encode(e.Operand())
		return Doc{Op: opName(e.UnaryOp()), Arg: &arg}
	}
	l, r := Encode(e.Left()), Encode(e.Right())
	return Doc{Op: opName(e.BinaryOp()), Left: &l, Right: &r}
}

// Decode builds a tree from a document. Errors match ErrMalformed and name the
// path of the offending node, e.g. "root.left.arg".
func Decode(doc Doc) (*symex.Expr, error) {
	e, err := decode(&doc, "root")
	if err != nil {
		tracer().Debugf("decode: %v", err)
	}
	return e, err
}

func (doc *Doc) isEmpty() bool {
	return doc.Lit == nil && doc.Var == nil && doc.Op == ""
}

func malformed(path string, format string, args ...interface{}) error {
	return fmt.Errorf("%w at %s: %s", ErrMalformed, path, fmt.Sprintf(format, args...))
}

func decode(doc *Doc, path string) (*symex.Expr, error) {
	if doc == nil {
		return nil, malformed(path, "node missing")
	}
	set := 0
	for _, b := range []bool{doc.Lit != nil, doc.Var != nil, doc.Op != ""} {
		if b {
			set++
		}
	}
	if set != 1 {
		return nil, malformed(path, "node must have exactly one of lit, var, op")
	}
	switch {
	case doc.Lit != nil, doc.Var != nil:
		if doc.Arg != nil || doc.Left != nil || doc.Right != nil {
			return nil, malformed(path, "leaf node must not have operands")
		}
		if doc.Lit != nil {
			return symex.Lit(float64(*doc.Lit)), nil
		}
		return symex.Var(*doc.Var), nil
	}
	op := strings.ToLower(doc.Op)
	if uop, ok := UnaryOpNamed(op); ok {
		if doc.Left != nil || doc.Right != nil {
			return nil, malformed(path, "unary operation %q takes arg, not left/right", op)
		}
		arg, err := decode(doc.Arg, path+".arg")
		if err != nil {
			return nil, err
		}
		return symex.Apply1(uop, arg), nil
	}
	if bop, ok := BinaryOpNamed(op); ok {
		if doc.Arg != nil {
			return nil, malformed(path, "binary operation %q takes left/right, not arg", op)
		}
		l, err := decode(doc.Left, path+".left")
		if err != nil {
			return nil, err
		}
		r, err := decode(doc.Right, path+".right")
		if err != nil {
			return nil, err
		}
		return symex.Apply2(bop, l, r), nil
	}
	return nil, malformed(path, "unknown operator %q", doc.Op)
}

// --- JSON and YAML ---------------------------------------------------------

// MarshalJSON writes e as an indented JSON document.
func MarshalJSON(e *symex.Expr) ([]byte, error) {
	return json.MarshalIndent(Encode(e), "", "  ")
}

// UnmarshalJSON reads a tree from a JSON document.
func UnmarshalJSON(data []byte) (*symex.Expr, error) {
	var doc Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, wrapSyntax(err)
	}
	return Decode(doc)
}

// MarshalYAML writes e as a YAML document.
func MarshalYAML(e *symex.Expr) ([]byte, error) {
	return yaml.Marshal(Encode(e))
}

// UnmarshalYAML reads a tree from a YAML document.
func UnmarshalYAML(data []byte) (*symex.Expr, error) {
	var doc Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, wrapSyntax(err)
	}
	return Decode(doc)
}

func wrapSyntax(err error) error {
	if errors.Is(err, ErrMalformed) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}
