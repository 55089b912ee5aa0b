package symex

import (
	"errors"
	"fmt"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Errors signalled by Evaluate and Differentiate. Clients should test for
// them with errors.Is, as they are wrapped by more specific error types.
var (
	ErrUnboundVariable       = errors.New("cannot evaluate unbound variable")
	ErrDerivativeUnsupported = errors.New("no derivative rule for operator")
)

// UnboundVariableError is returned when evaluation reaches a variable.
type UnboundVariableError struct {
	Name string // name of the offending variable
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("%s '%s'", ErrUnboundVariable.Error(), e.Name)
}

// Unwrap makes errors.Is(err, ErrUnboundVariable) succeed.
func (e *UnboundVariableError) Unwrap() error {
	return ErrUnboundVariable
}

// UnsupportedDerivativeError is returned when differentiation reaches a binary
// node and binary rules are switched off (see WithoutBinaryRules).
type UnsupportedDerivativeError struct {
	Op BinaryOp // operator of the offending node
}

func (e *UnsupportedDerivativeError) Error() string {
	return fmt.Sprintf("%s '%s'", ErrDerivativeUnsupported.Error(), e.Op.Symbol())
}

// Unwrap makes errors.Is(err, ErrDerivativeUnsupported) succeed.
func (e *UnsupportedDerivativeError) Unwrap() error {
	return ErrDerivativeUnsupported
}
