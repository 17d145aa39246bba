package atmos

import "fmt"

// DomainError reports a violated physical precondition, such as an inverted
// pressure interval or mismatched sample lengths.
type DomainError struct {
	Op  string // the failing operation
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("atmos: %s: %s", e.Op, e.Msg)
}

// ArithmeticError reports a non-finite intermediate result, such as the
// logarithm of a non-positive argument or division by a vanishing friction
// velocity.
type ArithmeticError struct {
	Op  string // the failing operation
	Msg string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("atmos: %s: %s", e.Op, e.Msg)
}
