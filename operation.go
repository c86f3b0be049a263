package euclideanring

import (
	"errors"
	"fmt"
)

// Operation is an integer operation which can be selected by name
// from the CLI or the HTTP server.
type Operation int

// Operation constants
const (
	OpDegree Operation = iota + 1
	OpDiv
	OpQuot
	OpMod
	OpRem
	OpFloorMod
)

var ErrUnknownOperation = errors.New("unknown operation")
var ErrDivisionByZero = errors.New("division by zero")

var operationNames = map[Operation]string{
	OpDegree:   "degree",
	OpDiv:      "div",
	OpQuot:     "quot",
	OpMod:      "mod",
	OpRem:      "rem",
	OpFloorMod: "floor_mod",
}

// OperationNames returns the names of all operations in constant order.
func OperationNames() []string {
	names := make([]string, 0, len(operationNames))
	for op := OpDegree; op <= OpFloorMod; op++ {
		names = append(names, operationNames[op])
	}
	return names
}

func (op Operation) String() string {
	if s, ok := operationNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// ParseOperation returns the operation for the snake case name s.
func ParseOperation(s string) (Operation, error) {
	for op, name := range operationNames {
		if name == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Arity returns the number of operands op takes, or 0 if op is not
// a valid operation.
func (op Operation) Arity() int {
	switch {
	case op == OpDegree:
		return 1
	case op > OpDegree && op <= OpFloorMod:
		return 2
	default:
		return 0
	}
}

// Apply returns the result of op on x and y.
// y is ignored for unary operations.
//
// Unlike the functions it dispatches to, Apply rejects a zero divisor
// with ErrDivisionByZero.
func Apply(op Operation, x, y int32) (int32, error) {
	switch op.Arity() {
	case 0:
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	case 2:
		if y == 0 {
			return 0, fmt.Errorf("%s %d by 0: %w", op, x, ErrDivisionByZero)
		}
	}
	switch op {
	case OpDegree:
		return Degree(x), nil
	case OpDiv:
		return Div(x, y), nil
	case OpQuot:
		return Quot(x, y), nil
	case OpMod:
		return Mod(x, y), nil
	case OpRem:
		return Rem(x, y), nil
	case OpFloorMod:
		return int32(FloorMod(int64(x), int64(y))), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
}

// ApplyReal returns a/b following IEEE 754. It never fails, so a zero b
// yields +Inf, -Inf or NaN.
func ApplyReal(a, b float64) float64 {
	return NumDiv(a, b)
}
