package euclideanring

import (
	"errors"
	"math"
	"testing"
)

func TestParseOperation(t *testing.T) {
	for _, name := range OperationNames() {
		op, err := ParseOperation(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := op.String(); got != name {
			t.Errorf("operation name unmatch, got=%s, want=%s", got, name)
		}
	}

	if _, err := ParseOperation("modulo"); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("unexpected error for unknown operation, got=%v, want=%v", err, ErrUnknownOperation)
	}
	if got, want := Operation(42).String(), "Operation(42)"; got != want {
		t.Errorf("unexpected String, got=%s, want=%s", got, want)
	}
}

func TestApply(t *testing.T) {
	testCases := []struct {
		op   Operation
		x, y int32
		want int32
	}{
		{op: OpDegree, x: math.MinInt32, want: math.MaxInt32},
		{op: OpDegree, x: -3, y: 0, want: 3},
		{op: OpDiv, x: -7, y: 2, want: -4},
		{op: OpQuot, x: -7, y: 2, want: -3},
		{op: OpMod, x: -7, y: 2, want: 1},
		{op: OpRem, x: -7, y: 2, want: -1},
		{op: OpFloorMod, x: 7, y: -2, want: -1},
	}
	for _, tc := range testCases {
		got, err := Apply(tc.op, tc.x, tc.y)
		if err != nil {
			t.Errorf("unexpected error for %s x=%d, y=%d: %v", tc.op, tc.x, tc.y, err)
			continue
		}
		if got != tc.want {
			t.Errorf("unexpected %s x=%d, y=%d, got=%d, want=%d", tc.op, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestApplyDivisionByZero(t *testing.T) {
	for _, op := range []Operation{OpDiv, OpQuot, OpMod, OpRem, OpFloorMod} {
		if _, err := Apply(op, 1, 0); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("unexpected error for %s, got=%v, want=%v", op, err, ErrDivisionByZero)
		}
	}
}

func TestApplyUnknownOperation(t *testing.T) {
	for _, op := range []Operation{Operation(0), OpFloorMod + 1, Operation(-1)} {
		for _, y := range []int32{0, 1} {
			_, err := Apply(op, 1, y)
			if !errors.Is(err, ErrUnknownOperation) {
				t.Errorf("unexpected error for %s y=%d, got=%v, want=%v", op, y, err, ErrUnknownOperation)
			}
			if errors.Is(err, ErrDivisionByZero) {
				t.Errorf("unknown operation %s y=%d reported as division by zero: %v", op, y, err)
			}
		}
		if got := op.Arity(); got != 0 {
			t.Errorf("unexpected Arity for %s, got=%d, want=0", op, got)
		}
	}
}

func TestApplyReal(t *testing.T) {
	if got := ApplyReal(1, 0); !math.IsInf(got, 1) {
		t.Errorf("unexpected ApplyReal(1, 0), got=%v, want=+Inf", got)
	}
	if got := ApplyReal(-1, 0); !math.IsInf(got, -1) {
		t.Errorf("unexpected ApplyReal(-1, 0), got=%v, want=-Inf", got)
	}
	if got := ApplyReal(0, 0); !math.IsNaN(got) {
		t.Errorf("unexpected ApplyReal(0, 0), got=%v, want=NaN", got)
	}
	if got := ApplyReal(1, 4); got != 0.25 {
		t.Errorf("unexpected ApplyReal(1, 4), got=%v, want=0.25", got)
	}
}
