package euclideanring

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/sync/errgroup"
)

var ErrIdentityViolated = errors.New("identity violated")

var ErrFromIsAfterUntil = errors.New("from must not be after until")
var errYMaxNotPositive = errors.New("y-max must be positive")
var errWorkersNotPositive = errors.New("workers must be positive")

// CheckRange is the set of operands Check verifies identities over.
// x runs over [From, Until] and y over the non-zero values of [-YMax, YMax].
type CheckRange struct {
	From    int32
	Until   int32
	YMax    int32
	Workers int
}

// Violation is an operand pair for which an identity does not hold.
type Violation struct {
	X, Y     int32
	Identity string
}

func (v Violation) String() string {
	return fmt.Sprintf("x=%d y=%d div=%d mod=%d quot=%d rem=%d: %s",
		v.X, v.Y, Div(v.X, v.Y), Mod(v.X, v.Y), Quot(v.X, v.Y), Rem(v.X, v.Y), v.Identity)
}

func (r CheckRange) validate() error {
	if r.From > r.Until {
		return ErrFromIsAfterUntil
	}
	if r.YMax <= 0 {
		return errYMaxNotPositive
	}
	if r.Workers <= 0 {
		return errWorkersNotPositive
	}
	return nil
}

// Check verifies the division identities for every operand pair in r
// and writes each violation found to w.
// It returns ErrIdentityViolated if any violation was found.
func Check(r CheckRange, w io.Writer) error {
	if err := r.validate(); err != nil {
		return err
	}

	chunks := splitRange(int64(r.From), int64(r.Until), r.Workers)
	results := make([][]Violation, len(chunks))
	var eg errgroup.Group
	for i, c := range chunks {
		i, c := i, c
		eg.Go(func() error {
			for x := c[0]; x <= c[1]; x++ {
				for y := -int64(r.YMax); y <= int64(r.YMax); y++ {
					if y == 0 {
						continue
					}
					if v, ok := checkPairFunc(int32(x), int32(y)); !ok {
						results[i] = append(results[i], v)
					}
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	found := 0
	for _, vs := range results {
		for _, v := range vs {
			if _, err := fmt.Fprintln(bw, v); err != nil {
				return err
			}
			found++
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if found > 0 {
		return fmt.Errorf("%d pairs: %w", found, ErrIdentityViolated)
	}
	return nil
}

// splitRange splits [from, until] into at most n contiguous chunks.
func splitRange(from, until int64, n int) [][2]int64 {
	total := until - from + 1
	if int64(n) > total {
		n = int(total)
	}
	size := total / int64(n)
	extra := total % int64(n)
	chunks := make([][2]int64, 0, n)
	start := from
	for i := 0; i < n; i++ {
		end := start + size - 1
		if int64(i) < extra {
			end++
		}
		chunks = append(chunks, [2]int64{start, end})
		start = end + 1
	}
	return chunks
}

// checkPairFunc is the per-pair verifier used by Check.
// It is replaced in tests.
var checkPairFunc = checkPair

// checkPair returns false and the first broken identity if x and y
// do not satisfy all of them. Pairs whose quotient overflows int32
// always pass.
func checkPair(x, y int32) (Violation, bool) {
	if x == math.MinInt32 && y == -1 {
		return Violation{}, true
	}
	x64, y64 := int64(x), int64(y)
	d, m := int64(Div(x, y)), int64(Mod(x, y))
	q, r := int64(Quot(x, y)), int64(Rem(x, y))

	absY := y64
	if absY < 0 {
		absY = -absY
	}
	var wantDiff int64
	if x < 0 && r != 0 {
		if y > 0 {
			wantDiff = -1
		} else {
			wantDiff = 1
		}
	}

	switch {
	case d*y64+m != x64:
		return Violation{X: x, Y: y, Identity: "div*y+mod != x"}, false
	case m < 0 || m >= absY:
		return Violation{X: x, Y: y, Identity: "mod not in [0, |y|)"}, false
	case q*y64+r != x64:
		return Violation{X: x, Y: y, Identity: "quot*y+rem != x"}, false
	case r != 0 && (r < 0) != (x < 0):
		return Violation{X: x, Y: y, Identity: "rem sign differs from x"}, false
	case d-q != wantDiff:
		return Violation{X: x, Y: y, Identity: fmt.Sprintf("div-quot != %d", wantDiff)}, false
	}
	return Violation{}, true
}
