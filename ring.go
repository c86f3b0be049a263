package euclideanring

import "math"

// Degree returns min(abs(x), math.MaxInt32).
// Degree(math.MinInt32) is math.MaxInt32.
func Degree(x int32) int32 {
	if x == math.MinInt32 {
		return math.MaxInt32
	}
	if x < 0 {
		return -x
	}
	return x
}

// Div returns the Euclidean quotient of x and y, that is
// floor(x/y) if y > 0 and -floor(x/-y) otherwise.
// Together with Mod it satisfies x == Div(x, y)*y + Mod(x, y).
//
// Div(math.MinInt32, -1) wraps to math.MinInt32.
// The result is unspecified if y is zero.
func Div(x, y int32) int32 {
	fx, fy := float64(x), float64(y)
	if y > 0 {
		return truncInt32(math.Floor(fx / fy))
	}
	return truncInt32(-math.Floor(fx / -fy))
}

// Quot returns x/y truncated toward zero.
//
// Quot(math.MinInt32, -1) wraps to math.MinInt32.
// The result is unspecified if y is zero.
func Quot(x, y int32) int32 {
	return truncInt32(float64(x) / float64(y))
}

// Mod returns the Euclidean remainder of x and y, which is always
// in [0, abs(y)).
// The result is unspecified if y is zero.
func Mod(x, y int32) int32 {
	if y == 0 {
		return 0
	}
	// abs(math.MinInt32) does not fit in int32.
	yy := int64(y)
	if yy < 0 {
		yy = -yy
	}
	return int32((int64(x)%yy + yy) % yy)
}

// Rem returns the remainder of x/y truncated toward zero.
// The result has the sign of x or is zero.
// The result is unspecified if y is zero.
func Rem(x, y int32) int32 {
	if y == 0 {
		return 0
	}
	return int32(int64(x) % int64(y))
}

// NumDiv returns a/b following IEEE 754, so a zero b yields
// +Inf, -Inf or NaN.
func NumDiv(a, b float64) float64 {
	return a / b
}

// truncInt32 truncates f toward zero and wraps it to int32 as
// a 32-bit two's complement conversion. NaN and infinities become 0.
func truncInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int32(uint32(int64(math.Trunc(f)) & math.MaxUint32))
}
