package euclideanring

// FloorMod returns the floored modulo of x and y, whose sign follows y.
// It returns 0 if y is zero.
//
// The three remainder conventions differ only in sign handling:
//
//  x     y    Rem (truncated)   FloorMod (floored)   Mod (Euclidean)
//  5     3         2                  2                   2
// -5     3        -2                  1                   1
//  5    -3         2                 -1                   2
// -5    -3        -2                 -2                   1
func FloorMod(x, y int64) int64 {
	if y == 0 {
		return 0
	}
	m := x % y
	if m == 0 || ((x >= 0 && y > 0) || (x < 0 && y < 0)) {
		return m
	}
	return m + y
}
