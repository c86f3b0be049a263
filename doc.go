// Package euclideanring implements the integer and real operations
// behind a Euclidean ring: degree, Euclidean division and modulo,
// truncating quotient and remainder, and real division.
//
// Integers are int32 and reals are float64. None of the functions panic;
// the result of an integer operation with a zero divisor is unspecified.
//
// The cmd/ringops subpackage provides a CLI over this package.
package euclideanring
