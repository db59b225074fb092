// Package number provides an arbitrary precision binary fixed point number.
//
// The equation for a number is:
//
//  number = value / 2 ^ F
//
// Where value is an unbounded signed integer and F is the number of fraction
// bits selected by the Precision type parameter. For example, with 32
// fraction bits:
//
//  3.5 = 15032385536 / 2^32
//
// Arithmetic is exact integer arithmetic on value and is therefore bit for bit
// reproducible on every machine. Results that need more fraction bits than F
// are rounded toward negative infinity (Mul, Rsh) or toward zero (Quo).
//
// Operands of a binary operation share the same F. Mixing precisions requires
// MulPrecision or Convert.
//
// Encoding
//
// A number serializes as the pair (negative, magnitude) where magnitude is the
// absolute value of the underlying integer in big-endian bytes, see
// integer.Block. The pair is not self-terminating; Encode frames it with
// control blocks.
package number
