// Package decimal provides an exact base 10 number.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ scale
//
// Where value is an unscaled integer and scale is a base 10 exponent. For
// example:
//
//  1.23 = 123 * 10^-2
//
// Every binary fixed point number has an exact decimal form because
// 2^-f = 5^f * 10^-f:
//
//  3.5 = 7 * 2^-1 = 35 * 10^-1
//
// Encoding
//
// A decimal is written as two integer blocks, first the value and then the
// scale:
//
//  | Field | Sign  | Magnitude     |
//  |-------|-------|---------------|
//  | Value | 0x80  | 0xa3          | +35
//  | Scale | 0x81  | 0x81          | -1
//  |-------|-------|---------------|
//
// Scale is limited to the int32 range.
package decimal
