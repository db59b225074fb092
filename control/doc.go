// Package control provides length framing for variable sized byte fields.
//
// Serialized numbers are a sign and a big-endian magnitude of arbitrary
// length. The magnitude is not self-terminating, so each field is prefixed
// with a control block that tells the reader how many bytes follow. The
// control block uses a prefix coding scheme and packs small payloads directly
// into its own spare bits.
//
// Control Block
//
// Fixed bits are filled in, blanks are available for data or size.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                      |
//  |---------------|---------------||----------------|--------------------------------------|
//  | 1 |                           || Data           | 7 bits inline                        |
//  | 0 . 1 |                       || Data Size      | 6 bit size; up to 64 bytes follow    |
//  | 0 . 0 . 1 |                   || Data + 1       | 5 bits inline + 1 byte               |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 4 bits inline + 2 bytes              |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 3 bit size of size; up to 8 size bytes |
//  |---------------|---------------||----------------|--------------------------------------|
//
// All sizes are indexed starting at 1. A field is never empty: a zero
// magnitude is written as a single zero byte.
//
// Examples
//
// A sign field (false) followed by the magnitude of 3.5 at 32 fraction bits
// (0x03_80_00_00_00, five bytes):
//
//  1000_0000                                      Data: 0
//  0100_0100 0000_0011 1000_0000 0000_0000 ...    Data Size: 5 bytes
//
package control
