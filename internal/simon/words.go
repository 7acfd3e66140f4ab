// Package simon implements the portable core of the SIMON family of
// lightweight block ciphers: the key-schedule expansions and the
// encrypt/decrypt round transforms. Mode-of-operation drivers, padding, and
// SIMD bulk-processing paths live outside this package.
package simon

import "math/bits"

// f32 is the SIMON round helper for 32-bit words: (ROL1(v) & ROL8(v)) ^ ROL2(v).
func f32(v uint32) uint32 {
	return (bits.RotateLeft32(v, 1) & bits.RotateLeft32(v, 8)) ^ bits.RotateLeft32(v, 2)
}

// f64 is the SIMON round helper for 64-bit words.
func f64(v uint64) uint64 {
	return (bits.RotateLeft64(v, 1) & bits.RotateLeft64(v, 8)) ^ bits.RotateLeft64(v, 2)
}

// r2_32 performs one paired Feistel step on 32-bit halves: y ^= f(x) ^ k,
// then x ^= f(y) ^ l. The new y feeds the new x, so the order matters.
func r2_32(x, y, k, l uint32) (uint32, uint32) {
	y ^= f32(x) ^ k
	x ^= f32(y) ^ l
	return x, y
}

// r2_64 performs one paired Feistel step on 64-bit halves.
func r2_64(x, y, k, l uint64) (uint64, uint64) {
	y ^= f64(x) ^ k
	x ^= f64(y) ^ l
	return x, y
}
