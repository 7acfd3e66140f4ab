package simon

import "math/bits"

// z128Words2 is the z-constant for SIMON-128 with a 2-word (128-bit) key.
const z128Words2 = 0x7369f885192c0ef5

// z128Words3 is the z-constant for SIMON-128 with a 3-word (192-bit) key.
const z128Words3 = 0xfc2ce51207a635db

// z128Words4 is the z-constant for SIMON-128 with a 4-word (256-bit) key.
const z128Words4 = 0xfdc94c3a046d678b

const c64 = 0xfffffffffffffffc

// ExpandKey128_68R2K derives the 68-round key schedule for SIMON-128/128 from
// a 2-word (128-bit) user key. The z sequence has only 62 usable bits, so the
// last two rounds (indices 66, 67) use the published residual bit pattern
// instead of the plain z-driven recurrence.
func ExpandKey128_68R2K(k [2]uint64) [68]uint64 {
	var key [68]uint64
	key[0], key[1] = k[1], k[0]

	z := uint64(z128Words2)
	for i := 2; i < 66; i++ {
		tmp := bits.RotateLeft64(key[i-1], -3) ^ bits.RotateLeft64(key[i-1], -4)
		key[i] = c64 ^ (z & 1) ^ key[i-2] ^ tmp
		z >>= 1
	}

	key[66] = c64 ^ 1 ^ key[64] ^ bits.RotateLeft64(key[65], -3) ^ bits.RotateLeft64(key[65], -4)
	key[67] = c64 ^ 0 ^ key[65] ^ bits.RotateLeft64(key[66], -3) ^ bits.RotateLeft64(key[66], -4)
	return key
}

// ExpandKey128_69R3K derives the 69-round key schedule for SIMON-128/192 from
// a 3-word (192-bit) user key. Tail indices 67, 68 use the published residual
// bit pattern.
func ExpandKey128_69R3K(k [3]uint64) [69]uint64 {
	var key [69]uint64
	key[0], key[1], key[2] = k[2], k[1], k[0]

	z := uint64(z128Words3)
	for i := 3; i < 67; i++ {
		tmp := bits.RotateLeft64(key[i-1], -3) ^ bits.RotateLeft64(key[i-1], -4)
		key[i] = c64 ^ (z & 1) ^ key[i-3] ^ tmp
		z >>= 1
	}

	key[67] = c64 ^ 0 ^ key[64] ^ bits.RotateLeft64(key[66], -3) ^ bits.RotateLeft64(key[66], -4)
	key[68] = c64 ^ 1 ^ key[65] ^ bits.RotateLeft64(key[67], -3) ^ bits.RotateLeft64(key[67], -4)
	return key
}

// ExpandKey128_72R4K derives the 72-round key schedule for SIMON-128/256 from
// a 4-word (256-bit) user key. Tail indices 68-71 use the published residual
// bit pattern.
func ExpandKey128_72R4K(k [4]uint64) [72]uint64 {
	var key [72]uint64
	key[0], key[1], key[2], key[3] = k[3], k[2], k[1], k[0]

	z := uint64(z128Words4)
	for i := 4; i < 68; i++ {
		tmp := bits.RotateLeft64(key[i-1], -3) ^ key[i-3] ^
			bits.RotateLeft64(key[i-1], -4) ^ bits.RotateLeft64(key[i-3], -1)
		key[i] = c64 ^ (z & 1) ^ key[i-4] ^ tmp
		z >>= 1
	}

	key[68] = c64 ^ 0 ^ key[64] ^ bits.RotateLeft64(key[67], -3) ^ key[65] ^
		bits.RotateLeft64(key[67], -4) ^ bits.RotateLeft64(key[65], -1)
	key[69] = c64 ^ 1 ^ key[65] ^ bits.RotateLeft64(key[68], -3) ^ key[66] ^
		bits.RotateLeft64(key[68], -4) ^ bits.RotateLeft64(key[66], -1)
	key[70] = c64 ^ 0 ^ key[66] ^ bits.RotateLeft64(key[69], -3) ^ key[67] ^
		bits.RotateLeft64(key[69], -4) ^ bits.RotateLeft64(key[67], -1)
	key[71] = c64 ^ 0 ^ key[67] ^ bits.RotateLeft64(key[70], -3) ^ key[68] ^
		bits.RotateLeft64(key[70], -4) ^ bits.RotateLeft64(key[68], -1)
	return key
}
