package simon

// Encrypt32 applies the SIMON round transform to a two-word block using the
// given round-key schedule.
func Encrypt32(x, y uint32, rk []uint32) (uint32, uint32) {
	r := len(rk)
	for i := 0; i+1 < r; i += 2 {
		x, y = r2_32(x, y, rk[i], rk[i+1])
	}
	if r%2 != 0 {
		y ^= f32(x) ^ rk[r-1]
		x, y = y, x
	}
	return x, y
}

// Decrypt32 inverts Encrypt32 given the same round-key schedule.
func Decrypt32(x, y uint32, rk []uint32) (uint32, uint32) {
	r := len(rk)
	if r%2 != 0 {
		x, y = y, x
		y ^= rk[r-1] ^ f32(x)
		r--
	}
	for i := r - 2; i >= 0; i -= 2 {
		y, x = r2_32(y, x, rk[i+1], rk[i])
	}
	return x, y
}
