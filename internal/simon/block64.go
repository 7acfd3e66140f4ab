package simon

// Encrypt64 applies the SIMON round transform to a two-word block using the
// given round-key schedule. Only SIMON-128/192 (69 rounds) produces an odd
// schedule length, exercising the odd-R tail below.
func Encrypt64(x, y uint64, rk []uint64) (uint64, uint64) {
	r := len(rk)
	for i := 0; i+1 < r; i += 2 {
		x, y = r2_64(x, y, rk[i], rk[i+1])
	}
	if r%2 != 0 {
		y ^= f64(x) ^ rk[r-1]
		x, y = y, x
	}
	return x, y
}

// Decrypt64 inverts Encrypt64 given the same round-key schedule.
func Decrypt64(x, y uint64, rk []uint64) (uint64, uint64) {
	r := len(rk)
	if r%2 != 0 {
		x, y = y, x
		y ^= rk[r-1] ^ f64(x)
		r--
	}
	for i := r - 2; i >= 0; i -= 2 {
		y, x = r2_64(y, x, rk[i+1], rk[i])
	}
	return x, y
}
