package simon

import (
	"encoding/binary"

	"github.com/codahale/simon/internal/simon"
)

// BlockSize128 is the SIMON-128 block size in bytes.
const BlockSize128 = 16

// Cipher128 is a configured SIMON-128 cipher instance. Once built by
// NewCipher128, it is immutable and safe for concurrent use by multiple
// goroutines calling Encrypt or Decrypt on disjoint buffers.
type Cipher128 struct {
	rk [72]uint64
	n  int // number of valid entries in rk: 68, 69, or 72
}

// NewCipher128 builds a SIMON-128 cipher from a 16-byte (128-bit), 24-byte
// (192-bit), or 32-byte (256-bit) key.
func NewCipher128(key []byte) (*Cipher128, error) {
	c := new(Cipher128)
	switch len(key) {
	case 16:
		k := [2]uint64{
			binary.BigEndian.Uint64(key[0:8]),
			binary.BigEndian.Uint64(key[8:16]),
		}
		rk := simon.ExpandKey128_68R2K(k)
		copy(c.rk[:], rk[:])
		c.n = len(rk)
	case 24:
		k := [3]uint64{
			binary.BigEndian.Uint64(key[0:8]),
			binary.BigEndian.Uint64(key[8:16]),
			binary.BigEndian.Uint64(key[16:24]),
		}
		rk := simon.ExpandKey128_69R3K(k)
		copy(c.rk[:], rk[:])
		c.n = len(rk)
	case 32:
		k := [4]uint64{
			binary.BigEndian.Uint64(key[0:8]),
			binary.BigEndian.Uint64(key[8:16]),
			binary.BigEndian.Uint64(key[16:24]),
			binary.BigEndian.Uint64(key[24:32]),
		}
		rk := simon.ExpandKey128_72R4K(k)
		copy(c.rk[:], rk[:])
		c.n = len(rk)
	default:
		return nil, KeySizeError{Variant: "SIMON-128", Got: len(key), Want: []int{16, 24, 32}}
	}
	return c, nil
}

// BlockSize returns the SIMON-128 block size in bytes (16).
func (c *Cipher128) BlockSize() int {
	return BlockSize128
}

// Encrypt encrypts the first block in src into dst. Src and dst may overlap
// entirely or not at all. The byte-order scratch words live on the stack for
// the duration of the call, not on c, so concurrent calls on disjoint
// buffers never race with each other.
func (c *Cipher128) Encrypt(dst, src []byte) {
	if len(src) < BlockSize128 {
		panic("simon: input not full block")
	}
	if len(dst) < BlockSize128 {
		panic("simon: output not full block")
	}

	x := binary.BigEndian.Uint64(src[0:8])
	y := binary.BigEndian.Uint64(src[8:16])
	x, y = simon.Encrypt64(x, y, c.rk[:c.n])
	binary.BigEndian.PutUint64(dst[0:8], x)
	binary.BigEndian.PutUint64(dst[8:16], y)
}

// Decrypt decrypts the first block in src into dst. Src and dst may overlap
// entirely or not at all. See Encrypt for the scratch-ownership note.
func (c *Cipher128) Decrypt(dst, src []byte) {
	if len(src) < BlockSize128 {
		panic("simon: input not full block")
	}
	if len(dst) < BlockSize128 {
		panic("simon: output not full block")
	}

	x := binary.BigEndian.Uint64(src[0:8])
	y := binary.BigEndian.Uint64(src[8:16])
	x, y = simon.Decrypt64(x, y, c.rk[:c.n])
	binary.BigEndian.PutUint64(dst[0:8], x)
	binary.BigEndian.PutUint64(dst[8:16], y)
}

// Zero wipes the round-key schedule. The cipher must not be used after
// calling Zero.
func (c *Cipher128) Zero() {
	clear(c.rk[:])
	c.n = 0
}
