package simon

import (
	"encoding/binary"

	"github.com/codahale/simon/internal/simon"
)

// BlockSize64 is the SIMON-64 block size in bytes.
const BlockSize64 = 8

// Cipher64 is a configured SIMON-64 cipher instance. Once built by
// NewCipher64, it is immutable and safe for concurrent use by multiple
// goroutines calling Encrypt or Decrypt on disjoint buffers.
type Cipher64 struct {
	rk [44]uint32
	n  int // number of valid entries in rk: 42 or 44
}

// NewCipher64 builds a SIMON-64 cipher from a 12-byte (96-bit) or 16-byte
// (128-bit) key.
func NewCipher64(key []byte) (*Cipher64, error) {
	c := new(Cipher64)
	switch len(key) {
	case 12:
		k := [3]uint32{
			binary.BigEndian.Uint32(key[0:4]),
			binary.BigEndian.Uint32(key[4:8]),
			binary.BigEndian.Uint32(key[8:12]),
		}
		rk := simon.ExpandKey64_42R3K(k)
		copy(c.rk[:], rk[:])
		c.n = len(rk)
	case 16:
		k := [4]uint32{
			binary.BigEndian.Uint32(key[0:4]),
			binary.BigEndian.Uint32(key[4:8]),
			binary.BigEndian.Uint32(key[8:12]),
			binary.BigEndian.Uint32(key[12:16]),
		}
		rk := simon.ExpandKey64_44R4K(k)
		copy(c.rk[:], rk[:])
		c.n = len(rk)
	default:
		return nil, KeySizeError{Variant: "SIMON-64", Got: len(key), Want: []int{12, 16}}
	}
	return c, nil
}

// BlockSize returns the SIMON-64 block size in bytes (8).
func (c *Cipher64) BlockSize() int {
	return BlockSize64
}

// Encrypt encrypts the first block in src into dst. Src and dst may overlap
// entirely or not at all. The byte-order scratch words live on the stack for
// the duration of the call, not on c, so concurrent calls on disjoint
// buffers never race with each other.
func (c *Cipher64) Encrypt(dst, src []byte) {
	if len(src) < BlockSize64 {
		panic("simon: input not full block")
	}
	if len(dst) < BlockSize64 {
		panic("simon: output not full block")
	}

	x := binary.BigEndian.Uint32(src[0:4])
	y := binary.BigEndian.Uint32(src[4:8])
	x, y = simon.Encrypt32(x, y, c.rk[:c.n])
	binary.BigEndian.PutUint32(dst[0:4], x)
	binary.BigEndian.PutUint32(dst[4:8], y)
}

// Decrypt decrypts the first block in src into dst. Src and dst may overlap
// entirely or not at all. See Encrypt for the scratch-ownership note.
func (c *Cipher64) Decrypt(dst, src []byte) {
	if len(src) < BlockSize64 {
		panic("simon: input not full block")
	}
	if len(dst) < BlockSize64 {
		panic("simon: output not full block")
	}

	x := binary.BigEndian.Uint32(src[0:4])
	y := binary.BigEndian.Uint32(src[4:8])
	x, y = simon.Decrypt32(x, y, c.rk[:c.n])
	binary.BigEndian.PutUint32(dst[0:4], x)
	binary.BigEndian.PutUint32(dst[4:8], y)
}

// Zero wipes the round-key schedule. The cipher must not be used after
// calling Zero.
func (c *Cipher64) Zero() {
	clear(c.rk[:])
	c.n = 0
}
