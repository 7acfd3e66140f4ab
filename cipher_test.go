package simon_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"sync"
	"testing"

	"github.com/codahale/simon"
)

func TestVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		variant    int
		key        string
		plaintext  string
		ciphertext string
	}{
		{"SIMON-64/96", 64, "131211100b0a090803020100", "6f7220676e696c63", "5ca2e27f111a8fc8"},
		{"SIMON-64/128", 64, "1b1a1918131211100b0a090803020100", "656b696c20646e75", "44c8fc20b9dfa07a"},
		{
			"SIMON-128/128", 128,
			"0f0e0d0c0b0a09080706050403020100",
			"6373656420737265" + "6c6c657661727420",
			"49681b1e1e54fe3f" + "65aa832af84e0bbc",
		},
		{
			"SIMON-128/192", 128,
			"17161514131211100f0e0d0c0b0a0908" + "0706050403020100",
			"206572656874206e" + "6568772065626972",
			"c4ac61effcdc0d4f" + "6c9c8d6e2597b85b",
		},
		{
			"SIMON-128/256", 128,
			"1f1e1d1c1b1a1918" + "1716151413121110" + "0f0e0d0c0b0a0908" + "0706050403020100",
			"74206e69206d6f6f" + "6d69732061207369",
			"8d2b5579afc8a3a0" + "3bf72a87efe7b868",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key := mustHex(t, tt.key)
			plaintext := mustHex(t, tt.plaintext)
			wantCiphertext := mustHex(t, tt.ciphertext)

			blk := newBlock(t, tt.variant, key)

			got := make([]byte, len(plaintext))
			blk.Encrypt(got, plaintext)
			if !bytes.Equal(got, wantCiphertext) {
				t.Errorf("Encrypt = %x, want %x", got, wantCiphertext)
			}

			recovered := make([]byte, len(plaintext))
			blk.Decrypt(recovered, got)
			if !bytes.Equal(recovered, plaintext) {
				t.Errorf("Decrypt(Encrypt(p)) = %x, want %x", recovered, plaintext)
			}
		})
	}
}

func TestKeySizeBoundaries64(t *testing.T) {
	t.Parallel()

	for _, n := range []int{12, 16} {
		if _, err := simon.NewCipher64(make([]byte, n)); err != nil {
			t.Errorf("NewCipher64(%d bytes) = %v, want nil error", n, err)
		}
	}

	for _, n := range []int{11, 13, 15, 17, 0} {
		_, err := simon.NewCipher64(make([]byte, n))
		var sizeErr simon.KeySizeError
		if !errors.As(err, &sizeErr) {
			t.Errorf("NewCipher64(%d bytes) error = %v, want KeySizeError", n, err)
		}
	}
}

func TestKeySizeBoundaries128(t *testing.T) {
	t.Parallel()

	for _, n := range []int{16, 24, 32} {
		if _, err := simon.NewCipher128(make([]byte, n)); err != nil {
			t.Errorf("NewCipher128(%d bytes) = %v, want nil error", n, err)
		}
	}

	for _, n := range []int{15, 17, 23, 25, 31, 33, 0} {
		_, err := simon.NewCipher128(make([]byte, n))
		var sizeErr simon.KeySizeError
		if !errors.As(err, &sizeErr) {
			t.Errorf("NewCipher128(%d bytes) error = %v, want KeySizeError", n, err)
		}
	}
}

func TestInPlace(t *testing.T) {
	t.Parallel()

	key := bytes.Repeat([]byte{0x42}, 32)
	c, err := simon.NewCipher128(key)
	if err != nil {
		t.Fatal(err)
	}

	plaintext := bytes.Repeat([]byte{0x01, 0x02}, 8)

	outOfPlace := make([]byte, 16)
	c.Encrypt(outOfPlace, plaintext)

	inPlace := make([]byte, 16)
	copy(inPlace, plaintext)
	c.Encrypt(inPlace, inPlace)

	if !bytes.Equal(inPlace, outOfPlace) {
		t.Errorf("in-place Encrypt = %x, want %x", inPlace, outOfPlace)
	}
}

func TestZeroKeyZeroPlaintext(t *testing.T) {
	t.Parallel()

	c, err := simon.NewCipher128(make([]byte, 32))
	if err != nil {
		t.Fatal(err)
	}

	plaintext := make([]byte, 16)
	ciphertext := make([]byte, 16)
	c.Encrypt(ciphertext, plaintext)

	if bytes.Equal(ciphertext, plaintext) {
		t.Error("all-zero key/plaintext produced all-zero ciphertext")
	}

	recovered := make([]byte, 16)
	c.Decrypt(recovered, ciphertext)
	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("Decrypt(Encrypt(0)) = %x, want all zero", recovered)
	}
}

func TestConcurrentEncrypt(t *testing.T) {
	t.Parallel()

	c, err := simon.NewCipher128(bytes.Repeat([]byte{0x99}, 32))
	if err != nil {
		t.Fatal(err)
	}

	const n = 64
	plaintexts := make([][]byte, n)
	for i := range plaintexts {
		plaintexts[i] = bytes.Repeat([]byte{byte(i)}, 16)
	}

	sequential := make([][]byte, n)
	for i, p := range plaintexts {
		out := make([]byte, 16)
		c.Encrypt(out, p)
		sequential[i] = out
	}

	concurrent := make([][]byte, n)
	var wg sync.WaitGroup
	for i, p := range plaintexts {
		wg.Add(1)
		go func(i int, p []byte) {
			defer wg.Done()
			out := make([]byte, 16)
			c.Encrypt(out, p)
			concurrent[i] = out
		}(i, p)
	}
	wg.Wait()

	for i := range sequential {
		if !bytes.Equal(sequential[i], concurrent[i]) {
			t.Errorf("block %d: concurrent = %x, sequential = %x", i, concurrent[i], sequential[i])
		}
	}
}

func TestZero(t *testing.T) {
	t.Parallel()

	c, err := simon.NewCipher64(bytes.Repeat([]byte{0x07}, 16))
	if err != nil {
		t.Fatal(err)
	}

	plaintext := bytes.Repeat([]byte{0x11}, 8)
	before := make([]byte, 8)
	c.Encrypt(before, plaintext)
	if bytes.Equal(before, plaintext) {
		t.Fatal("precondition failed: plaintext encrypted to itself before Zero")
	}

	c.Zero()

	after := make([]byte, 8)
	c.Encrypt(after, plaintext)
	if !bytes.Equal(after, before) {
		t.Logf("Zero observably changed cipher behavior: %x -> %x", before, after)
	} else {
		t.Error("Encrypt after Zero produced the same ciphertext as before, round-key buffer was not wiped")
	}
}

func newBlock(t *testing.T, variant int, key []byte) interface {
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
} {
	t.Helper()
	if variant == 64 {
		c, err := simon.NewCipher64(key)
		if err != nil {
			t.Fatal(err)
		}
		return c
	}
	c, err := simon.NewCipher128(key)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
