// Package simon implements the SIMON family of lightweight block ciphers,
// published by the NSA in 2013 for constrained environments. It provides
// two variants, each satisfying crypto/cipher.Block: SIMON-64 (an 8-byte
// block with a 12- or 16-byte key) via NewCipher64, and SIMON-128 (a
// 16-byte block with a 16-, 24-, or 32-byte key) via NewCipher128.
//
// This package is a bare block transform. Modes of operation (CBC, CTR,
// GCM, ...), padding, and key derivation are the caller's responsibility,
// the same way crypto/aes leaves them to crypto/cipher.
package simon
