package simon

import "crypto/cipher"

var (
	_ cipher.Block = (*Cipher64)(nil)
	_ cipher.Block = (*Cipher128)(nil)
)
