package simon

import "fmt"

// KeySizeError is returned by NewCipher64 or NewCipher128 when the supplied
// key's length does not match any accepted size for that variant.
type KeySizeError struct {
	Variant string
	Got     int
	Want    []int
}

func (e KeySizeError) Error() string {
	return fmt.Sprintf("simon: invalid key size %d for %s (want one of %v)", e.Got, e.Variant, e.Want)
}
