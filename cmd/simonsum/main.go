// Command simonsum encrypts or decrypts a single SIMON block given a hex key
// and hex block on the command line, printing the result in hex.
package main

import (
	"encoding/hex"
	"flag"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/codahale/simon"
)

func main() {
	var (
		variant  = flag.Int("variant", 128, "block size in bits: 64 or 128")
		keyHex   = flag.String("key", "", "hex-encoded key")
		blockHex = flag.String("block", "", "hex-encoded input block")
		decrypt  = flag.Bool("decrypt", false, "decrypt instead of encrypt")
	)
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	key, err := hex.DecodeString(*keyHex)
	if err != nil {
		log.Error("invalid -key", "err", err)
		os.Exit(1)
	}

	block, err := hex.DecodeString(*blockHex)
	if err != nil {
		log.Error("invalid -block", "err", err)
		os.Exit(1)
	}

	out, err := process(*variant, key, block, *decrypt)
	if err != nil {
		log.Error("failed to process block", "err", err)
		os.Exit(1)
	}

	if *decrypt {
		color.New(color.FgGreen).Printf("plaintext:  %s\n", hex.EncodeToString(out))
	} else {
		color.New(color.FgCyan).Printf("ciphertext: %s\n", hex.EncodeToString(out))
	}
}

func process(variant int, key, block []byte, decrypt bool) ([]byte, error) {
	switch variant {
	case 64:
		c, err := simon.NewCipher64(key)
		if err != nil {
			return nil, err
		}
		out := make([]byte, simon.BlockSize64)
		if decrypt {
			c.Decrypt(out, block)
		} else {
			c.Encrypt(out, block)
		}
		c.Zero()
		return out, nil
	default:
		c, err := simon.NewCipher128(key)
		if err != nil {
			return nil, err
		}
		out := make([]byte, simon.BlockSize128)
		if decrypt {
			c.Decrypt(out, block)
		} else {
			c.Encrypt(out, block)
		}
		c.Zero()
		return out, nil
	}
}
