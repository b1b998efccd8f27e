package ecc

import (
	"io"

	ed25519lib "golang.org/x/crypto/ed25519"
)

// An encoded ed25519 or cv25519 point is the 32 byte compressed value with
// a one byte 0x40 compression prefix.
const ed25519PointBytes = ed25519lib.PublicKeySize + 1

// GenerateEd25519 returns a fresh key pair with the public point in its
// prefixed encoded form, as it would appear as the q parameter of a key
// expression.
func GenerateEd25519(rand io.Reader) (point, priv []byte, err error) {
	pk, sk, err := ed25519lib.GenerateKey(rand)
	if err != nil {
		return nil, nil, err
	}
	return append([]byte{0x40}, pk...), sk.Seed(), nil
}
