package ecc

import (
	"io"

	ed448lib "github.com/cloudflare/circl/sign/ed448"
)

// An encoded ed448 point is the 57 byte compressed value with a one byte
// 0x40 compression prefix.
const ed448PointBytes = ed448lib.PublicKeySize + 1

// GenerateEd448 returns a fresh key pair with the public point in its
// prefixed encoded form, as it would appear as the q parameter of a key
// expression.
func GenerateEd448(rand io.Reader) (point, priv []byte, err error) {
	pk, sk, err := ed448lib.GenerateKey(rand)
	if err != nil {
		return nil, nil, err
	}
	return append([]byte{0x40}, pk...), sk.Seed(), nil
}
