// Package ecc holds the curve table used to normalize elliptic-curve points
// before they are hashed into a keygrip.
package ecc

import (
	"github.com/ProtonMail/go-csexp/csexp/errors"
)

// A CurveInfo describes one named curve: the canonical name keys written by
// the back end use for it, accepted aliases, and the fixed width of an
// encoded public point.
type CurveInfo struct {
	// Name is the canonical curve name; aliases resolve to it and the
	// keygrip covers it, so two spellings of the same curve grip alike.
	Name string

	// PointBytes is the width of a fully encoded public point, including
	// any compression prefix the encoding carries.
	PointBytes int

	aliases []string
}

var curves = []*CurveInfo{
	{Name: "ed25519", PointBytes: ed25519PointBytes, aliases: []string{"Ed25519"}},
	{Name: "ed448", PointBytes: ed448PointBytes, aliases: []string{"Ed448"}},
	{Name: "cv25519", PointBytes: ed25519PointBytes, aliases: []string{"Curve25519", "X25519"}},
	{Name: "nistp256", PointBytes: 65, aliases: []string{"NIST P-256", "secp256r1", "prime256v1"}},
	{Name: "nistp384", PointBytes: 97, aliases: []string{"NIST P-384", "secp384r1"}},
	{Name: "nistp521", PointBytes: 133, aliases: []string{"NIST P-521", "secp521r1"}},
	{Name: "secp256k1", PointBytes: 65},
}

// ByName resolves a curve name or alias. Returns nil if the name is not in
// the table.
func ByName(name string) *CurveInfo {
	for _, c := range curves {
		if c.Name == name {
			return c
		}
		for _, a := range c.aliases {
			if a == name {
				return c
			}
		}
	}
	return nil
}

// NormalizePoint restores a point whose leading zero bytes were stripped by
// an integer-minded encoder back to the curve's fixed width. Points wider
// than the curve allows are rejected.
func (c *CurveInfo) NormalizePoint(q []byte) ([]byte, error) {
	if len(q) > c.PointBytes {
		return nil, errors.InvalidArgumentError("point too large for curve " + c.Name)
	}
	point := make([]byte, c.PointBytes)
	copy(point[c.PointBytes-len(q):], q)
	return point, nil
}
