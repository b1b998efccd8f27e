package ecc

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"ed25519", "Ed25519", "cv25519", "Curve25519", "ed448", "nistp256", "NIST P-256"} {
		if ByName(name) == nil {
			t.Errorf("%q: not found", name)
		}
	}
	if ByName("barney") != nil {
		t.Errorf("unknown curve resolved")
	}
	if got := ByName("Ed25519").Name; got != "ed25519" {
		t.Errorf("alias canonical name: got %q want ed25519", got)
	}
}

func TestNormalizePoint(t *testing.T) {
	c := ByName("ed25519")
	full := make([]byte, c.PointBytes)
	full[0] = 0x40
	got, err := c.NormalizePoint(full)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, full) {
		t.Errorf("full-width point changed: %x", got)
	}

	// A point whose leading zeros were stripped is restored on the left.
	short := []byte{0x01, 0x02}
	got, err = c.NormalizePoint(short)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != c.PointBytes || got[c.PointBytes-1] != 0x02 || got[0] != 0 {
		t.Errorf("bad restored point: %x", got)
	}

	if _, err := c.NormalizePoint(make([]byte, c.PointBytes+1)); err == nil {
		t.Errorf("oversized point accepted")
	}
}

func TestGeneratedPointWidths(t *testing.T) {
	q25519, _, err := GenerateEd25519(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	if len(q25519) != ByName("ed25519").PointBytes {
		t.Errorf("ed25519 point width: got %d want %d", len(q25519), ByName("ed25519").PointBytes)
	}
	q448, _, err := GenerateEd448(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateEd448: %v", err)
	}
	if len(q448) != ByName("ed448").PointBytes {
		t.Errorf("ed448 point width: got %d want %d", len(q448), ByName("ed448").PointBytes)
	}
}
