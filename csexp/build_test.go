package csexp

import (
	"bytes"
	"testing"

	"github.com/ProtonMail/go-csexp/csexp/errors"
	"github.com/ProtonMail/go-csexp/sexp"
)

var makeRSAPublicKeyTests = []struct {
	name string
	m, e []byte
	want string
}{
	{
		name: "plain",
		m:    []byte{0x55, 0xaa},
		e:    []byte{0x03},
		want: "(10:public-key(3:rsa(1:n2:\x55\xaa)(1:e1:\x03)))",
	},
	{
		name: "leading zeros stripped",
		m:    []byte{0x00, 0x00, 0x55, 0xaa},
		e:    []byte{0x00, 0x03},
		want: "(10:public-key(3:rsa(1:n2:\x55\xaa)(1:e1:\x03)))",
	},
	{
		name: "top bit set gets sign pad",
		m:    []byte{0x80, 0x01},
		e:    []byte{0xff},
		want: "(10:public-key(3:rsa(1:n3:\x00\x80\x01)(1:e2:\x00\xff)))",
	},
	{
		name: "empty value never emitted bare",
		m:    nil,
		e:    []byte{},
		want: "(10:public-key(3:rsa(1:n1:\x00)(1:e1:\x00)))",
	},
	{
		name: "all zeros collapses to one zero byte",
		m:    []byte{0x00, 0x00, 0x00},
		e:    []byte{0x00},
		want: "(10:public-key(3:rsa(1:n1:\x00)(1:e1:\x00)))",
	},
}

func TestMakeRSAPublicKey(t *testing.T) {
	for _, test := range makeRSAPublicKeyTests {
		got := MakeRSAPublicKey(test.m, test.e)
		if !bytes.Equal(got, []byte(test.want)) {
			t.Errorf("%s: got %q want %q", test.name, got, test.want)
		}
	}
}

func TestMakeRSAPublicKeySignPadLength(t *testing.T) {
	m := []byte{0x80, 0x01, 0x02, 0x03}
	key := MakeRSAPublicKey(m, []byte{0x03})
	params, err := ParseRSAPublicKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Extraction strips the pad again, so look at the raw field instead.
	idx := bytes.Index(key, []byte("(1:n"))
	if idx < 0 {
		t.Fatalf("no n field in %q", key)
	}
	if got := key[idx+4 : idx+6]; string(got) != "5:" {
		t.Errorf("n field length: got %q want \"5:\"", got)
	}
	if key[idx+6] != 0x00 {
		t.Errorf("pad byte: got %#x want 0", key[idx+6])
	}
	if !bytes.Equal(params.N, m) {
		t.Errorf("round trip: got %x want %x", params.N, m)
	}
}

// A modulus wide enough for a multi-digit length field must still be sized
// exactly: the single upfront allocation is filled completely, never grown.
func TestMakeRSAPublicKeyWideModulus(t *testing.T) {
	m := make([]byte, 16)
	for i := range m {
		m[i] = byte(i + 1)
	}
	key := MakeRSAPublicKey(m, []byte{0x01, 0x00, 0x01})
	want := append([]byte("(10:public-key(3:rsa(1:n16:"), m...)
	want = append(want, []byte(")(1:e3:\x01\x00\x01)))")...)
	if !bytes.Equal(key, want) {
		t.Errorf("got %q want %q", key, want)
	}
	if len(key) != cap(key) {
		t.Errorf("allocation not sized exactly: len %d cap %d", len(key), cap(key))
	}
}

// Canonicalization is idempotent: building from already-canonicalized
// parameters changes nothing.
func TestMakeRSAPublicKeyIdempotent(t *testing.T) {
	inputs := [][]byte{
		{0x00, 0x80, 0x01},
		{0x7f, 0xff},
		{0x01},
	}
	for i, m := range inputs {
		first := MakeRSAPublicKey(m, []byte{0x03})
		params, err := ParseRSAPublicKey(first)
		if err != nil {
			t.Fatalf("#%d: unexpected error: %v", i, err)
		}
		second := MakeRSAPublicKey(params.N, []byte{0x03})
		if !bytes.Equal(first, second) {
			t.Errorf("#%d: rebuild changed encoding: %q vs %q", i, first, second)
		}
	}
}

var hexSexpTests = []struct {
	in   string
	want string
	n    int
}{
	{in: "1af", want: "(2:\x01\xaf)", n: 3},
	{in: "1a:rest", want: "(1:\x1a)", n: 2},
	{in: "deadbeef", want: "(4:\xde\xad\xbe\xef)", n: 8},
	{in: "00112233445566778899aabb", want: "(12:\x00\x11\x22\x33\x44\x55\x66\x77\x88\x99\xaa\xbb)", n: 24},
	{in: "00", want: "(1:\x00)", n: 2},
	{in: "F", want: "(1:\x0f)", n: 1},
	{in: ":x", n: 0},
	{in: "", n: 0},
	{in: "xyz", n: 0},
}

func TestSimpleSexpFromHex(t *testing.T) {
	for i, test := range hexSexpTests {
		got, n := SimpleSexpFromHex(test.in)
		if n != test.n {
			t.Errorf("#%d: scanned %d want %d", i, n, test.n)
		}
		if test.n == 0 {
			if got != nil {
				t.Errorf("#%d: got %q want no result", i, got)
			}
			continue
		}
		if !bytes.Equal(got, []byte(test.want)) {
			t.Errorf("#%d: got %q want %q", i, got, test.want)
		}
	}
}

func TestMakeCanon(t *testing.T) {
	s, err := sexp.Parse([]byte("(3:foo(3:bar1:\x01))"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := MakeCanon(s); !bytes.Equal(got, []byte("(3:foo(3:bar1:\x01))")) {
		t.Errorf("bad canonical form: %q", got)
	}
}

func TestMakeCanonPad(t *testing.T) {
	s, err := sexp.Parse([]byte("(3:foo3:bar)"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	buf, err := MakeCanonPad(s, false)
	if err != nil {
		t.Fatalf("MakeCanonPad: %v", err)
	}
	data := buf.Bytes()
	if len(data)%8 != 0 {
		t.Errorf("padded length %d is not a multiple of 8", len(data))
	}
	if !bytes.HasPrefix(data, []byte("(3:foo3:bar)")) {
		t.Errorf("padding corrupted the encoding: %q", data)
	}
	for _, b := range data[len("(3:foo3:bar)"):] {
		if b != 0 {
			t.Errorf("nonzero pad byte %#x", b)
		}
	}
	// The padded buffer still parses: trailing zeros are not part of the
	// expression and must be stripped by the transport, so parse the
	// unpadded prefix only.
	if _, err := sexp.Parse(data[:len("(3:foo3:bar)")]); err != nil {
		t.Errorf("padded prefix no longer parses: %v", err)
	}
}

func TestMakeCanonPadAlreadyAligned(t *testing.T) {
	// "(4:etc.)" is 8 bytes already.
	s, err := sexp.Parse([]byte("(4:etc.)"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	buf, err := MakeCanonPad(s, false)
	if err != nil {
		t.Fatalf("MakeCanonPad: %v", err)
	}
	if got := buf.Bytes(); !bytes.Equal(got, []byte("(4:etc.)")) {
		t.Errorf("aligned buffer was padded: %q", got)
	}
}

func TestMakeCanonPadSecureWipe(t *testing.T) {
	s, err := sexp.Parse([]byte("(6:secret)"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	buf, err := MakeCanonPad(s, true)
	if err != nil {
		t.Fatalf("MakeCanonPad: %v", err)
	}
	data := buf.Bytes()
	buf.Free()
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d not wiped: %#x", i, b)
		}
	}
	if buf.Bytes() != nil {
		t.Errorf("buffer still accessible after Free")
	}
}

func TestMakeCanonPadNil(t *testing.T) {
	if _, err := MakeCanonPad(nil, false); err != errors.InvalidArgumentError("nil S-expression") {
		t.Errorf("got %v want InvalidArgumentError", err)
	}
}
