package csexp

import (
	"strconv"

	"github.com/ProtonMail/go-csexp/csexp/errors"
	"github.com/ProtonMail/go-csexp/sexp"
)

const (
	rsaPart1 = "(10:public-key(3:rsa(1:n"
	rsaPart2 = ")(1:e"
	rsaPart3 = ")))"
)

// MakeRSAPublicKey builds the canonical public-key expression
// (public-key (rsa (n <m>)(e <e>))) from the raw big-endian modulus and
// exponent. Leading zero bytes are stripped; a single zero byte is then
// prepended to a value that is empty or has its top bit set, so the encoded
// integer cannot be read back as negative or ambiguous. The result is a
// freshly allocated buffer sized exactly once.
func MakeRSAPublicKey(m, e []byte) []byte {
	m = stripLeadingZeros(m)
	e = stripLeadingZeros(e)

	var mExtra, eExtra int
	if len(m) == 0 || m[0]&0x80 != 0 {
		mExtra = 1
	}
	if len(e) == 0 || e[0]&0x80 != 0 {
		eExtra = 1
	}

	mlen := len(m) + mExtra
	elen := len(e) + eExtra
	size := len(rsaPart1) + len(strconv.Itoa(mlen)) + 1 + mlen +
		len(rsaPart2) + len(strconv.Itoa(elen)) + 1 + elen +
		len(rsaPart3)

	buf := make([]byte, 0, size)
	buf = append(buf, rsaPart1...)
	buf = strconv.AppendInt(buf, int64(mlen), 10)
	buf = append(buf, ':')
	if mExtra != 0 {
		buf = append(buf, 0)
	}
	buf = append(buf, m...)
	buf = append(buf, rsaPart2...)
	buf = strconv.AppendInt(buf, int64(elen), 10)
	buf = append(buf, ':')
	if eExtra != 0 {
		buf = append(buf, 0)
	}
	buf = append(buf, e...)
	buf = append(buf, rsaPart3...)
	return buf
}

// SimpleSexpFromHex converts the run of hex digits at the start of line
// into a single-atom expression (<len>:<decoded>). An odd run is treated as
// having an implicit leading zero nibble. The returned count is the number
// of input characters consumed, so the caller can continue scanning its own
// input past the run. A line with no hex digit at the start yields
// (nil, 0); that is "nothing to convert here", not an error.
func SimpleSexpFromHex(line string) ([]byte, int) {
	n := 0
	for n < len(line) && isHexDigit(line[n]) {
		n++
	}
	if n == 0 {
		return nil, 0
	}
	outLen := (n + 1) / 2
	buf := make([]byte, 0, 1+len(strconv.Itoa(outLen))+1+outLen+1)
	buf = append(buf, '(')
	buf = strconv.AppendInt(buf, int64(outLen), 10)
	buf = append(buf, ':')
	i := 0
	if n%2 == 1 {
		buf = append(buf, hexNibble(line[0]))
		i = 1
	}
	for ; i < n; i += 2 {
		buf = append(buf, hexNibble(line[i])<<4|hexNibble(line[i+1]))
	}
	buf = append(buf, ')')
	return buf, n
}

// MakeCanon serializes a provider S-expression object back to its canonical
// encoding as a freshly allocated buffer.
func MakeCanon(s *sexp.Sexp) []byte {
	return s.Canonical()
}

// A PaddedBuffer holds a canonical encoding padded with trailing zero bytes
// to a multiple of 8, for transports that expect block-aligned sizes. A
// buffer built with the secure flag wipes its bytes on Free.
type PaddedBuffer struct {
	data   []byte
	secure bool
}

// Bytes returns the padded encoding. The slice is invalid after Free.
func (b *PaddedBuffer) Bytes() []byte {
	return b.data
}

// Free releases the buffer, zeroing its contents first if it was built
// secure. The buffer must not be used afterwards.
func (b *PaddedBuffer) Free() {
	if b.secure {
		for i := range b.data {
			b.data[i] = 0
		}
	}
	b.data = nil
}

// MakeCanonPad serializes s like MakeCanon and pads the result with zero
// bytes to the next multiple of 8. With secure set, the returned buffer's
// Free zeroes the memory, for key material that must not linger after
// release.
func MakeCanonPad(s *sexp.Sexp, secure bool) (*PaddedBuffer, error) {
	if s == nil {
		return nil, errors.InvalidArgumentError("nil S-expression")
	}
	canon := s.Canonical()
	padded := len(canon) + (8-len(canon)%8)%8
	data := make([]byte, padded)
	copy(data, canon)
	return &PaddedBuffer{data: data, secure: secure}, nil
}

func stripLeadingZeros(v []byte) []byte {
	for len(v) > 0 && v[0] == 0 {
		v = v[1:]
	}
	return v
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
