// Package csexp implements a codec and inspection toolkit for canonical
// S-expressions, the length-prefixed binary encoding used to carry key
// material and signature values between a crypto back end and its callers.
//
// A canonical S-expression is a byte buffer encoding a tree: each node is
// either an atom ("<decimal-length>:<raw-bytes>") or a list
// ("(" node* ")"), with no whitespace and no type tags. All parsing here
// operates on untrusted input: every declared length is checked against the
// remaining buffer and list nesting is tracked with an explicit depth
// counter, so stack use is constant regardless of input nesting.
//
// Results that point into a parsed buffer are borrowed slices. They stay
// valid only as long as the buffer they were cut from; callers that need
// them longer must copy.
package csexp

import (
	"github.com/ProtonMail/go-csexp/csexp/errors"
)

// maxAtomLen bounds a single atom so the decimal length parse cannot
// overflow on 32-bit int.
const maxAtomLen = 1 << 30

// A Cursor is the transient parse state for one walk over a canonical
// S-expression buffer. It never copies or mutates the buffer; it only
// advances over it. A Cursor is not safe for concurrent use, but distinct
// Cursors over distinct buffers need no coordination.
type Cursor struct {
	buf   []byte
	depth int
}

// NewCursor returns a Cursor positioned at the start of buf. The Cursor
// borrows buf for its whole lifetime.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Depth returns the current list nesting depth. It is zero at the start and
// again at the natural end of a well-formed buffer.
func (c *Cursor) Depth() int {
	return c.depth
}

// ReadAtom reads one length-prefixed atom at the cursor and returns its
// bytes as a borrowed slice. The cursor must point at a decimal digit.
func (c *Cursor) ReadAtom() ([]byte, error) {
	n, rest, err := readLength(c.buf)
	if err != nil {
		return nil, err
	}
	data := rest[:n]
	c.buf = rest[n:]
	return data, nil
}

// EnterList consumes an opening parenthesis and increments the depth.
func (c *Cursor) EnterList() error {
	if len(c.buf) == 0 {
		return errors.ErrTruncated
	}
	if c.buf[0] != '(' {
		return errors.ErrUnexpectedToken
	}
	c.buf = c.buf[1:]
	c.depth++
	return nil
}

// ExitList consumes a closing parenthesis and decrements the depth. Calling
// it at depth zero is an error, never a negative depth.
func (c *Cursor) ExitList() error {
	if len(c.buf) == 0 {
		return errors.ErrTruncated
	}
	if c.buf[0] != ')' {
		return errors.ErrUnexpectedToken
	}
	if c.depth == 0 {
		return errors.ErrDepthUnderflow
	}
	c.buf = c.buf[1:]
	c.depth--
	return nil
}

// MatchAtom reads the atom at the cursor and reports whether its bytes equal
// tag. The atom is consumed either way; a cursor positioned at anything but
// an atom yields false. No allocation is performed.
func (c *Cursor) MatchAtom(tag string) bool {
	data, err := c.ReadAtom()
	if err != nil {
		return false
	}
	return string(data) == tag
}

// readLength parses the decimal length prefix and separator at the start of
// buf, returning the length and the remainder positioned at the atom data.
// The declared length is checked against the remainder.
func readLength(buf []byte) (int, []byte, error) {
	if len(buf) == 0 {
		return 0, nil, errors.ErrTruncated
	}
	if buf[0] < '0' || buf[0] > '9' {
		return 0, nil, errors.ErrMalformedLength
	}
	n := 0
	i := 0
	for ; i < len(buf) && buf[i] >= '0' && buf[i] <= '9'; i++ {
		// Reject before multiplying so the accumulator cannot wrap on
		// platforms with a 32-bit int.
		if n > maxAtomLen/10 {
			return 0, nil, errors.ErrMalformedLength
		}
		n = n*10 + int(buf[i]-'0')
		if n > maxAtomLen {
			return 0, nil, errors.ErrMalformedLength
		}
	}
	if i == len(buf) {
		return 0, nil, errors.ErrTruncated
	}
	if buf[i] != ':' {
		return 0, nil, errors.ErrMissingSeparator
	}
	rest := buf[i+1:]
	if n > len(rest) {
		return 0, nil, errors.ErrTruncated
	}
	return n, rest, nil
}
