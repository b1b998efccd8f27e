package csexp

import (
	"io"

	"github.com/ProtonMail/go-csexp/csexp/errors"
)

// TokenKind identifies one step of the flat token stream.
type TokenKind int

const (
	// TokenEnterList marks an opening parenthesis; depth increased by one.
	TokenEnterList TokenKind = iota
	// TokenExitList marks a closing parenthesis; depth decreased by one.
	TokenExitList
	// TokenAtom carries one atom's bytes; depth unchanged.
	TokenAtom
)

// A Token is the result of one Next step. Data is set only for TokenAtom and
// borrows from the cursor's buffer.
type Token struct {
	Kind TokenKind
	Data []byte
}

// Next returns the next token of the stream. Depth changes are explicit
// tokens, never implicit, so callers can note the depth at which they
// started a sub-traversal and stop once it drops back to that baseline.
//
// At the natural end of the buffer (depth zero, nothing left) Next returns
// io.EOF. A buffer that ends inside an open list yields ErrTruncated
// instead, so truncation can never be mistaken for completion.
func (c *Cursor) Next() (Token, error) {
	if len(c.buf) == 0 {
		if c.depth != 0 {
			return Token{}, errors.ErrTruncated
		}
		return Token{}, io.EOF
	}
	switch c.buf[0] {
	case '(':
		c.buf = c.buf[1:]
		c.depth++
		return Token{Kind: TokenEnterList}, nil
	case ')':
		if c.depth == 0 {
			return Token{}, errors.ErrDepthUnderflow
		}
		c.buf = c.buf[1:]
		c.depth--
		return Token{Kind: TokenExitList}, nil
	}
	data, err := c.ReadAtom()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: TokenAtom, Data: data}, nil
}

// SkipSublist consumes tokens until the depth drops below its value at the
// call, discarding an entire balanced sublist. It is typically called right
// after EnterList to throw away a branch, e.g. an algorithm parameter list.
func (c *Cursor) SkipSublist() error {
	start := c.depth
	if start == 0 {
		return errors.ErrDepthUnderflow
	}
	for {
		if _, err := c.Next(); err != nil {
			if err == io.EOF {
				return errors.ErrTruncated
			}
			return err
		}
		if c.depth < start {
			return nil
		}
	}
}
