// Package sexp provides an in-memory object representation of canonical
// S-expressions: strict parsing from the canonical encoding, re-serialization,
// structural accessors and an advanced human-readable format. It plays the
// provider role for the csexp package, which also exposes the algorithm
// registries and the keygrip primitive implemented here.
package sexp

import (
	"strconv"
	"strings"

	"github.com/ProtonMail/go-csexp/csexp/errors"
)

// maxAtomLen bounds a single atom so the decimal length parse cannot
// overflow on 32-bit int.
const maxAtomLen = 1 << 30

// A Sexp is one node of a parsed S-expression tree: either an atom carrying
// bytes or a list of child nodes. Unlike the borrowed slices handed out by
// the csexp scanner, a Sexp owns copies of its atom data and stays valid
// after the buffer it was parsed from is gone.
type Sexp struct {
	leaf  bool
	value []byte
	items []*Sexp
}

// NewAtom returns an atom node owning a copy of data.
func NewAtom(data []byte) *Sexp {
	return &Sexp{leaf: true, value: append([]byte(nil), data...)}
}

// NewList returns a list node with the given elements.
func NewList(items ...*Sexp) *Sexp {
	return &Sexp{items: items}
}

// Parse reads a complete canonical S-expression from buf and returns its
// tree. The whole buffer must be consumed: trailing bytes, unbalanced lists
// and unsatisfiable atom lengths are all rejected. Nesting is handled with
// an explicit stack, so input depth cannot exhaust the call stack.
func Parse(buf []byte) (*Sexp, error) {
	if len(buf) == 0 {
		return nil, errors.ErrInvalidExpression
	}
	var (
		root  *Sexp
		stack []*Sexp
	)
	attach := func(node *Sexp) error {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.items = append(top.items, node)
			return nil
		}
		if root != nil {
			return errors.ErrInvalidExpression
		}
		root = node
		return nil
	}
	for len(buf) > 0 {
		switch buf[0] {
		case '(':
			node := &Sexp{}
			if err := attach(node); err != nil {
				return nil, err
			}
			stack = append(stack, node)
			buf = buf[1:]
		case ')':
			if len(stack) == 0 {
				return nil, errors.ErrDepthUnderflow
			}
			stack = stack[:len(stack)-1]
			buf = buf[1:]
		default:
			if buf[0] < '0' || buf[0] > '9' {
				return nil, errors.ErrMalformedLength
			}
			n := 0
			i := 0
			for ; i < len(buf) && buf[i] >= '0' && buf[i] <= '9'; i++ {
				// Reject before multiplying so the accumulator
				// cannot wrap on platforms with a 32-bit int.
				if n > maxAtomLen/10 {
					return nil, errors.ErrMalformedLength
				}
				n = n*10 + int(buf[i]-'0')
				if n > maxAtomLen {
					return nil, errors.ErrMalformedLength
				}
			}
			if i == len(buf) {
				return nil, errors.ErrTruncated
			}
			if buf[i] != ':' {
				return nil, errors.ErrMissingSeparator
			}
			rest := buf[i+1:]
			if n > len(rest) {
				return nil, errors.ErrTruncated
			}
			if err := attach(NewAtom(rest[:n])); err != nil {
				return nil, err
			}
			buf = rest[n:]
		}
	}
	if len(stack) != 0 {
		return nil, errors.ErrTruncated
	}
	if root == nil {
		return nil, errors.ErrInvalidExpression
	}
	return root, nil
}

// IsAtom reports whether s is an atom node.
func (s *Sexp) IsAtom() bool {
	return s.leaf
}

// Len returns the number of elements of a list, or zero for an atom.
func (s *Sexp) Len() int {
	return len(s.items)
}

// Nth returns the i-th element of a list, or nil if s is an atom or i is
// out of range.
func (s *Sexp) Nth(i int) *Sexp {
	if s.leaf || i < 0 || i >= len(s.items) {
		return nil
	}
	return s.items[i]
}

// Data returns an atom's bytes, or nil for a list.
func (s *Sexp) Data() []byte {
	if !s.leaf {
		return nil
	}
	return s.value
}

// FindToken returns the sublist whose first element is the atom tag. It
// matches s itself first, then s's immediate sublists, mirroring how keys
// keep parameter lists like (flags ...) one level down. Returns nil if no
// such list exists.
func (s *Sexp) FindToken(tag string) *Sexp {
	if s.taggedWith(tag) {
		return s
	}
	for _, it := range s.items {
		if it.taggedWith(tag) {
			return it
		}
	}
	return nil
}

func (s *Sexp) taggedWith(tag string) bool {
	if s.leaf || len(s.items) == 0 {
		return false
	}
	first := s.items[0]
	return first.leaf && string(first.value) == tag
}

// Canonical returns the canonical encoding of s as a freshly allocated
// buffer. The allocation is sized exactly; no growth occurs while encoding.
func (s *Sexp) Canonical() []byte {
	return s.appendCanonical(make([]byte, 0, s.canonicalLen()))
}

func (s *Sexp) canonicalLen() int {
	if s.leaf {
		return decimalLen(len(s.value)) + 1 + len(s.value)
	}
	n := 2
	for _, it := range s.items {
		n += it.canonicalLen()
	}
	return n
}

func (s *Sexp) appendCanonical(buf []byte) []byte {
	if s.leaf {
		buf = strconv.AppendInt(buf, int64(len(s.value)), 10)
		buf = append(buf, ':')
		return append(buf, s.value...)
	}
	buf = append(buf, '(')
	for _, it := range s.items {
		buf = it.appendCanonical(buf)
	}
	return append(buf, ')')
}

func decimalLen(n int) int {
	l := 1
	for n >= 10 {
		n /= 10
		l++
	}
	return l
}

// String renders s in the advanced, human-readable format used for
// diagnostics: token atoms appear bare, printable atoms quoted, binary
// atoms as #hex#, and lists containing sublists break across lines with one
// space of indent per depth.
func (s *Sexp) String() string {
	var sb strings.Builder
	s.format(&sb, 0)
	return sb.String()
}

func (s *Sexp) format(sb *strings.Builder, indent int) {
	if s.leaf {
		formatAtom(sb, s.value)
		return
	}
	sb.WriteByte('(')
	if !s.hasSublist() {
		for i, it := range s.items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			it.format(sb, indent)
		}
		sb.WriteByte(')')
		return
	}
	i := 0
	if len(s.items) > 0 && s.items[0].leaf {
		s.items[0].format(sb, indent)
		i = 1
	}
	for ; i < len(s.items); i++ {
		sb.WriteByte('\n')
		for j := 0; j <= indent; j++ {
			sb.WriteByte(' ')
		}
		s.items[i].format(sb, indent+1)
	}
	sb.WriteByte(')')
}

func (s *Sexp) hasSublist() bool {
	for _, it := range s.items {
		if !it.leaf {
			return true
		}
	}
	return false
}

func formatAtom(sb *strings.Builder, data []byte) {
	if len(data) == 0 {
		sb.WriteString(`""`)
		return
	}
	if isToken(data) {
		sb.Write(data)
		return
	}
	if isPrintable(data) {
		sb.WriteByte('"')
		for _, b := range data {
			if b == '"' || b == '\\' {
				sb.WriteByte('\\')
			}
			sb.WriteByte(b)
		}
		sb.WriteByte('"')
		return
	}
	const hextable = "0123456789abcdef"
	sb.WriteByte('#')
	for _, b := range data {
		sb.WriteByte(hextable[b>>4])
		sb.WriteByte(hextable[b&0x0f])
	}
	sb.WriteByte('#')
}

// isToken reports whether data can be shown without quoting: it must not
// start with a digit and every byte must be alphanumeric or one of the
// token punctuation characters.
func isToken(data []byte) bool {
	if data[0] >= '0' && data[0] <= '9' {
		return false
	}
	for _, b := range data {
		switch {
		case b >= 'a' && b <= 'z':
		case b >= 'A' && b <= 'Z':
		case b >= '0' && b <= '9':
		case b == '-' || b == '.' || b == '/' || b == '_' ||
			b == ':' || b == '*' || b == '+' || b == '=':
		default:
			return false
		}
	}
	return true
}

func isPrintable(data []byte) bool {
	for _, b := range data {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}
