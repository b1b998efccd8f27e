package csexp

import "bytes"

// SimpleEqual reports whether two simple single-atom expressions like
// "(3:foo)" carry the same atom. Two nil buffers are equal; one nil buffer
// is not equal to anything. The inputs are required to already be known
// valid: a malformed non-nil buffer is a caller contract violation and
// panics rather than returning false, so a caller bug cannot masquerade as
// an inequality. This is an equality test only, with no defined ordering.
func SimpleEqual(a, b []byte) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	n1, data1 := parseSimple(a)
	n2, data2 := parseSimple(b)
	if n1 != n2 {
		return false
	}
	return bytes.Equal(data1[:n1], data2[:n1])
}

func parseSimple(buf []byte) (int, []byte) {
	if len(buf) == 0 || buf[0] != '(' {
		panic("csexp: malformed simple S-expression passed to SimpleEqual")
	}
	i := 1
	n := 0
	for ; i < len(buf) && buf[i] >= '0' && buf[i] <= '9'; i++ {
		n = n*10 + int(buf[i]-'0')
		if n > maxAtomLen {
			panic("csexp: malformed simple S-expression passed to SimpleEqual")
		}
	}
	if i == 1 || i == len(buf) || buf[i] != ':' {
		panic("csexp: malformed simple S-expression passed to SimpleEqual")
	}
	data := buf[i+1:]
	if n > len(data) {
		panic("csexp: malformed simple S-expression passed to SimpleEqual")
	}
	return n, data
}
