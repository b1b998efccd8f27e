package csexp

import "github.com/ProtonMail/go-csexp/sexp"

// invalidPlaceholder is substituted whenever diagnostic rendering fails, so
// logging an S-expression can never itself fail.
const invalidPlaceholder = "[invalid S-expression]"

// FormatCanon renders a canonical buffer in the advanced, human-readable
// format for diagnostics. It never returns an error: a buffer that does not
// parse renders as the fixed "[invalid S-expression]" placeholder.
func FormatCanon(canon []byte) string {
	s, err := sexp.Parse(canon)
	if err != nil {
		return invalidPlaceholder
	}
	return s.String()
}
