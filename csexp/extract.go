package csexp

import (
	"bytes"
	"crypto"

	"github.com/ProtonMail/go-csexp/csexp/errors"
	"github.com/ProtonMail/go-csexp/internal/algorithm"
	"github.com/ProtonMail/go-csexp/sexp"
)

// sig-val algorithm names of this length or more never resolve; the bound
// keeps a hostile buffer from steering the lookup with an oversized atom.
const maxHashNameLen = 49

// RSAPublicKeyParams holds the parameters extracted from an RSA public-key
// expression. N and E are big-endian with semantic leading zeros stripped.
// Both borrow from the buffer the key was parsed from and are only valid
// while that buffer lives.
type RSAPublicKeyParams struct {
	N []byte
	E []byte
}

// ParseRSAPublicKey extracts the modulus and public exponent from a
// canonical (public-key (rsa (n ...)(e ...))) expression. Parameter lists
// other than n and e are skipped structurally, tolerating algorithm
// variants with extra fields; a second n or e fails with
// DuplicateParamError, a missing or empty one with PublicKeyError, and a
// non-rsa algorithm name with UnsupportedError.
func ParseRSAPublicKey(keydata []byte) (*RSAPublicKeyParams, error) {
	c := NewCursor(keydata)
	if err := c.EnterList(); err != nil {
		return nil, err
	}
	tok, err := c.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenAtom || !bytes.Equal(tok.Data, []byte("public-key")) {
		return nil, errors.PublicKeyError("missing public-key label")
	}
	if err := c.EnterList(); err != nil {
		return nil, err
	}
	tok, err = c.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenAtom {
		return nil, errors.ErrUnexpectedToken
	}
	if !bytes.Equal(tok.Data, []byte("rsa")) {
		return nil, errors.UnsupportedError(string(tok.Data))
	}

	var (
		n, e         []byte
		haveN, haveE bool
	)
	outer := c.Depth()
	for {
		tok, err = c.Next()
		if err != nil {
			return nil, err
		}
		if c.Depth() == 0 || c.Depth() < outer {
			break
		}
		if tok.Kind != TokenEnterList {
			return nil, errors.ErrUnexpectedToken
		}
		tok, err = c.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenAtom && len(tok.Data) == 1 {
			var have *bool
			var mpi *[]byte
			switch tok.Data[0] {
			case 'n':
				have, mpi = &haveN, &n
			case 'e':
				have, mpi = &haveE, &e
			}
			if have != nil && *have {
				return nil, errors.DuplicateParamError(string(tok.Data))
			}
			tok, err = c.Next()
			if err != nil {
				return nil, err
			}
			if tok.Kind == TokenAtom && have != nil {
				v := tok.Data
				for len(v) > 0 && v[0] == 0 {
					v = v[1:]
				}
				*have = true
				*mpi = v
			}
		}
		// Skip whatever is left of this parameter list.
		inner := c.Depth()
		for c.Depth() != 0 && c.Depth() >= inner {
			if _, err = c.Next(); err != nil {
				return nil, err
			}
		}
	}

	if !haveN || len(n) == 0 || !haveE || len(e) == 0 {
		return nil, errors.PublicKeyError("missing or empty n or e parameter")
	}
	return &RSAPublicKeyParams{N: n, E: e}, nil
}

// HashAlgoFromSigVal returns the hash algorithm recorded in a signature
// value of the shape (sig-val (<algo> ...)(hash <name>)). The extraction is
// advisory, meant for display and logging: any structural deviation yields
// (0, false) rather than an error, and callers must not base trust
// decisions on the result.
func HashAlgoFromSigVal(sigval []byte) (crypto.Hash, bool) {
	c := NewCursor(sigval)
	if c.EnterList() != nil {
		return 0, false
	}
	if !c.MatchAtom("sig-val") {
		return 0, false
	}
	// Skip over the algorithm and parameter list.
	if c.EnterList() != nil {
		return 0, false
	}
	if c.SkipSublist() != nil {
		return 0, false
	}
	if c.EnterList() != nil {
		return 0, false
	}
	if !c.MatchAtom("hash") {
		return 0, false
	}
	name, err := c.ReadAtom()
	if err != nil || len(name) == 0 || len(name) >= maxHashNameLen {
		return 0, false
	}
	return algorithm.HashByName(string(name))
}

// PublicKeyAlgo detects the public-key algorithm of a canonical key
// expression, including the EdDSA override for ECC keys carrying an eddsa
// flag. Like the provider-side lookup it wraps, it is advisory: buffers
// that do not parse or name an unknown algorithm yield sexp.AlgoUnknown.
func PublicKeyAlgo(keydata []byte) sexp.PublicKeyAlgorithm {
	s, err := sexp.Parse(keydata)
	if err != nil {
		return sexp.AlgoUnknown
	}
	return s.PublicKeyAlgo()
}

// Keygrip parses a canonical key expression and returns its 20-byte grip.
// A buffer that is not a canonical S-expression fails with
// ErrInvalidExpression; a well-formed key the provider cannot grip fails
// with an InternalError.
func Keygrip(keydata []byte) ([]byte, error) {
	s, err := sexp.Parse(keydata)
	if err != nil {
		return nil, errors.ErrInvalidExpression
	}
	return s.Keygrip()
}
