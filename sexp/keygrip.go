package sexp

import (
	"crypto/sha1"
	"io"
	"strconv"

	"github.com/ProtonMail/go-csexp/csexp/errors"
	"github.com/ProtonMail/go-csexp/internal/ecc"
)

// KeygripSize is the length in bytes of every keygrip.
const KeygripSize = sha1.Size

var keyLabels = map[string]bool{
	"public-key":            true,
	"private-key":           true,
	"protected-private-key": true,
	"shadowed-private-key":  true,
}

// Keygrip computes the 20-byte identifier of a key expression: the SHA-1
// hash of the key's public parameters in an algorithm-dependent normalized
// form. The same key material yields the same grip whether it appears in a
// public or a private key. Keys whose algorithm has no defined
// normalization fail with an InternalError.
func (s *Sexp) Keygrip() ([]byte, error) {
	if s.IsAtom() || s.Len() < 2 {
		return nil, errors.InternalError("expression is not a key")
	}
	label := s.Nth(0)
	if !label.IsAtom() || !keyLabels[string(label.Data())] {
		return nil, errors.InternalError("expression is not a key")
	}
	list := s.Nth(1)
	if list == nil || list.IsAtom() {
		return nil, errors.InternalError("key has no parameter list")
	}
	name := list.Nth(0)
	if name == nil || !name.IsAtom() {
		return nil, errors.InternalError("key has no algorithm name")
	}

	h := sha1.New()
	switch PublicKeyAlgoByName(string(name.Data())) {
	case AlgoRSA:
		// The RSA grip covers only the modulus, with semantic leading
		// zeros removed.
		n, err := keyParam(list, "n")
		if err != nil {
			return nil, err
		}
		for len(n) > 0 && n[0] == 0 {
			n = n[1:]
		}
		h.Write(n)
	case AlgoDSA:
		if err := hashTaggedParams(h, list, "p", "q", "g", "y"); err != nil {
			return nil, err
		}
	case AlgoElg, AlgoElgE:
		if err := hashTaggedParams(h, list, "p", "g", "y"); err != nil {
			return nil, err
		}
	case AlgoECC, AlgoECDSA, AlgoECDH, AlgoEdDSA:
		curveList := list.FindToken("curve")
		if curveList == nil || curveList.Len() < 2 || !curveList.Nth(1).IsAtom() {
			return nil, errors.InternalError("ecc key has no curve name")
		}
		curveName := curveList.Nth(1).Data()
		info := ecc.ByName(string(curveName))
		if info == nil {
			return nil, errors.InternalError("unknown curve: " + string(curveName))
		}
		q, err := keyParam(list, "q")
		if err != nil {
			return nil, err
		}
		point, err := info.NormalizePoint(q)
		if err != nil {
			return nil, errors.InternalError(err.Error())
		}
		hashTagged(h, "curve", []byte(info.Name))
		hashTagged(h, "q", point)
	default:
		return nil, errors.InternalError("no keygrip for algorithm: " + string(name.Data()))
	}

	return h.Sum(nil), nil
}

// keyParam returns the value atom of the (tag <value>) sublist of list.
func keyParam(list *Sexp, tag string) ([]byte, error) {
	p := list.FindToken(tag)
	if p == nil || p.Len() < 2 || !p.Nth(1).IsAtom() {
		return nil, errors.InternalError("missing key parameter: " + tag)
	}
	return p.Nth(1).Data(), nil
}

// hashTaggedParams feeds each named parameter to the hash as a
// self-delimiting tagged block, so that parameter boundaries cannot be
// shifted between fields.
func hashTaggedParams(h io.Writer, list *Sexp, tags ...string) error {
	for _, tag := range tags {
		v, err := keyParam(list, tag)
		if err != nil {
			return err
		}
		hashTagged(h, tag, v)
	}
	return nil
}

func hashTagged(h io.Writer, tag string, v []byte) {
	h.Write([]byte("(" + strconv.Itoa(len(tag)) + ":" + tag + strconv.Itoa(len(v)) + ":"))
	h.Write(v)
	h.Write([]byte(")"))
}
