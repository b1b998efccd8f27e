package sexp

// PublicKeyAlgorithm identifies a public-key algorithm named inside a key
// S-expression. The values match the provider's algorithm table; zero means
// the name did not resolve and is deliberately not an error, since callers
// use these lookups for display rather than trust decisions.
type PublicKeyAlgorithm int

const (
	AlgoUnknown PublicKeyAlgorithm = 0
	AlgoRSA     PublicKeyAlgorithm = 1
	AlgoElgE    PublicKeyAlgorithm = 16
	AlgoDSA     PublicKeyAlgorithm = 17
	AlgoECC     PublicKeyAlgorithm = 18
	AlgoElg     PublicKeyAlgorithm = 20
	AlgoECDSA   PublicKeyAlgorithm = 301
	AlgoECDH    PublicKeyAlgorithm = 302
	AlgoEdDSA   PublicKeyAlgorithm = 303
)

// longest algorithm name the detector accepts; longer atoms resolve to
// AlgoUnknown rather than being inspected further.
const maxAlgoNameLen = 5

var pubKeyAlgosByName = map[string]PublicKeyAlgorithm{
	"rsa":   AlgoRSA,
	"dsa":   AlgoDSA,
	"elg":   AlgoElg,
	"ecc":   AlgoECC,
	"ecdsa": AlgoECDSA,
	"ecdh":  AlgoECDH,
	"eddsa": AlgoEdDSA,
}

var pubKeyAlgoNames = map[PublicKeyAlgorithm]string{
	AlgoRSA:   "rsa",
	AlgoElgE:  "elg",
	AlgoDSA:   "dsa",
	AlgoECC:   "ecc",
	AlgoElg:   "elg",
	AlgoECDSA: "ecdsa",
	AlgoECDH:  "ecdh",
	AlgoEdDSA: "eddsa",
}

// PublicKeyAlgoByName resolves an algorithm name as it appears in a key
// S-expression. Unknown names yield AlgoUnknown.
func PublicKeyAlgoByName(name string) PublicKeyAlgorithm {
	return pubKeyAlgosByName[name]
}

func (a PublicKeyAlgorithm) String() string {
	if name, ok := pubKeyAlgoNames[a]; ok {
		return name
	}
	return "unknown"
}

// PublicKeyAlgo returns the algorithm of a parsed key expression of the
// shape (public-key (<algo> ...)). If the algorithm resolves to ECC, the
// (flags ...) sublist is searched for an atom equal to "eddsa", which
// overrides the result to AlgoEdDSA; the flags list is walked from its last
// element backward so a duplicated flag resolves the same way every time.
// Any structural deviation yields AlgoUnknown.
func (s *Sexp) PublicKeyAlgo() PublicKeyAlgorithm {
	list := s.Nth(1)
	if list == nil || list.IsAtom() {
		return AlgoUnknown
	}
	name := list.Nth(0)
	if name == nil || !name.IsAtom() || len(name.Data()) > maxAlgoNameLen {
		return AlgoUnknown
	}
	algo := PublicKeyAlgoByName(string(name.Data()))
	if algo == AlgoECC {
		if flags := list.FindToken("flags"); flags != nil {
			for i := flags.Len() - 1; i > 0; i-- {
				d := flags.Nth(i)
				if d == nil || !d.IsAtom() {
					continue
				}
				if string(d.Data()) == "eddsa" {
					algo = AlgoEdDSA
					break
				}
			}
		}
	}
	return algo
}
