// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package algorithm maps the textual hash-algorithm names that appear in
// signature-value S-expressions to Go hash identifiers.
package algorithm

import (
	"crypto"
	"strings"

	// Register the non-default hashes the name table refers to.
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"

	_ "golang.org/x/crypto/ripemd160"
	_ "golang.org/x/crypto/sha3"
)

var hashesByName = map[string]crypto.Hash{
	"md5":       crypto.MD5,
	"sha1":      crypto.SHA1,
	"rmd160":    crypto.RIPEMD160,
	"ripemd160": crypto.RIPEMD160,
	"sha224":    crypto.SHA224,
	"sha256":    crypto.SHA256,
	"sha384":    crypto.SHA384,
	"sha512":    crypto.SHA512,
	"sha3-256":  crypto.SHA3_256,
	"sha3-512":  crypto.SHA3_512,
}

// HashByName resolves a hash algorithm name, case insensitively, to its Go
// identifier. The second return is false for names that do not resolve or
// whose implementation is not linked in; callers treat that as "unknown",
// not as an error.
func HashByName(name string) (crypto.Hash, bool) {
	h, ok := hashesByName[strings.ToLower(name)]
	if !ok || !h.Available() {
		return 0, false
	}
	return h, true
}
