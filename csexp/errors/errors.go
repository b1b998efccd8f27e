// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors contains common error types for the csexp packages.
package errors

// A StructuralError is returned when canonical S-expression data is found to
// be syntactically invalid.
type StructuralError string

func (s StructuralError) Error() string {
	return "csexp: invalid data: " + string(s)
}

var (
	// ErrMalformedLength is returned when an atom's decimal length prefix
	// is missing, contains a non-digit or overflows.
	ErrMalformedLength = StructuralError("malformed length prefix")

	// ErrMissingSeparator is returned when the colon after a length
	// prefix is absent.
	ErrMissingSeparator = StructuralError("missing colon after length prefix")

	// ErrTruncated is returned when the buffer ends before a declared
	// atom length or an open list is satisfied.
	ErrTruncated = StructuralError("unexpected end of buffer")

	// ErrUnexpectedToken is returned when the byte at the cursor does not
	// match what the caller required.
	ErrUnexpectedToken = StructuralError("unexpected token")

	// ErrDepthUnderflow is returned when a closing parenthesis appears
	// with no list open.
	ErrDepthUnderflow = StructuralError("unbalanced closing parenthesis")

	// ErrInvalidExpression is returned when a buffer is not a canonical
	// S-expression at all.
	ErrInvalidExpression = StructuralError("not a canonical S-expression")
)

// UnsupportedError indicates that a key or signature names an algorithm the
// caller cannot handle.
type UnsupportedError string

func (s UnsupportedError) Error() string {
	return "csexp: unsupported algorithm: " + string(s)
}

// DuplicateParamError indicates that a key carried the same parameter tag
// more than once.
type DuplicateParamError string

func (s DuplicateParamError) Error() string {
	return "csexp: duplicate parameter: " + string(s)
}

// PublicKeyError indicates a structurally valid S-expression that is not a
// usable public key (wrong label, missing parameters).
type PublicKeyError string

func (s PublicKeyError) Error() string {
	return "csexp: bad public key: " + string(s)
}

// InvalidArgumentError indicates that the caller passed arguments violating
// a documented precondition.
type InvalidArgumentError string

func (i InvalidArgumentError) Error() string {
	return "csexp: invalid argument: " + string(i)
}

// InternalError indicates that the provider failed on input this package
// already validated, e.g. a keygrip request for an algorithm it cannot
// normalize.
type InternalError string

func (i InternalError) Error() string {
	return "csexp: internal error: " + string(i)
}
