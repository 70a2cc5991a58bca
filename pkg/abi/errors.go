// Copyright (c) 2025 github.com/kslamph
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package abi implements the Solidity-style ABI type grammar, event
// signature parsing, and the ABI event-log decoder.
package abi

import "fmt"

// TypeError is returned by Parse when a type string is malformed or
// names an unsupported type.
type TypeError struct {
	Input string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("unsupported type: %q", e.Input)
}

// SignatureErrorKind distinguishes the ways an event signature string
// can fail to parse.
type SignatureErrorKind int

const (
	// InvalidSignatureFormat means the outer "name(t1,t2,...)" shape
	// did not match.
	InvalidSignatureFormat SignatureErrorKind = iota
	// UnsupportedType means the outer shape matched but a parameter
	// type failed to parse.
	UnsupportedType
)

// SignatureError is returned by ParseSignature and NewEventDescriptor.
type SignatureError struct {
	Kind  SignatureErrorKind
	Input string
	Err   error
}

func (e *SignatureError) Error() string {
	switch e.Kind {
	case InvalidSignatureFormat:
		return fmt.Sprintf("invalid event signature format: %q", e.Input)
	case UnsupportedType:
		return fmt.Sprintf("unsupported type in signature %q: %v", e.Input, e.Err)
	default:
		return fmt.Sprintf("invalid event signature: %q", e.Input)
	}
}

func (e *SignatureError) Unwrap() error { return e.Err }

// DecodeErrorKind enumerates the ways a decode can fail, matching the
// taxonomy of the reference implementation's DecodeError enum.
type DecodeErrorKind int

const (
	// OutOfBounds means a read named an offset/length past the end of
	// the input buffer.
	OutOfBounds DecodeErrorKind = iota
	// InvalidUnsignedInteger means a length/offset word had non-zero
	// bytes above the low 4 bytes (the value does not fit in a usize).
	InvalidUnsignedInteger
	// InvalidSignedInteger is reserved for signed-word integrity
	// failures; the current decoder never rejects a signed word on
	// shape grounds (any 32-byte pattern is a valid two's-complement
	// value), but the kind exists to match the taxonomy spec.md names.
	InvalidSignedInteger
	// Utf8Error means a string payload was not valid UTF-8.
	Utf8Error
	// MemoryAllocationError is reserved for the reference taxonomy's
	// try-reserve allocation failure; Go has no fallible-allocation API
	// to surface this kind from, so it is never produced, the same way
	// InvalidSignedInteger is reserved but never produced.
	MemoryAllocationError
	// DepthExceeded means recursion into nested arrays/tuples went
	// past the configured maximum nesting depth.
	DepthExceeded
)

func (k DecodeErrorKind) String() string {
	switch k {
	case OutOfBounds:
		return "out of bounds"
	case InvalidUnsignedInteger:
		return "invalid unsigned integer"
	case InvalidSignedInteger:
		return "invalid signed integer"
	case Utf8Error:
		return "invalid utf-8"
	case MemoryAllocationError:
		return "memory allocation error"
	case DepthExceeded:
		return "recursion depth exceeded"
	default:
		return "unknown decode error"
	}
}

// DecodeError is the terminal error returned by Decode. It carries
// enough context (the type term and byte offset in play) for the
// caller to log a useful diagnostic without re-deriving it.
type DecodeError struct {
	Kind   DecodeErrorKind
	Type   string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s at offset %d: %s: %v", e.Type, e.Offset, e.Kind, e.Err)
	}
	return fmt.Sprintf("decode %s at offset %d: %s", e.Type, e.Offset, e.Kind)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func newDecodeError(kind DecodeErrorKind, typ string, offset int) *DecodeError {
	return &DecodeError{Kind: kind, Type: typ, Offset: offset}
}
