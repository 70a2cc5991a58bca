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

package abi

import (
	"math/big"
	"unicode/utf8"
)

// maxDecodeDepth bounds array/tuple recursion so an adversarial blob
// with deeply nested types cannot exhaust the stack.
const maxDecodeDepth = 32

// Decode reads a top-level parameter list (e.g. an event's non-indexed
// parameters) out of data, following the head/tail layout: each
// parameter occupies one head slot — the value itself if static, a
// 32-byte offset into the tail if dynamic.
func Decode(types []Type, data []byte) ([]Value, error) {
	return decodeBlock(types, data, 0, 0)
}

// decodeBlock decodes types as a contiguous head/tail block starting
// at base. Offsets embedded in the head are interpreted relative to
// base — this is the inner-block-relative rule that replaces always
// resolving offsets against the outermost buffer, so that a dynamic
// value nested inside an array or tuple resolves against its own
// enclosing block rather than the whole message.
func decodeBlock(types []Type, data []byte, base, depth int) ([]Value, error) {
	if depth > maxDecodeDepth {
		return nil, newDecodeError(DepthExceeded, "", base)
	}

	slots := make([]int, len(types))
	pos := base
	for i, t := range types {
		slots[i] = pos
		pos += headSlotSize(t)
	}

	values := make([]Value, len(types))
	for i, t := range types {
		headOff := slots[i]
		valOff := headOff
		if t.IsDynamic() {
			w, err := peekWord(data, headOff)
			if err != nil {
				return nil, err
			}
			rel, err := wordToInt(w)
			if err != nil {
				return nil, &DecodeError{Kind: InvalidUnsignedInteger, Type: Render(t), Offset: headOff}
			}
			valOff = base + rel
		}
		v, err := decodeValue(t, data, valOff, depth)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// headSlotSize is how many bytes of head space t occupies: one word
// for a dynamic type's offset, or its full static size otherwise.
func headSlotSize(t Type) int {
	if t.IsDynamic() {
		return wordSize
	}
	return staticSize(t)
}

// staticSize is the inline encoded size of a static type. Only tuples
// recurse; every other static leaf is exactly one word.
func staticSize(t Type) int {
	if t.Kind == KindTuple {
		total := 0
		for _, f := range t.Fields {
			total += staticSize(f)
		}
		return total
	}
	return wordSize
}

// decodeValue decodes a single value of type t starting at off. For
// dynamic leaves (string, bytes, array) off already points at the
// payload (length word first), not at an offset slot — decodeBlock
// resolves offset slots before calling in.
func decodeValue(t Type, data []byte, off, depth int) (Value, error) {
	switch t.Kind {
	case KindAddress:
		w, err := peekWord(data, off)
		if err != nil {
			return Value{}, err
		}
		var a [20]byte
		copy(a[:], w[12:32])
		return Value{Kind: KindAddress, Addr: a}, nil

	case KindUint:
		w, err := peekWord(data, off)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindUint, Int: new(big.Int).SetBytes(w[:])}, nil

	case KindInt:
		w, err := peekWord(data, off)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt, Int: decodeSignedWord(w)}, nil

	case KindBool:
		w, err := peekWord(data, off)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindBool, Bool: w[31] != 0}, nil

	case KindFixedBytes:
		w, err := peekWord(data, off)
		if err != nil {
			return Value{}, err
		}
		raw := make([]byte, t.FixedSize)
		copy(raw, w[:t.FixedSize])
		return Value{Kind: KindFixedBytes, Raw: raw}, nil

	case KindString:
		raw, err := decodeDynamicBytes(data, off)
		if err != nil {
			return Value{}, err
		}
		if !utf8.Valid(raw) {
			return Value{}, &DecodeError{Kind: Utf8Error, Type: "string", Offset: off}
		}
		return Value{Kind: KindString, Str: string(raw)}, nil

	case KindBytes:
		raw, err := decodeDynamicBytes(data, off)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindBytes, Raw: raw}, nil

	case KindArray:
		return decodeArray(t, data, off, depth)

	case KindTuple:
		elems, err := decodeBlock(t.Fields, data, off, depth+1)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindTuple, Elems: elems}, nil

	default:
		return Value{}, &TypeError{Input: Render(t)}
	}
}

// decodeSignedWord interprets a 32-byte word as a two's-complement
// signed integer: Solidity always sign-extends a signed value to the
// full word regardless of its declared bit width, so the sign bit to
// check is always the word's own top bit, not a width-dependent one.
func decodeSignedWord(w [32]byte) *big.Int {
	v := new(big.Int).SetBytes(w[:])
	if w[0]&0x80 == 0 {
		return v
	}
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	return v.Sub(v, mod)
}

// decodeDynamicBytes reads a length-prefixed byte payload: a length
// word at off, followed by that many bytes (right-padded to a word
// boundary in the wire format, which takeBytes ignores since it only
// reads the declared length).
func decodeDynamicBytes(data []byte, off int) ([]byte, error) {
	w, err := peekWord(data, off)
	if err != nil {
		return nil, err
	}
	length, err := wordToInt(w)
	if err != nil {
		return nil, &DecodeError{Kind: InvalidUnsignedInteger, Type: "bytes", Offset: off}
	}
	return takeBytes(data, off+wordSize, length)
}

// decodeArray reads a dynamic array: a length word at off, followed by
// `length` elements laid out as their own head/tail block starting
// immediately after the length word.
func decodeArray(t Type, data []byte, off, depth int) (Value, error) {
	if depth > maxDecodeDepth {
		return Value{}, newDecodeError(DepthExceeded, Render(t), off)
	}
	w, err := peekWord(data, off)
	if err != nil {
		return Value{}, err
	}
	length, err := wordToInt(w)
	if err != nil {
		return Value{}, &DecodeError{Kind: InvalidUnsignedInteger, Type: Render(t), Offset: off}
	}

	elemTypes := make([]Type, length)
	for i := range elemTypes {
		elemTypes[i] = *t.Elem
	}
	elems, err := decodeBlock(elemTypes, data, off+wordSize, depth+1)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindArray, Elems: elems}, nil
}
