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
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant of a Type term.
type Kind int

const (
	KindAddress Kind = iota
	KindUint
	KindInt
	KindBool
	KindString
	KindBytes
	KindFixedBytes
	KindArray
	KindTuple
)

// Type is a recursive Solidity-style ABI type term. Only one of the
// fields is meaningful for a given Kind: Width for Uint/Int,
// FixedSize for FixedBytes, Elem for Array, Fields for Tuple.
type Type struct {
	Kind      Kind
	Width     int // bit width for Uint/Int
	FixedSize int // byte length for FixedBytes
	Elem      *Type
	Fields    []Type
}

var validWidths = map[int]bool{8: true, 16: true, 32: true, 64: true, 128: true, 256: true}
var validFixedSizes = map[int]bool{2: true, 4: true, 8: true, 16: true, 32: true}

// IsDynamic reports whether the term's encoding is head/tail (offset
// in the head, payload in the tail) rather than inline.
func (t Type) IsDynamic() bool {
	switch t.Kind {
	case KindString, KindBytes, KindArray:
		return true
	case KindTuple:
		for _, f := range t.Fields {
			if f.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Address, Bool, String, Bytes are the nullary leaf constructors.
func Address() Type { return Type{Kind: KindAddress} }
func Bool() Type    { return Type{Kind: KindBool} }
func String() Type  { return Type{Kind: KindString} }
func Bytes() Type   { return Type{Kind: KindBytes} }

// Uint constructs an unsigned integer term of the given bit width.
// Width must be one of {8,16,32,64,128,256}.
func Uint(width int) Type { return Type{Kind: KindUint, Width: width} }

// Int constructs a signed integer term of the given bit width.
func Int(width int) Type { return Type{Kind: KindInt, Width: width} }

// FixedBytes constructs a fixed-length byte-sequence term. n must be
// one of {2,4,8,16,32}.
func FixedBytes(n int) Type { return Type{Kind: KindFixedBytes, FixedSize: n} }

// Array constructs a dynamic-length array of elem.
func Array(elem Type) Type { return Type{Kind: KindArray, Elem: &elem} }

// Tuple constructs a fixed-arity heterogeneous composite.
func Tuple(fields ...Type) Type { return Type{Kind: KindTuple, Fields: fields} }

// Parse parses a trimmed Solidity-style type string into a Type term.
// See spec.md §4.1 for the priority order this follows:
//  1. recognised leaf name (address, bool, string, bytes, uint[N], int[N], bytesN)
//  2. trailing "[]" → Array, recursing on the prefix
//  3. "(...)" → Tuple, depth-aware comma split on the interior
//  4. otherwise UnsupportedType
func Parse(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Type{}, &TypeError{Input: s}
	}

	if t, ok := parseLeaf(s); ok {
		return t, nil
	}

	if strings.HasSuffix(s, "[]") {
		inner, err := Parse(s[:len(s)-2])
		if err != nil {
			return Type{}, &TypeError{Input: s}
		}
		return Array(inner), nil
	}

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		fieldStrs, err := splitTopLevel(s[1 : len(s)-1])
		if err != nil {
			return Type{}, &TypeError{Input: s}
		}
		fields := make([]Type, len(fieldStrs))
		for i, fs := range fieldStrs {
			ft, err := Parse(strings.TrimSpace(fs))
			if err != nil {
				return Type{}, &TypeError{Input: s}
			}
			fields[i] = ft
		}
		return Tuple(fields...), nil
	}

	return Type{}, &TypeError{Input: s}
}

func parseLeaf(s string) (Type, bool) {
	switch s {
	case "address":
		return Address(), true
	case "bool":
		return Bool(), true
	case "string":
		return String(), true
	case "bytes":
		return Bytes(), true
	case "uint":
		return Uint(256), true
	case "int":
		return Int(256), true
	}

	if strings.HasPrefix(s, "uint") {
		if w, ok := parseWidth(s[len("uint"):]); ok {
			return Uint(w), true
		}
	}
	if strings.HasPrefix(s, "int") {
		if w, ok := parseWidth(s[len("int"):]); ok {
			return Int(w), true
		}
	}
	if strings.HasPrefix(s, "bytes") {
		if n, ok := parseFixedSize(s[len("bytes"):]); ok {
			return FixedBytes(n), true
		}
	}
	return Type{}, false
}

func parseWidth(suffix string) (int, bool) {
	n, err := strconv.Atoi(suffix)
	if err != nil || !validWidths[n] {
		return 0, false
	}
	return n, true
}

func parseFixedSize(suffix string) (int, bool) {
	n, err := strconv.Atoi(suffix)
	if err != nil || !validFixedSizes[n] {
		return 0, false
	}
	return n, true
}

// splitTopLevel splits s on commas at paren depth 0, so that
// "uint256,(bool,address)" yields ["uint256", "(bool,address)"]
// rather than splitting inside the nested tuple. This is the
// depth-aware fix spec.md §4.1/§9 calls for in place of a naive
// comma split.
func splitTopLevel(s string) ([]string, error) {
	var fields []string
	depth := 0
	start := 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parens in %q", s)
			}
		case ',':
			if depth == 0 {
				fields = append(fields, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parens in %q", s)
	}
	fields = append(fields, s[start:])
	return fields, nil
}

// Render produces the canonical string form of t: widths always
// explicit, arrays as "T[]", tuples as "(T1,T2,...)".
func Render(t Type) string {
	switch t.Kind {
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindUint:
		return fmt.Sprintf("uint%d", t.Width)
	case KindInt:
		return fmt.Sprintf("int%d", t.Width)
	case KindFixedBytes:
		return fmt.Sprintf("bytes%d", t.FixedSize)
	case KindArray:
		return Render(*t.Elem) + "[]"
	case KindTuple:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = Render(f)
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return ""
	}
}
