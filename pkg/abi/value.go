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
	"math/big"
	"strings"
)

// Value is a decoded ABI value. Its Kind always mirrors the Type term
// that produced it. Only the field(s) relevant to Kind are populated:
//
//	KindAddress    -> Addr
//	KindUint       -> Int (unsigned big.Int)
//	KindInt        -> Int (signed, two's-complement-interpreted big.Int)
//	KindBool       -> Bool
//	KindString     -> Str
//	KindBytes      -> Raw
//	KindFixedBytes -> Raw
//	KindArray      -> Elems
//	KindTuple      -> Elems
type Value struct {
	Kind  Kind
	Addr  [20]byte
	Int   *big.Int
	Bool  bool
	Str   string
	Raw   []byte
	Elems []Value
}

// Equal reports structural equality, per spec.md §3's Typed Value
// invariant ("Equality is structural").
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindAddress:
		return v.Addr == o.Addr
	case KindUint, KindInt:
		if v.Int == nil || o.Int == nil {
			return v.Int == o.Int
		}
		return v.Int.Cmp(o.Int) == 0
	case KindBool:
		return v.Bool == o.Bool
	case KindString:
		return v.Str == o.Str
	case KindBytes, KindFixedBytes:
		return string(v.Raw) == string(o.Raw)
	case KindArray, KindTuple:
		if len(v.Elems) != len(o.Elems) {
			return false
		}
		for i := range v.Elems {
			if !v.Elems[i].Equal(o.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a human-readable form, mainly for logging and tests.
func (v Value) String() string {
	switch v.Kind {
	case KindAddress:
		return fmt.Sprintf("0x%x", v.Addr)
	case KindUint, KindInt:
		if v.Int == nil {
			return "<nil>"
		}
		return v.Int.String()
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindString:
		return v.Str
	case KindBytes, KindFixedBytes:
		return fmt.Sprintf("0x%x", v.Raw)
	case KindArray, KindTuple:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return ""
	}
}
