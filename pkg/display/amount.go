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

// Package display renders decoded ABI values for human consumption —
// mainly scaling a raw token integer by its declared decimals.
package display

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount scales an integer amount (in a token's smallest unit) by
// decimals and renders it as a plain decimal string with trailing
// zeros trimmed. This generalizes a fixed-decimals native-coin
// formatter to an arbitrary token's declared decimals, since an
// ERC-20 contract's decimals() is not a constant.
func Amount(raw decimal.Decimal, decimals int32) string {
	scale := decimal.New(1, 0)
	for i := int32(0); i < decimals; i++ {
		scale = scale.Mul(decimal.New(10, 0))
	}
	scaled := raw.DivRound(scale, decimals+2)
	s := scaled.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// AmountWithCommas is Amount with thousands separators inserted into
// the integer part, matching the reference implementation's
// comma-grouped display for large balances.
func AmountWithCommas(raw decimal.Decimal, decimals int32) string {
	s := Amount(raw, decimals)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole = s[:i]
		frac = s[i:]
	}
	whole = groupThousands(whole)
	out := whole + frac
	if negative {
		out = "-" + out
	}
	return out
}

func groupThousands(whole string) string {
	n := len(whole)
	if n <= 3 {
		return whole
	}
	var b strings.Builder
	first := n % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(whole[:first])
	for i := first; i < n; i += 3 {
		b.WriteString(",")
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}
