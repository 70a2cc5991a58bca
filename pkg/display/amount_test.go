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

package display

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountScalesByDecimals(t *testing.T) {
	raw := decimal.New(1_500_000, 0)
	assert.Equal(t, "1.5", Amount(raw, 6))
}

func TestAmountZeroDecimals(t *testing.T) {
	raw := decimal.New(42, 0)
	assert.Equal(t, "42", Amount(raw, 0))
}

func TestAmountWithCommasGroupsThousands(t *testing.T) {
	raw := decimal.New(1_234_567_890_000, 0)
	assert.Equal(t, "1,234,567.89", AmountWithCommas(raw, 6))
}

func TestAmountWithCommasNegative(t *testing.T) {
	raw := decimal.New(-1_500_000, 0)
	assert.Equal(t, "-1.5", AmountWithCommas(raw, 6))
}
