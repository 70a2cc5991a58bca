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
	"fmt"
	"strings"

	"github.com/kslamph/chainevents/pkg/abi"
	"github.com/kslamph/chainevents/pkg/eventstream"
	"github.com/shopspring/decimal"
)

// Line renders a decoded event as a single human-readable line with no
// decimal scaling — every integer parameter prints its raw on-chain
// value. Use LineWithDecimals when the contract's token decimals are
// known.
func Line(blockNumber uint64, txHash string, ev *eventstream.DecodedEvent) string {
	return LineWithDecimals(blockNumber, txHash, ev, -1)
}

// LineWithDecimals is Line, but non-indexed uint/int parameters are
// additionally scaled by decimals (a subscription's configured token
// decimals) and rendered as a human decimal amount instead of the raw
// smallest-unit integer. Pass a negative decimals to disable scaling,
// the way a contract with no declared decimals() (most non-token
// contracts) should be displayed.
func LineWithDecimals(blockNumber uint64, txHash string, ev *eventstream.DecodedEvent, decimals int32) string {
	parts := make([]string, len(ev.Params))
	for i, p := range ev.Params {
		if p.Indexed {
			parts[i] = fmt.Sprintf("%s=0x%x", p.Name, p.RawTopic)
			continue
		}
		parts[i] = fmt.Sprintf("%s=%s", p.Name, renderValue(p.Value, decimals))
	}
	return fmt.Sprintf("block=%d tx=%s contract=%s event=%s(%s)",
		blockNumber, txHash, ev.Contract.Hex(), ev.Name, strings.Join(parts, ", "))
}

func renderValue(v abi.Value, decimals int32) string {
	if decimals < 0 || (v.Kind != abi.KindUint && v.Kind != abi.KindInt) || v.Int == nil {
		return v.String()
	}
	return Amount(decimal.NewFromBigInt(v.Int, 0), decimals)
}
