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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const erc20ABI = `[
  {
    "type": "event",
    "name": "Transfer",
    "anonymous": false,
    "inputs": [
      {"name": "from", "type": "address", "indexed": true},
      {"name": "to", "type": "address", "indexed": true},
      {"name": "value", "type": "uint256", "indexed": false}
    ]
  },
  {
    "type": "function",
    "name": "balanceOf",
    "inputs": [{"name": "owner", "type": "address"}]
  }
]`

func TestParseABIJSONExtractsEventsOnly(t *testing.T) {
	descs, err := ParseABIJSON([]byte(erc20ABI))
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.Equal(t, "Transfer", descs[0].Name)
	assert.Equal(t, "Transfer(address,address,uint256)", descs[0].Signature)
	assert.Len(t, descs[0].Indexed(), 2)
	assert.Equal(t, []Type{Uint(256)}, descs[0].NonIndexed())
}

const tupleEventABI = `[
  {
    "type": "event",
    "name": "OrderFilled",
    "inputs": [
      {"name": "trader", "type": "address", "indexed": true},
      {"name": "order", "type": "tuple", "indexed": false, "components": [
        {"name": "maker", "type": "address"},
        {"name": "amounts", "type": "uint256[]"}
      ]}
    ]
  }
]`

func TestParseABIJSONTupleComponents(t *testing.T) {
	descs, err := ParseABIJSON([]byte(tupleEventABI))
	require.NoError(t, err)
	require.Len(t, descs, 1)
	want := Tuple(Address(), Array(Uint(256)))
	assert.Equal(t, []Type{want}, descs[0].NonIndexed())
}

func TestParseABIJSONMalformed(t *testing.T) {
	_, err := ParseABIJSON([]byte("not json"))
	require.Error(t, err)
}
