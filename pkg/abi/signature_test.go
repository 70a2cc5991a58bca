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
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignatureBasic(t *testing.T) {
	name, params, err := ParseSignature("Transfer(address,address,uint256)")
	require.NoError(t, err)
	assert.Equal(t, "Transfer", name)
	assert.Equal(t, []Type{Address(), Address(), Uint(256)}, params)
}

func TestParseSignatureNoParams(t *testing.T) {
	name, params, err := ParseSignature("Paused()")
	require.NoError(t, err)
	assert.Equal(t, "Paused", name)
	assert.Nil(t, params)
}

func TestParseSignatureInvalidFormat(t *testing.T) {
	_, _, err := ParseSignature("Transfer address,uint256)")
	require.Error(t, err)
	var sigErr *SignatureError
	require.ErrorAs(t, err, &sigErr)
	assert.Equal(t, InvalidSignatureFormat, sigErr.Kind)
}

func TestParseSignatureUnsupportedType(t *testing.T) {
	_, _, err := ParseSignature("Foo(frobnicate)")
	require.Error(t, err)
	var sigErr *SignatureError
	require.ErrorAs(t, err, &sigErr)
	assert.Equal(t, UnsupportedType, sigErr.Kind)
}

// TestTransferTopic0 checks against the well-known ERC-20 Transfer
// event topic0, a fixed point every ABI decoder in the ecosystem
// agrees on.
func TestTransferTopic0(t *testing.T) {
	d, err := NewEventDescriptor("Transfer(address,address,uint256)", []Param{
		{Name: "from", Type: Address(), Indexed: true},
		{Name: "to", Type: Address(), Indexed: true},
		{Name: "value", Type: Uint(256)},
	})
	require.NoError(t, err)
	want := "ddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"
	got := hex.EncodeToString(d.Topic0[:])
	assert.Equal(t, want, got)
}

func TestEventDescriptorNonIndexedIndexedSplit(t *testing.T) {
	d, err := NewEventDescriptor("Transfer(address,address,uint256)", []Param{
		{Name: "from", Type: Address(), Indexed: true},
		{Name: "to", Type: Address(), Indexed: true},
		{Name: "value", Type: Uint(256)},
	})
	require.NoError(t, err)
	assert.Equal(t, []Type{Uint(256)}, d.NonIndexed())
	assert.Len(t, d.Indexed(), 2)
}
