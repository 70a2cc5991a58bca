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

package addr

import (
	"testing"

	eCommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHex = "0x5aAeb6053f3E94C9b9A09f33669435E7Ef1BeAed"

func TestNewFromHexAcceptsWithAndWithoutPrefix(t *testing.T) {
	a, err := NewFromHex(sampleHex)
	require.NoError(t, err)
	b, err := NewFromHex(sampleHex[2:])
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestNewFromHexRejectsWrongLength(t *testing.T) {
	_, err := NewFromHex("0x1234")
	require.Error(t, err)
}

func TestNewFromBytesRejectsWrongLength(t *testing.T) {
	_, err := NewFromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestHexRoundtrip(t *testing.T) {
	a, err := NewFromHex(sampleHex)
	require.NoError(t, err)
	assert.Equal(t, eCommon.HexToAddress(sampleHex).Hex(), a.Hex())
}

func TestEqualNilHandling(t *testing.T) {
	var a, b *Address
	assert.True(t, a.Equal(b))

	c, err := NewFromHex(sampleHex)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(nil))
}

func TestFromEVMRoundtrip(t *testing.T) {
	ev := eCommon.HexToAddress(sampleHex)
	a := FromEVM(ev)
	assert.Equal(t, ev, a.EVMAddress())
}

func TestGetNetworkKnownAndUnknown(t *testing.T) {
	assert.NotNil(t, GetNetwork(NetworkMainnet))
	assert.Nil(t, GetNetwork("not-a-network"))
}

func TestGenericNew(t *testing.T) {
	a, err := New(sampleHex)
	require.NoError(t, err)

	b, err := New(a.Bytes())
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	var fixed [20]byte
	copy(fixed[:], a.Bytes())
	c, err := New(fixed)
	require.NoError(t, err)
	assert.True(t, a.Equal(c))
}
