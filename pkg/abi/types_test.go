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

func TestParseLeafTypes(t *testing.T) {
	cases := map[string]Type{
		"address":  Address(),
		"bool":     Bool(),
		"string":   String(),
		"bytes":    Bytes(),
		"uint256":  Uint(256),
		"uint8":    Uint(8),
		"int128":   Int(128),
		"bytes32":  FixedBytes(32),
		"bytes4":   FixedBytes(4),
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseBareUintAliasesTo256(t *testing.T) {
	got, err := Parse("uint")
	require.NoError(t, err)
	assert.Equal(t, Uint(256), got)

	got, err = Parse("int")
	require.NoError(t, err)
	assert.Equal(t, Int(256), got)
}

func TestParseArray(t *testing.T) {
	got, err := Parse("uint256[]")
	require.NoError(t, err)
	assert.Equal(t, Array(Uint(256)), got)
}

func TestParseNestedTuple(t *testing.T) {
	got, err := Parse("(uint256,(bool,address[]))")
	require.NoError(t, err)
	want := Tuple(Uint(256), Tuple(Bool(), Array(Address())))
	assert.Equal(t, want, got)
}

func TestParseTupleCommaSplitRespectsDepth(t *testing.T) {
	// A naive comma split on "uint256,(bool,address)" would produce
	// three fields instead of two; splitTopLevel must not split inside
	// the nested parens.
	fields, err := splitTopLevel("uint256,(bool,address)")
	require.NoError(t, err)
	assert.Equal(t, []string{"uint256", "(bool,address)"}, fields)
}

func TestParseUnbalancedParens(t *testing.T) {
	_, err := Parse("(uint256,(bool,address)")
	require.Error(t, err)
}

func TestParseInvalidType(t *testing.T) {
	_, err := Parse("foo")
	require.Error(t, err)
	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestParseInvalidWidth(t *testing.T) {
	_, err := Parse("uint7")
	require.Error(t, err)
}

func TestRenderRoundtrip(t *testing.T) {
	in := "(uint256,bool,address[],bytes32)"
	ty, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, in, Render(ty))
}

func TestIsDynamic(t *testing.T) {
	assert.False(t, Uint(256).IsDynamic())
	assert.False(t, Address().IsDynamic())
	assert.True(t, String().IsDynamic())
	assert.True(t, Bytes().IsDynamic())
	assert.True(t, Array(Uint(8)).IsDynamic())
	assert.False(t, Tuple(Uint(8), Bool()).IsDynamic())
	assert.True(t, Tuple(Uint(8), String()).IsDynamic())
}
