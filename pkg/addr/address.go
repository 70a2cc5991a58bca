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

// Package addr provides the 20-byte EVM-compatible account address type
// shared across the decoding and configuration layers.
package addr

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	eCommon "github.com/ethereum/go-ethereum/common"
)

// Address is a 20-byte EVM-compatible account or contract address.
// Always construct via the New* helpers so an Address is never
// partially valid.
type Address struct {
	bytes [20]byte
}

// addressAllowed enumerates the concrete forms New can build an
// Address from.
type addressAllowed interface {
	~string | ~[]byte | [20]byte | eCommon.Address
}

// New builds an Address from a hex string, raw bytes, a fixed [20]byte
// array, or a go-ethereum common.Address.
func New[T addressAllowed](v T) (*Address, error) {
	switch x := any(v).(type) {
	case string:
		return NewFromHex(x)
	case []byte:
		return NewFromBytes(x)
	case [20]byte:
		return &Address{bytes: x}, nil
	case eCommon.Address:
		return &Address{bytes: x}, nil
	default:
		return nil, fmt.Errorf("addr: unsupported address input %v", v)
	}
}

// NewFromHex parses a 40-character hex address, with or without a "0x"
// prefix. Validation is delegated to go-ethereum/common, which is the
// library every component downstream of pkg/abi already depends on for
// address handling.
func NewFromHex(hexAddr string) (*Address, error) {
	trimmed := strings.TrimPrefix(hexAddr, "0x")
	if len(trimmed) != 40 {
		return nil, fmt.Errorf("addr: invalid hex address length: expected 40 hex chars, got %d", len(trimmed))
	}
	if !eCommon.IsHexAddress(hexAddr) {
		return nil, fmt.Errorf("addr: invalid hex address: %q", hexAddr)
	}
	decoded, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("addr: invalid hex encoding: %w", err)
	}
	var a Address
	copy(a.bytes[:], decoded)
	return &a, nil
}

// NewFromBytes builds an Address from a raw 20-byte slice.
func NewFromBytes(b []byte) (*Address, error) {
	if len(b) != 20 {
		return nil, fmt.Errorf("addr: invalid address length: expected 20 bytes, got %d", len(b))
	}
	var a Address
	copy(a.bytes[:], b)
	return &a, nil
}

// MustNewFromHex panics if hexAddr is not a valid address. Intended
// for static/test addresses only.
func MustNewFromHex(hexAddr string) *Address {
	a, err := NewFromHex(hexAddr)
	if err != nil {
		panic(err)
	}
	return a
}

// Bytes returns the raw 20-byte address.
func (a *Address) Bytes() []byte {
	if a == nil {
		return nil
	}
	return a.bytes[:]
}

// Hex returns the canonical EIP-55 checksummed hex representation.
func (a *Address) Hex() string {
	if a == nil {
		return ""
	}
	return eCommon.BytesToAddress(a.bytes[:]).Hex()
}

// String satisfies fmt.Stringer with the checksummed hex form.
func (a *Address) String() string {
	return a.Hex()
}

// Equal reports byte-for-byte equality, case-insensitively by
// construction since both sides are already normalized to raw bytes.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return bytes.Equal(a.bytes[:], other.bytes[:])
}

// EVMAddress converts to a go-ethereum common.Address, for callers
// that hand off into go-ethereum APIs (e.g. filter queries).
func (a *Address) EVMAddress() eCommon.Address {
	if a == nil {
		return eCommon.Address{}
	}
	return eCommon.BytesToAddress(a.bytes[:])
}

// FromEVM converts a go-ethereum common.Address into an Address.
func FromEVM(evmAddr eCommon.Address) *Address {
	return &Address{bytes: evmAddr}
}
