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

// Package abi decodes Solidity-style ABI-encoded event log data into
// typed values, independent of any particular chain client.
//
// # Type grammar
//
// Parse turns a Solidity type string into a Type term:
//
//	t, err := abi.Parse("uint256")
//	t, err := abi.Parse("(address,uint256[])")
//
// # Event descriptors
//
// NewEventDescriptor combines a canonical signature with its parameter
// list and computes the topic0 hash a log's first topic is matched
// against:
//
//	d, err := abi.NewEventDescriptor("Transfer(address,address,uint256)",
//	    []abi.Param{{Name: "from", Type: abi.Address(), Indexed: true},
//	                {Name: "to", Type: abi.Address(), Indexed: true},
//	                {Name: "value", Type: abi.Uint(256)}})
//
// # Decoding
//
// Decode reads the non-indexed parameters out of a log's data payload:
//
//	values, err := abi.Decode(d.NonIndexed(), data)
//
// Integers are always returned as *big.Int, regardless of declared
// width, so callers never lose precision truncating into a machine
// word.
package abi
