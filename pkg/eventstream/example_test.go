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

package eventstream_test

import (
	"encoding/hex"
	"fmt"

	"github.com/kslamph/chainevents/pkg/abi"
	"github.com/kslamph/chainevents/pkg/addr"
	"github.com/kslamph/chainevents/pkg/eventstream"
)

func hexTopic(s string) [32]byte {
	var t [32]byte
	b, _ := hex.DecodeString(s)
	copy(t[:], b)
	return t
}

// Example shows registering a well-known event as a wildcard and
// decoding a synthetic ERC-20 Transfer log against it.
func Example() {
	reg := eventstream.NewRegistry()
	desc, _ := abi.NewEventDescriptor("Transfer(address,address,uint256)", []abi.Param{
		{Name: "from", Type: abi.Address(), Indexed: true},
		{Name: "to", Type: abi.Address(), Indexed: true},
		{Name: "value", Type: abi.Uint(256)},
	})
	reg.Register(nil, desc)

	fromTopic := hexTopic("000000000000000000000000a0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	toTopic := hexTopic("0000000000000000000000004e83362442b8d1bec281594cea3050c8eb01311c")
	data, _ := hex.DecodeString("00000000000000000000000000000000000000000000000000000000000003e8") // 1000

	contract, _ := addr.NewFromHex("0x5aAeb6053f3E94C9b9A09f33669435E7Ef1BeAed")
	d := eventstream.NewDispatcher(reg)
	ev, err := d.Decode(eventstream.Log{
		Address: *contract,
		Topics:  [][32]byte{desc.Topic0, fromTopic, toTopic},
		Data:    data,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ev.Name)
	// Output:
	// Transfer
}

// ExampleRegistry_RegisterABIJSON demonstrates extending the registry
// with a custom ABI loaded from JSON.
func ExampleRegistry_RegisterABIJSON() {
	reg := eventstream.NewRegistry()
	abiJSON := []byte(`[{"type":"event","name":"Custom","inputs":[{"name":"x","type":"uint256","indexed":true}]}]`)
	if err := reg.RegisterABIJSON(nil, abiJSON); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("registered")
	// Output:
	// registered
}
