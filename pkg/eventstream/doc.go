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

// Package eventstream maintains a registry of event descriptors and
// pairs incoming chain logs with the descriptor that decodes them.
//
//	reg := eventstream.NewRegistry()
//	_ = reg.RegisterABIJSON(contract, abiJSON)
//	d := eventstream.NewDispatcher(reg)
//	ev, err := d.Decode(eventstream.Log{Address: *contract, Topics: topics, Data: data})
//
// A descriptor can be registered against a specific contract address
// or, by passing a nil address to Register/RegisterABIJSON, as a
// wildcard matched against any contract emitting that topic0 — useful
// for well-known signatures (ERC-20 Transfer, Approval) a subscription
// wants decoded regardless of which contract emits them.
//
// Decode reports an unrecognised signature with the sentinel
// ErrUnregistered, so the caller can tell it apart from a decode
// failure and choose to skip that log rather than abort a whole batch
// over one unknown event.
package eventstream
