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

const (
	// AddressHexLength is the length of a "0x"-prefixed hex address.
	AddressHexLength = 42

	// Well-known network names accepted in configuration.
	NetworkMainnet = "mainnet"
	NetworkSepolia = "sepolia"
	NetworkLocal   = "local"
)

// Network describes a chain endpoint set a subscription can target.
type Network struct {
	Name    string
	ChainID uint64
	WSURL   string
}

// Predefined reference networks. RPC providers require their own API
// key in the URL; these are placeholders a configuration file
// typically overrides with an env-substituted value.
var (
	Mainnet = Network{Name: NetworkMainnet, ChainID: 1, WSURL: "wss://eth-mainnet.g.alchemy.com/v2/${ALCHEMY_KEY}"}
	Sepolia = Network{Name: NetworkSepolia, ChainID: 11155111, WSURL: "wss://eth-sepolia.g.alchemy.com/v2/${ALCHEMY_KEY}"}
	Local   = Network{Name: NetworkLocal, ChainID: 1337, WSURL: "ws://127.0.0.1:8545"}
)

// GetNetwork returns a predefined network by name, or nil if name
// names none of the built-ins (a custom network is still usable, just
// not one of these convenience constants).
func GetNetwork(name string) *Network {
	switch name {
	case NetworkMainnet:
		return &Mainnet
	case NetworkSepolia:
		return &Sepolia
	case NetworkLocal:
		return &Local
	default:
		return nil
	}
}
