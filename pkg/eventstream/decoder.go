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

package eventstream

import (
	"fmt"
	"sync"

	"github.com/kslamph/chainevents/pkg/abi"
	"github.com/kslamph/chainevents/pkg/addr"
)

// Log is the subset of a chain log entry the dispatcher needs: the
// emitting contract, its topics (topics[0] is always the event
// signature hash when present), and the ABI-encoded data payload.
type Log struct {
	Address addr.Address
	Topics  [][32]byte
	Data    []byte
}

// DecodedParam is one decoded event parameter in declaration order.
// Indexed parameters are not type-decoded: for every indexed
// parameter, static or dynamic, Value is left zero and RawTopic
// carries the raw 32-byte topic. For dynamic types (string, bytes,
// array, tuple) that topic is a hash Solidity computed rather than an
// encoding, so the original value is not recoverable from it at all.
type DecodedParam struct {
	Name     string
	Type     abi.Type
	Indexed  bool
	Value    abi.Value
	RawTopic [32]byte
}

// DecodedEvent is a fully paired, fully decoded event log.
type DecodedEvent struct {
	Name     string
	Contract addr.Address
	Topic0   [32]byte
	Params   []DecodedParam
}

// registryKey pairs a contract address with a topic0 hash. The zero
// address is the wildcard: a descriptor registered under it matches
// any contract emitting that topic0.
type registryKey struct {
	addr   [20]byte
	topic0 [32]byte
}

// Registry holds the set of known event descriptors a Dispatcher
// matches incoming logs against, keyed by (contract address, topic0)
// the way the reference registry keys by a bare 4-byte method
// signature — generalized here to the full 32-byte topic0 plus an
// optional contract scope, since two unrelated contracts can legally
// reuse the same event signature.
type Registry struct {
	mu    sync.RWMutex
	descs map[registryKey]*abi.EventDescriptor
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{descs: make(map[registryKey]*abi.EventDescriptor)}
}

// Register associates d with a specific contract. A nil contract
// registers d as a wildcard, matched for any contract address.
func (r *Registry) Register(contract *addr.Address, d *abi.EventDescriptor) {
	var key registryKey
	key.topic0 = d.Topic0
	if contract != nil {
		copy(key.addr[:], contract.Bytes())
	}
	r.mu.Lock()
	r.descs[key] = d
	r.mu.Unlock()
}

// RegisterABIJSON parses abiJSON and registers every event entry it
// contains against contract (nil for wildcard).
func (r *Registry) RegisterABIJSON(contract *addr.Address, abiJSON []byte) error {
	descs, err := abi.ParseABIJSON(abiJSON)
	if err != nil {
		return fmt.Errorf("eventstream: register abi: %w", err)
	}
	for _, d := range descs {
		r.Register(contract, d)
	}
	return nil
}

// lookup finds the descriptor for (contract, topic0), preferring a
// contract-scoped registration over the wildcard.
func (r *Registry) lookup(contract [20]byte, topic0 [32]byte) *abi.EventDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.descs[registryKey{addr: contract, topic0: topic0}]; ok {
		return d
	}
	var zero [20]byte
	return r.descs[registryKey{addr: zero, topic0: topic0}]
}

// Dispatcher pairs incoming logs with registered descriptors and
// decodes them.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher builds a Dispatcher against registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// ErrUnregistered is returned by Decode when no descriptor matches the
// log's (contract, topic0) pair.
var ErrUnregistered = fmt.Errorf("eventstream: no descriptor registered for this log")

// Decode matches log against the dispatcher's registry and decodes
// it. Indexed parameters are paired with their topic in declaration
// order; non-indexed parameters are decoded out of Data as a single
// tuple.
func (d *Dispatcher) Decode(log Log) (*DecodedEvent, error) {
	if len(log.Topics) == 0 {
		return nil, fmt.Errorf("eventstream: log has no topics")
	}
	var contractBytes [20]byte
	copy(contractBytes[:], log.Address.Bytes())

	desc := d.registry.lookup(contractBytes, log.Topics[0])
	if desc == nil {
		return nil, ErrUnregistered
	}

	nonIndexedTypes := desc.NonIndexed()
	var nonIndexedValues []abi.Value
	if len(nonIndexedTypes) > 0 {
		values, err := abi.Decode(nonIndexedTypes, log.Data)
		if err != nil {
			return nil, fmt.Errorf("eventstream: decode %s: %w", desc.Name, err)
		}
		nonIndexedValues = values
	}

	params := make([]DecodedParam, len(desc.Params))
	topicIdx := 1
	valueIdx := 0
	for i, p := range desc.Params {
		params[i] = DecodedParam{Name: p.Name, Type: p.Type, Indexed: p.Indexed}
		if p.Indexed {
			if topicIdx < len(log.Topics) {
				params[i].RawTopic = log.Topics[topicIdx]
			}
			topicIdx++
			continue
		}
		if valueIdx < len(nonIndexedValues) {
			params[i].Value = nonIndexedValues[valueIdx]
		}
		valueIdx++
	}

	return &DecodedEvent{
		Name:     desc.Name,
		Contract: log.Address,
		Topic0:   log.Topics[0],
		Params:   params,
	}, nil
}
