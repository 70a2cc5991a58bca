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
	"encoding/json"
	"fmt"
)

// abiEntry is one element of a standard Solidity ABI JSON array. Only
// the fields event descriptors need are kept; function/constructor/
// error/fallback entries are skipped by ParseABIJSON.
type abiEntry struct {
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Anonymous bool       `json:"anonymous"`
	Inputs    []abiInput `json:"inputs"`
}

type abiInput struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Indexed    bool       `json:"indexed"`
	Components []abiInput `json:"components"`
}

// ParseABIJSON parses a standard Solidity ABI JSON document and
// returns an EventDescriptor for every "event" entry it contains.
// Non-event entries (constructor, function, error) are ignored.
func ParseABIJSON(data []byte) ([]*EventDescriptor, error) {
	var entries []abiEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse abi json: %w", err)
	}

	var out []*EventDescriptor
	for _, e := range entries {
		if e.Type != "event" {
			continue
		}
		d, err := eventDescriptorFromEntry(e)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", e.Name, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func eventDescriptorFromEntry(e abiEntry) (*EventDescriptor, error) {
	params := make([]Param, len(e.Inputs))
	typeNames := make([]string, len(e.Inputs))
	for i, in := range e.Inputs {
		t, err := typeFromInput(in)
		if err != nil {
			return nil, err
		}
		params[i] = Param{Name: in.Name, Type: t, Indexed: in.Indexed}
		typeNames[i] = Render(t)
	}
	sig := e.Name + "(" + joinCommas(typeNames) + ")"
	return NewEventDescriptor(sig, params)
}

// typeFromInput resolves an ABI input's type string, expanding
// "tuple"/"tuple[]" using its nested components rather than Parse
// (which has no way to see the components side-band the JSON format
// carries them in).
func typeFromInput(in abiInput) (Type, error) {
	switch in.Type {
	case "tuple":
		return tupleFromComponents(in.Components)
	case "tuple[]":
		elem, err := tupleFromComponents(in.Components)
		if err != nil {
			return Type{}, err
		}
		return Array(elem), nil
	default:
		return Parse(in.Type)
	}
}

func tupleFromComponents(components []abiInput) (Type, error) {
	fields := make([]Type, len(components))
	for i, c := range components {
		t, err := typeFromInput(c)
		if err != nil {
			return Type{}, err
		}
		fields[i] = t
	}
	return Tuple(fields...), nil
}

func joinCommas(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out
}
