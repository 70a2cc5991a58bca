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
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"
)

// signatureShape matches "Name(t1,t2,...)", capturing the name and the
// raw (possibly nested) parameter list.
var signatureShape = regexp.MustCompile(`^([A-Za-z_$][A-Za-z0-9_$]*)\(([\s\S]*)\)$`)

// Param is one entry of an event's parameter list: its declared type,
// its name (informational only — decoding never keys off it), and
// whether it is emitted as an indexed topic rather than in the data
// payload.
type Param struct {
	Name    string
	Type    Type
	Indexed bool
}

// EventDescriptor is the fully parsed, checksum-able shape of a single
// Solidity event declaration.
type EventDescriptor struct {
	Name      string
	Signature string // canonical "Name(t1,t2,...)" form
	Params    []Param
	Topic0    [32]byte
}

// NonIndexed returns the types of the non-indexed parameters, in
// declaration order — this is the tuple Decode expects for a log's
// data payload.
func (d EventDescriptor) NonIndexed() []Type {
	var out []Type
	for _, p := range d.Params {
		if !p.Indexed {
			out = append(out, p.Type)
		}
	}
	return out
}

// Indexed returns the indexed parameters, in declaration order. Their
// raw topic bytes are surfaced as-is (see pkg/eventstream) rather than
// type-decoded: Solidity hashes dynamic indexed types (string, bytes,
// arrays, tuples) into the topic, which is not reversible.
func (d EventDescriptor) Indexed() []Param {
	var out []Param
	for _, p := range d.Params {
		if p.Indexed {
			out = append(out, p)
		}
	}
	return out
}

// ParseSignature parses "Name(t1,t2,...)" into a name and parameter
// Type list, without any indexed/non-indexed annotation — callers that
// need Indexed flags should build Params directly and call
// NewEventDescriptor.
func ParseSignature(sig string) (name string, params []Type, err error) {
	sig = strings.TrimSpace(sig)
	m := signatureShape.FindStringSubmatch(sig)
	if m == nil {
		return "", nil, &SignatureError{Kind: InvalidSignatureFormat, Input: sig}
	}
	name = m[1]
	body := strings.TrimSpace(m[2])
	if body == "" {
		return name, nil, nil
	}
	parts, splitErr := splitTopLevel(body)
	if splitErr != nil {
		return "", nil, &SignatureError{Kind: InvalidSignatureFormat, Input: sig, Err: splitErr}
	}
	params = make([]Type, len(parts))
	for i, p := range parts {
		t, perr := Parse(strings.TrimSpace(p))
		if perr != nil {
			return "", nil, &SignatureError{Kind: UnsupportedType, Input: sig, Err: perr}
		}
		params[i] = t
	}
	return name, params, nil
}

// NewEventDescriptor builds an EventDescriptor from a signature string
// and an explicit Param list carrying indexed flags and names. The
// signature's own type list is re-derived from params so the two can
// never drift; sig is used only to recover the event name and to
// render the canonical signature used for the topic0 hash.
func NewEventDescriptor(sig string, params []Param) (*EventDescriptor, error) {
	name, _, err := ParseSignature(sig)
	if err != nil {
		return nil, err
	}

	types := make([]Type, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	canon := renderSignature(name, types)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(canon))
	var topic0 [32]byte
	copy(topic0[:], h.Sum(nil))

	return &EventDescriptor{
		Name:      name,
		Signature: canon,
		Params:    params,
		Topic0:    topic0,
	}, nil
}

// NewEventDescriptorFromSignature builds an EventDescriptor straight
// from a bare "Name(t1,t2,...)" signature, with every parameter marked
// non-indexed. A bare signature carries no indexed/non-indexed
// annotation, so this is the most a config line giving only the
// signature can ever support; decoding an event with indexed
// parameters this way requires the full ABI JSON instead, via
// ParseABIJSON.
func NewEventDescriptorFromSignature(sig string) (*EventDescriptor, error) {
	name, types, err := ParseSignature(sig)
	if err != nil {
		return nil, err
	}
	params := make([]Param, len(types))
	for i, t := range types {
		params[i] = Param{Type: t}
	}
	return NewEventDescriptor(name+"("+joinRendered(types)+")", params)
}

func joinRendered(types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = Render(t)
	}
	return strings.Join(parts, ",")
}

func renderSignature(name string, types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = Render(t)
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}
