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

// wordSize is the ABI word width: every head slot and every
// length/offset field is exactly one 32-byte word.
const wordSize = 32

// peek returns a borrowed slice data[off:off+length], failing if the
// range runs past the end of data. The addition is checked so that a
// maliciously large off (near MaxInt) cannot wrap around and pass the
// bounds check.
func peek(data []byte, off, length int) ([]byte, error) {
	if off < 0 || length < 0 {
		return nil, newDecodeError(OutOfBounds, "", off)
	}
	end := off + length
	if end < off || end > len(data) {
		return nil, newDecodeError(OutOfBounds, "", off)
	}
	return data[off:end], nil
}

// peekWord copies the 32-byte word starting at off.
func peekWord(data []byte, off int) ([wordSize]byte, error) {
	var out [wordSize]byte
	s, err := peek(data, off, wordSize)
	if err != nil {
		return out, err
	}
	copy(out[:], s)
	return out, nil
}

// wordToInt interprets a 32-byte word as a length or offset: the top
// 28 bytes must be zero (the value must fit in a machine int), and
// the low 4 bytes are read big-endian. This is the strict-usize check
// spec.md §4.4/§8 requires: it rejects maliciously oversized encodings
// instead of silently truncating them.
func wordToInt(w [wordSize]byte) (int, error) {
	for _, b := range w[:28] {
		if b != 0 {
			return 0, newDecodeError(InvalidUnsignedInteger, "", 0)
		}
	}
	v := int(w[28])<<24 | int(w[29])<<16 | int(w[30])<<8 | int(w[31])
	return v, nil
}

// takeBytes copies length bytes starting at off.
func takeBytes(data []byte, off, length int) ([]byte, error) {
	s, err := peek(data, off, length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, s)
	return out, nil
}
