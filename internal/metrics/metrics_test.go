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

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewRegistersAllCollectors constructs Metrics once; promauto
// registers each collector against the default registry, and a
// second New() call in the same process would panic on duplicate
// registration, so this package keeps exactly one constructing test.
func TestNewRegistersAllCollectors(t *testing.T) {
	m := New()
	assert.NotNil(t, m.LogsReceived)
	assert.NotNil(t, m.EventsDecoded)
	assert.NotNil(t, m.DecodeErrors)
	assert.NotNil(t, m.Reconnects)
	assert.NotNil(t, m.ActiveSubs)
	assert.NotNil(t, m.DecodeDuration)

	m.LogsReceived.Inc()
	m.EventsDecoded.WithLabelValues("Transfer").Inc()
	m.ActiveSubs.Set(3)
}

func TestHandlerNotNil(t *testing.T) {
	assert.NotNil(t, Handler())
}
