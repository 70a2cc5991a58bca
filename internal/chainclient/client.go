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

// Package chainclient maintains a reconnecting websocket subscription
// to a chain node's eth_subscribe("logs", ...) feed.
package chainclient

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Dialer opens a websocket connection to url. Overridable per Client
// so tests can substitute an in-memory transport instead of dialing a
// real node — the same role the reference connection pool's
// overridable getFunc plays for gRPC connections.
type Dialer func(ctx context.Context, url string) (*websocket.Conn, error)

func defaultDialer(ctx context.Context, url string) (*websocket.Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	return conn, err
}

// rpcRequest is a JSON-RPC 2.0 request envelope.
type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

// rpcResponse is a JSON-RPC 2.0 response or subscription notification
// envelope; exactly one of Result/Params is populated depending on
// which shape the message is.
type rpcResponse struct {
	ID     string          `json:"id,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Method string          `json:"method,omitempty"`
	Params struct {
		Subscription string          `json:"subscription"`
		Result       json.RawMessage `json:"result"`
	} `json:"params"`
	Error *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string { return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message) }

// Client is a single reconnecting subscription connection. It is not
// safe for concurrent Subscribe/Next calls from multiple goroutines —
// the spec's concurrency model is one reader goroutine per
// subscription connection.
type Client struct {
	url     string
	dialer  Dialer
	limiter *rate.Limiter
	logger  zerolog.Logger

	mu            sync.Mutex
	conn          *websocket.Conn
	onReconnect   func()
	subscriptions map[string]struct{} // subscription ids active on the current conn
}

// New builds a Client against url, throttling reconnect attempts to
// rateLimitRPS per second.
func New(url string, rateLimitRPS float64, logger zerolog.Logger) *Client {
	if rateLimitRPS <= 0 {
		rateLimitRPS = 1
	}
	return &Client{
		url:           url,
		dialer:        defaultDialer,
		limiter:       rate.NewLimiter(rate.Limit(rateLimitRPS), 1),
		logger:        logger,
		subscriptions: make(map[string]struct{}),
	}
}

// SetDialer overrides the websocket dialer, for tests.
func (c *Client) SetDialer(d Dialer) { c.dialer = d }

// OnReconnect registers a callback invoked every time the client
// establishes a new connection (including the first). Used by the
// caller to re-issue eth_subscribe calls lost when the socket dropped.
func (c *Client) OnReconnect(fn func()) { c.onReconnect = fn }

// connect dials a fresh connection, waiting on the reconnect rate
// limiter first so a tight crash loop on the remote end cannot turn
// into a local hot loop.
func (c *Client) connect(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	conn, err := c.dialer(ctx, c.url)
	if err != nil {
		return fmt.Errorf("chainclient: dial: %w", err)
	}
	c.mu.Lock()
	c.conn = conn
	c.subscriptions = make(map[string]struct{})
	c.mu.Unlock()
	if c.onReconnect != nil {
		c.onReconnect()
	}
	return nil
}

// Ensure connects if not already connected.
func (c *Client) Ensure(ctx context.Context) error {
	c.mu.Lock()
	connected := c.conn != nil
	c.mu.Unlock()
	if connected {
		return nil
	}
	return c.connect(ctx)
}

// SubscribeLogs issues eth_subscribe("logs", filter) and returns the
// server-assigned subscription id. filter is passed through verbatim
// (address/topics), the same shape go-ethereum's filterQuery JSON
// encodes to.
func (c *Client) SubscribeLogs(ctx context.Context, filter interface{}) (string, error) {
	if err := c.Ensure(ctx); err != nil {
		return "", err
	}
	reqID := uuid.NewString()
	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      reqID,
		Method:  "eth_subscribe",
		Params:  []interface{}{"logs", filter},
	}

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return "", fmt.Errorf("chainclient: not connected")
	}
	if err := conn.WriteJSON(req); err != nil {
		return "", fmt.Errorf("chainclient: subscribe write: %w", err)
	}

	var resp rpcResponse
	if err := conn.ReadJSON(&resp); err != nil {
		return "", fmt.Errorf("chainclient: subscribe read: %w", err)
	}
	if resp.Error != nil {
		return "", resp.Error
	}
	var subID string
	if err := json.Unmarshal(resp.Result, &subID); err != nil {
		return "", fmt.Errorf("chainclient: subscribe response: %w", err)
	}

	c.mu.Lock()
	c.subscriptions[subID] = struct{}{}
	c.mu.Unlock()
	return subID, nil
}

// Next blocks for the next subscription notification's raw log
// payload. On a read error it drops the connection and returns the
// error; the following Next call reconnects (respecting the reconnect
// rate limiter), which fires the OnReconnect callback so the caller
// can re-issue its subscriptions.
func (c *Client) Next(ctx context.Context) (json.RawMessage, error) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		if err := c.connect(ctx); err != nil {
			return nil, err
		}
		c.mu.Lock()
		conn = c.conn
		c.mu.Unlock()
	}

	var resp rpcResponse
	if err := conn.ReadJSON(&resp); err != nil {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		return nil, fmt.Errorf("chainclient: read: %w", err)
	}
	if resp.Method != "eth_subscription" {
		return nil, fmt.Errorf("chainclient: unexpected message method %q", resp.Method)
	}
	return resp.Params.Result, nil
}

// Close closes the underlying connection, if any.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}
