// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"sync"
)

// MockResponse is one canned reply for the mock client.
type MockResponse struct {
	Content string
	Err     error
}

// MockClient returns pre-configured responses in sequence, repeating the
// last one once exhausted, and records every request for assertions.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []Request
	idx       int
}

var _ Client = (*MockClient)(nil)

// NewMockClient builds a mock returning the given responses in order.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

// Complete returns the next canned response and records the request.
func (m *MockClient) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)

	if len(m.responses) == 0 {
		return &Response{Model: "mock"}, nil
	}

	r := m.responses[m.idx]
	if m.idx < len(m.responses)-1 {
		m.idx++
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return &Response{Content: r.Content, Model: "mock"}, nil
}

// Calls returns a copy of every request received.
func (m *MockClient) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
