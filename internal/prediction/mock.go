package prediction

import (
	"context"
	"sync"
)

// MockClient is a deterministic Client for tests. It returns canned
// results in FIFO order and records all requests.
type MockClient struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []Features

	// Up controls the Healthy probe.
	Up bool
}

// MockResult is a canned response for the MockClient.
type MockResult struct {
	Result Result
	Err    error
}

// NewMockClient creates a MockClient with the given canned results.
func NewMockClient(results ...MockResult) *MockClient {
	return &MockClient{results: results, Up: true}
}

// Predict returns the next canned result, or a ServiceError when the
// queue is empty.
func (m *MockClient) Predict(_ context.Context, f Features) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, f)

	if len(m.results) == 0 {
		return Result{}, &ServiceError{Err: nil}
	}
	next := m.results[0]
	m.results = m.results[1:]
	if next.Err != nil {
		return Result{}, next.Err
	}
	return next.Result, nil
}

func (m *MockClient) Healthy(context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Up
}

// CallCount returns the number of Predict calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
