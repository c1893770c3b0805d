package sms

import (
	"context"
	"fmt"
	"sync"
)

// Mock records sends and can be told to fail specific numbers.
type Mock struct {
	mu      sync.Mutex
	Sent    []string
	FailFor map[string]bool
	Err     error
}

func (m *Mock) Send(ctx context.Context, toPhone, body string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if m.FailFor[toPhone] {
		return "", fmt.Errorf("mock: delivery to %s failed", toPhone)
	}
	m.Sent = append(m.Sent, toPhone)
	return fmt.Sprintf("mock-%d", len(m.Sent)), nil
}
