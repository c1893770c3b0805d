package sms

import "context"

// Provider sends one outbound message and returns the provider's message id.
type Provider interface {
	Send(ctx context.Context, toPhone, body string) (providerMessageID string, err error)
}
