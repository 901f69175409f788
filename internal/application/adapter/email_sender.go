// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// EmailSender defines the interface for sending transactional email.
type EmailSender interface {
	// Send sends a single HTML email.
	Send(ctx context.Context, to, subject, htmlBody string) error
}
