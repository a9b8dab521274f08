package noop

import (
	"context"
	"log"

	"hackfest/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs contact messages to
// stdout. Used in development and when no email provider is configured.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendContactMessage(_ context.Context, msg port.ContactMessage) error {
	log.Printf("[NOOP EMAIL] Contact message from %s <%s>: %s", msg.Name, msg.Email, msg.Message)
	return nil
}
