package port

import "context"

// ContactMessage is a visitor message from the landing page contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// EmailSender defines the contract for delivering contact messages to the
// organizing team.
type EmailSender interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}
