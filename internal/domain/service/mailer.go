package service

import (
	"context"

	"infinitybasket/internal/domain/entity"
)

// Mailer defines the outbound notification relay. Every method sends exactly
// one email; nothing is retried, a failed send surfaces to the caller as a
// terminal failure for that request.
type Mailer interface {
	// SendPasswordResetLink mails the raw reset token link to the admin.
	SendPasswordResetLink(ctx context.Context, to, resetURL string) error

	// SendPasswordChanged mails a confirmation after a password change.
	SendPasswordChanged(ctx context.Context, to string) error

	// SendMessageReceipt mails the sender a copy of their submission.
	SendMessageReceipt(ctx context.Context, message *entity.Message) error

	// SendEnquiryAlert mails the admin mailbox about a new submission.
	SendEnquiryAlert(ctx context.Context, message *entity.Message) error

	// SendReply mails the admin's reply to the original sender. The
	// message's Reply field must be set.
	SendReply(ctx context.Context, message *entity.Message) error

	// SendDetailsChangedAlert mails the admin mailbox a summary of the
	// contact-details fields that changed, keyed by field name.
	SendDetailsChangedAlert(ctx context.Context, changes map[string]string) error
}
