package usecase

import (
	"context"

	"infinitybasket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitMessageInput defines the data arriving from the public contact form.
type SubmitMessageInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// ReplyInput carries the admin's reply to a stored message.
type ReplyInput struct {
	MessageID uuid.UUID
	Content   string `json:"replyContent" validate:"required"`
}

// InboxUsecase defines the enquiry channel operations.
type InboxUsecase interface {
	// Submit persists the message and notifies both sides. The message is
	// stored before any email goes out; a failed send still surfaces as an
	// error to the caller.
	Submit(ctx context.Context, input SubmitMessageInput) (*entity.Message, error)

	List(ctx context.Context) ([]*entity.Message, error)

	// Delete removes the given messages; unknown ids are ignored.
	Delete(ctx context.Context, ids []uuid.UUID) error

	// Reply attaches the reply, flips the status and emails the sender.
	Reply(ctx context.Context, input ReplyInput) (*entity.Message, error)
}
