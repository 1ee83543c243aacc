package repository

import (
	"context"

	"infinitybasket/internal/domain/entity"
	"infinitybasket/internal/errors"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message id does not resolve to a row.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository persists contact-form submissions.
type MessageRepository interface {
	// Create persists a new message with status pending.
	Create(ctx context.Context, message *entity.Message) error

	// FindAll returns every message, newest first. There is no pagination;
	// the inbox is expected to stay small.
	FindAll(ctx context.Context) ([]*entity.Message, error)

	// FindByID returns the message with the given id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// DeleteByIDs removes the messages matching the given ids. Ids that do
	// not match any row are silently ignored.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error

	// AttachReply stores the reply and flips the status to replied. Calling
	// it twice overwrites the first reply.
	AttachReply(ctx context.Context, id uuid.UUID, reply entity.Reply) error
}
