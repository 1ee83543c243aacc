package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "infinitybasket/internal/delivery/context"
	"infinitybasket/internal/domain/entity"
	domainerrors "infinitybasket/internal/domain/errors"
	"infinitybasket/internal/domain/repository"
	"infinitybasket/internal/domain/service"
	"infinitybasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// inboxService implements the InboxUsecase interface.
type inboxService struct {
	messageRepo repository.MessageRepository
	mailer      service.Mailer
	logger      *slog.Logger
}

// InboxServiceParams holds dependencies for inboxService, injected by Fx.
type InboxServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	Mailer      service.Mailer
	Logger      *slog.Logger
}

// NewInboxService is the constructor for inboxService.
func NewInboxService(params InboxServiceParams) usecase.InboxUsecase {
	return &inboxService{
		messageRepo: params.MessageRepo,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *inboxService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit persists the message and notifies both sides in parallel. The row
// exists once Create succeeds; a failed send after that still fails the
// request, so the caller may see an error for a message that was stored.
func (srv *inboxService) Submit(ctx context.Context, input usecase.SubmitMessageInput) (*entity.Message, error) {
	message := &entity.Message{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Message,
		Status:  entity.MessageStatusPending,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to store message")
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.mailer.SendMessageReceipt(groupCtx, message)
	})
	group.Go(func() error {
		return srv.mailer.SendEnquiryAlert(groupCtx, message)
	})

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to send submission notifications",
			slog.Any("messageID", message.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMailDeliveryFailed.WithDetails(err.Error()), "message stored but notification failed")
	}

	srv.log(ctx).Info("Message submitted", slog.Any("messageID", message.ID))

	return message, nil
}

// List returns every message, newest first.
func (srv *inboxService) List(ctx context.Context) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// Delete removes the given messages; unknown ids are ignored.
func (srv *inboxService) Delete(ctx context.Context, ids []uuid.UUID) error {
	if err := srv.messageRepo.DeleteByIDs(ctx, ids); err != nil {
		return errors.Wrap(err, "failed to delete messages")
	}

	srv.log(ctx).Info("Messages deleted", slog.Int("count", len(ids)))

	return nil
}

// Reply attaches the reply, flips the status and emails the sender. Replying
// again overwrites the previous reply.
func (srv *inboxService) Reply(ctx context.Context, input usecase.ReplyInput) (*entity.Message, error) {
	message, err := srv.messageRepo.FindByID(ctx, input.MessageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMessageNotFound, "message lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load message for reply")
	}

	reply := entity.Reply{
		Content:   input.Content,
		RepliedAt: time.Now(),
	}

	if err := srv.messageRepo.AttachReply(ctx, message.ID, reply); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMessageNotFound, "message vanished during reply")
		}

		return nil, errors.Wrap(err, "failed to store reply")
	}

	message.Reply = &reply
	message.Status = entity.MessageStatusReplied

	if err := srv.mailer.SendReply(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to email reply",
			slog.Any("messageID", message.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMailDeliveryFailed.WithDetails(err.Error()), "reply stored but email failed")
	}

	srv.log(ctx).Info("Reply sent", slog.Any("messageID", message.ID))

	return message, nil
}
