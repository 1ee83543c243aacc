package impl

import (
	"context"
	"testing"

	"infinitybasket/internal/domain/entity"
	domainerrors "infinitybasket/internal/domain/errors"
	"infinitybasket/internal/domain/repository"
	mockRepo "infinitybasket/internal/mocks/repository"
	mockSvc "infinitybasket/internal/mocks/service"
	"infinitybasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInboxService(messageRepo *mockRepo.MockMessageRepository, mailer *mockSvc.MockMailer) usecase.InboxUsecase {
	return NewInboxService(InboxServiceParams{
		MessageRepo: messageRepo,
		Mailer:      mailer,
		Logger:      newDiscardLogger(),
	})
}

func TestInboxService_Submit_PersistsAndNotifiesBothSides(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newInboxService(messageRepo, mailer)

	ctx := context.Background()

	messageRepo.On("Create", ctx, mock.MatchedBy(func(message *entity.Message) bool {
		return message.Status == entity.MessageStatusPending &&
			message.Name == "Alex" &&
			message.Body == "Do you ship abroad?"
	})).Return(nil)
	mailer.On("SendMessageReceipt", mock.Anything, mock.AnythingOfType("*entity.Message")).Return(nil)
	mailer.On("SendEnquiryAlert", mock.Anything, mock.AnythingOfType("*entity.Message")).Return(nil)

	message, err := service.Submit(ctx, usecase.SubmitMessageInput{
		Name:    "Alex",
		Email:   "alex@example.com",
		Subject: "Shipping",
		Message: "Do you ship abroad?",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MessageStatusPending, message.Status)
}

func TestInboxService_Submit_NotificationFailureSurfacesAfterPersist(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newInboxService(messageRepo, mailer)

	ctx := context.Background()

	messageRepo.On("Create", ctx, mock.AnythingOfType("*entity.Message")).Return(nil)
	mailer.On("SendMessageReceipt", mock.Anything, mock.AnythingOfType("*entity.Message")).Return(nil).Maybe()
	mailer.On("SendEnquiryAlert", mock.Anything, mock.AnythingOfType("*entity.Message")).
		Return(errors.New("smtp refused"))

	message, err := service.Submit(ctx, usecase.SubmitMessageInput{
		Name:    "Alex",
		Email:   "alex@example.com",
		Message: "Hello",
	})
	require.Error(t, err)
	assert.Nil(t, message)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "MAIL_DELIVERY_FAILED", appErr.ErrorCode())
	// The row was created before the send failed.
	messageRepo.AssertCalled(t, "Create", ctx, mock.AnythingOfType("*entity.Message"))
}

func TestInboxService_List(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newInboxService(messageRepo, mailer)

	ctx := context.Background()
	stored := []*entity.Message{
		{ID: uuid.New(), Name: "Newest"},
		{ID: uuid.New(), Name: "Oldest"},
	}

	messageRepo.On("FindAll", ctx).Return(stored, nil)

	messages, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, messages)
}

func TestInboxService_Delete_PassesIDsThrough(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newInboxService(messageRepo, mailer)

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	messageRepo.On("DeleteByIDs", ctx, ids).Return(nil)

	err := service.Delete(ctx, ids)
	require.NoError(t, err)
}

func TestInboxService_Reply_NotFound(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newInboxService(messageRepo, mailer)

	ctx := context.Background()
	id := uuid.New()

	messageRepo.On("FindByID", ctx, id).Return(nil, repository.ErrMessageNotFound)

	message, err := service.Reply(ctx, usecase.ReplyInput{MessageID: id, Content: "Hi"})
	require.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
}

func TestInboxService_Reply_TransitionsToReplied(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newInboxService(messageRepo, mailer)

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Message{
		ID:     id,
		Name:   "Alex",
		Email:  "alex@example.com",
		Body:   "Do you ship abroad?",
		Status: entity.MessageStatusPending,
	}

	messageRepo.On("FindByID", ctx, id).Return(stored, nil)
	messageRepo.On("AttachReply", ctx, id, mock.MatchedBy(func(reply entity.Reply) bool {
		return reply.Content == "Yes, worldwide." && !reply.RepliedAt.IsZero()
	})).Return(nil)
	mailer.On("SendReply", ctx, mock.MatchedBy(func(message *entity.Message) bool {
		return message.Status == entity.MessageStatusReplied &&
			message.Reply != nil &&
			message.Reply.Content == "Yes, worldwide."
	})).Return(nil)

	message, err := service.Reply(ctx, usecase.ReplyInput{MessageID: id, Content: "Yes, worldwide."})
	require.NoError(t, err)
	assert.Equal(t, entity.MessageStatusReplied, message.Status)
	require.NotNil(t, message.Reply)
	assert.Equal(t, "Yes, worldwide.", message.Reply.Content)
}

func TestInboxService_Reply_MailFailure(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newInboxService(messageRepo, mailer)

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Message{ID: id, Email: "alex@example.com", Status: entity.MessageStatusPending}

	messageRepo.On("FindByID", ctx, id).Return(stored, nil)
	messageRepo.On("AttachReply", ctx, id, mock.AnythingOfType("entity.Reply")).Return(nil)
	mailer.On("SendReply", ctx, mock.AnythingOfType("*entity.Message")).Return(errors.New("smtp refused"))

	message, err := service.Reply(ctx, usecase.ReplyInput{MessageID: id, Content: "Hi"})
	require.Error(t, err)
	assert.Nil(t, message)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "MAIL_DELIVERY_FAILED", appErr.ErrorCode())
}
