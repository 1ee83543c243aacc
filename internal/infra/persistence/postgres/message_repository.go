package postgres

import (
	"context"

	"infinitybasket/internal/domain/entity"
	domainerrors "infinitybasket/internal/domain/errors"
	"infinitybasket/internal/domain/repository"
	"infinitybasket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new contact-form submission with status pending.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	// Update the entity with generated values
	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// FindAll returns every message, newest first.
func (repo *messageRepository) FindAll(ctx context.Context) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// FindByID retrieves a message by its unique ID.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by ID")
	}

	return toMessageDomain(&messageM), nil
}

// DeleteByIDs removes the messages matching the given ids. Ids that do not
// match any row are silently ignored.
func (repo *messageRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.MessageModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete messages")
	}

	return nil
}

// AttachReply stores the reply and flips the status to replied. A second
// reply to the same message overwrites the first.
func (repo *messageRepository) AttachReply(ctx context.Context, id uuid.UUID, reply entity.Reply) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reply_content": reply.Content,
			"replied_at":    reply.RepliedAt,
			"status":        string(entity.MessageStatusReplied),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to attach reply")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	message := &entity.Message{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Subject:   data.Subject,
		Body:      data.Body,
		Status:    entity.MessageStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.ReplyContent != nil && data.RepliedAt != nil {
		message.Reply = &entity.Reply{
			Content:   *data.ReplyContent,
			RepliedAt: *data.RepliedAt,
		}
	}

	return message
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	messageM := &model.MessageModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Subject:   data.Subject,
		Body:      data.Body,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Reply != nil {
		messageM.ReplyContent = &data.Reply.Content
		messageM.RepliedAt = &data.Reply.RepliedAt
	}

	return messageM
}
