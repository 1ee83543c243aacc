package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageModel mirrors the 'messages' table. A reply is stored inline as a
// nullable content/timestamp pair rather than a separate table; a message
// carries at most one reply.
type MessageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Subject      string    `gorm:"type:varchar(255)"`
	Body         string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReplyContent *string   `gorm:"type:text"`
	RepliedAt    *time.Time
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}

// BeforeCreate assigns an ID when the caller did not provide one.
func (m *MessageModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
