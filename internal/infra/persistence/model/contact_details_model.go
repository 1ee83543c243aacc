package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactDetailsModel mirrors the 'contact_details' table. The table holds a
// single row that is created empty on first read and edited in place.
type ContactDetailsModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(50)"`
	Location  string    `gorm:"type:text"`
	MapURL    string    `gorm:"type:text"`
	Hours     string    `gorm:"type:varchar(255)"`
	Instagram string    `gorm:"type:text"`
	Facebook  string    `gorm:"type:text"`
	Twitter   string    `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactDetailsModel) TableName() string {
	return "contact_details"
}

// BeforeCreate assigns an ID when the caller did not provide one.
func (m *ContactDetailsModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
