package postgres

import (
	"context"

	"infinitybasket/internal/domain/entity"
	domainerrors "infinitybasket/internal/domain/errors"
	"infinitybasket/internal/domain/repository"
	"infinitybasket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactDetailsRepository implements the repository.ContactDetailsRepository interface.
type contactDetailsRepository struct {
	db *gorm.DB
}

// NewContactDetailsRepository is the constructor for contactDetailsRepository.
func NewContactDetailsRepository(db *gorm.DB) repository.ContactDetailsRepository {
	return &contactDetailsRepository{
		db: db,
	}
}

// FindOrCreate returns the contact-details singleton, creating an empty row
// on first access.
func (repo *contactDetailsRepository) FindOrCreate(ctx context.Context) (*entity.ContactDetails, error) {
	var detailsM model.ContactDetailsModel

	err := repo.db.WithContext(ctx).First(&detailsM).Error
	if err == nil {
		return toContactDetailsDomain(&detailsM), nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find contact details")
	}

	if err := repo.db.WithContext(ctx).Create(&detailsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create contact details")
	}

	return toContactDetailsDomain(&detailsM), nil
}

// Update saves the full record.
func (repo *contactDetailsRepository) Update(ctx context.Context, details *entity.ContactDetails) error {
	detailsM := fromContactDetailsDomain(details)

	result := repo.db.WithContext(ctx).
		Model(&model.ContactDetailsModel{}).
		Where("id = ?", details.ID).
		Select("email", "phone", "location", "map_url", "hours", "instagram", "facebook", "twitter").
		Updates(detailsM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contact details")
	}

	if result.RowsAffected == 0 {
		return errors.New("contact details row missing")
	}

	return nil
}

// --- Mapper Functions ---

// toContactDetailsDomain converts a GORM ContactDetailsModel to a domain ContactDetails entity.
func toContactDetailsDomain(data *model.ContactDetailsModel) *entity.ContactDetails {
	if data == nil {
		return nil
	}

	return &entity.ContactDetails{
		ID:        data.ID,
		Email:     data.Email,
		Phone:     data.Phone,
		Location:  data.Location,
		MapURL:    data.MapURL,
		Hours:     data.Hours,
		Instagram: data.Instagram,
		Facebook:  data.Facebook,
		Twitter:   data.Twitter,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromContactDetailsDomain converts a domain ContactDetails entity to a GORM ContactDetailsModel.
func fromContactDetailsDomain(data *entity.ContactDetails) *model.ContactDetailsModel {
	if data == nil {
		return nil
	}

	return &model.ContactDetailsModel{
		ID:        data.ID,
		Email:     data.Email,
		Phone:     data.Phone,
		Location:  data.Location,
		MapURL:    data.MapURL,
		Hours:     data.Hours,
		Instagram: data.Instagram,
		Facebook:  data.Facebook,
		Twitter:   data.Twitter,
		UpdatedAt: data.UpdatedAt,
	}
}
