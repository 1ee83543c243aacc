package usecase

import (
	"context"
	"io"

	"infinitybasket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ImageUpload is one file lifted out of a multipart request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// CreateProductInput defines the data required to create a catalog entry.
type CreateProductInput struct {
	Name        string `validate:"required"`
	Brand       string
	Description string
	Category    string
	Images      []ImageUpload
}

// UpdateProductInput replaces a product's describing fields. ExistingImages
// lists previously stored URLs the client wants to keep; new uploads are
// appended after them.
type UpdateProductInput struct {
	ID             uuid.UUID
	Name           string `validate:"required"`
	Brand          string
	Description    string
	Category       string
	ExistingImages []string
	NewImages      []ImageUpload
}

// ReorderUpdate is one item of a batch reorder. Order is a pointer so a
// missing field can be told apart from an explicit zero.
type ReorderUpdate struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Order *int      `json:"order" validate:"required"`
}

// CatalogUsecase defines the product catalog operations.
type CatalogUsecase interface {
	Create(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, input UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ToggleFeatured sets the featured flag while holding the showcase
	// between its minimum and maximum size.
	ToggleFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.Product, error)

	// Reorder applies the display ranks item by item. Items are written
	// concurrently and a failed item does not roll back the others.
	Reorder(ctx context.Context, updates []ReorderUpdate) error
}
