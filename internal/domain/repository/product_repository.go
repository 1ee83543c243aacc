package repository

import (
	"context"

	"infinitybasket/internal/domain/entity"
	"infinitybasket/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product id does not resolve to a row.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists catalog entries.
type ProductRepository interface {
	// Create persists a new product and fills in its generated fields.
	Create(ctx context.Context, product *entity.Product) error

	// FindAll returns every product; the client is responsible for sorting
	// and filtering, the server does not.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID returns the product with the given id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Update saves the full product row.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product with the given id.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountFeatured returns the number of products currently featured.
	CountFeatured(ctx context.Context) (int64, error)

	// SetFeatured flips the featured flag on a single product.
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.Product, error)

	// UpdateSortOrder sets the display rank of a single product. Batch
	// reorders call this once per item with no transaction around the batch.
	UpdateSortOrder(ctx context.Context, id uuid.UUID, order int) error
}
