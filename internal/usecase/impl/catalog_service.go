package impl

import (
	"context"
	"log/slog"

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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores the uploaded images on the media host and persists the product.
func (srv *catalogService) Create(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	imageURLs, err := srv.uploadImages(ctx, input.Images)
	if err != nil {
		srv.log(ctx).Error("Image upload failed during product creation", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrImageUploadFailed.WithDetails(err.Error()), "failed to upload product images")
	}

	product := &entity.Product{
		Name:        input.Name,
		Brand:       input.Brand,
		Description: input.Description,
		Category:    input.Category,
		Images:      imageURLs,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Int("images", len(imageURLs)))

	return product, nil
}

// List returns the full catalog. Sorting and filtering stay client-side.
func (srv *catalogService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Get returns one product by id.
func (srv *catalogService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// Update replaces the describing fields. The final image list is the retained
// existing URLs followed by freshly uploaded ones; anything not retained is
// simply dropped from the record, the media host is not cleaned up.
func (srv *catalogService) Update(ctx context.Context, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load product for update")
	}

	newURLs, err := srv.uploadImages(ctx, input.NewImages)
	if err != nil {
		srv.log(ctx).Error("Image upload failed during product update", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrImageUploadFailed.WithDetails(err.Error()), "failed to upload product images")
	}

	product.Name = input.Name
	product.Brand = input.Brand
	product.Description = input.Description
	product.Category = input.Category
	product.Images = append(append([]string{}, input.ExistingImages...), newURLs...)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", product.ID))

	return product, nil
}

// Delete removes the product row. Stored images stay on the media host.
func (srv *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// ToggleFeatured flips the featured flag while holding the showcase between
// its bounds. Count and write are separate statements; two simultaneous
// toggles can still slip past the bound, which matches how the feature has
// always behaved.
func (srv *catalogService) ToggleFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.Product, error) {
	count, err := srv.productRepo.CountFeatured(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count featured products")
	}

	if featured && count >= entity.MaxFeaturedProducts {
		srv.log(ctx).Warn("Featured limit reached", slog.Int64("count", count))

		return nil, errors.Wrap(domainerrors.ErrFeaturedLimitReached, "cannot feature another product")
	}
	if !featured && count <= entity.MinFeaturedProducts {
		srv.log(ctx).Warn("Featured minimum reached", slog.Int64("count", count))

		return nil, errors.Wrap(domainerrors.ErrFeaturedMinimumRequired, "cannot unfeature another product")
	}

	product, err := srv.productRepo.SetFeatured(ctx, id, featured)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to update featured flag")
	}

	srv.log(ctx).Info("Featured flag toggled", slog.Any("productID", id), slog.Bool("featured", featured))

	return product, nil
}

// Reorder applies the display ranks item by item. Items run concurrently and
// a failed item does not roll back the ones that already succeeded.
func (srv *catalogService) Reorder(ctx context.Context, updates []usecase.ReorderUpdate) error {
	for _, update := range updates {
		if update.ID == uuid.Nil || update.Order == nil {
			return errors.Wrap(
				domainerrors.ErrValidationFailed.WithDetails("each update needs an id and a numeric order"),
				"invalid reorder payload",
			)
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, update := range updates {
		group.Go(func() error {
			if err := srv.productRepo.UpdateSortOrder(groupCtx, update.ID, *update.Order); err != nil {
				return errors.Wrapf(err, "failed to reorder product %s", update.ID)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Reorder batch failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to apply product order")
	}

	srv.log(ctx).Info("Products reordered", slog.Int("count", len(updates)))

	return nil
}

// uploadImages stores each file on the media host concurrently and returns
// the public URLs in the original upload order.
func (srv *catalogService) uploadImages(ctx context.Context, images []usecase.ImageUpload) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}

	// Each goroutine writes its own slot, keeping the upload order stable.
	urls := make([]string, len(images))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, image := range images {
		group.Go(func() error {
			url, err := srv.imageStore.Upload(groupCtx, image.Filename, image.ContentType, image.Content)
			if err != nil {
				return errors.Wrapf(err, "failed to upload %s", image.Filename)
			}

			urls[i] = url

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return urls, nil
}
