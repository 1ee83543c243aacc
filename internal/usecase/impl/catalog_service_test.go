package impl

import (
	"context"
	"strings"
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

func newCatalogService(productRepo *mockRepo.MockProductRepository, imageStore *mockSvc.MockImageStore) usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		ImageStore:  imageStore,
		Logger:      newDiscardLogger(),
	})
}

func TestCatalogService_Create_UploadsImagesInOrder(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()

	imageStore.On("Upload", mock.Anything, "first.jpg", "image/jpeg", mock.Anything).
		Return("https://media.example.com/first.jpg", nil)
	imageStore.On("Upload", mock.Anything, "second.png", "image/png", mock.Anything).
		Return("https://media.example.com/second.png", nil)
	productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := service.Create(ctx, usecase.CreateProductInput{
		Name:     "Wicker Basket",
		Brand:    "InfinityBasket",
		Category: "storage",
		Images: []usecase.ImageUpload{
			{Filename: "first.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpeg-bytes")},
			{Filename: "second.png", ContentType: "image/png", Content: strings.NewReader("png-bytes")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://media.example.com/first.jpg",
		"https://media.example.com/second.png",
	}, product.Images)
}

func TestCatalogService_Create_UploadFailure(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()

	imageStore.On("Upload", mock.Anything, "broken.jpg", "image/jpeg", mock.Anything).
		Return("", errors.New("bucket unreachable"))

	product, err := service.Create(ctx, usecase.CreateProductInput{
		Name: "Wicker Basket",
		Images: []usecase.ImageUpload{
			{Filename: "broken.jpg", ContentType: "image/jpeg", Content: strings.NewReader("bytes")},
		},
	})
	require.Error(t, err)
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "IMAGE_UPLOAD_FAILED", appErr.ErrorCode())
	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()
	id := uuid.New()

	productRepo.On("FindByID", ctx, id).Return(nil, repository.ErrProductNotFound)

	product, err := service.Get(ctx, id)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_Update_RetainsExistingAndAppendsNew(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Product{
		ID:     id,
		Name:   "Old Name",
		Images: []string{"https://media.example.com/old-a.jpg", "https://media.example.com/old-b.jpg"},
	}

	productRepo.On("FindByID", ctx, id).Return(existing, nil)
	imageStore.On("Upload", mock.Anything, "new.jpg", "image/jpeg", mock.Anything).
		Return("https://media.example.com/new.jpg", nil)
	productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := service.Update(ctx, usecase.UpdateProductInput{
		ID:             id,
		Name:           "New Name",
		ExistingImages: []string{"https://media.example.com/old-b.jpg"},
		NewImages: []usecase.ImageUpload{
			{Filename: "new.jpg", ContentType: "image/jpeg", Content: strings.NewReader("bytes")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", product.Name)
	// old-a was not retained, old-b survives, the new upload comes last.
	assert.Equal(t, []string{
		"https://media.example.com/old-b.jpg",
		"https://media.example.com/new.jpg",
	}, product.Images)
}

func TestCatalogService_Delete_NotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()
	id := uuid.New()

	productRepo.On("Delete", ctx, id).Return(repository.ErrProductNotFound)

	err := service.Delete(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_ToggleFeatured_LimitReached(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()

	productRepo.On("CountFeatured", ctx).Return(int64(entity.MaxFeaturedProducts), nil)

	product, err := service.ToggleFeatured(ctx, uuid.New(), true)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrFeaturedLimitReached))
	productRepo.AssertNotCalled(t, "SetFeatured", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_ToggleFeatured_MinimumRequired(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()

	productRepo.On("CountFeatured", ctx).Return(int64(entity.MinFeaturedProducts), nil)

	product, err := service.ToggleFeatured(ctx, uuid.New(), false)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrFeaturedMinimumRequired))
}

func TestCatalogService_ToggleFeatured_WithinBounds(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()
	id := uuid.New()
	updated := &entity.Product{ID: id, Featured: true}

	productRepo.On("CountFeatured", ctx).Return(int64(5), nil)
	productRepo.On("SetFeatured", ctx, id, true).Return(updated, nil)

	product, err := service.ToggleFeatured(ctx, id, true)
	require.NoError(t, err)
	assert.True(t, product.Featured)
}

func TestCatalogService_ToggleFeatured_NotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()
	id := uuid.New()

	productRepo.On("CountFeatured", ctx).Return(int64(5), nil)
	productRepo.On("SetFeatured", ctx, id, true).Return(nil, repository.ErrProductNotFound)

	product, err := service.ToggleFeatured(ctx, id, true)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_Reorder_AppliesEveryItem(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()
	firstID := uuid.New()
	secondID := uuid.New()
	orderZero := 0
	orderOne := 1

	productRepo.On("UpdateSortOrder", mock.Anything, firstID, 0).Return(nil)
	productRepo.On("UpdateSortOrder", mock.Anything, secondID, 1).Return(nil)

	err := service.Reorder(ctx, []usecase.ReorderUpdate{
		{ID: firstID, Order: &orderZero},
		{ID: secondID, Order: &orderOne},
	})
	require.NoError(t, err)
}

func TestCatalogService_Reorder_RejectsMissingOrder(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()

	err := service.Reorder(ctx, []usecase.ReorderUpdate{
		{ID: uuid.New(), Order: nil},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	productRepo.AssertNotCalled(t, "UpdateSortOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_Reorder_FailedItemSurfacesError(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	service := newCatalogService(productRepo, imageStore)

	ctx := context.Background()
	goodID := uuid.New()
	badID := uuid.New()
	orderZero := 0
	orderOne := 1

	productRepo.On("UpdateSortOrder", mock.Anything, goodID, 0).Return(nil).Maybe()
	productRepo.On("UpdateSortOrder", mock.Anything, badID, 1).Return(repository.ErrProductNotFound)

	err := service.Reorder(ctx, []usecase.ReorderUpdate{
		{ID: goodID, Order: &orderZero},
		{ID: badID, Order: &orderOne},
	})
	require.Error(t, err)
}
