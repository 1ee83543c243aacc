package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"infinitybasket/internal/delivery/http/response"
	"infinitybasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// mediaFormField is the multipart field the admin UI uploads image files under.
const mediaFormField = "media"

// CatalogHandler holds dependencies for the product catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the whole catalog; filtering happens on the client.
func (h *CatalogHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Get fetches a single product by id.
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	product, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Create handles the multipart product creation request.
func (h *CatalogHandler) Create(c echo.Context) error {
	uploads, closeUploads, err := openMediaUploads(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart form")
	}
	defer closeUploads()

	input := usecase.CreateProductInput{
		Name:        c.FormValue("name"),
		Brand:       c.FormValue("brand"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Images:      uploads,
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update handles the multipart product update request. Previously stored
// image URLs the client wants to keep arrive as `existingImages` values.
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	uploads, closeUploads, err := openMediaUploads(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart form")
	}
	defer closeUploads()

	var existing []string
	if form, err := c.MultipartForm(); err == nil {
		existing = form.Value["existingImages"]
	}

	input := usecase.UpdateProductInput{
		ID:             id,
		Name:           c.FormValue("name"),
		Brand:          c.FormValue("brand"),
		Description:    c.FormValue("description"),
		Category:       c.FormValue("category"),
		ExistingImages: existing,
		NewImages:      uploads,
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete removes a product from the catalog.
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// toggleFeaturedRequest carries the desired featured state rather than a
// blind flip, so a stale admin tab cannot un-feature the wrong product.
type toggleFeaturedRequest struct {
	Featured *bool `json:"featured" validate:"required"`
}

// ToggleFeatured sets the featured flag within the showcase bounds.
func (h *CatalogHandler) ToggleFeatured(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product id")
	}

	var req toggleFeaturedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.ToggleFeatured(c.Request().Context(), id, *req.Featured)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// reorderRequest wraps the batch the admin UI sends as `{"updates": [...]}`.
type reorderRequest struct {
	Updates []usecase.ReorderUpdate `json:"updates"`
}

// Reorder applies a batch of display ranks. Item-level validation happens in
// the usecase so a malformed entry rejects the batch before any write.
func (h *CatalogHandler) Reorder(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder input")
	}

	if err := h.uc.Reorder(c.Request().Context(), req.Updates); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product order updated")
}

// openMediaUploads lifts the uploaded files out of the multipart form. The
// returned closer releases every opened file and must run after the usecase
// has consumed the readers.
func openMediaUploads(c echo.Context) ([]usecase.ImageUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			// No files attached; nothing to clean up.
			return nil, func() {}, nil
		}

		return nil, func() {}, errors.WithStack(err)
	}

	files := form.File[mediaFormField]
	uploads := make([]usecase.ImageUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			closeAll()

			return nil, func() {}, errors.WithStack(err)
		}
		opened = append(opened, file)

		uploads = append(uploads, usecase.ImageUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get(echo.HeaderContentType),
			Content:     file,
		})
	}

	return uploads, closeAll, nil
}
