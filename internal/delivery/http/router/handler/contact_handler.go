package handler

import (
	"log/slog"
	"net/http"

	"infinitybasket/internal/delivery/http/response"
	"infinitybasket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler holds dependencies for the contact-details handlers.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetDetails returns the public contact details singleton.
func (h *ContactHandler) GetDetails(c echo.Context) error {
	details, err := h.uc.GetDetails(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "")
}

// UpdateDetails replaces the contact details wholesale.
func (h *ContactHandler) UpdateDetails(c echo.Context) error {
	var input usecase.UpdateDetailsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact details input")
	}

	details, err := h.uc.UpdateDetails(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Contact details updated successfully")
}

// RelayForm forwards a contact form straight to the admin mailbox. This is
// the legacy email-only path; nothing is persisted.
func (h *ContactHandler) RelayForm(c echo.Context) error {
	var input usecase.ContactFormInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact form input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.RelayForm(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message sent successfully")
}
