package handler

import (
	"log/slog"
	"net/http"

	"infinitybasket/internal/delivery/http/response"
	"infinitybasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InboxHandler holds dependencies for the enquiry inbox handlers.
type InboxHandler struct {
	uc     usecase.InboxUsecase
	logger *slog.Logger
}

// NewInboxHandler is the constructor for InboxHandler, injected by Fx.
func NewInboxHandler(uc usecase.InboxUsecase, logger *slog.Logger) *InboxHandler {
	return &InboxHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit persists a public contact-form submission and notifies both sides.
func (h *InboxHandler) Submit(c echo.Context) error {
	var input usecase.SubmitMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	message, err := h.uc.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// List returns the inbox, newest first.
func (h *InboxHandler) List(c echo.Context) error {
	messages, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// deleteMessagesRequest carries the ids selected in the admin table.
type deleteMessagesRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// DeleteMany removes the selected messages; unknown ids are ignored.
func (h *InboxHandler) DeleteMany(c echo.Context) error {
	var req deleteMessagesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), req.IDs); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Messages deleted successfully")
}

// Reply attaches the admin's reply and emails the sender.
func (h *InboxHandler) Reply(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message id")
	}

	var input usecase.ReplyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}
	input.MessageID = id
	if err := c.Validate(&input); err != nil {
		return err
	}

	message, err := h.uc.Reply(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Reply sent successfully")
}
