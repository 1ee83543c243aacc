package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"infinitybasket/internal/delivery/http/validator"
	"infinitybasket/internal/domain/entity"
	domainerrors "infinitybasket/internal/domain/errors"
	"infinitybasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInboxUsecase records calls so handler tests can assert on the
// bound input without a database or mailer behind it.
type stubInboxUsecase struct {
	submitted  *usecase.SubmitMessageInput
	deletedIDs []uuid.UUID
	replied    *usecase.ReplyInput
}

func (s *stubInboxUsecase) Submit(_ context.Context, input usecase.SubmitMessageInput) (*entity.Message, error) {
	s.submitted = &input

	return &entity.Message{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Body:      input.Message,
		Status:    entity.MessageStatusPending,
		CreatedAt: time.Now(),
	}, nil
}

func (s *stubInboxUsecase) List(_ context.Context) ([]*entity.Message, error) {
	return nil, nil
}

func (s *stubInboxUsecase) Delete(_ context.Context, ids []uuid.UUID) error {
	s.deletedIDs = ids

	return nil
}

func (s *stubInboxUsecase) Reply(_ context.Context, input usecase.ReplyInput) (*entity.Message, error) {
	s.replied = &input

	return &entity.Message{ID: input.MessageID, Status: entity.MessageStatusReplied}, nil
}

func newInboxContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestInboxHandler_Submit(t *testing.T) {
	uc := &stubInboxUsecase{}
	h := NewInboxHandler(uc, slog.Default())

	body := `{"name":"Ravi","email":"ravi@example.com","subject":"Bulk order","message":"Do you ship pallets?"}`
	c, rec := newInboxContext(t, http.MethodPost, "/messages", body)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	require.NotNil(t, uc.submitted)
	assert.Equal(t, "ravi@example.com", uc.submitted.Email)
	assert.Equal(t, "Do you ship pallets?", uc.submitted.Message)
}

func TestInboxHandler_Submit_MissingEmail(t *testing.T) {
	h := NewInboxHandler(&stubInboxUsecase{}, slog.Default())

	c, _ := newInboxContext(t, http.MethodPost, "/messages", `{"name":"Ravi","message":"hello"}`)

	err := h.Submit(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestInboxHandler_DeleteMany(t *testing.T) {
	uc := &stubInboxUsecase{}
	h := NewInboxHandler(uc, slog.Default())

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	body := `{"ids":["` + ids[0].String() + `","` + ids[1].String() + `"]}`
	c, rec := newInboxContext(t, http.MethodDelete, "/messages/multiple", body)

	require.NoError(t, h.DeleteMany(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ids, uc.deletedIDs)
}

func TestInboxHandler_Reply_InvalidID(t *testing.T) {
	h := NewInboxHandler(&stubInboxUsecase{}, slog.Default())

	c, rec := newInboxContext(t, http.MethodPost, "/messages/not-a-uuid/reply", `{"replyContent":"hi"}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Reply(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestInboxHandler_Reply(t *testing.T) {
	uc := &stubInboxUsecase{}
	h := NewInboxHandler(uc, slog.Default())

	messageID := uuid.New()
	c, rec := newInboxContext(t, http.MethodPost, "/messages/"+messageID.String()+"/reply", `{"replyContent":"Thanks, we ship pallets."}`)
	c.SetParamNames("id")
	c.SetParamValues(messageID.String())

	require.NoError(t, h.Reply(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.replied)
	assert.Equal(t, messageID, uc.replied.MessageID)
	assert.Equal(t, "Thanks, we ship pallets.", uc.replied.Content)
}
