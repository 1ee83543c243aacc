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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	detailsRepo repository.ContactDetailsRepository
	mailer      service.Mailer
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	DetailsRepo repository.ContactDetailsRepository
	Mailer      service.Mailer
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		detailsRepo: params.DetailsRepo,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDetails returns the singleton, creating an empty one on first read.
func (srv *contactService) GetDetails(ctx context.Context) (*entity.ContactDetails, error) {
	details, err := srv.detailsRepo.FindOrCreate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load contact details")
	}

	return details, nil
}

// UpdateDetails saves the new values and alerts the admin mailbox when
// anything actually changed. An update that changes nothing sends no email.
func (srv *contactService) UpdateDetails(ctx context.Context, input usecase.UpdateDetailsInput) (*entity.ContactDetails, error) {
	current, err := srv.detailsRepo.FindOrCreate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load contact details for update")
	}

	updated := &entity.ContactDetails{
		ID:        current.ID,
		Email:     input.Email,
		Phone:     input.Phone,
		Location:  input.Location,
		MapURL:    input.MapURL,
		Hours:     input.Hours,
		Instagram: input.Instagram,
		Facebook:  input.Facebook,
		Twitter:   input.Twitter,
	}

	changes := current.Diff(updated)

	if err := srv.detailsRepo.Update(ctx, updated); err != nil {
		return nil, errors.Wrap(err, "failed to store contact details")
	}

	if len(changes) == 0 {
		srv.log(ctx).Debug("Contact details saved with no changes")

		return updated, nil
	}

	if err := srv.mailer.SendDetailsChangedAlert(ctx, changes); err != nil {
		srv.log(ctx).Error("Failed to send details change alert", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMailDeliveryFailed.WithDetails(err.Error()), "details stored but alert failed")
	}

	srv.log(ctx).Info("Contact details updated", slog.Int("changedFields", len(changes)))

	return updated, nil
}

// RelayForm forwards a contact form straight to the admin mailbox without
// touching the inbox. Kept for clients still posting to the older endpoint.
func (srv *contactService) RelayForm(ctx context.Context, input usecase.ContactFormInput) error {
	message := &entity.Message{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Message,
	}

	if err := srv.mailer.SendEnquiryAlert(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to relay contact form", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrMailDeliveryFailed.WithDetails(err.Error()), "could not relay contact form")
	}

	srv.log(ctx).Info("Contact form relayed", slog.String("from", input.Email))

	return nil
}
