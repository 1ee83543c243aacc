package main

import (
	"context"
	"log/slog"
	"os"

	"infinitybasket/config"
	"infinitybasket/internal/delivery"
	"infinitybasket/internal/delivery/http"
	httpmiddleware "infinitybasket/internal/delivery/http/middleware"
	"infinitybasket/internal/delivery/http/router/handler"
	sharedmiddleware "infinitybasket/internal/delivery/middleware"
	"infinitybasket/internal/infra/auth"
	logs "infinitybasket/internal/infra/log"
	"infinitybasket/internal/infra/mail"
	"infinitybasket/internal/infra/persistence/postgres"
	"infinitybasket/internal/infra/storage"
	"infinitybasket/internal/usecase"
	"infinitybasket/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAdminRepository,
			postgres.NewProductRepository,
			postgres.NewMessageRepository,
			postgres.NewContactDetailsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewSMTPMailer,
			storage.NewBlobImageStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewInboxService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			sharedmiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewInboxHandler,
			handler.NewContactHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedAdmin creates the back-office account on first boot. It runs after the
// database hook so the schema is already migrated.
func seedAdmin(lc fx.Lifecycle, cfg *config.Config, authUC usecase.AuthUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return authUC.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
