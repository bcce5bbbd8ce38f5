package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Fire-Devils/filaman-system/config"
	"github.com/Fire-Devils/filaman-system/internal/delivery"
	"github.com/Fire-Devils/filaman-system/internal/delivery/http"
	"github.com/Fire-Devils/filaman-system/internal/delivery/http/middleware"
	"github.com/Fire-Devils/filaman-system/internal/delivery/http/router/handler"
	"github.com/Fire-Devils/filaman-system/internal/infra/auth"
	"github.com/Fire-Devils/filaman-system/internal/infra/devicecmd"
	logs "github.com/Fire-Devils/filaman-system/internal/infra/log"
	"github.com/Fire-Devils/filaman-system/internal/infra/persistence/postgres"
	"github.com/Fire-Devils/filaman-system/internal/usecase/impl"

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

// Repositories are not provided individually: the use cases reach them
// through the transaction manager's factory so every sequence runs inside
// one transaction.
func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewTokenService,
			devicecmd.NewHTTPCommander,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewCSRFMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewDeviceHandler,
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
