package main

import (
	"context"
	"log/slog"
	"os"

	"light3d/config"
	"light3d/internal/delivery"
	"light3d/internal/delivery/http"
	"light3d/internal/delivery/http/middleware"
	"light3d/internal/delivery/http/router/handler"
	"light3d/internal/domain/repository"
	"light3d/internal/domain/service"
	"light3d/internal/infra/catalog"
	logs "light3d/internal/infra/log"
	"light3d/internal/infra/mail"
	"light3d/internal/infra/persistence/blobstore"
	"light3d/internal/infra/persistence/postgres"
	"light3d/internal/infra/pubsub"
	"light3d/internal/infra/qrcode"
	"light3d/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			catalog.NewCatalogRepository,
			newCartRepository,
		),
	)
}

type cartRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// newCartRepository selects the cart store. Postgres when configured,
// otherwise the blob bucket.
func newCartRepository(params cartRepositoryParams) (repository.CartRepository, error) {
	if params.Config.Postgres == nil {
		return blobstore.NewCartRepository(blobstore.Params{
			Lifecycle: params.Lifecycle,
			Ctx:       params.Ctx,
			Config:    params.Config,
			Logger:    params.Logger,
		})
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewCartRepository(db), nil
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newMailComposer,
			newQRCodeService,
		),
	)
}

// newMailComposer creates the mail composer from the store configuration
func newMailComposer(cfg *config.Config) service.MailComposer {
	return mail.NewMailComposer(cfg.Store.ContactEmail, cfg.Store.Currency)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
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
