package main

import (
	"context"
	"log/slog"
	"os"

	"carhub/config"
	"carhub/internal/delivery"
	"carhub/internal/delivery/http"
	"carhub/internal/delivery/http/middleware"
	"carhub/internal/delivery/http/router/handler"
	"carhub/internal/domain/constants"
	"carhub/internal/domain/repository"
	"carhub/internal/domain/service"
	"carhub/internal/errors"
	"carhub/internal/infra/auth"
	logs "carhub/internal/infra/log"
	mongostore "carhub/internal/infra/persistence/mongo"
	"carhub/internal/infra/persistence/postgres"
	"carhub/internal/infra/pubsub"
	"carhub/internal/infra/storage"
	"carhub/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
		storage.New,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewTransactionManager,
			newCarRepository,
		),
	)
}

type carRepositoryParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// newCarRepository picks the car store named by carStore.driver.
func newCarRepository(params carRepositoryParams) (repository.CarRepository, error) {
	switch driver := params.Config.CarStore.Driver; driver {
	case constants.CarStoreDriverPostgres:
		return postgres.NewCarRepository(params.DB), nil
	case constants.CarStoreDriverMongo:
		client, err := mongostore.New(mongostore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return mongostore.NewCarRepository(mongostore.CarCollection(client, params.Config)), nil
	default:
		return nil, errors.Errorf("unknown carStore.driver %q", driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			func(store *storage.BucketImageStore) service.ImageStore { return store },
			func(store *storage.BucketImageStore) service.ImageReader { return store },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCarService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCarHandler,
			handler.NewImageHandler,
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
