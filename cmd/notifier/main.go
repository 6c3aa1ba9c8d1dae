package main

import (
	"context"
	"log/slog"
	"os"

	"elevenstore/config"
	"elevenstore/internal/delivery"
	"elevenstore/internal/delivery/http"
	"elevenstore/internal/delivery/http/middleware"
	"elevenstore/internal/delivery/http/router/handler"
	"elevenstore/internal/delivery/pubsub"
	"elevenstore/internal/delivery/sse"
	"elevenstore/internal/domain/service"
	"elevenstore/internal/infra/devicestore"
	"elevenstore/internal/infra/firebase"
	"elevenstore/internal/infra/identity"
	logs "elevenstore/internal/infra/log"
	"elevenstore/internal/infra/notification"
	"elevenstore/internal/infra/persistence/firestore"
	"elevenstore/internal/infra/persistence/livequery"
	"elevenstore/internal/usecase/impl"

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
		firebase.NewApp,
		firebase.NewFirestoreClient,
		firebase.NewAuthClient,
		firebase.NewMessagingClient,
		sse.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewOrderRepository,
			firestore.NewPromotionRepository,
			firestore.NewUserRepository,
			devicestore.NewDeviceStore,
		),
		fx.Decorate(
			livequery.NewOrderRepository,
			livequery.NewPromotionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewFirebaseVerifier,
			notification.NewFirebaseService,
			newPushSender,
			newTokenValidator,
		),
	)
}

func newPushSender(svc notification.FirebaseService) service.PushSender {
	return svc
}

// newTokenValidator returns nil when dry-run validation is disabled
func newTokenValidator(cfg *config.Config, svc notification.FirebaseService) service.TokenValidator {
	if cfg.Firebase == nil || !cfg.Firebase.ValidateTokens {
		return nil
	}

	return svc
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewSessionHandler,
			handler.NewPushHandler,
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
			fx.Annotate(
				pubsub.NewSubscriber,
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
