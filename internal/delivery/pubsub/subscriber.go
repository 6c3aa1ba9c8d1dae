// Package pubsub pulls foreground messages from a Pub/Sub subscription.
package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"elevenstore/config"
	"elevenstore/internal/delivery"
	"elevenstore/internal/domain/constants"
	"elevenstore/internal/usecase"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type SubscriberParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
}

type subscriber struct {
	logger   *slog.Logger
	client   *pubsub.Client
	sub      *pubsub.Subscriber
	sessions usecase.SessionUsecase

	mu     sync.Mutex
	cancel context.CancelFunc
}

type noopSubscriber struct{}

func (noopSubscriber) Serve(context.Context) error { return nil }

// NewSubscriber pulls from the configured subscription when the google provider is selected.
// Other setups rely on the push endpoint alone.
func NewSubscriber(params SubscriberParams) (delivery.Delivery, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderGoogle || cfg.SubscriptionID == "" {
		params.Logger.Info("Pub/Sub pull subscription not configured, relying on push endpoint")

		return noopSubscriber{}, nil
	}
	if cfg.ProjectID == "" {
		return nil, errors.New("project ID is required for google provider")
	}

	client, err := pubsub.NewClient(params.Ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	s := &subscriber{
		logger:   params.Logger,
		client:   client,
		sub:      client.Subscriber(cfg.SubscriptionID),
		sessions: params.Sessions,
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	params.Logger.Info("Google Pub/Sub subscriber initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.String("subscription_id", cfg.SubscriptionID),
	)

	return s, nil
}

func (s *subscriber) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	err := s.sub.Receive(ctx, s.handle)
	if err != nil && ctx.Err() == nil {
		return errors.Wrap(err, "pubsub receive failed")
	}

	return nil
}

// handle acks every message; foreground notices are only useful while fresh.
func (s *subscriber) handle(ctx context.Context, m *pubsub.Message) {
	defer m.Ack()

	msg, err := usecase.ParseForegroundMessage(m.Data)
	if err != nil {
		s.logger.Warn("[Subscriber] Dropping invalid foreground message",
			slog.String("message_id", m.ID),
			slog.Any("error", err),
		)

		return
	}

	delivered := s.sessions.DispatchForeground(ctx, msg)
	s.logger.Debug("[Subscriber] Foreground message dispatched",
		slog.String("message_id", m.ID),
		slog.String("user_id", msg.UserID),
		slog.Int("sessions", delivered),
	)
}

func (s *subscriber) stop(context.Context) error {
	s.logger.Info("Closing Pub/Sub subscriber")

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	return errors.WithStack(s.client.Close())
}
