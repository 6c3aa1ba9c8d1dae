// Package pubsub publishes foreground messages for the notifier to fan out.
package pubsub

import (
	"context"
	"log/slog"

	"elevenstore/internal/domain/constants"
	"elevenstore/internal/domain/service"

	"github.com/pkg/errors"
)

// PublisherConfig selects the transport of a publisher.
type PublisherConfig struct {
	Provider      string
	ProjectID     string
	TopicID       string
	LocalEndpoint string
}

// NewPublisher builds a publisher for the configured provider. The caller closes it.
func NewPublisher(ctx context.Context, cfg PublisherConfig, logger *slog.Logger) (service.PushPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
