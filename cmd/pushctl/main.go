// Command pushctl publishes a foreground message to a user's open storefront pages.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"elevenstore/internal/domain/constants"
	"elevenstore/internal/domain/entity"
	"elevenstore/internal/infra/pubsub"

	"github.com/pkg/errors"
)

func main() {
	provider := flag.String("provider", constants.PubSubProviderLocal, "Transport: local or google")
	endpoint := flag.String("endpoint", "http://localhost:8080/v1/push", "Notifier push endpoint (local provider)")
	projectID := flag.String("project", "", "Google Cloud project ID (google provider)")
	topicID := flag.String("topic", "", "Pub/Sub topic ID (google provider)")
	userID := flag.String("user", "", "Recipient user ID")
	title := flag.String("title", "", "Notification title")
	body := flag.String("body", "", "Notification body")
	orderID := flag.String("order", "", "Order ID to reference; the page refreshes its order list")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger, pubsub.PublisherConfig{
		Provider:      *provider,
		ProjectID:     *projectID,
		TopicID:       *topicID,
		LocalEndpoint: *endpoint,
	}, buildMessage(*userID, *title, *body, *orderID)); err != nil {
		fmt.Fprintf(os.Stderr, "pushctl: %+v\n", err)
		os.Exit(1)
	}
}

func buildMessage(userID, title, body, orderID string) *entity.ForegroundMessage {
	msg := &entity.ForegroundMessage{
		UserID: strings.TrimSpace(userID),
		Notification: entity.PushPayload{
			Title: title,
			Body:  body,
		},
	}
	if orderID != "" {
		msg.Data = map[string]string{"orderId": orderID}
	}

	return msg
}

func run(logger *slog.Logger, cfg pubsub.PublisherConfig, msg *entity.ForegroundMessage) error {
	if msg.UserID == "" {
		return errors.New("-user is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publisher, err := pubsub.NewPublisher(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	return publisher.Publish(ctx, msg)
}
