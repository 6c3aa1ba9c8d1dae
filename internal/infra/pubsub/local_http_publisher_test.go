package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"elevenstore/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var got PushEnvelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewLocalHTTPPublisher(srv.URL, logger)

	err := publisher.Publish(context.Background(), &entity.ForegroundMessage{
		UserID:       "u-1",
		Notification: entity.PushPayload{Title: "T", Body: "B"},
		Data:         map[string]string{"orderId": "77"},
	})
	require.NoError(t, err)

	assert.Equal(t, "u-1", got.Message.Attributes["user_id"])
	assert.Equal(t, "77", got.Message.Attributes["order_id"])
	assert.NotEmpty(t, got.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var msg entity.ForegroundMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "T", msg.Notification.Title)
	assert.Equal(t, "77", msg.Data["orderId"])
}

func TestLocalHTTPPublisher_RejectsFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.Publish(context.Background(), &entity.ForegroundMessage{UserID: "u-1"})
	assert.Error(t, err)
}

func TestNewPublisher_Validation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewPublisher(context.Background(), PublisherConfig{Provider: "local"}, logger)
	assert.Error(t, err)

	_, err = NewPublisher(context.Background(), PublisherConfig{Provider: "google", ProjectID: "p"}, logger)
	assert.Error(t, err)

	_, err = NewPublisher(context.Background(), PublisherConfig{Provider: "kafka"}, logger)
	assert.Error(t, err)
}
