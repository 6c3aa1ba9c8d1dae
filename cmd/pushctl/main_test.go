package main

import (
	"io"
	"log/slog"
	"testing"

	"elevenstore/internal/infra/pubsub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage(" u1 ", "T", "B", "77")

	assert.Equal(t, "u1", msg.UserID)
	assert.Equal(t, "T", msg.Notification.Title)
	assert.Equal(t, map[string]string{"orderId": "77"}, msg.Data)

	assert.Nil(t, buildMessage("u1", "T", "B", "").Data)
}

func TestRun_RequiresUser(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := run(logger, pubsub.PublisherConfig{Provider: "local"}, buildMessage("", "T", "B", ""))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "-user")
}
