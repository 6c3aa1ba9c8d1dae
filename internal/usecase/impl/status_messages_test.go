package impl

import (
	"testing"

	"elevenstore/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestStatusMessageFor(t *testing.T) {
	tests := []struct {
		status       entity.OrderStatus
		wantSeverity entity.Severity
		wantSystem   bool
	}{
		{entity.OrderStatusPending, entity.SeverityInfo, false},
		{entity.OrderStatusProcessing, entity.SeverityInfo, true},
		{entity.OrderStatusShipped, entity.SeverityWarning, true},
		{entity.OrderStatusDelivered, entity.SeveritySuccess, true},
		{entity.OrderStatusCancelled, entity.SeverityError, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			msg := statusMessageFor(tt.status)

			assert.NotEmpty(t, msg.Title)
			assert.Equal(t, tt.wantSeverity, msg.Severity)
			assert.Equal(t, tt.wantSystem, msg.System)
			assert.Contains(t, msg.Body("1042"), "#1042")
		})
	}
}

func TestStatusMessageFor_EveryKnownStatusIsMapped(t *testing.T) {
	seen := map[string]entity.OrderStatus{}
	for _, status := range entity.OrderStatuses {
		title := statusMessageFor(status).Title
		if other, dup := seen[title]; dup {
			t.Fatalf("%s and %s share the title %q", status, other, title)
		}
		seen[title] = status
	}
}

func TestStatusMessageFor_UnknownFallsBackToPending(t *testing.T) {
	assert.Equal(t, pendingMessage, statusMessageFor(entity.OrderStatus("returned")))
	assert.Equal(t, pendingMessage, statusMessageFor(entity.ParseOrderStatus("")))
}

func TestStatusMessageFor_ShippedMentionsTheRoad(t *testing.T) {
	msg := statusMessageFor(entity.OrderStatusShipped)

	assert.Contains(t, msg.Title+msg.Body("1042"), "الطريق")
}
