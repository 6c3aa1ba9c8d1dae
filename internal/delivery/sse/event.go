// Package sse bridges a notification session to its storefront page over a
// Server-Sent Events stream. One-way effects are plain events; effects that
// need an answer are calls the page resolves through the replies endpoint.
package sse

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Event types sent to the page.
const (
	EventSession           = "session"
	EventToast             = "toast"
	EventNotification      = "notification"
	EventChime             = "chime"
	EventOrdersRefresh     = "orders.refresh"
	EventPermissionRequest = "permission.request"
	EventTokenRequest      = "token.request"
)

// Event is a single stream frame.
type Event struct {
	ID   string
	Type string
	Data any
}

// WriteTo renders the event in text/event-stream framing.
func (e Event) WriteTo(w io.Writer) (int64, error) {
	payload, err := json.Marshal(e.Data)
	if err != nil {
		return 0, errors.Wrapf(err, "encode %s event", e.Type)
	}

	var n int
	if e.ID != "" {
		n, err = fmt.Fprintf(w, "id: %s\n", e.ID)
		if err != nil {
			return int64(n), errors.WithStack(err)
		}
	}

	m, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Type, payload)

	return int64(n + m), errors.WithStack(err)
}

// Toast is the data of a toast event.
type Toast struct {
	Message    string `json:"message"`
	Severity   string `json:"severity"`
	DurationMs int64  `json:"durationMs,omitempty"`
}

// Chime is the data of a chime event.
type Chime struct {
	URL string `json:"url"`
}

// Call is the data of an event that expects a reply.
type Call struct {
	CallID   string `json:"callId"`
	VapidKey string `json:"vapidKey,omitempty"`
}

// Reply is the page's answer to a call.
type Reply struct {
	CallID     string `json:"callId" validate:"required"`
	Permission string `json:"permission,omitempty"`
	Token      string `json:"token,omitempty"`
	Error      string `json:"error,omitempty"`
}
