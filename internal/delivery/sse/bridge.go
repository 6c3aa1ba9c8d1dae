package sse

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"elevenstore/internal/domain/entity"
	domainerrors "elevenstore/internal/domain/errors"
	"elevenstore/internal/errors"

	"github.com/google/uuid"
)

// Capabilities is what the page reports about itself when it connects.
type Capabilities struct {
	Notifications bool
	Messaging     bool
	Permission    entity.PermissionState
}

// Bridge implements the page collaborators over one event stream.
type Bridge struct {
	chimeURL string
	caps     Capabilities

	permission atomic.Value // entity.PermissionState
	events     chan Event

	mu      sync.Mutex
	pending map[string]chan Reply

	closeOnce sync.Once
	closed    chan struct{}
}

// NewBridge creates a bridge whose outgoing queue holds buffer events.
func NewBridge(caps Capabilities, chimeURL string, buffer int) *Bridge {
	if buffer <= 0 {
		buffer = 1
	}

	b := &Bridge{
		chimeURL: chimeURL,
		caps:     caps,
		events:   make(chan Event, buffer),
		pending:  make(map[string]chan Reply),
		closed:   make(chan struct{}),
	}
	b.permission.Store(caps.Permission)

	return b
}

// Events is drained by the stream writer.
func (b *Bridge) Events() <-chan Event {
	return b.events
}

// Done is closed once the bridge is closed.
func (b *Bridge) Done() <-chan struct{} {
	return b.closed
}

// Close fails every pending call and rejects further events.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() {
		close(b.closed)
	})
}

// Send queues an event without blocking.
func (b *Bridge) Send(evt Event) error {
	select {
	case <-b.closed:
		return errors.WithStack(domainerrors.ErrSessionClosed)
	default:
	}

	select {
	case b.events <- evt:
		return nil
	case <-b.closed:
		return errors.WithStack(domainerrors.ErrSessionClosed)
	default:
		return errors.WithStack(domainerrors.ErrStreamCongested)
	}
}

// Resolve delivers the page's reply to a pending call.
func (b *Bridge) Resolve(reply Reply) error {
	b.mu.Lock()
	ch, ok := b.pending[reply.CallID]
	delete(b.pending, reply.CallID)
	b.mu.Unlock()

	if !ok {
		return errors.WithStack(domainerrors.ErrCallNotFound)
	}

	ch <- reply

	return nil
}

func (b *Bridge) call(ctx context.Context, eventType string, call Call) (Reply, error) {
	call.CallID = uuid.New().String()
	ch := make(chan Reply, 1)

	b.mu.Lock()
	b.pending[call.CallID] = ch
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.pending, call.CallID)
		b.mu.Unlock()
	}()

	if err := b.Send(Event{ID: call.CallID, Type: eventType, Data: call}); err != nil {
		return Reply{}, err
	}

	select {
	case reply := <-ch:
		if reply.Error != "" {
			return reply, errors.WithStack(domainerrors.ErrCallFailed.WithDetails(reply.Error))
		}

		return reply, nil
	case <-b.closed:
		return Reply{}, errors.WithStack(domainerrors.ErrSessionClosed)
	case <-ctx.Done():
		return Reply{}, errors.WithStack(ctx.Err())
	}
}

func (b *Bridge) ShowToast(_ context.Context, message string, severity entity.Severity, duration time.Duration) error {
	return b.Send(Event{Type: EventToast, Data: Toast{
		Message:    message,
		Severity:   string(severity),
		DurationMs: duration.Milliseconds(),
	}})
}

func (b *Bridge) ShowNotification(_ context.Context, notification *entity.SystemNotification) error {
	return b.Send(Event{Type: EventNotification, Data: notification})
}

func (b *Bridge) PlayChime(context.Context) error {
	return b.Send(Event{Type: EventChime, Data: Chime{URL: b.chimeURL}})
}

func (b *Bridge) RefreshOrders(context.Context) error {
	return b.Send(Event{Type: EventOrdersRefresh, Data: struct{}{}})
}

func (b *Bridge) NotificationsSupported() bool {
	return b.caps.Notifications
}

// CurrentPermission reflects the last answer the page gave.
func (b *Bridge) CurrentPermission() entity.PermissionState {
	if !b.caps.Notifications {
		return entity.PermissionUnsupported
	}

	return b.permission.Load().(entity.PermissionState)
}

func (b *Bridge) RequestPermission(ctx context.Context) (entity.PermissionState, error) {
	if !b.caps.Notifications {
		return entity.PermissionUnsupported, errors.WithStack(domainerrors.ErrUnsupported)
	}

	reply, err := b.call(ctx, EventPermissionRequest, Call{})
	if err != nil {
		return entity.PermissionDefault, err
	}

	state := entity.ParsePermissionState(reply.Permission)
	b.permission.Store(state)

	return state, nil
}

func (b *Bridge) MessagingSupported() bool {
	return b.caps.Messaging
}

func (b *Bridge) PushToken(ctx context.Context, vapidKey string) (string, error) {
	if !b.caps.Messaging {
		return "", errors.WithStack(domainerrors.ErrUnsupported)
	}

	reply, err := b.call(ctx, EventTokenRequest, Call{VapidKey: vapidKey})
	if err != nil {
		return "", err
	}

	return reply.Token, nil
}
