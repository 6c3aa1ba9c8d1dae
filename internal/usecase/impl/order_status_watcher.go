package impl

import (
	"context"
	"log/slog"

	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"
	"elevenstore/internal/domain/service"
	"elevenstore/internal/errors"
	"elevenstore/internal/usecase"
)

const ordersPageURL = "/orders"

type orderStatusWatcher struct {
	logger    *slog.Logger
	session   *entity.Session
	orders    repository.OrderRepository
	fanout    usecase.NotificationFanout
	refresher service.OrderListRefresher

	// lastStatus holds the status last seen per order key so that edits to
	// other fields of an order do not repeat the same alert.
	lastStatus map[string]entity.OrderStatus
}

// NewOrderStatusWatcher creates the customer watcher that alerts on status changes
// of the session user's orders.
func NewOrderStatusWatcher(
	logger *slog.Logger,
	session *entity.Session,
	orders repository.OrderRepository,
	fanout usecase.NotificationFanout,
	refresher service.OrderListRefresher,
) usecase.Watcher {
	return &orderStatusWatcher{
		logger:     logger,
		session:    session,
		orders:     orders,
		fanout:     fanout,
		refresher:  refresher,
		lastStatus: make(map[string]entity.OrderStatus),
	}
}

func (w *orderStatusWatcher) Name() string {
	return "order-status"
}

// Run subscribes to the user's orders. Guests and anonymous sessions have nothing to watch.
func (w *orderStatusWatcher) Run(ctx context.Context) error {
	if !w.session.Authenticated() {
		w.logger.Debug("[Watcher] Order status watcher skipped for unauthenticated session",
			slog.String("session_id", w.session.ID),
		)

		return nil
	}

	if err := w.orders.WatchUserOrders(ctx, w.session.UserID, w.handle); err != nil {
		return errors.Wrap(err, "watch user orders")
	}

	return nil
}

func (w *orderStatusWatcher) handle(ctx context.Context, change entity.Change[*entity.Order]) {
	order := change.Record
	if order == nil {
		return
	}

	switch change.Kind {
	case entity.ChangeAdded:
		// The initial snapshot arrives as additions; remember, never alert.
		w.lastStatus[order.Key] = order.Status
	case entity.ChangeModified:
		if previous, seen := w.lastStatus[order.Key]; seen && previous == order.Status {
			return
		}
		w.lastStatus[order.Key] = order.Status
		w.notify(ctx, order)
	case entity.ChangeRemoved:
		delete(w.lastStatus, order.Key)
	}
}

func (w *orderStatusWatcher) notify(ctx context.Context, order *entity.Order) {
	msg := statusMessageFor(order.Status)

	channels := entity.ChannelInPage | entity.ChannelAudio
	if msg.System {
		channels |= entity.ChannelSystem
	}

	w.logger.Info("[Watcher] Order status changed",
		slog.String("session_id", w.session.ID),
		slog.String("order_id", order.DisplayID()),
		slog.String("status", string(order.Status)),
	)

	w.fanout.Deliver(ctx, &entity.NotificationIntent{
		Title:    msg.Title,
		Body:     msg.Body(order.DisplayID()),
		URL:      ordersPageURL,
		Tag:      "order-" + order.DisplayID(),
		Severity: msg.Severity,
		Channels: channels,
	})

	if w.refresher != nil {
		if err := w.refresher.RefreshOrders(ctx); err != nil {
			w.logger.Warn("[Watcher] Order list refresh failed", slog.Any("error", err))
		}
	}
}
