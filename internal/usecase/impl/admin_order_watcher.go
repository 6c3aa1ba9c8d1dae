package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"
	"elevenstore/internal/errors"
	"elevenstore/internal/usecase"
)

const (
	adminOrdersURL   = "/admin/orders"
	adminNewOrderTag = "admin-new-order"
)

type adminOrderWatcher struct {
	logger    *slog.Logger
	orders    repository.OrderRepository
	fanout    usecase.NotificationFanout
	freshness freshnessWindow

	lastAlerted string // Key of the last order that raised an alert.
}

// NewAdminOrderWatcher creates the administrator watcher for newly placed orders.
func NewAdminOrderWatcher(
	logger *slog.Logger,
	orders repository.OrderRepository,
	fanout usecase.NotificationFanout,
	freshness time.Duration,
	now func() time.Time,
) usecase.Watcher {
	return &adminOrderWatcher{
		logger:    logger,
		orders:    orders,
		fanout:    fanout,
		freshness: newFreshnessWindow(freshness, now),
	}
}

func (w *adminOrderWatcher) Name() string {
	return "admin-new-order"
}

// Run subscribes to the single newest order.
func (w *adminOrderWatcher) Run(ctx context.Context) error {
	if err := w.orders.WatchLatestOrders(ctx, 1, w.handle); err != nil {
		return errors.Wrap(err, "watch latest orders")
	}

	return nil
}

func (w *adminOrderWatcher) handle(ctx context.Context, change entity.Change[*entity.Order]) {
	order := change.Record
	if change.Kind != entity.ChangeAdded || order == nil {
		return
	}

	if !w.freshness.Fresh(order.CreatedAt) {
		w.logger.Debug("[Watcher] Ignoring replayed order",
			slog.String("order_id", order.DisplayID()),
			slog.Duration("age", w.freshness.age(order.CreatedAt)),
		)

		return
	}

	// A newest order can leave and re-enter a limit-1 window when a newer one is deleted.
	if order.Key != "" && order.Key == w.lastAlerted {
		return
	}
	w.lastAlerted = order.Key

	w.logger.Info("[Watcher] New order arrived",
		slog.String("order_id", order.DisplayID()),
		slog.Float64("total", order.Total),
	)

	w.fanout.Deliver(ctx, &entity.NotificationIntent{
		Title:    "طلب جديد! 🛒",
		Body:     fmt.Sprintf("طلب رقم #%s بقيمة %s ج.م", order.DisplayID(), formatAmount(order.Total)),
		Icon:     order.FirstImage(),
		URL:      adminOrdersURL,
		Tag:      adminNewOrderTag,
		Severity: entity.SeveritySuccess,
		Channels: entity.ChannelAll,
	})
}

// formatAmount prints a total without trailing zeros: 1500 -> "1500", 99.5 -> "99.5".
func formatAmount(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}
