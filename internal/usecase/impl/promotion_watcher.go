package impl

import (
	"context"
	"log/slog"
	"time"

	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"
	"elevenstore/internal/errors"
	"elevenstore/internal/usecase"
)

const promotionTag = "promotion"

type promotionWatcher struct {
	logger        *slog.Logger
	promotions    repository.PromotionRepository
	fanout        usecase.NotificationFanout
	freshness     freshnessWindow
	toastDuration time.Duration

	lastAlerted string
}

// NewPromotionWatcher creates the watcher for the shared announcement feed.
func NewPromotionWatcher(
	logger *slog.Logger,
	promotions repository.PromotionRepository,
	fanout usecase.NotificationFanout,
	freshness time.Duration,
	toastDuration time.Duration,
	now func() time.Time,
) usecase.Watcher {
	return &promotionWatcher{
		logger:        logger,
		promotions:    promotions,
		fanout:        fanout,
		freshness:     newFreshnessWindow(freshness, now),
		toastDuration: toastDuration,
	}
}

func (w *promotionWatcher) Name() string {
	return "promotion"
}

func (w *promotionWatcher) Run(ctx context.Context) error {
	if err := w.promotions.WatchLatestPromotions(ctx, 1, w.handle); err != nil {
		return errors.Wrap(err, "watch latest promotions")
	}

	return nil
}

func (w *promotionWatcher) handle(ctx context.Context, change entity.Change[*entity.Promotion]) {
	promo := change.Record
	if change.Kind != entity.ChangeAdded || promo == nil {
		return
	}

	if !w.freshness.Fresh(promo.CreatedAt) {
		w.logger.Debug("[Watcher] Ignoring replayed announcement",
			slog.String("key", promo.Key),
			slog.Duration("age", w.freshness.age(promo.CreatedAt)),
		)

		return
	}

	if promo.Key != "" && promo.Key == w.lastAlerted {
		return
	}
	w.lastAlerted = promo.Key

	w.logger.Info("[Watcher] Announcement published",
		slog.String("key", promo.Key),
		slog.String("type", promo.Type),
	)

	w.fanout.Deliver(ctx, &entity.NotificationIntent{
		Title:         promo.Title,
		Body:          promo.Body,
		Icon:          promo.Image,
		URL:           "/",
		Tag:           promotionTag,
		Severity:      entity.SeverityInfo,
		ToastDuration: w.toastDuration,
		Channels:      entity.ChannelAll,
	})
}
