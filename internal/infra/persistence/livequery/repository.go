package livequery

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"
)

type orderRepository struct {
	repository.OrderRepository // Per-user queries pass straight through.

	logger *slog.Logger
	mu     sync.Mutex
	latest map[int]*stream[*entity.Order]
}

// NewOrderRepository shares the newest-orders listener between sessions.
func NewOrderRepository(inner repository.OrderRepository, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{
		OrderRepository: inner,
		logger:          logger,
		latest:          make(map[int]*stream[*entity.Order]),
	}
}

func (r *orderRepository) WatchLatestOrders(ctx context.Context, limit int, handle repository.OrderChangeHandler) error {
	r.mu.Lock()
	s, ok := r.latest[limit]
	if !ok {
		s = newStream("latest-orders-"+strconv.Itoa(limit), r.logger, orderKey,
			func(upstream context.Context, relay changeHandler[*entity.Order]) error {
				return r.OrderRepository.WatchLatestOrders(upstream, limit, repository.OrderChangeHandler(relay))
			})
		r.latest[limit] = s
	}
	r.mu.Unlock()

	return s.watch(ctx, changeHandler[*entity.Order](handle))
}

func orderKey(o *entity.Order) string {
	if o == nil {
		return ""
	}

	return o.Key
}

type promotionRepository struct {
	logger *slog.Logger
	inner  repository.PromotionRepository
	mu     sync.Mutex
	latest map[int]*stream[*entity.Promotion]
}

// NewPromotionRepository shares the announcement listener between sessions.
func NewPromotionRepository(inner repository.PromotionRepository, logger *slog.Logger) repository.PromotionRepository {
	return &promotionRepository{
		logger: logger,
		inner:  inner,
		latest: make(map[int]*stream[*entity.Promotion]),
	}
}

func (r *promotionRepository) WatchLatestPromotions(ctx context.Context, limit int, handle repository.PromotionChangeHandler) error {
	r.mu.Lock()
	s, ok := r.latest[limit]
	if !ok {
		s = newStream("latest-promotions-"+strconv.Itoa(limit), r.logger, promotionKey,
			func(upstream context.Context, relay changeHandler[*entity.Promotion]) error {
				return r.inner.WatchLatestPromotions(upstream, limit, repository.PromotionChangeHandler(relay))
			})
		r.latest[limit] = s
	}
	r.mu.Unlock()

	return s.watch(ctx, changeHandler[*entity.Promotion](handle))
}

func promotionKey(p *entity.Promotion) string {
	if p == nil {
		return ""
	}

	return p.Key
}
