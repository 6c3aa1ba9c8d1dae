package livequery

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"
	mockRepo "elevenstore/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const waitFor = time.Second

// upstream stands in for a store listener the test can drive.
type upstream struct {
	relays  chan repository.OrderChangeHandler
	stopped chan struct{}
	fail    chan error
}

func newUpstream() *upstream {
	return &upstream{
		relays:  make(chan repository.OrderChangeHandler, 4),
		stopped: make(chan struct{}, 4),
		fail:    make(chan error, 1),
	}
}

func (u *upstream) run(ctx context.Context, _ int, relay repository.OrderChangeHandler) error {
	u.relays <- relay
	select {
	case <-ctx.Done():
		u.stopped <- struct{}{}
		return nil
	case err := <-u.fail:
		return err
	}
}

func (u *upstream) relay(t *testing.T) repository.OrderChangeHandler {
	t.Helper()

	select {
	case relay := <-u.relays:
		return relay
	case <-time.After(waitFor):
		t.Fatal("upstream listener was not opened")
		return nil
	}
}

type received struct {
	mu      sync.Mutex
	changes []entity.Change[*entity.Order]
}

func (r *received) handle(_ context.Context, change entity.Change[*entity.Order]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change)
}

func (r *received) snapshot() []entity.Change[*entity.Order] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.Change[*entity.Order](nil), r.changes...)
}

type subscription struct {
	cancel context.CancelFunc
	done   chan error
	got    *received
}

func subscribe(repo repository.OrderRepository, limit int) *subscription {
	ctx, cancel := context.WithCancel(context.Background())
	sub := &subscription{cancel: cancel, done: make(chan error, 1), got: &received{}}
	go func() {
		sub.done <- repo.WatchLatestOrders(ctx, limit, sub.got.handle)
	}()

	return sub
}

func (s *subscription) wait(t *testing.T) error {
	t.Helper()

	select {
	case err := <-s.done:
		return err
	case <-time.After(waitFor):
		t.Fatal("subscriber did not return")
		return nil
	}
}

func subscriberCount(repo repository.OrderRepository, limit int) int {
	r := repo.(*orderRepository)
	r.mu.Lock()
	s, ok := r.latest[limit]
	r.mu.Unlock()
	if !ok {
		return 0
	}

	return s.subscribers()
}

func added(key string) entity.Change[*entity.Order] {
	return entity.Change[*entity.Order]{Kind: entity.ChangeAdded, Record: &entity.Order{Key: key}}
}

func newTestRepo(t *testing.T) (*mockRepo.MockOrderRepository, repository.OrderRepository) {
	t.Helper()

	inner := mockRepo.NewMockOrderRepository(t)

	return inner, NewOrderRepository(inner, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLatestOrders_SessionsShareOneListener(t *testing.T) {
	inner, repo := newTestRepo(t)
	up := newUpstream()
	inner.EXPECT().WatchLatestOrders(mock.Anything, 1, mock.Anything).RunAndReturn(up.run).Once()

	first := subscribe(repo, 1)
	relay := up.relay(t)
	second := subscribe(repo, 1)
	require.Eventually(t, func() bool { return subscriberCount(repo, 1) == 2 }, waitFor, 5*time.Millisecond)

	relay(context.Background(), added("o1"))

	for _, sub := range []*subscription{first, second} {
		got := sub.got.snapshot()
		require.Len(t, got, 1)
		assert.Equal(t, entity.ChangeAdded, got[0].Kind)
		assert.Equal(t, "o1", got[0].Record.Key)
	}

	first.cancel()
	second.cancel()
	require.NoError(t, first.wait(t))
	require.NoError(t, second.wait(t))
}

func TestLatestOrders_LateSessionGetsCurrentResults(t *testing.T) {
	inner, repo := newTestRepo(t)
	up := newUpstream()
	inner.EXPECT().WatchLatestOrders(mock.Anything, 1, mock.Anything).RunAndReturn(up.run).Once()

	first := subscribe(repo, 1)
	relay := up.relay(t)
	relay(context.Background(), added("o1"))
	relay(context.Background(), added("o2"))
	relay(context.Background(), entity.Change[*entity.Order]{
		Kind:   entity.ChangeModified,
		Record: &entity.Order{Key: "o1", Status: entity.OrderStatusShipped},
	})
	relay(context.Background(), entity.Change[*entity.Order]{Kind: entity.ChangeRemoved, Record: &entity.Order{Key: "o2"}})

	late := subscribe(repo, 1)
	require.Eventually(t, func() bool { return len(late.got.snapshot()) == 1 }, waitFor, 5*time.Millisecond)

	replayed := late.got.snapshot()[0]
	assert.Equal(t, entity.ChangeAdded, replayed.Kind)
	assert.Equal(t, "o1", replayed.Record.Key)
	assert.Equal(t, entity.OrderStatusShipped, replayed.Record.Status)
	assert.Len(t, first.got.snapshot(), 4)

	first.cancel()
	late.cancel()
	require.NoError(t, first.wait(t))
	require.NoError(t, late.wait(t))
}

func TestLatestOrders_LastSessionClosesListener(t *testing.T) {
	inner, repo := newTestRepo(t)
	up := newUpstream()
	inner.EXPECT().WatchLatestOrders(mock.Anything, 1, mock.Anything).RunAndReturn(up.run).Times(2)

	first := subscribe(repo, 1)
	up.relay(t)
	second := subscribe(repo, 1)
	require.Eventually(t, func() bool { return subscriberCount(repo, 1) == 2 }, waitFor, 5*time.Millisecond)

	first.cancel()
	require.NoError(t, first.wait(t))
	assert.Empty(t, up.stopped)

	second.cancel()
	require.NoError(t, second.wait(t))
	select {
	case <-up.stopped:
	case <-time.After(waitFor):
		t.Fatal("listener kept running after the last session left")
	}

	third := subscribe(repo, 1)
	up.relay(t)
	third.cancel()
	require.NoError(t, third.wait(t))
}

func TestLatestOrders_ListenerFailureReachesEverySession(t *testing.T) {
	inner, repo := newTestRepo(t)
	up := newUpstream()
	inner.EXPECT().WatchLatestOrders(mock.Anything, 1, mock.Anything).RunAndReturn(up.run).Once()

	first := subscribe(repo, 1)
	up.relay(t)
	second := subscribe(repo, 1)
	require.Eventually(t, func() bool { return subscriberCount(repo, 1) == 2 }, waitFor, 5*time.Millisecond)

	failure := errors.New("listen: unavailable")
	up.fail <- failure

	assert.ErrorIs(t, first.wait(t), failure)
	assert.ErrorIs(t, second.wait(t), failure)
}

func TestLatestOrders_LimitsUseSeparateListeners(t *testing.T) {
	inner, repo := newTestRepo(t)
	up := newUpstream()
	inner.EXPECT().WatchLatestOrders(mock.Anything, 1, mock.Anything).RunAndReturn(up.run).Once()
	inner.EXPECT().WatchLatestOrders(mock.Anything, 5, mock.Anything).RunAndReturn(up.run).Once()

	one := subscribe(repo, 1)
	up.relay(t)
	five := subscribe(repo, 5)
	up.relay(t)

	one.cancel()
	five.cancel()
	require.NoError(t, one.wait(t))
	require.NoError(t, five.wait(t))
}

func TestUserOrders_PassThrough(t *testing.T) {
	inner, repo := newTestRepo(t)
	inner.EXPECT().WatchUserOrders(mock.Anything, "u1", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, handle repository.OrderChangeHandler) error {
			handle(ctx, added("o7"))
			return nil
		}).Once()

	got := &received{}
	require.NoError(t, repo.WatchUserOrders(context.Background(), "u1", got.handle))
	require.Len(t, got.snapshot(), 1)
	assert.Equal(t, "o7", got.snapshot()[0].Record.Key)
}

func TestLatestPromotions_SessionsShareOneListener(t *testing.T) {
	inner := mockRepo.NewMockPromotionRepository(t)
	repo := NewPromotionRepository(inner, slog.New(slog.NewTextHandler(io.Discard, nil)))

	relays := make(chan repository.PromotionChangeHandler, 1)
	inner.EXPECT().WatchLatestPromotions(mock.Anything, 1, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ int, relay repository.PromotionChangeHandler) error {
			relays <- relay
			<-ctx.Done()
			return nil
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	var mu sync.Mutex
	var keys []string
	collect := func(_ context.Context, change entity.Change[*entity.Promotion]) {
		mu.Lock()
		defer mu.Unlock()
		keys = append(keys, change.Record.Key)
	}

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.WatchLatestPromotions(ctx, 1, collect))
		}()
	}

	relay := <-relays
	shared := repo.(*promotionRepository)
	require.Eventually(t, func() bool {
		shared.mu.Lock()
		s := shared.latest[1]
		shared.mu.Unlock()
		return s != nil && s.subscribers() == 2
	}, waitFor, 5*time.Millisecond)

	relay(ctx, entity.Change[*entity.Promotion]{Kind: entity.ChangeAdded, Record: &entity.Promotion{Key: "p1"}})
	cancel()
	wg.Wait()

	assert.Equal(t, []string{"p1", "p1"}, keys)
}
