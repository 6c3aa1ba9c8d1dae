package impl

import (
	"context"
	"log/slog"
	"sync"

	"elevenstore/internal/domain/entity"
	"elevenstore/internal/usecase"
)

// bootstrap starts a session's watchers exactly once, whatever the number of
// ready/load signals the page sends.
type bootstrap struct {
	logger    *slog.Logger
	session   *entity.Session
	registrar usecase.PushRegistrar
	customer  []usecase.Watcher // Started for every session.
	admin     []usecase.Watcher // Started only for admin sessions.

	mu         sync.Mutex
	started    map[string]bool
	permission bool
	closed     bool
	wg         sync.WaitGroup
}

func newBootstrap(
	logger *slog.Logger,
	session *entity.Session,
	registrar usecase.PushRegistrar,
	customer []usecase.Watcher,
	admin []usecase.Watcher,
) *bootstrap {
	return &bootstrap{
		logger:    logger,
		session:   session,
		registrar: registrar,
		customer:  customer,
		admin:     admin,
		started:   make(map[string]bool),
	}
}

// InitAll requests permission in the background and starts the watchers.
// ctx must live as long as the session.
func (b *bootstrap) InitAll(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	if !b.permission {
		b.permission = true
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()

			// A prompt nobody answers must not hold back the watchers.
			state := b.registrar.RequestPermission(ctx)
			b.logger.Debug("[Bootstrap] Permission resolved",
				slog.String("session_id", b.session.ID),
				slog.String("permission", string(state)),
			)
		}()
	}

	for _, w := range b.customer {
		b.start(ctx, w)
	}

	if b.session.IsAdmin() {
		for _, w := range b.admin {
			b.start(ctx, w)
		}
	}
}

// start runs w once per session; callers hold b.mu.
func (b *bootstrap) start(ctx context.Context, w usecase.Watcher) {
	if b.started[w.Name()] {
		return
	}
	b.started[w.Name()] = true

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		b.logger.Info("[Bootstrap] Watcher started",
			slog.String("session_id", b.session.ID),
			slog.String("watcher", w.Name()),
		)

		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			// The feature stays off for the rest of the session.
			b.logger.Error("[Bootstrap] Watcher stopped",
				slog.String("session_id", b.session.ID),
				slog.String("watcher", w.Name()),
				slog.Any("error", err),
			)

			return
		}

		b.logger.Debug("[Bootstrap] Watcher finished",
			slog.String("session_id", b.session.ID),
			slog.String("watcher", w.Name()),
		)
	}()
}

// Shutdown refuses further InitAll calls and waits for every goroutine it
// started to return. The session context must already be cancelled.
func (b *bootstrap) Shutdown() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.wg.Wait()
}
