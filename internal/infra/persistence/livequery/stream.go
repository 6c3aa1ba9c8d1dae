// Package livequery shares store listeners whose result set is the same for
// every session, so N open pages cost one listener instead of N.
package livequery

import (
	"context"
	"log/slog"
	"sync"

	"elevenstore/internal/domain/entity"
)

type changeHandler[T any] func(ctx context.Context, change entity.Change[T])

type subscriber[T any] struct {
	ctx    context.Context
	handle changeHandler[T]
}

// generation is one upstream listener and the sessions attached to it.
type generation[T any] struct {
	cancel  context.CancelFunc
	done    chan struct{}
	err     error // Set before done is closed.
	subs    map[uint64]subscriber[T]
	records []T // Current result set, replayed to late subscribers.
}

// stream multiplexes one upstream live query over any number of subscribers.
// The listener opens with the first subscriber and closes with the last.
type stream[T any] struct {
	name   string
	logger *slog.Logger
	open   func(ctx context.Context, handle changeHandler[T]) error
	key    func(T) string

	mu     sync.Mutex
	nextID uint64
	gen    *generation[T]
}

func newStream[T any](name string, logger *slog.Logger, key func(T) string, open func(context.Context, changeHandler[T]) error) *stream[T] {
	return &stream[T]{
		name:   name,
		logger: logger,
		open:   open,
		key:    key,
	}
}

// watch behaves like a dedicated listener: the current result set arrives as
// added changes, then live changes follow until ctx ends or the upstream fails.
func (s *stream[T]) watch(ctx context.Context, handle changeHandler[T]) error {
	s.mu.Lock()
	gen := s.gen
	if gen == nil {
		gen = s.start()
	}
	s.nextID++
	id := s.nextID
	gen.subs[id] = subscriber[T]{ctx: ctx, handle: handle}
	for _, record := range gen.records {
		handle(ctx, entity.Change[T]{Kind: entity.ChangeAdded, Record: record})
	}
	s.mu.Unlock()

	var err error
	select {
	case <-ctx.Done():
	case <-gen.done:
		err = gen.err
	}

	s.mu.Lock()
	delete(gen.subs, id)
	if len(gen.subs) == 0 && s.gen == gen {
		s.gen = nil
		gen.cancel()
		s.logger.Debug("[LiveQuery] Last subscriber left", slog.String("query", s.name))
	}
	s.mu.Unlock()

	return err
}

// start opens the upstream listener; callers hold s.mu.
func (s *stream[T]) start() *generation[T] {
	ctx, cancel := context.WithCancel(context.Background())
	gen := &generation[T]{
		cancel: cancel,
		done:   make(chan struct{}),
		subs:   make(map[uint64]subscriber[T]),
	}
	s.gen = gen

	s.logger.Info("[LiveQuery] Opening shared listener", slog.String("query", s.name))

	go func() {
		defer cancel()

		err := s.open(ctx, func(_ context.Context, change entity.Change[T]) {
			s.dispatch(gen, change)
		})

		s.mu.Lock()
		if s.gen == gen {
			s.gen = nil
		}
		s.mu.Unlock()

		if err != nil && ctx.Err() == nil {
			s.logger.Error("[LiveQuery] Shared listener failed", slog.String("query", s.name), slog.Any("error", err))
			gen.err = err
		}
		close(gen.done)
	}()

	return gen
}

func (s *stream[T]) dispatch(gen *generation[T], change entity.Change[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen.records = s.apply(gen.records, change)
	for _, sub := range gen.subs {
		if sub.ctx.Err() != nil {
			continue
		}
		sub.handle(sub.ctx, change)
	}
}

// apply folds a change into the current result set.
func (s *stream[T]) apply(records []T, change entity.Change[T]) []T {
	key := s.key(change.Record)
	if key == "" {
		return records
	}

	for i, record := range records {
		if s.key(record) != key {
			continue
		}
		if change.Kind == entity.ChangeRemoved {
			return append(records[:i], records[i+1:]...)
		}
		records[i] = change.Record

		return records
	}

	if change.Kind == entity.ChangeRemoved {
		return records
	}

	return append(records, change.Record)
}

func (s *stream[T]) subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen == nil {
		return 0
	}

	return len(s.gen.subs)
}
