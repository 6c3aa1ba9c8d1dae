package devicestore

import (
	"context"
	"strconv"
	"time"

	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	deviceKeyPrefix = "device:"
	permissionField = "permission"
	adminField      = "admin"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore keeps device flags in a hash per device. A zero ttl never expires.
func NewRedisStore(client *redis.Client, ttl time.Duration) repository.DeviceStore {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Load(ctx context.Context, deviceID string) (*entity.DeviceState, error) {
	fields, err := s.client.HGetAll(ctx, deviceKeyPrefix+deviceID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "load device %s", deviceID)
	}

	state := &entity.DeviceState{
		Permission: entity.ParsePermissionState(fields[permissionField]),
	}
	if raw, ok := fields[adminField]; ok {
		state.Admin, _ = strconv.ParseBool(raw)
	}

	return state, nil
}

func (s *redisStore) SavePermission(ctx context.Context, deviceID string, state entity.PermissionState) error {
	return s.save(ctx, deviceID, permissionField, string(state))
}

func (s *redisStore) SaveAdmin(ctx context.Context, deviceID string, admin bool) error {
	return s.save(ctx, deviceID, adminField, strconv.FormatBool(admin))
}

func (s *redisStore) save(ctx context.Context, deviceID, field, value string) error {
	key := deviceKeyPrefix + deviceID

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, field, value)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "save %s of device %s", field, deviceID)
	}

	return nil
}
