package devicestore

import (
	"context"
	"sync"

	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"
)

type memoryStore struct {
	mu      sync.RWMutex
	devices map[string]entity.DeviceState
}

// NewMemoryStore keeps device flags for the lifetime of the process.
func NewMemoryStore() repository.DeviceStore {
	return &memoryStore{devices: make(map[string]entity.DeviceState)}
}

func (s *memoryStore) Load(_ context.Context, deviceID string) (*entity.DeviceState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.devices[deviceID]
	if !ok {
		return &entity.DeviceState{Permission: entity.PermissionDefault}, nil
	}

	return &state, nil
}

func (s *memoryStore) SavePermission(_ context.Context, deviceID string, permission entity.PermissionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.devices[deviceID]
	state.Permission = permission
	s.devices[deviceID] = state

	return nil
}

func (s *memoryStore) SaveAdmin(_ context.Context, deviceID string, admin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.devices[deviceID]
	if state.Permission == "" {
		state.Permission = entity.PermissionDefault
	}
	state.Admin = admin
	s.devices[deviceID] = state

	return nil
}
