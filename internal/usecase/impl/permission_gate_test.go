package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"elevenstore/internal/domain/entity"
	mockRepo "elevenstore/internal/mocks/repository"
	mockSvc "elevenstore/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPrompter(t *testing.T, supported bool, current entity.PermissionState) *mockSvc.MockPermissionPrompter {
	prompter := mockSvc.NewMockPermissionPrompter(t)
	prompter.EXPECT().NotificationsSupported().Return(supported)
	prompter.EXPECT().CurrentPermission().Return(current).Maybe()

	return prompter
}

func TestPermissionGate_Unsupported(t *testing.T) {
	prompter := newPrompter(t, false, entity.PermissionDefault)
	gate := NewPermissionGate(newDiscardLogger(), prompter, nil, "d1", entity.PermissionDefault)

	assert.Equal(t, entity.PermissionUnsupported, gate.EnsurePermission(context.Background()))
	assert.Equal(t, entity.PermissionUnsupported, gate.State())
}

func TestPermissionGate_AlreadyGrantedByPage(t *testing.T) {
	prompter := newPrompter(t, true, entity.PermissionGranted)
	gate := NewPermissionGate(newDiscardLogger(), prompter, nil, "d1", entity.PermissionDefault)

	assert.Equal(t, entity.PermissionGranted, gate.EnsurePermission(context.Background()))
}

func TestPermissionGate_DeniedNeverPromptsAgain(t *testing.T) {
	prompter := newPrompter(t, true, entity.PermissionDefault)
	gate := NewPermissionGate(newDiscardLogger(), prompter, nil, "d1", entity.PermissionDenied)

	for range 3 {
		assert.Equal(t, entity.PermissionDenied, gate.EnsurePermission(context.Background()))
	}
	prompter.AssertNotCalled(t, "RequestPermission", mock.Anything)
}

func TestPermissionGate_PageDecisionOverridesStored(t *testing.T) {
	prompter := newPrompter(t, true, entity.PermissionDenied)
	gate := NewPermissionGate(newDiscardLogger(), prompter, nil, "d1", entity.PermissionGranted)

	assert.Equal(t, entity.PermissionDenied, gate.State())
}

func TestPermissionGate_SinglePromptUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	prompter := newPrompter(t, true, entity.PermissionDefault)
	devices := mockRepo.NewMockDeviceStore(t)

	release := make(chan struct{})
	prompter.EXPECT().RequestPermission(mock.Anything).
		RunAndReturn(func(context.Context) (entity.PermissionState, error) {
			<-release

			return entity.PermissionGranted, nil
		}).Once()
	devices.EXPECT().SavePermission(mock.Anything, "d1", entity.PermissionGranted).Return(nil).Once()

	gate := NewPermissionGate(newDiscardLogger(), prompter, devices, "d1", entity.PermissionDefault)

	const callers = 8
	results := make([]entity.PermissionState, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = gate.EnsurePermission(ctx)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, state := range results {
		assert.Equal(t, entity.PermissionGranted, state)
	}
	assert.Equal(t, entity.PermissionGranted, gate.State())
}

func TestPermissionGate_FailedPromptIsNotRepeated(t *testing.T) {
	ctx := context.Background()
	prompter := newPrompter(t, true, entity.PermissionDefault)
	devices := mockRepo.NewMockDeviceStore(t)

	prompter.EXPECT().RequestPermission(mock.Anything).Return(entity.PermissionDefault, errors.New("stream congested")).Once()

	gate := NewPermissionGate(newDiscardLogger(), prompter, devices, "d1", entity.PermissionDefault)

	for range 3 {
		assert.Equal(t, entity.PermissionDenied, gate.EnsurePermission(ctx))
	}
	assert.Equal(t, entity.PermissionDefault, gate.State())
	prompter.AssertNumberOfCalls(t, "RequestPermission", 1)
	devices.AssertNotCalled(t, "SavePermission", mock.Anything, mock.Anything, mock.Anything)
}

func TestPermissionGate_DismissedPromptIsNotRepeated(t *testing.T) {
	prompter := newPrompter(t, true, entity.PermissionDefault)
	devices := mockRepo.NewMockDeviceStore(t)
	prompter.EXPECT().RequestPermission(mock.Anything).Return(entity.PermissionDefault, nil).Once()

	gate := NewPermissionGate(newDiscardLogger(), prompter, devices, "d1", entity.PermissionDefault)

	for range 3 {
		assert.Equal(t, entity.PermissionDenied, gate.EnsurePermission(context.Background()))
	}
	assert.Equal(t, entity.PermissionDefault, gate.State())
	prompter.AssertNumberOfCalls(t, "RequestPermission", 1)
	devices.AssertNotCalled(t, "SavePermission", mock.Anything, mock.Anything, mock.Anything)
}

func TestPermissionGate_DismissalDoesNotCarryOverToNextSession(t *testing.T) {
	first := newPrompter(t, true, entity.PermissionDefault)
	first.EXPECT().RequestPermission(mock.Anything).Return(entity.PermissionDefault, nil).Once()
	NewPermissionGate(newDiscardLogger(), first, nil, "d1", entity.PermissionDefault).EnsurePermission(context.Background())

	second := newPrompter(t, true, entity.PermissionDefault)
	second.EXPECT().RequestPermission(mock.Anything).Return(entity.PermissionGranted, nil).Once()
	gate := NewPermissionGate(newDiscardLogger(), second, nil, "d1", entity.PermissionDefault)

	assert.Equal(t, entity.PermissionGranted, gate.EnsurePermission(context.Background()))
}
