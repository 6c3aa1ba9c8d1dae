package impl

import (
	"context"
	"testing"

	"elevenstore/internal/domain/entity"
	domainerrors "elevenstore/internal/domain/errors"
	mockRepo "elevenstore/internal/mocks/repository"
	mockSvc "elevenstore/internal/mocks/service"
	mockUsecase "elevenstore/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type registrarFixture struct {
	gate      *mockUsecase.MockPermissionGate
	tokens    *mockSvc.MockTokenSource
	validator *mockSvc.MockTokenValidator
	users     *mockRepo.MockUserRepository
	toaster   *mockSvc.MockToaster
	refresher *mockSvc.MockOrderListRefresher
}

func newRegistrarFixture(t *testing.T) *registrarFixture {
	return &registrarFixture{
		gate:      mockUsecase.NewMockPermissionGate(t),
		tokens:    mockSvc.NewMockTokenSource(t),
		validator: mockSvc.NewMockTokenValidator(t),
		users:     mockRepo.NewMockUserRepository(t),
		toaster:   mockSvc.NewMockToaster(t),
		refresher: mockSvc.NewMockOrderListRefresher(t),
	}
}

func (f *registrarFixture) registrar(session *entity.Session, withValidator bool) *pushRegistrar {
	deps := PushRegistrarDeps{
		Session:   session,
		Gate:      f.gate,
		Tokens:    f.tokens,
		Users:     f.users,
		Toaster:   f.toaster,
		Refresher: f.refresher,
		VapidKey:  "test-vapid",
	}
	if withValidator {
		deps.Validator = f.validator
	}

	return NewPushRegistrar(newDiscardLogger(), deps).(*pushRegistrar)
}

func TestPushRegistrar_Initialize(t *testing.T) {
	t.Run("messaging unsupported", func(t *testing.T) {
		f := newRegistrarFixture(t)
		f.tokens.EXPECT().MessagingSupported().Return(false).Once()

		assert.False(t, f.registrar(signedInSession(), false).Initialize(context.Background()))
	})

	t.Run("missing vapid key", func(t *testing.T) {
		f := newRegistrarFixture(t)
		f.tokens.EXPECT().MessagingSupported().Return(true).Once()

		r := f.registrar(signedInSession(), false)
		r.deps.VapidKey = ""

		assert.False(t, r.Initialize(context.Background()))
	})

	t.Run("supported is remembered", func(t *testing.T) {
		f := newRegistrarFixture(t)
		f.tokens.EXPECT().MessagingSupported().Return(true).Once()

		r := f.registrar(signedInSession(), false)
		assert.True(t, r.Initialize(context.Background()))
		assert.True(t, r.Initialize(context.Background()))
	})
}

func TestPushRegistrar_GetTokenPersistsForSignedInUser(t *testing.T) {
	ctx := context.Background()
	f := newRegistrarFixture(t)

	f.tokens.EXPECT().MessagingSupported().Return(true).Once()
	f.tokens.EXPECT().PushToken(ctx, "test-vapid").Return("tok-1", nil).Once()
	f.validator.EXPECT().ValidateToken(ctx, "tok-1").Return(nil).Once()
	f.users.EXPECT().SavePushToken(ctx, &entity.PushToken{Token: "tok-1", UserID: "u1"}).Return(nil).Once()

	token, ok := f.registrar(signedInSession(), true).GetToken(ctx)

	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)
}

func TestPushRegistrar_GuestTokenIsNeverPersisted(t *testing.T) {
	ctx := context.Background()
	f := newRegistrarFixture(t)

	f.tokens.EXPECT().MessagingSupported().Return(true).Once()
	f.tokens.EXPECT().PushToken(ctx, "test-vapid").Return("tok-guest", nil).Once()

	session := &entity.Session{ID: "s1", UserID: "anon-1", Guest: true}
	token, ok := f.registrar(session, false).GetToken(ctx)

	assert.True(t, ok)
	assert.Equal(t, "tok-guest", token)
	f.users.AssertNotCalled(t, "SavePushToken", mock.Anything, mock.Anything)
}

func TestPushRegistrar_GetTokenFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *registrarFixture)
	}{
		{
			name: "token source error",
			setup: func(f *registrarFixture) {
				f.tokens.EXPECT().PushToken(mock.Anything, "test-vapid").Return("", errors.New("service worker missing")).Once()
			},
		},
		{
			name: "empty token",
			setup: func(f *registrarFixture) {
				f.tokens.EXPECT().PushToken(mock.Anything, "test-vapid").Return("", nil).Once()
			},
		},
		{
			name: "validator rejects",
			setup: func(f *registrarFixture) {
				f.tokens.EXPECT().PushToken(mock.Anything, "test-vapid").Return("tok-bad", nil).Once()
				f.validator.EXPECT().ValidateToken(mock.Anything, "tok-bad").
					Return(domainerrors.ErrTokenInvalid.WithDetails("unregistered")).Once()
			},
		},
		{
			name: "store write fails",
			setup: func(f *registrarFixture) {
				f.tokens.EXPECT().PushToken(mock.Anything, "test-vapid").Return("tok-1", nil).Once()
				f.validator.EXPECT().ValidateToken(mock.Anything, "tok-1").Return(nil).Once()
				f.users.EXPECT().SavePushToken(mock.Anything, mock.Anything).Return(errors.New("deadline exceeded")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRegistrarFixture(t)
			f.tokens.EXPECT().MessagingSupported().Return(true).Once()
			tt.setup(f)

			token, ok := f.registrar(signedInSession(), true).GetToken(context.Background())

			assert.False(t, ok)
			assert.Empty(t, token)
		})
	}
}

func TestPushRegistrar_RequestPermission(t *testing.T) {
	t.Run("granted fetches token", func(t *testing.T) {
		ctx := context.Background()
		f := newRegistrarFixture(t)

		f.gate.EXPECT().EnsurePermission(ctx).Return(entity.PermissionGranted).Once()
		f.tokens.EXPECT().MessagingSupported().Return(true).Once()
		f.tokens.EXPECT().PushToken(ctx, "test-vapid").Return("tok-1", nil).Once()
		f.users.EXPECT().SavePushToken(ctx, mock.Anything).Return(nil).Once()

		assert.Equal(t, entity.PermissionGranted, f.registrar(signedInSession(), false).RequestPermission(ctx))
	})

	t.Run("denied skips token", func(t *testing.T) {
		ctx := context.Background()
		f := newRegistrarFixture(t)

		f.gate.EXPECT().EnsurePermission(ctx).Return(entity.PermissionDenied).Once()

		assert.Equal(t, entity.PermissionDenied, f.registrar(signedInSession(), false).RequestPermission(ctx))
		f.tokens.AssertNotCalled(t, "PushToken", mock.Anything, mock.Anything)
	})
}

func TestPushRegistrar_HandleForegroundMessage(t *testing.T) {
	t.Run("order message toasts and refreshes", func(t *testing.T) {
		ctx := context.Background()
		f := newRegistrarFixture(t)

		f.toaster.EXPECT().ShowToast(ctx, "B", entity.SeverityInfo, mock.Anything).Return(nil).Once()
		f.refresher.EXPECT().RefreshOrders(ctx).Return(nil).Once()

		f.registrar(signedInSession(), false).HandleForegroundMessage(ctx, &entity.PushPayload{
			Title: "T",
			Body:  "B",
			Data:  map[string]string{"orderId": "77"},
		})
	})

	t.Run("plain message only toasts", func(t *testing.T) {
		ctx := context.Background()
		f := newRegistrarFixture(t)

		f.toaster.EXPECT().ShowToast(ctx, "T", entity.SeverityInfo, mock.Anything).Return(errors.New("congested")).Once()

		f.registrar(signedInSession(), false).HandleForegroundMessage(ctx, &entity.PushPayload{Title: "T"})
		f.refresher.AssertNotCalled(t, "RefreshOrders", mock.Anything)
	})

	t.Run("nil payload", func(t *testing.T) {
		f := newRegistrarFixture(t)

		assert.NotPanics(t, func() {
			f.registrar(signedInSession(), false).HandleForegroundMessage(context.Background(), nil)
		})
	})
}
