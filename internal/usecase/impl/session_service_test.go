package impl

import (
	"context"
	"testing"
	"time"

	"elevenstore/internal/domain/entity"
	domainerrors "elevenstore/internal/domain/errors"
	"elevenstore/internal/domain/repository"
	"elevenstore/internal/domain/service"
	"elevenstore/internal/usecase"
	mockRepo "elevenstore/internal/mocks/repository"
	mockSvc "elevenstore/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	identity   *mockSvc.MockIdentityVerifier
	pusher     *mockSvc.MockPushSender
	orders     *mockRepo.MockOrderRepository
	promotions *mockRepo.MockPromotionRepository
	users      *mockRepo.MockUserRepository
	devices    *mockRepo.MockDeviceStore
}

func newSessionFixture(t *testing.T) (*sessionFixture, usecase.SessionUsecase) {
	f := &sessionFixture{
		identity:   mockSvc.NewMockIdentityVerifier(t),
		pusher:     mockSvc.NewMockPushSender(t),
		orders:     mockRepo.NewMockOrderRepository(t),
		promotions: mockRepo.NewMockPromotionRepository(t),
		users:      mockRepo.NewMockUserRepository(t),
		devices:    mockRepo.NewMockDeviceStore(t),
	}

	svc := NewSessionService(SessionServiceParams{
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
		Identity:   f.identity,
		Pusher:     f.pusher,
		Orders:     f.orders,
		Promotions: f.promotions,
		Users:      f.users,
		Devices:    f.devices,
		Clock:      fixedClock,
	})

	return f, svc
}

func newQuietPage(t *testing.T, permission entity.PermissionState) *mockSvc.MockPage {
	page := mockSvc.NewMockPage(t)
	page.EXPECT().NotificationsSupported().Return(true).Maybe()
	page.EXPECT().CurrentPermission().Return(permission).Maybe()

	return page
}

func TestSessionService_OpenRejectsInvalidToken(t *testing.T) {
	ctx := context.Background()
	f, svc := newSessionFixture(t)

	f.identity.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("token expired")).Once()

	session, err := svc.Open(ctx, &usecase.SessionRequest{IDToken: "bad", DeviceID: "d1"}, mockSvc.NewMockPage(t))

	assert.Nil(t, session)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidIDToken))
}

func TestSessionService_OpenGuest(t *testing.T) {
	ctx := context.Background()
	f, svc := newSessionFixture(t)

	f.devices.EXPECT().Load(ctx, "d1").Return(&entity.DeviceState{Permission: entity.PermissionDenied, Admin: true}, nil).Once()

	session, err := svc.Open(ctx, &usecase.SessionRequest{DeviceID: "d1"}, newQuietPage(t, entity.PermissionDefault))

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.True(t, session.Guest)
	assert.Empty(t, session.UserID)
	// A remembered admin flag means nothing without a signed-in user.
	assert.False(t, session.IsAdmin())

	svc.Close(session.ID)
}

func TestSessionService_OpenRemembersAdminClaim(t *testing.T) {
	ctx := context.Background()
	f, svc := newSessionFixture(t)

	f.identity.EXPECT().VerifyIDToken(ctx, "tok").
		Return(&service.Identity{UserID: "admin-1", Admin: boolPtr(true)}, nil).Once()
	f.devices.EXPECT().Load(ctx, "d1").Return(nil, errors.New("redis down")).Once()
	f.devices.EXPECT().SaveAdmin(ctx, "d1", true).Return(nil).Once()

	session, err := svc.Open(ctx, &usecase.SessionRequest{IDToken: "tok", DeviceID: "d1"}, newQuietPage(t, entity.PermissionDefault))

	require.NoError(t, err)
	assert.Equal(t, "admin-1", session.UserID)
	assert.True(t, session.IsAdmin())

	svc.Close(session.ID)
}

func TestSessionService_InitAllUnknownSession(t *testing.T) {
	_, svc := newSessionFixture(t)

	err := svc.InitAll(context.Background(), "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestSessionService_InitAllRunsPipelineUntilClose(t *testing.T) {
	ctx := context.Background()
	f, svc := newSessionFixture(t)

	f.identity.EXPECT().VerifyIDToken(ctx, "tok").
		Return(&service.Identity{UserID: "u1", Admin: boolPtr(true)}, nil).Once()
	f.devices.EXPECT().Load(ctx, "d1").Return(&entity.DeviceState{Permission: entity.PermissionGranted, Admin: true}, nil).Once()

	page := newQuietPage(t, entity.PermissionDefault)
	page.EXPECT().MessagingSupported().Return(true).Once()
	page.EXPECT().PushToken(mock.Anything, "test-vapid").Return("tok-u1", nil).Once()
	f.users.EXPECT().SavePushToken(mock.Anything, &entity.PushToken{Token: "tok-u1", UserID: "u1"}).Return(nil).Once()

	untilDone := func(ctx context.Context) error {
		<-ctx.Done()

		return nil
	}
	f.orders.EXPECT().WatchUserOrders(mock.Anything, "u1", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ repository.OrderChangeHandler) error { return untilDone(ctx) }).Once()
	f.orders.EXPECT().WatchLatestOrders(mock.Anything, 1, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ int, _ repository.OrderChangeHandler) error { return untilDone(ctx) }).Once()
	f.promotions.EXPECT().WatchLatestPromotions(mock.Anything, 1, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ int, _ repository.PromotionChangeHandler) error { return untilDone(ctx) }).Once()

	session, err := svc.Open(ctx, &usecase.SessionRequest{IDToken: "tok", DeviceID: "d1"}, page)
	require.NoError(t, err)

	require.NoError(t, svc.InitAll(ctx, session.ID))
	require.NoError(t, svc.InitAll(ctx, session.ID))

	done := make(chan struct{})
	go func() {
		svc.Close(session.ID)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not wait for the watchers to stop")
	}

	assert.True(t, errors.Is(svc.InitAll(ctx, session.ID), domainerrors.ErrSessionNotFound))
}

func TestSessionService_DispatchForegroundToOpenSession(t *testing.T) {
	ctx := context.Background()
	f, svc := newSessionFixture(t)

	f.identity.EXPECT().VerifyIDToken(ctx, "tok").Return(&service.Identity{UserID: "u1"}, nil).Once()

	page := newQuietPage(t, entity.PermissionDefault)
	page.EXPECT().ShowToast(mock.Anything, "B", entity.SeverityInfo, time.Duration(0)).Return(nil).Once()
	page.EXPECT().RefreshOrders(mock.Anything).Return(nil).Once()

	session, err := svc.Open(ctx, &usecase.SessionRequest{IDToken: "tok"}, page)
	require.NoError(t, err)
	defer svc.Close(session.ID)

	delivered := svc.DispatchForeground(ctx, &entity.ForegroundMessage{
		UserID:       "u1",
		Notification: entity.PushPayload{Title: "T", Body: "B"},
		Data:         map[string]string{"orderId": "77"},
	})

	assert.Equal(t, 1, delivered)
	f.pusher.AssertNotCalled(t, "SendPush", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_DispatchForegroundFallsBackToDevicePush(t *testing.T) {
	ctx := context.Background()
	f, svc := newSessionFixture(t)

	f.users.EXPECT().FindPushToken(ctx, "u2").Return(&entity.PushToken{Token: "tok-u2", UserID: "u2"}, nil).Once()
	f.pusher.EXPECT().SendPush(ctx, "tok-u2", &entity.PushPayload{Title: "T", Body: "B"}).Return(nil).Once()

	delivered := svc.DispatchForeground(ctx, &entity.ForegroundMessage{
		UserID:       "u2",
		Notification: entity.PushPayload{Title: "T", Body: "B"},
	})

	assert.Zero(t, delivered)
}

func TestSessionService_DispatchForegroundWithoutToken(t *testing.T) {
	ctx := context.Background()
	f, svc := newSessionFixture(t)

	f.users.EXPECT().FindPushToken(ctx, "u3").Return(nil, repository.ErrPushTokenNotFound).Once()

	assert.Zero(t, svc.DispatchForeground(ctx, &entity.ForegroundMessage{UserID: "u3"}))
	f.pusher.AssertNotCalled(t, "SendPush", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_CloseUnknownSessionIsNoop(t *testing.T) {
	_, svc := newSessionFixture(t)

	assert.NotPanics(t, func() { svc.Close("missing") })
}
