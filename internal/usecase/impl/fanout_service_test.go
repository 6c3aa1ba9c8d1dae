package impl

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"elevenstore/internal/domain/entity"
	mockSvc "elevenstore/internal/mocks/service"
	mockUsecase "elevenstore/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fanoutFixture struct {
	toaster  *mockSvc.MockToaster
	notifier *mockSvc.MockSystemNotifier
	audio    *mockSvc.MockAudioCue
	gate     *mockUsecase.MockPermissionGate
}

func newFanoutFixture(t *testing.T, permission entity.PermissionState) (*fanoutFixture, *fanoutService) {
	f := &fanoutFixture{
		toaster:  mockSvc.NewMockToaster(t),
		notifier: mockSvc.NewMockSystemNotifier(t),
		audio:    mockSvc.NewMockAudioCue(t),
		gate:     mockUsecase.NewMockPermissionGate(t),
	}
	f.gate.EXPECT().State().Return(permission).Maybe()

	svc := NewFanoutService(newDiscardLogger(), FanoutChannels{
		Toaster:  f.toaster,
		Notifier: f.notifier,
		Audio:    f.audio,
	}, f.gate, FanoutOptions{
		DefaultIcon: "/images/logo.png",
		Vibrate:     []int{200, 100, 200},
	})

	return f, svc.(*fanoutService)
}

func TestFanout_AllChannelsWhenGranted(t *testing.T) {
	ctx := context.Background()
	f, svc := newFanoutFixture(t, entity.PermissionGranted)

	var shown *entity.SystemNotification
	f.toaster.EXPECT().ShowToast(ctx, "body", entity.SeveritySuccess, 8*time.Second).Return(nil).Once()
	f.notifier.EXPECT().ShowNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.SystemNotification) { shown = n }).
		Return(nil).Once()
	f.audio.EXPECT().PlayChime(ctx).Return(nil).Once()

	svc.Deliver(ctx, &entity.NotificationIntent{
		Title:         "title",
		Body:          "body",
		URL:           "/orders",
		Tag:           "order-1",
		Severity:      entity.SeveritySuccess,
		ToastDuration: 8 * time.Second,
	})

	require.NotNil(t, shown)
	assert.Equal(t, &entity.SystemNotification{
		Title:   "title",
		Body:    "body",
		Icon:    "/images/logo.png",
		Tag:     "order-1",
		URL:     "/orders",
		Vibrate: []int{200, 100, 200},
	}, shown)
}

func TestFanout_SystemChannelNeedsGrant(t *testing.T) {
	for _, state := range []entity.PermissionState{
		entity.PermissionDefault,
		entity.PermissionDenied,
		entity.PermissionUnsupported,
	} {
		t.Run(string(state), func(t *testing.T) {
			ctx := context.Background()
			f, svc := newFanoutFixture(t, state)

			f.toaster.EXPECT().ShowToast(ctx, "b", entity.SeverityInfo, time.Duration(0)).Return(nil).Once()
			f.audio.EXPECT().PlayChime(ctx).Return(nil).Once()

			svc.Deliver(ctx, &entity.NotificationIntent{Title: "t", Body: "b", Channels: entity.ChannelAll})

			f.notifier.AssertNotCalled(t, "ShowNotification", mock.Anything, mock.Anything)
		})
	}
}

func TestFanout_ChannelFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	f, svc := newFanoutFixture(t, entity.PermissionGranted)

	f.toaster.EXPECT().ShowToast(ctx, "b", entity.SeverityInfo, time.Duration(0)).Return(errors.New("congested")).Once()
	f.notifier.EXPECT().ShowNotification(ctx, mock.Anything).
		Run(func(context.Context, *entity.SystemNotification) { panic("renderer crashed") }).
		Return(nil).Once()
	f.audio.EXPECT().PlayChime(ctx).Return(errors.New("autoplay blocked")).Once()

	assert.NotPanics(t, func() {
		svc.Deliver(ctx, &entity.NotificationIntent{Title: "t", Body: "b", Tag: "x"})
	})
}

func TestFanout_RespectsChannelSelection(t *testing.T) {
	ctx := context.Background()
	f, svc := newFanoutFixture(t, entity.PermissionGranted)

	f.toaster.EXPECT().ShowToast(ctx, "b", entity.SeverityInfo, time.Duration(0)).Return(nil).Once()
	f.audio.EXPECT().PlayChime(ctx).Return(nil).Once()

	svc.Deliver(ctx, &entity.NotificationIntent{Body: "b", Channels: entity.ChannelInPage | entity.ChannelAudio})

	f.notifier.AssertNotCalled(t, "ShowNotification", mock.Anything, mock.Anything)
}

func TestFanout_SameTagIsReusedForReplacement(t *testing.T) {
	ctx := context.Background()
	f, svc := newFanoutFixture(t, entity.PermissionGranted)

	var tags []string
	f.notifier.EXPECT().ShowNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.SystemNotification) { tags = append(tags, n.Tag) }).
		Return(nil).Twice()

	intent := &entity.NotificationIntent{Title: "t", Body: "b", Tag: "admin-new-order", Channels: entity.ChannelSystem}
	svc.Deliver(ctx, intent)
	svc.Deliver(ctx, intent)

	assert.Equal(t, []string{"admin-new-order", "admin-new-order"}, tags)
}

func TestFanout_MissingToasterIsSkipped(t *testing.T) {
	ctx := context.Background()
	audio := mockSvc.NewMockAudioCue(t)
	gate := mockUsecase.NewMockPermissionGate(t)
	gate.EXPECT().State().Return(entity.PermissionDenied).Maybe()
	audio.EXPECT().PlayChime(ctx).Return(nil).Once()

	svc := NewFanoutService(newDiscardLogger(), FanoutChannels{Audio: audio}, gate, FanoutOptions{})

	assert.NotPanics(t, func() {
		svc.Deliver(ctx, &entity.NotificationIntent{Body: "b"})
	})
}

type traceKey struct{}

// contextRecorder is a slog handler that remembers the trace value of every record's context.
type contextRecorder struct {
	mu     sync.Mutex
	traces []any
}

func (h *contextRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (h *contextRecorder) Handle(ctx context.Context, _ slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.traces = append(h.traces, ctx.Value(traceKey{}))

	return nil
}

func (h *contextRecorder) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *contextRecorder) WithGroup(string) slog.Handler      { return h }

func TestFanout_FailureLogsKeepDeliveryContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), traceKey{}, "session-s1")
	recorder := &contextRecorder{}

	toaster := mockSvc.NewMockToaster(t)
	audio := mockSvc.NewMockAudioCue(t)
	gate := mockUsecase.NewMockPermissionGate(t)
	gate.EXPECT().State().Return(entity.PermissionDenied).Maybe()
	toaster.EXPECT().ShowToast(ctx, "b", entity.SeverityInfo, time.Duration(0)).Return(errors.New("congested")).Once()
	audio.EXPECT().PlayChime(ctx).Run(func(context.Context) { panic("no audio device") }).Return(nil).Once()

	svc := NewFanoutService(slog.New(recorder), FanoutChannels{Toaster: toaster, Audio: audio}, gate, FanoutOptions{})
	svc.Deliver(ctx, &entity.NotificationIntent{Body: "b"})

	require.Len(t, recorder.traces, 2)
	for _, trace := range recorder.traces {
		assert.Equal(t, "session-s1", trace)
	}
}
