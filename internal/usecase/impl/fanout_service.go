package impl

import (
	"context"
	"fmt"
	"log/slog"

	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/service"
	"elevenstore/internal/usecase"
)

// FanoutChannels are the presentation collaborators of one session.
// A nil channel is treated as unavailable.
type FanoutChannels struct {
	Toaster  service.Toaster
	Notifier service.SystemNotifier
	Audio    service.AudioCue
}

// FanoutOptions are the presentation defaults.
type FanoutOptions struct {
	DefaultIcon string
	Vibrate     []int
}

type fanoutService struct {
	logger   *slog.Logger
	channels FanoutChannels
	gate     usecase.PermissionGate
	opts     FanoutOptions
}

// NewFanoutService creates the delivery fan-out for a session
func NewFanoutService(logger *slog.Logger, channels FanoutChannels, gate usecase.PermissionGate, opts FanoutOptions) usecase.NotificationFanout {
	return &fanoutService{
		logger:   logger,
		channels: channels,
		gate:     gate,
		opts:     opts,
	}
}

// Deliver renders the intent on every enabled channel. A zero channel set means all channels.
func (s *fanoutService) Deliver(ctx context.Context, intent *entity.NotificationIntent) {
	channels := intent.Channels
	if channels == 0 {
		channels = entity.ChannelAll
	}

	if channels.Has(entity.ChannelInPage) && s.channels.Toaster != nil {
		s.attempt(ctx, "toast", intent.Tag, func() error {
			return s.channels.Toaster.ShowToast(ctx, intent.Body, severityOrInfo(intent.Severity), intent.ToastDuration)
		})
	}

	if channels.Has(entity.ChannelSystem) && s.channels.Notifier != nil {
		if state := s.gate.State(); state == entity.PermissionGranted {
			s.attempt(ctx, "system", intent.Tag, func() error {
				return s.channels.Notifier.ShowNotification(ctx, s.systemNotification(intent))
			})
		} else {
			s.logger.DebugContext(ctx, "[Fanout] System notification skipped",
				slog.String("tag", intent.Tag),
				slog.String("permission", string(state)),
			)
		}
	}

	if channels.Has(entity.ChannelAudio) && s.channels.Audio != nil {
		s.attempt(ctx, "audio", intent.Tag, func() error {
			return s.channels.Audio.PlayChime(ctx)
		})
	}
}

func (s *fanoutService) systemNotification(intent *entity.NotificationIntent) *entity.SystemNotification {
	icon := intent.Icon
	if icon == "" {
		icon = s.opts.DefaultIcon
	}

	return &entity.SystemNotification{
		Title:   intent.Title,
		Body:    intent.Body,
		Icon:    icon,
		Tag:     intent.Tag,
		URL:     intent.URL,
		Vibrate: s.opts.Vibrate,
	}
}

// attempt runs one channel; failures and panics end in a log line.
func (s *fanoutService) attempt(ctx context.Context, channel, tag string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "[Fanout] Channel panicked",
				slog.String("channel", channel),
				slog.String("tag", tag),
				slog.Any("error", fmt.Errorf("panic: %v", r)),
			)
		}
	}()

	if err := fn(); err != nil {
		level := slog.LevelWarn
		if channel == "audio" {
			// No audio before a user gesture is routine.
			level = slog.LevelDebug
		}
		s.logger.Log(ctx, level, "[Fanout] Channel delivery failed",
			slog.String("channel", channel),
			slog.String("tag", tag),
			slog.Any("error", err),
		)
	}
}

func severityOrInfo(severity entity.Severity) entity.Severity {
	if severity == "" {
		return entity.SeverityInfo
	}

	return severity
}
