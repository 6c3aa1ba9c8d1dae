package entity

import "time"

// Severity is the presentation class of an in-page toast.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Channel is a bit set of presentation channels.
type Channel uint8

const (
	ChannelInPage Channel = 1 << iota
	ChannelSystem
	ChannelAudio

	ChannelAll = ChannelInPage | ChannelSystem | ChannelAudio
)

// Has reports whether every channel in other is enabled.
func (c Channel) Has(other Channel) bool {
	return c&other == other
}

// NotificationIntent is a single logical notification to be fanned out.
type NotificationIntent struct {
	Title         string
	Body          string
	Icon          string
	URL           string        // Where a click on the system notification navigates.
	Tag           string        // Identity of the system notification; same tag replaces.
	Severity      Severity
	ToastDuration time.Duration // Zero keeps the toaster default.
	Channels      Channel
}

// SystemNotification is what the operating-system channel renders.
type SystemNotification struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Icon    string `json:"icon"`
	Tag     string `json:"tag"`
	URL     string `json:"url,omitempty"`
	Vibrate []int  `json:"vibrate,omitempty"`
}

// PushPayload is a push message that reached an open session.
type PushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Icon  string            `json:"icon,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// OrderID returns the order reference carried by the payload data, if any.
func (p *PushPayload) OrderID() string {
	if p.Data == nil {
		return ""
	}

	return p.Data["orderId"]
}

// ForegroundMessage is a push message addressed to a user's open pages.
type ForegroundMessage struct {
	UserID       string            `json:"userId"`
	Notification PushPayload       `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

// Payload merges the notification and its data block.
func (m *ForegroundMessage) Payload() *PushPayload {
	payload := m.Notification
	if len(m.Data) > 0 {
		payload.Data = m.Data
	}

	return &payload
}
