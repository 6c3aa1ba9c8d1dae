package impl

import (
	"fmt"

	"elevenstore/internal/domain/entity"
)

// statusMessage is what a customer sees when their order moves to a status.
type statusMessage struct {
	Title      string
	BodyFormat string // Receives the order's display id.
	Severity   entity.Severity
	System     bool // Also raise an operating-system notification.
}

// statusMessageFor maps every known status; anything else reads as pending.
func statusMessageFor(status entity.OrderStatus) statusMessage {
	switch status {
	case entity.OrderStatusPending:
		return pendingMessage
	case entity.OrderStatusProcessing:
		return statusMessage{
			Title:      "جاري تجهيز طلبك ⚙️",
			BodyFormat: "طلبك رقم #%s قيد التجهيز الآن",
			Severity:   entity.SeverityInfo,
			System:     true,
		}
	case entity.OrderStatusShipped:
		return statusMessage{
			Title:      "طلبك في الطريق 🚚",
			BodyFormat: "تم شحن طلبك رقم #%s وهو في الطريق إليك",
			Severity:   entity.SeverityWarning,
			System:     true,
		}
	case entity.OrderStatusDelivered:
		return statusMessage{
			Title:      "تم توصيل طلبك ✅",
			BodyFormat: "تم توصيل طلبك رقم #%s بنجاح، نتمنى أن ينال إعجابك",
			Severity:   entity.SeveritySuccess,
			System:     true,
		}
	case entity.OrderStatusCancelled:
		return statusMessage{
			Title:      "تم إلغاء طلبك ❌",
			BodyFormat: "تم إلغاء طلبك رقم #%s",
			Severity:   entity.SeverityError,
			System:     true,
		}
	default:
		return pendingMessage
	}
}

var pendingMessage = statusMessage{
	Title:      "تم استلام طلبك 🕒",
	BodyFormat: "طلبك رقم #%s قيد المراجعة",
	Severity:   entity.SeverityInfo,
	System:     false,
}

// Body renders the message for one order.
func (m statusMessage) Body(displayID string) string {
	return fmt.Sprintf(m.BodyFormat, displayID)
}
