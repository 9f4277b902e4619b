package notifications

import (
	"context"
	"errors"
	"fmt"

	"courtside/internal/store"

	"github.com/9ssi7/exponent"
)

type BookingEvent string

const (
	BookingCreated  BookingEvent = "CREATED"
	BookingOffline  BookingEvent = "OFFLINE"
	BookingReleased BookingEvent = "RELEASED"
)

// SendBookingNotification pushes a booking alert to every device the seller
// has registered. Returns an error when the seller has no tokens so callers
// can log and move on.
func SendBookingNotification(ctx context.Context, push PushSender, storage store.Storage, sellerID int64, event BookingEvent, receipt, courtName string) error {
	tokens, err := storage.PushTokens.ListBySeller(ctx, sellerID)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return errors.New("no push tokens")
	}

	var title, body string
	switch event {
	case BookingCreated:
		title = "New Booking"
		body = fmt.Sprintf("New booking %s on %s", receipt, courtName)
	case BookingOffline:
		title = "Offline Booking Recorded"
		body = fmt.Sprintf("Offline booking %s recorded for %s", receipt, courtName)
	case BookingReleased:
		title = "Slot Released"
		body = fmt.Sprintf("Booking %s expired and its slot was released", receipt)
	default:
		title = "Booking Update"
		body = fmt.Sprintf("Booking %s has an update", receipt)
	}

	msgs := make([]*exponent.Message, 0, len(tokens))
	for _, t := range tokens {
		token := exponent.Token(t)
		msg := &exponent.Message{
			To:    []*exponent.Token{&token},
			Title: title,
			Body:  body,
			// the data field drives deep linking when the notification is tapped
			Data: map[string]string{
				"type":    "booking",
				"event":   string(event),
				"receipt": receipt,
				"screen":  "seller-bookings-screen",
			},
		}
		msgs = append(msgs, msg)
	}

	_, err = push.Publish(ctx, msgs)
	return err
}
