package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

// Send writes a notification for a booking event. Stand-in for a real mail
// integration; the worker feeds it every event from the notifications topic.
func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case kafka.EventBookingCancelled:
		fmt.Printf("send email to %s: booking %d on flight %s cancelled, refund %s\n",
			event.Email, event.BookingID, event.FlightID, domain.FormatPrice(event.RefundedCents))
	default:
		fmt.Printf("send email to %s: booking %d confirmed on flight %s, %d seat(s), total %s\n",
			event.Email, event.BookingID, event.FlightID, event.Seats, domain.FormatPrice(event.TotalCents))
	}
	return nil
}
