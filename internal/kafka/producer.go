package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
)

// BookingEvent is published after a booking or cancellation completes. The
// workflows treat publishing as best-effort: a broker failure is logged and
// never undoes the completed workflow.
type BookingEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FlightID      string    `json:"flight_id"`
	BookingID     int64     `json:"booking_id"`
	ReceiptID     string    `json:"receipt_id"`
	Seats         int       `json:"seats"`
	TotalCents    int64     `json:"total_cents"`
	RefundedCents int64     `json:"refunded_cents"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("write message to kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
