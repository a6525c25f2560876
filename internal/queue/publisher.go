package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"seatflow/domain"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher holds a long-lived broker connection. Publish errors are
// returned to the caller; the caller decides whether to ignore them.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(BookingRatedQueue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &Publisher{conn: conn, ch: ch}, nil
}

func (p *Publisher) PublishBookingRated(ctx context.Context, booking domain.Booking) error {
	rating := 0
	if booking.Rating != nil {
		rating = *booking.Rating
	}

	event := BookingRatedEvent{
		BookingID: booking.ID,
		Reference: booking.Reference,
		UserID:    booking.UserID,
		SeatID:    booking.SeatID,
		Rating:    rating,
		RatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, "", BookingRatedQueue, false, false, pub); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
