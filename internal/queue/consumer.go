package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"seatflow/pkg/logger"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RatingHandler reacts to a consumed booking rating. The in-process
// recommender satisfies this with its cache invalidation.
type RatingHandler interface {
	HandleBookingRated(event BookingRatedEvent)
}

// RatingHandlerFunc adapts a plain function to RatingHandler.
type RatingHandlerFunc func(event BookingRatedEvent)

func (f RatingHandlerFunc) HandleBookingRated(event BookingRatedEvent) { f(event) }

// StartBookingRatedConsumer consumes booking.rated messages until ctx
// is cancelled, reconnecting with exponential backoff when the broker
// drops the connection.
func StartBookingRatedConsumer(ctx context.Context, url string, handler RatingHandler) {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return
		}

		conn, err := amqp.Dial(url)
		if err != nil {
			logger.Warn("Failed to dial broker, retrying", "error", err.Error(), "backoff", backoff.String())
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(ctx, conn, handler); err != nil {
			logger.Warn("Consume loop ended, reconnecting", err)
		}
		_ = conn.Close()

		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, handler RatingHandler) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(BookingRatedQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(BookingRatedQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}

			var event BookingRatedEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				logger.Warn("Failed to decode booking rated event", err)
				_ = d.Nack(false, false)
				continue
			}

			handler.HandleBookingRated(event)
			logger.Info("Consumed booking rated event",
				"booking_id", event.BookingID,
				"seat_id", event.SeatID,
				"rating", event.Rating,
			)
			_ = d.Ack(false)
		}
	}
}
