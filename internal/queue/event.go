// Package queue publishes and consumes booking lifecycle events over
// RabbitMQ.
package queue

const BookingRatedQueue = "booking.rated"

// BookingRatedEvent is published when a member rates a finished
// booking. It carries enough for downstream consumers to react without
// querying the primary database.
type BookingRatedEvent struct {
	BookingID uint   `json:"booking_id"`
	Reference string `json:"reference"`
	UserID    uint   `json:"user_id"`
	SeatID    uint   `json:"seat_id"`
	Rating    int    `json:"rating"`
	RatedAt   string `json:"rated_at"`
}
