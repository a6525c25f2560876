package booking

import (
	"context"
	"seatflow/domain"
	"seatflow/pkg/logger"
	"time"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id uint) (domain.Booking, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.BookingDetail, error)
	Update(ctx context.Context, booking *domain.Booking) error
	HasActiveOverlap(ctx context.Context, seatID uint, start, end time.Time) (bool, error)
}

type SeatRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Seat, error)
}

// Invalidator lets a rating-affecting write drop the recommender's
// cached matrices synchronously.
type Invalidator interface {
	Invalidate()
}

// EventPublisher pushes booking lifecycle events onto the broker.
// Publish failures are logged and swallowed; the write already happened.
type EventPublisher interface {
	PublishBookingRated(ctx context.Context, booking domain.Booking) error
}

type BookingService struct {
	bookingRepo BookingRepository
	seatRepo    SeatRepository
	invalidator Invalidator
	publisher   EventPublisher
}

func NewBookingService(
	bookingRepo BookingRepository,
	seatRepo SeatRepository,
	invalidator Invalidator,
	publisher EventPublisher,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		seatRepo:    seatRepo,
		invalidator: invalidator,
		publisher:   publisher,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, booking *domain.Booking) (domain.Booking, error) {
	seat, err := s.seatRepo.FindByID(ctx, booking.SeatID)
	if err != nil {
		return domain.Booking{}, err
	}
	if seat.Status != domain.SeatStatusAvailable {
		return domain.Booking{}, domain.ErrSeatUnavailable
	}

	overlap, err := s.bookingRepo.HasActiveOverlap(ctx, booking.SeatID, booking.StartTime, booking.EndTime)
	if err != nil {
		return domain.Booking{}, err
	}
	if overlap {
		return domain.Booking{}, domain.ErrTimeConflict
	}

	booking.Reference = uuid.NewString()
	booking.Status = domain.BookingStatusActive

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return domain.Booking{}, err
	}

	logger.Info("booking_created",
		"booking_id", booking.ID,
		"user_id", booking.UserID,
		"seat_id", booking.SeatID,
	)

	return *booking, nil
}

func (s *BookingService) GetUserBookings(ctx context.Context, userID uint) ([]domain.BookingDetail, error) {
	return s.bookingRepo.FindByUser(ctx, userID)
}

func (s *BookingService) CancelBooking(ctx context.Context, id uint) error {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	booking.Status = domain.BookingStatusCancelled
	return s.bookingRepo.Update(ctx, &booking)
}

func (s *BookingService) CheckIn(ctx context.Context, id uint) error {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	booking.CheckIn = true
	return s.bookingRepo.Update(ctx, &booking)
}

// RateBooking records a 1-5 rating, completes the booking, and
// invalidates the recommender so the next recommendation call sees the
// new interaction.
func (s *BookingService) RateBooking(ctx context.Context, id uint, rating int) (domain.Booking, error) {
	if rating < 1 || rating > 5 {
		return domain.Booking{}, domain.ErrInvalidRating
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}

	booking.Rating = &rating
	booking.Status = domain.BookingStatusCompleted

	if err := s.bookingRepo.Update(ctx, &booking); err != nil {
		return domain.Booking{}, err
	}

	s.invalidator.Invalidate()

	if s.publisher != nil {
		if err := s.publisher.PublishBookingRated(ctx, booking); err != nil {
			logger.Warn("Failed to publish booking rated event", err)
		}
	}

	return booking, nil
}
