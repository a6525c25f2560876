package seat

import (
	"context"
	"seatflow/domain"
	"time"
)

// SeatQuery narrows seat listings; zero values mean "no constraint".
type SeatQuery struct {
	Floor int
	Area  string
}

type SeatRepository interface {
	Create(ctx context.Context, seat *domain.Seat) error
	FindByID(ctx context.Context, id uint) (domain.Seat, error)
	FindByQuery(ctx context.Context, query SeatQuery) ([]domain.Seat, error)
	Update(ctx context.Context, seat *domain.Seat) error
}

type BookingRepository interface {
	FindActiveBySeatAndDay(ctx context.Context, seatID uint, dayStart, dayEnd time.Time) ([]domain.Booking, error)
}

type SeatService struct {
	seatRepo    SeatRepository
	bookingRepo BookingRepository
}

func NewSeatService(seatRepo SeatRepository, bookingRepo BookingRepository) *SeatService {
	return &SeatService{
		seatRepo:    seatRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *SeatService) CreateSeat(ctx context.Context, seat *domain.Seat) (domain.Seat, error) {
	if seat.Status == "" {
		seat.Status = domain.SeatStatusAvailable
	}

	if err := s.seatRepo.Create(ctx, seat); err != nil {
		return domain.Seat{}, err
	}

	return *seat, nil
}

func (s *SeatService) GetSeatByID(ctx context.Context, id uint) (domain.Seat, error) {
	return s.seatRepo.FindByID(ctx, id)
}

func (s *SeatService) GetAllSeats(ctx context.Context, query SeatQuery) ([]domain.Seat, error) {
	return s.seatRepo.FindByQuery(ctx, query)
}

func (s *SeatService) UpdateSeatStatus(ctx context.Context, id uint, status string) (domain.Seat, error) {
	seat, err := s.seatRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Seat{}, err
	}

	seat.Status = status
	if err := s.seatRepo.Update(ctx, &seat); err != nil {
		return domain.Seat{}, err
	}

	return seat, nil
}

// GetAvailability lists the occupied time windows on a seat for one day.
func (s *SeatService) GetAvailability(ctx context.Context, seatID uint, day time.Time) ([]domain.OccupiedSlot, error) {
	if _, err := s.seatRepo.FindByID(ctx, seatID); err != nil {
		return nil, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := s.bookingRepo.FindActiveBySeatAndDay(ctx, seatID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.OccupiedSlot, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, domain.OccupiedSlot{
			Start: b.StartTime.Format("15:04"),
			End:   b.EndTime.Format("15:04"),
		})
	}

	return slots, nil
}
