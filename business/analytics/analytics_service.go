package analytics

import (
	"context"
	"fmt"
	"math"
	"time"
)

const (
	openingHour = 8
	closingHour = 22
)

// HourlyOccupancy is one hour of the occupancy report.
type HourlyOccupancy struct {
	Hour     string  `json:"hour"`
	Occupied int64   `json:"occupancy"`
	Rate     float64 `json:"rate"`
}

// PopularSeat is one row of the most-booked-seats report.
type PopularSeat struct {
	SeatNumber   string `json:"seat_number"`
	Floor        int    `json:"floor"`
	Area         string `json:"area"`
	BookingCount int64  `json:"booking_count"`
}

type BookingRepository interface {
	CountActiveOverlapping(ctx context.Context, start, end time.Time) (int64, error)
	MostBookedSeats(ctx context.Context, limit int) ([]PopularSeat, error)
}

type SeatRepository interface {
	Count(ctx context.Context) (int64, error)
}

type AnalyticsService struct {
	bookingRepo BookingRepository
	seatRepo    SeatRepository
}

func NewAnalyticsService(bookingRepo BookingRepository, seatRepo SeatRepository) *AnalyticsService {
	return &AnalyticsService{
		bookingRepo: bookingRepo,
		seatRepo:    seatRepo,
	}
}

// OccupancyByHour reports hourly occupancy between opening and closing
// hours for one day.
func (s *AnalyticsService) OccupancyByHour(ctx context.Context, day time.Time) ([]HourlyOccupancy, error) {
	totalSeats, err := s.seatRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	stats := make([]HourlyOccupancy, 0, closingHour-openingHour)
	for hour := openingHour; hour < closingHour; hour++ {
		windowStart := dayStart.Add(time.Duration(hour) * time.Hour)
		windowEnd := windowStart.Add(time.Hour)

		occupied, err := s.bookingRepo.CountActiveOverlapping(ctx, windowStart, windowEnd)
		if err != nil {
			return nil, err
		}

		rate := 0.0
		if totalSeats > 0 {
			rate = math.Round(float64(occupied)/float64(totalSeats)*10000) / 100
		}

		stats = append(stats, HourlyOccupancy{
			Hour:     fmt.Sprintf("%02d:00", hour),
			Occupied: occupied,
			Rate:     rate,
		})
	}

	return stats, nil
}

// PopularSeats reports the ten most-booked seats.
func (s *AnalyticsService) PopularSeats(ctx context.Context) ([]PopularSeat, error) {
	return s.bookingRepo.MostBookedSeats(ctx, 10)
}
