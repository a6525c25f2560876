//go:build !integration

package seat

import (
	"context"
	"errors"
	"seatflow/domain"
	"testing"
	"time"
)

type fakeSeatRepo struct {
	seats map[uint]domain.Seat
}

func (f *fakeSeatRepo) Create(_ context.Context, s *domain.Seat) error {
	s.ID = uint(len(f.seats) + 1)
	f.seats[s.ID] = *s
	return nil
}

func (f *fakeSeatRepo) FindByID(_ context.Context, id uint) (domain.Seat, error) {
	s, ok := f.seats[id]
	if !ok {
		return domain.Seat{}, domain.ErrSeatNotFound
	}
	return s, nil
}

func (f *fakeSeatRepo) FindByQuery(_ context.Context, query SeatQuery) ([]domain.Seat, error) {
	var out []domain.Seat
	for _, s := range f.seats {
		if query.Floor != 0 && s.Floor != query.Floor {
			continue
		}
		if query.Area != "" && s.Area != query.Area {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSeatRepo) Update(_ context.Context, s *domain.Seat) error {
	if _, ok := f.seats[s.ID]; !ok {
		return domain.ErrSeatNotFound
	}
	f.seats[s.ID] = *s
	return nil
}

type fakeBookingRepo struct {
	bookings []domain.Booking
}

func (f *fakeBookingRepo) FindActiveBySeatAndDay(_ context.Context, seatID uint, dayStart, dayEnd time.Time) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.SeatID != seatID || b.Status != domain.BookingStatusActive {
			continue
		}
		if b.StartTime.Before(dayEnd) && b.EndTime.After(dayStart) {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestService() (*SeatService, *fakeSeatRepo, *fakeBookingRepo) {
	seatRepo := &fakeSeatRepo{seats: map[uint]domain.Seat{}}
	bookingRepo := &fakeBookingRepo{}
	return NewSeatService(seatRepo, bookingRepo), seatRepo, bookingRepo
}

func TestCreateSeatDefaultsStatus(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateSeat(context.Background(), &domain.Seat{
		SeatNumber: "F1-A01",
		Floor:      1,
		Area:       "quiet",
	})
	if err != nil {
		t.Fatalf("CreateSeat returned error: %v", err)
	}
	if created.Status != domain.SeatStatusAvailable {
		t.Errorf("status = %q, want %q", created.Status, domain.SeatStatusAvailable)
	}
}

func TestUpdateSeatStatus(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.seats[1] = domain.Seat{ID: 1, SeatNumber: "F1-A01", Status: domain.SeatStatusAvailable}

	updated, err := svc.UpdateSeatStatus(context.Background(), 1, domain.SeatStatusMaintenance)
	if err != nil {
		t.Fatalf("UpdateSeatStatus returned error: %v", err)
	}
	if updated.Status != domain.SeatStatusMaintenance {
		t.Errorf("status = %q, want %q", updated.Status, domain.SeatStatusMaintenance)
	}
}

func TestUpdateSeatStatusUnknownSeat(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateSeatStatus(context.Background(), 42, domain.SeatStatusOccupied)
	if !errors.Is(err, domain.ErrSeatNotFound) {
		t.Fatalf("err = %v, want ErrSeatNotFound", err)
	}
}

func TestGetAvailabilityFormatsSlots(t *testing.T) {
	svc, seatRepo, bookingRepo := newTestService()
	seatRepo.seats[1] = domain.Seat{ID: 1, SeatNumber: "F1-A01"}

	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo.bookings = []domain.Booking{
		{
			SeatID:    1,
			Status:    domain.BookingStatusActive,
			StartTime: day.Add(9 * time.Hour),
			EndTime:   day.Add(11*time.Hour + 30*time.Minute),
		},
		{
			// cancelled bookings do not block the seat
			SeatID:    1,
			Status:    domain.BookingStatusCancelled,
			StartTime: day.Add(14 * time.Hour),
			EndTime:   day.Add(16 * time.Hour),
		},
	}

	slots, err := svc.GetAvailability(context.Background(), 1, day)
	if err != nil {
		t.Fatalf("GetAvailability returned error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if slots[0].Start != "09:00" || slots[0].End != "11:30" {
		t.Errorf("slot = %v, want 09:00-11:30", slots[0])
	}
}

func TestGetAvailabilityUnknownSeat(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetAvailability(context.Background(), 9, time.Now())
	if !errors.Is(err, domain.ErrSeatNotFound) {
		t.Fatalf("err = %v, want ErrSeatNotFound", err)
	}
}
