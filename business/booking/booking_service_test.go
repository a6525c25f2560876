//go:build !integration

package booking

import (
	"context"
	"errors"
	"seatflow/domain"
	"testing"
	"time"
)

type fakeBookingRepo struct {
	bookings map[uint]domain.Booking
	overlap  bool
	nextID   uint
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[uint]domain.Booking{}, nextID: 1}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	b.ID = f.nextID
	f.nextID++
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uint) (domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) FindByUser(_ context.Context, userID uint) ([]domain.BookingDetail, error) {
	var details []domain.BookingDetail
	for _, b := range f.bookings {
		if b.UserID == userID {
			details = append(details, domain.BookingDetail{ID: b.ID, Status: b.Status})
		}
	}
	return details, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return domain.ErrBookingNotFound
	}
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) HasActiveOverlap(_ context.Context, _ uint, _, _ time.Time) (bool, error) {
	return f.overlap, nil
}

type fakeSeatRepo struct {
	seats map[uint]domain.Seat
}

func (f *fakeSeatRepo) FindByID(_ context.Context, id uint) (domain.Seat, error) {
	s, ok := f.seats[id]
	if !ok {
		return domain.Seat{}, domain.ErrSeatNotFound
	}
	return s, nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate() { f.calls++ }

type fakePublisher struct {
	published []domain.Booking
	err       error
}

func (f *fakePublisher) PublishBookingRated(_ context.Context, b domain.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, b)
	return nil
}

func testService(overlap bool) (*BookingService, *fakeBookingRepo, *fakeInvalidator, *fakePublisher) {
	bookingRepo := newFakeBookingRepo()
	bookingRepo.overlap = overlap
	seatRepo := &fakeSeatRepo{seats: map[uint]domain.Seat{
		1: {ID: 1, SeatNumber: "F1-A1", Status: domain.SeatStatusAvailable},
		2: {ID: 2, SeatNumber: "F1-A2", Status: domain.SeatStatusMaintenance},
	}}
	inv := &fakeInvalidator{}
	pub := &fakePublisher{}
	return NewBookingService(bookingRepo, seatRepo, inv, pub), bookingRepo, inv, pub
}

func TestCreateBookingAssignsReference(t *testing.T) {
	svc, _, _, _ := testService(false)

	created, err := svc.CreateBooking(context.Background(), &domain.Booking{
		UserID:    1,
		SeatID:    1,
		StartTime: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if created.Reference == "" {
		t.Error("expected a generated booking reference")
	}
	if created.Status != domain.BookingStatusActive {
		t.Errorf("status = %q, want %q", created.Status, domain.BookingStatusActive)
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	svc, _, _, _ := testService(true)

	_, err := svc.CreateBooking(context.Background(), &domain.Booking{UserID: 1, SeatID: 1})
	if !errors.Is(err, domain.ErrTimeConflict) {
		t.Fatalf("err = %v, want ErrTimeConflict", err)
	}
}

func TestCreateBookingRejectsUnavailableSeat(t *testing.T) {
	svc, _, _, _ := testService(false)

	_, err := svc.CreateBooking(context.Background(), &domain.Booking{UserID: 1, SeatID: 2})
	if !errors.Is(err, domain.ErrSeatUnavailable) {
		t.Fatalf("err = %v, want ErrSeatUnavailable", err)
	}
}

func TestCreateBookingUnknownSeat(t *testing.T) {
	svc, _, _, _ := testService(false)

	_, err := svc.CreateBooking(context.Background(), &domain.Booking{UserID: 1, SeatID: 99})
	if !errors.Is(err, domain.ErrSeatNotFound) {
		t.Fatalf("err = %v, want ErrSeatNotFound", err)
	}
}

func TestRateBookingCompletesAndInvalidates(t *testing.T) {
	svc, repo, inv, pub := testService(false)

	created, err := svc.CreateBooking(context.Background(), &domain.Booking{UserID: 1, SeatID: 1})
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	rated, err := svc.RateBooking(context.Background(), created.ID, 4)
	if err != nil {
		t.Fatalf("RateBooking returned error: %v", err)
	}
	if rated.Rating == nil || *rated.Rating != 4 {
		t.Errorf("rating = %v, want 4", rated.Rating)
	}
	if rated.Status != domain.BookingStatusCompleted {
		t.Errorf("status = %q, want %q", rated.Status, domain.BookingStatusCompleted)
	}
	if stored := repo.bookings[created.ID]; stored.Status != domain.BookingStatusCompleted {
		t.Errorf("stored status = %q, want %q", stored.Status, domain.BookingStatusCompleted)
	}
	if inv.calls != 1 {
		t.Errorf("invalidator calls = %d, want 1", inv.calls)
	}
	if len(pub.published) != 1 {
		t.Errorf("published events = %d, want 1", len(pub.published))
	}
}

func TestRateBookingRejectsOutOfRange(t *testing.T) {
	svc, _, inv, _ := testService(false)

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.RateBooking(context.Background(), 1, rating); !errors.Is(err, domain.ErrInvalidRating) {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
	if inv.calls != 0 {
		t.Errorf("invalidator calls = %d, want 0", inv.calls)
	}
}

func TestRateBookingPublishFailureIsSwallowed(t *testing.T) {
	svc, _, inv, pub := testService(false)
	pub.err = errors.New("broker down")

	created, err := svc.CreateBooking(context.Background(), &domain.Booking{UserID: 1, SeatID: 1})
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	if _, err := svc.RateBooking(context.Background(), created.ID, 5); err != nil {
		t.Fatalf("RateBooking returned error: %v", err)
	}
	if inv.calls != 1 {
		t.Errorf("invalidator calls = %d, want 1", inv.calls)
	}
}

func TestCancelBooking(t *testing.T) {
	svc, repo, _, _ := testService(false)

	created, err := svc.CreateBooking(context.Background(), &domain.Booking{UserID: 1, SeatID: 1})
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	if err := svc.CancelBooking(context.Background(), created.ID); err != nil {
		t.Fatalf("CancelBooking returned error: %v", err)
	}
	if stored := repo.bookings[created.ID]; stored.Status != domain.BookingStatusCancelled {
		t.Errorf("status = %q, want %q", stored.Status, domain.BookingStatusCancelled)
	}
}

func TestCheckIn(t *testing.T) {
	svc, repo, _, _ := testService(false)

	created, err := svc.CreateBooking(context.Background(), &domain.Booking{UserID: 1, SeatID: 1})
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	if err := svc.CheckIn(context.Background(), created.ID); err != nil {
		t.Fatalf("CheckIn returned error: %v", err)
	}
	if stored := repo.bookings[created.ID]; !stored.CheckIn {
		t.Error("expected check_in to be set")
	}
}
