//go:build !integration

package recommender

import (
	"context"
	"errors"
	"math"
	"seatflow/domain"
	"testing"
)

type fakeUserRepo struct{ users []domain.User }

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	return f.users, nil
}

type fakeSeatRepo struct{ seats []domain.Seat }

func (f *fakeSeatRepo) FindAll(ctx context.Context) ([]domain.Seat, error) {
	return f.seats, nil
}

type fakeBookingRepo struct{ bookings []domain.Booking }

func (f *fakeBookingRepo) FindCompleted(ctx context.Context) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if b.Status == domain.BookingStatusCompleted {
			out = append(out, b)
		}
	}
	return out, nil
}

func rated(userID, seatID uint, rating int) domain.Booking {
	return domain.Booking{
		UserID: userID,
		SeatID: seatID,
		Status: domain.BookingStatusCompleted,
		Rating: ratingPtr(rating),
	}
}

// threeUserFixture reproduces the interaction matrix
//
//	[[5,0,3,0],
//	 [4,0,2,0],
//	 [0,5,0,4]]
func threeUserFixture() (*Service, *fakeBookingRepo) {
	users := &fakeUserRepo{users: []domain.User{{ID: 1}, {ID: 2}, {ID: 3}}}
	seats := &fakeSeatRepo{seats: []domain.Seat{
		{ID: 1, SeatNumber: "1A01", Floor: 1, Area: "A", HasPower: true},
		{ID: 2, SeatNumber: "1A02", Floor: 1, Area: "A"},
		{ID: 3, SeatNumber: "1B01", Floor: 1, Area: "B", NearWindow: true},
		{ID: 4, SeatNumber: "2B01", Floor: 2, Area: "B", HasPower: true},
	}}
	bookings := &fakeBookingRepo{bookings: []domain.Booking{
		rated(1, 1, 5), rated(1, 3, 3),
		rated(2, 1, 4), rated(2, 3, 2),
		rated(3, 2, 5), rated(3, 4, 4),
	}}

	return NewService(users, seats, bookings), bookings
}

func TestRecommendExcludesInteractedSeats(t *testing.T) {
	svc, _ := threeUserFixture()

	recs, err := svc.Recommend(context.Background(), 1, 2, domain.SeatFilters{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	for _, rec := range recs {
		if rec.SeatID == 1 || rec.SeatID == 3 {
			t.Errorf("seat %d was already rated by user 1", rec.SeatID)
		}
	}

	// User 1's only informative neighbor for seats 2 and 4 is user 3,
	// whose similarity to user 1 is 0 (disjoint ratings), so both fall
	// back to the 3.0 midpoint and keep inventory order.
	if recs[0].SeatID != 2 || recs[1].SeatID != 4 {
		t.Errorf("order = [%d %d], want [2 4] (stable tie break)", recs[0].SeatID, recs[1].SeatID)
	}
	for _, rec := range recs {
		if rec.Score != 3.0 {
			t.Errorf("seat %d score = %v, want midpoint 3.0", rec.SeatID, rec.Score)
		}
	}
}

func TestRecommendWeightedPrediction(t *testing.T) {
	// User 1 rated seat 1; user 2 rated seats 1 and 2. The neighbors
	// overlap, so seat 2's prediction for user 1 is user 2's rating
	// weighted by a non-zero similarity: sim*4 / |sim| = 4.
	users := &fakeUserRepo{users: []domain.User{{ID: 1}, {ID: 2}}}
	seats := &fakeSeatRepo{seats: []domain.Seat{{ID: 1}, {ID: 2}}}
	bookings := &fakeBookingRepo{bookings: []domain.Booking{
		rated(1, 1, 5),
		rated(2, 1, 4), rated(2, 2, 4),
	}}
	svc := NewService(users, seats, bookings)

	recs, err := svc.Recommend(context.Background(), 1, 5, domain.SeatFilters{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if len(recs) != 1 || recs[0].SeatID != 2 {
		t.Fatalf("recs = %+v, want exactly seat 2", recs)
	}
	if math.Abs(recs[0].Score-4.0) > 1e-9 {
		t.Errorf("predicted score = %v, want 4.0", recs[0].Score)
	}
}

func TestRecommendRespectsFilters(t *testing.T) {
	svc, _ := threeUserFixture()

	recs, err := svc.Recommend(context.Background(), 1, 5, domain.SeatFilters{HasPower: true})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if len(recs) != 1 || recs[0].SeatID != 4 {
		t.Fatalf("recs = %+v, want only powered seat 4", recs)
	}

	recs, err = svc.Recommend(context.Background(), 1, 5, domain.SeatFilters{Floor: 2})
	if err != nil {
		t.Fatalf("Recommend with floor filter: %v", err)
	}
	for _, rec := range recs {
		if rec.SeatID != 4 {
			t.Errorf("floor filter leaked seat %d", rec.SeatID)
		}
	}
}

func TestRecommendInvalidFilter(t *testing.T) {
	svc, _ := threeUserFixture()

	_, err := svc.Recommend(context.Background(), 1, 5, domain.SeatFilters{Floor: -1})
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("err = %v, want ErrInvalidFilter", err)
	}
}

func TestRecommendUnknownUser(t *testing.T) {
	svc, _ := threeUserFixture()

	_, err := svc.Recommend(context.Background(), 404, 5, domain.SeatFilters{})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestRecommendNoSeats(t *testing.T) {
	users := &fakeUserRepo{users: []domain.User{{ID: 1}}}
	svc := NewService(users, &fakeSeatRepo{}, &fakeBookingRepo{})

	recs, err := svc.Recommend(context.Background(), 1, 5, domain.SeatFilters{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("recs = %+v, want empty", recs)
	}
}

func TestInvalidateRebuildsFromFreshData(t *testing.T) {
	svc, bookings := threeUserFixture()

	before, err := svc.Recommend(context.Background(), 1, 5, domain.SeatFilters{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(before) != 2 {
		t.Fatalf("before = %+v, want seats 2 and 4", before)
	}

	// User 1 now rates seat 2. Without invalidation the stale snapshot
	// would keep offering it.
	bookings.bookings = append(bookings.bookings, rated(1, 2, 5))
	svc.Invalidate()

	after, err := svc.Recommend(context.Background(), 1, 5, domain.SeatFilters{})
	if err != nil {
		t.Fatalf("Recommend after invalidate: %v", err)
	}

	if len(after) != 1 || after[0].SeatID != 4 {
		t.Fatalf("after = %+v, want only seat 4 left", after)
	}
}

func TestRecommendDetailedEnrichesSeats(t *testing.T) {
	svc, _ := threeUserFixture()

	recs, err := svc.RecommendDetailed(context.Background(), 1, 5, domain.SeatFilters{})
	if err != nil {
		t.Fatalf("RecommendDetailed: %v", err)
	}

	if len(recs) != 2 {
		t.Fatalf("got %d, want 2", len(recs))
	}
	if recs[0].SeatNumber != "1A02" {
		t.Errorf("seat number = %q, want 1A02", recs[0].SeatNumber)
	}
	if recs[1].Floor != 2 || !recs[1].HasPower {
		t.Errorf("seat 4 detail = %+v, want floor 2 with power", recs[1])
	}
}
