//go:build !integration

package recommender

import (
	"math"
	"seatflow/domain"
	"testing"
	"time"
)

func ratingPtr(v int) *int { return &v }

func TestBuildMatrixExplicitRating(t *testing.T) {
	users := []domain.User{{ID: 1}, {ID: 2}}
	seats := []domain.Seat{{ID: 10}, {ID: 11}}

	bookings := []domain.Booking{
		{UserID: 1, SeatID: 10, Status: domain.BookingStatusCompleted, Rating: ratingPtr(5)},
		{UserID: 2, SeatID: 11, Status: domain.BookingStatusCompleted, Rating: ratingPtr(2)},
	}

	matrix := BuildMatrix(users, seats, bookings)

	if matrix[0][0] != 5 || matrix[1][1] != 2 {
		t.Errorf("matrix = %v, want ratings at [0][0]=5 and [1][1]=2", matrix)
	}
	if matrix[0][1] != 0 || matrix[1][0] != 0 {
		t.Errorf("untouched cells should stay 0: %v", matrix)
	}
}

func TestBuildMatrixDurationFallback(t *testing.T) {
	users := []domain.User{{ID: 1}}
	seats := []domain.Seat{{ID: 10}}
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		hours float64
		want  float64
	}{
		{"two hours", 2, 3},    // 2/2 + 2
		{"four hours", 4, 4},   // 4/2 + 2
		{"marathon", 12, 5},    // clamped to 5
		{"instant", 0, 2},      // 0/2 + 2
	}

	for _, tc := range cases {
		bookings := []domain.Booking{{
			UserID:    1,
			SeatID:    10,
			Status:    domain.BookingStatusCompleted,
			StartTime: start,
			EndTime:   start.Add(time.Duration(tc.hours * float64(time.Hour))),
		}}

		matrix := BuildMatrix(users, seats, bookings)
		if math.Abs(matrix[0][0]-tc.want) > 1e-9 {
			t.Errorf("%s: score = %v, want %v", tc.name, matrix[0][0], tc.want)
		}
	}
}

func TestBuildMatrixSkipsNonCompleted(t *testing.T) {
	users := []domain.User{{ID: 1}}
	seats := []domain.Seat{{ID: 10}}

	bookings := []domain.Booking{
		{UserID: 1, SeatID: 10, Status: domain.BookingStatusActive, Rating: ratingPtr(5)},
		{UserID: 1, SeatID: 10, Status: domain.BookingStatusCancelled, Rating: ratingPtr(4)},
	}

	matrix := BuildMatrix(users, seats, bookings)
	if matrix[0][0] != 0 {
		t.Errorf("only completed bookings count, got %v", matrix[0][0])
	}
}

func TestBuildMatrixIgnoresUnknownIDs(t *testing.T) {
	users := []domain.User{{ID: 1}}
	seats := []domain.Seat{{ID: 10}}

	bookings := []domain.Booking{
		{UserID: 99, SeatID: 10, Status: domain.BookingStatusCompleted, Rating: ratingPtr(5)},
		{UserID: 1, SeatID: 99, Status: domain.BookingStatusCompleted, Rating: ratingPtr(5)},
	}

	matrix := BuildMatrix(users, seats, bookings)
	if matrix[0][0] != 0 {
		t.Errorf("bookings referencing unknown rows must be dropped, got %v", matrix[0][0])
	}
}
