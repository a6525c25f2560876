package recommender

import "seatflow/domain"

const (
	minScore = 1.0
	maxScore = 5.0
)

// BuildMatrix builds the dense user x seat interaction matrix from
// completed bookings. Row and column order follow the input slices; a
// zero cell means "no recorded interaction".
func BuildMatrix(users []domain.User, seats []domain.Seat, bookings []domain.Booking) [][]float64 {
	userIdx := make(map[uint]int, len(users))
	for i, u := range users {
		userIdx[u.ID] = i
	}
	seatIdx := make(map[uint]int, len(seats))
	for i, s := range seats {
		seatIdx[s.ID] = i
	}

	matrix := make([][]float64, len(users))
	for i := range matrix {
		matrix[i] = make([]float64, len(seats))
	}

	for _, b := range bookings {
		if b.Status != domain.BookingStatusCompleted {
			continue
		}
		ui, ok := userIdx[b.UserID]
		if !ok {
			continue
		}
		si, ok := seatIdx[b.SeatID]
		if !ok {
			continue
		}
		matrix[ui][si] = interactionScore(b)
	}

	return matrix
}

// interactionScore turns one completed booking into a 1-5 score: the
// explicit rating when present, otherwise derived from session length
// (hours/2 + 2, clamped to the rating scale).
func interactionScore(b domain.Booking) float64 {
	if b.Rating != nil && *b.Rating > 0 {
		return float64(*b.Rating)
	}

	hours := b.EndTime.Sub(b.StartTime).Hours()
	score := hours/2 + 2

	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
