package recommender

import (
	"context"
	"fmt"
	"math"
	"seatflow/domain"
	"seatflow/pkg/logger"
	"sort"
	"sync"
)

const (
	defaultTopN           = 5
	defaultPredictedScore = 3.0 // midpoint of the rating scale
)

// ---- Repository interfaces ----

type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
}

type SeatRepository interface {
	FindAll(ctx context.Context) ([]domain.Seat, error)
}

type BookingRepository interface {
	FindCompleted(ctx context.Context) ([]domain.Booking, error)
}

// snapshot is one immutable view of the interaction data. It is built
// wholesale and swapped in under the service lock; readers never see a
// half-built matrix.
type snapshot struct {
	userIdx map[uint]int
	seats   []domain.Seat
	matrix  [][]float64
	sim     [][]float64
}

// ---- Usecase / Service ----

type Service struct {
	userRepo    UserRepository
	seatRepo    SeatRepository
	bookingRepo BookingRepository

	mu   sync.RWMutex
	snap *snapshot
}

func NewService(userRepo UserRepository, seatRepo SeatRepository, bookingRepo BookingRepository) *Service {
	return &Service{
		userRepo:    userRepo,
		seatRepo:    seatRepo,
		bookingRepo: bookingRepo,
	}
}

// Recommend predicts scores for every seat the user has not interacted
// with yet, applies the filters, and returns the topN best candidates in
// descending score order. Ties keep seat inventory order.
func (s *Service) Recommend(
	ctx context.Context,
	userID uint,
	topN int,
	filters domain.SeatFilters,
) ([]domain.SeatRecommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if filters.Floor < 0 {
		return nil, domain.ErrInvalidFilter
	}
	if topN <= 0 {
		topN = defaultTopN
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	uIdx, ok := snap.userIdx[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	recs := make([]domain.SeatRecommendation, 0, len(snap.seats))
	for sIdx, seat := range snap.seats {
		// skip seats the user already knows
		if snap.matrix[uIdx][sIdx] > 0 {
			continue
		}
		if !passesFilters(seat, filters) {
			continue
		}

		recs = append(recs, domain.SeatRecommendation{
			SeatID: seat.ID,
			Score:  predictScore(snap, uIdx, sIdx),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > topN {
		recs = recs[:topN]
	}

	RecommendServedTotal.Inc()

	return recs, nil
}

// RecommendDetailed is Recommend plus seat attributes for the REST layer,
// resolved from the same snapshot the prediction used.
func (s *Service) RecommendDetailed(
	ctx context.Context,
	userID uint,
	topN int,
	filters domain.SeatFilters,
) ([]domain.RecommendationDetail, error) {

	recs, err := s.Recommend(ctx, userID, topN, filters)
	if err != nil {
		return nil, err
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	seatByID := make(map[uint]domain.Seat, len(snap.seats))
	for _, seat := range snap.seats {
		seatByID[seat.ID] = seat
	}

	out := make([]domain.RecommendationDetail, 0, len(recs))
	for _, rec := range recs {
		seat := seatByID[rec.SeatID]
		out = append(out, domain.RecommendationDetail{
			SeatID:     seat.ID,
			SeatNumber: seat.SeatNumber,
			Floor:      seat.Floor,
			Area:       seat.Area,
			HasPower:   seat.HasPower,
			NearWindow: seat.NearWindow,
			Score:      math.Round(rec.Score*100) / 100,
		})
	}

	return out, nil
}

// Invalidate drops the cached matrices. The next Recommend call rebuilds
// them from scratch; call this after every rating-affecting write.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()

	logger.Debug("recommender_invalidated")
}

// snapshot returns the current view, lazily rebuilding matrix and
// similarity when a write invalidated them.
func (s *Service) snapshot(ctx context.Context) (*snapshot, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()

	if snap != nil {
		return snap, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap != nil {
		return s.snap, nil
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	seats, err := s.seatRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load seats: %w", err)
	}
	bookings, err := s.bookingRepo.FindCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completed bookings: %w", err)
	}

	userIdx := make(map[uint]int, len(users))
	for i, u := range users {
		userIdx[u.ID] = i
	}

	matrix := BuildMatrix(users, seats, bookings)

	s.snap = &snapshot{
		userIdx: userIdx,
		seats:   seats,
		matrix:  matrix,
		sim:     CosineMatrix(matrix),
	}

	MatrixRebuildsTotal.Inc()
	logger.Debug("recommender_matrix_rebuilt",
		"users", len(users),
		"seats", len(seats),
		"interactions", len(bookings),
	)

	return s.snap, nil
}

// predictScore is the similarity-weighted average of neighbor ratings for
// one seat. Neighbors without a rating for the seat contribute nothing;
// when nobody informative exists the scale midpoint is returned.
func predictScore(snap *snapshot, userIdx, seatIdx int) float64 {
	numerator := 0.0
	denominator := 0.0

	for other := range snap.matrix {
		if other == userIdx {
			continue
		}
		rating := snap.matrix[other][seatIdx]
		if rating <= 0 {
			continue
		}
		similarity := snap.sim[userIdx][other]
		numerator += similarity * rating
		denominator += math.Abs(similarity)
	}

	if denominator > 0 {
		return numerator / denominator
	}
	return defaultPredictedScore
}

func passesFilters(seat domain.Seat, f domain.SeatFilters) bool {
	if f.HasPower && !seat.HasPower {
		return false
	}
	if f.NearWindow && !seat.NearWindow {
		return false
	}
	if f.Floor != 0 && seat.Floor != f.Floor {
		return false
	}
	return true
}
