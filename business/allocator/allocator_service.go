package allocator

import (
	"context"
	"fmt"
	"math/rand"
	"seatflow/domain"
	"seatflow/pkg/logger"
	"time"
)

// ---- Repository interfaces ----

type SeatRepository interface {
	FindAvailable(ctx context.Context) ([]domain.Seat, error)
}

// ---- Usecase / Service ----

type Service struct {
	seatRepo   SeatRepository
	defaultCfg Config
}

func NewService(seatRepo SeatRepository, defaultCfg Config) *Service {
	return &Service{
		seatRepo:   seatRepo,
		defaultCfg: defaultCfg,
	}
}

// OptimizeAllocation assigns one available seat to every request in the
// batch. The seat inventory is fetched once and turned into an in-memory
// lookup before the search starts, so the genetic loop never hits the
// database.
func (s *Service) OptimizeAllocation(
	ctx context.Context,
	requests []domain.AllocationRequest,
	override Config,
) ([]domain.SeatAssignment, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(requests) == 0 {
		return []domain.SeatAssignment{}, nil
	}

	seats, err := s.seatRepo.FindAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("load available seats: %w", err)
	}
	if len(seats) == 0 {
		return []domain.SeatAssignment{}, nil
	}

	cfg := s.defaultCfg.Merge(override)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	started := time.Now()
	genes := Optimize(requests, seats, cfg, rng)

	logger.Debug("allocation_optimized",
		"requests", len(requests),
		"seats", len(seats),
		"population", cfg.PopulationSize,
		"generations", cfg.Generations,
		"took", time.Since(started),
	)

	seatByID := make(map[uint]*domain.Seat, len(seats))
	for i := range seats {
		seatByID[seats[i].ID] = &seats[i]
	}

	assignments := make([]domain.SeatAssignment, 0, len(genes))
	for i, seatID := range genes {
		seat := seatByID[seatID]
		assignments = append(assignments, domain.SeatAssignment{
			UserID:     requests[i].UserID,
			SeatID:     seat.ID,
			SeatNumber: seat.SeatNumber,
			Floor:      seat.Floor,
			Area:       seat.Area,
		})
	}

	OptimizeRunsTotal.Inc()

	return assignments, nil
}
