//go:build !integration

package allocator

import (
	"context"
	"math/rand"
	"seatflow/domain"
	"testing"
)

func TestOptimizeEmptyInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := DefaultConfig()

	if got := Optimize(nil, testSeats(), cfg, rng); len(got) != 0 {
		t.Fatalf("no requests: got %v, want empty", got)
	}

	requests := []domain.AllocationRequest{{UserID: 1}}
	if got := Optimize(requests, nil, cfg, rng); len(got) != 0 {
		t.Fatalf("no seats: got %v, want empty", got)
	}
}

func TestOptimizeAssignmentShape(t *testing.T) {
	seats := testSeats()
	requests := []domain.AllocationRequest{
		{UserID: 1, Preferences: domain.SeatPreferences{WantsPower: true}},
		{UserID: 2},
		{UserID: 3, Preferences: domain.SeatPreferences{WantsWindow: true}},
	}

	rng := rand.New(rand.NewSource(42))
	got := Optimize(requests, seats, DefaultConfig(), rng)

	if len(got) != len(requests) {
		t.Fatalf("assignment length = %d, want %d", len(got), len(requests))
	}

	valid := make(map[uint]bool, len(seats))
	for _, s := range seats {
		valid[s.ID] = true
	}
	for i, seatID := range got {
		if !valid[seatID] {
			t.Errorf("gene %d: seat %d not in the provided inventory", i, seatID)
		}
	}
}

func TestOptimizeSingleRequest(t *testing.T) {
	// Length-1 candidates have no crossover cut point; pairs must pass
	// through instead of faulting.
	seats := testSeats()
	requests := []domain.AllocationRequest{
		{UserID: 1, Preferences: domain.SeatPreferences{WantsWindow: true}},
	}

	rng := rand.New(rand.NewSource(7))
	got := Optimize(requests, seats, DefaultConfig(), rng)

	if len(got) != 1 {
		t.Fatalf("assignment length = %d, want 1", len(got))
	}
	if got[0] != 3 {
		t.Errorf("assigned seat %d, want the only window seat (3)", got[0])
	}
}

func TestOptimizeConvergesOnPreferences(t *testing.T) {
	// Two requests, two seats, one clear optimum: the power seeker gets
	// the powered seat, the window seeker gets the window seat, no
	// collision, areas balanced.
	seats := []domain.Seat{
		{ID: 1, SeatNumber: "1A01", Floor: 1, Area: "A", HasPower: true},
		{ID: 2, SeatNumber: "1B01", Floor: 1, Area: "B", NearWindow: true},
	}
	requests := []domain.AllocationRequest{
		{UserID: 1, Preferences: domain.SeatPreferences{WantsPower: true}},
		{UserID: 2, Preferences: domain.SeatPreferences{WantsWindow: true}},
	}

	rng := rand.New(rand.NewSource(99))
	got := Optimize(requests, seats, DefaultConfig(), rng)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("assignment = %v, want [1 2]", got)
	}

	byID := seatIndex(seats)
	if score := fitness(got, requests, byID); score != 35 {
		t.Errorf("optimum fitness = %v, want 35 (20 power + 15 window, no penalties)", score)
	}
}

// ---- service ----

type fakeSeatRepo struct {
	seats []domain.Seat
	err   error
}

func (f *fakeSeatRepo) FindAvailable(ctx context.Context) ([]domain.Seat, error) {
	return f.seats, f.err
}

func TestServiceOptimizeAllocation(t *testing.T) {
	repo := &fakeSeatRepo{seats: []domain.Seat{
		{ID: 1, SeatNumber: "1A01", Floor: 1, Area: "A", HasPower: true},
		{ID: 2, SeatNumber: "1B01", Floor: 1, Area: "B", NearWindow: true},
	}}
	svc := NewService(repo, DefaultConfig())

	requests := []domain.AllocationRequest{
		{UserID: 7, Preferences: domain.SeatPreferences{WantsPower: true}},
		{UserID: 8, Preferences: domain.SeatPreferences{WantsWindow: true}},
	}

	got, err := svc.OptimizeAllocation(context.Background(), requests, Config{Seed: 5})
	if err != nil {
		t.Fatalf("OptimizeAllocation: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("assignments = %d, want 2", len(got))
	}
	if got[0].UserID != 7 || got[1].UserID != 8 {
		t.Errorf("request order not preserved: %+v", got)
	}
	if got[0].SeatID != 1 || got[0].SeatNumber != "1A01" {
		t.Errorf("first assignment = %+v, want powered seat 1A01", got[0])
	}
	if got[1].SeatID != 2 || got[1].Area != "B" {
		t.Errorf("second assignment = %+v, want window seat in area B", got[1])
	}
}

func TestServiceOptimizeAllocationNoSeats(t *testing.T) {
	svc := NewService(&fakeSeatRepo{}, DefaultConfig())

	requests := []domain.AllocationRequest{{UserID: 1}}
	got, err := svc.OptimizeAllocation(context.Background(), requests, Config{})
	if err != nil {
		t.Fatalf("empty inventory should not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("assignments = %v, want empty", got)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	merged := base.Merge(Config{PopulationSize: 10, Seed: 3})

	if merged.PopulationSize != 10 {
		t.Errorf("PopulationSize = %d, want 10", merged.PopulationSize)
	}
	if merged.Generations != base.Generations {
		t.Errorf("Generations = %d, want default %d", merged.Generations, base.Generations)
	}
	if merged.MutationRate != base.MutationRate || merged.CrossoverRate != base.CrossoverRate {
		t.Errorf("rates changed unexpectedly: %+v", merged)
	}
	if merged.Seed != 3 {
		t.Errorf("Seed = %d, want 3", merged.Seed)
	}
}
