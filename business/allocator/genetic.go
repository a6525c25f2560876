package allocator

import (
	"math/rand"
	"seatflow/domain"
)

// Optimize runs the genetic search and returns the best assignment found:
// one seat id per request, in request order. It never touches a repository;
// callers hand it the full candidate seat inventory up front.
//
// An empty request list or empty seat list yields an empty assignment.
func Optimize(requests []domain.AllocationRequest, seats []domain.Seat, cfg Config, rng *rand.Rand) []uint {
	if len(requests) == 0 || len(seats) == 0 {
		return []uint{}
	}

	seatIDs := make([]uint, len(seats))
	seatByID := make(map[uint]*domain.Seat, len(seats))
	for i := range seats {
		seatIDs[i] = seats[i].ID
		seatByID[seats[i].ID] = &seats[i]
	}

	population := initPopulation(cfg.PopulationSize, len(requests), seatIDs, rng)

	scores := make([]float64, len(population))
	for gen := 0; gen < cfg.Generations; gen++ {
		for i, candidate := range population {
			scores[i] = fitness(candidate, requests, seatByID)
		}

		parents := selection(population, scores, rng)
		offspring := crossover(parents, cfg.CrossoverRate, rng)
		mutate(offspring, seatIDs, cfg.MutationRate, rng)

		population = offspring
	}

	best := population[0]
	bestScore := fitness(best, requests, seatByID)
	for _, candidate := range population[1:] {
		if score := fitness(candidate, requests, seatByID); score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	return best
}

func initPopulation(size, length int, seatIDs []uint, rng *rand.Rand) [][]uint {
	population := make([][]uint, size)
	for i := range population {
		candidate := make([]uint, length)
		for j := range candidate {
			candidate[j] = seatIDs[rng.Intn(len(seatIDs))]
		}
		population[i] = candidate
	}
	return population
}

// selection draws a parent pool of population size with replacement,
// weighted by fitness. A fully unfit population falls back to uniform
// sampling so the search can keep moving.
func selection(population [][]uint, scores []float64, rng *rand.Rand) [][]uint {
	total := 0.0
	for _, s := range scores {
		total += s
	}

	parents := make([][]uint, len(population))

	if total == 0 {
		for i := range parents {
			parents[i] = population[rng.Intn(len(population))]
		}
		return parents
	}

	for i := range parents {
		r := rng.Float64() * total
		acc := 0.0
		picked := population[len(population)-1]
		for j, s := range scores {
			acc += s
			if r < acc {
				picked = population[j]
				break
			}
		}
		parents[i] = picked
	}

	return parents
}

// crossover pairs parents sequentially, wrapping an odd trailing parent
// around to the head of the pool, and applies single-point crossover with
// the configured probability. The offspring list is truncated back to the
// pool size.
func crossover(parents [][]uint, rate float64, rng *rand.Rand) [][]uint {
	offspring := make([][]uint, 0, len(parents)+1)

	for i := 0; i < len(parents); i += 2 {
		p1 := parents[i]
		p2 := parents[0]
		if i+1 < len(parents) {
			p2 = parents[i+1]
		}

		// A cut point needs at least two genes on each parent.
		if len(p1) >= 2 && rng.Float64() < rate {
			point := 1 + rng.Intn(len(p1)-1)

			c1 := make([]uint, len(p1))
			c2 := make([]uint, len(p2))
			copy(c1, p1[:point])
			copy(c1[point:], p2[point:])
			copy(c2, p2[:point])
			copy(c2[point:], p1[point:])

			offspring = append(offspring, c1, c2)
		} else {
			offspring = append(offspring, cloneCandidate(p1), cloneCandidate(p2))
		}
	}

	if len(offspring) > len(parents) {
		offspring = offspring[:len(parents)]
	}

	return offspring
}

func mutate(population [][]uint, seatIDs []uint, rate float64, rng *rand.Rand) {
	for _, candidate := range population {
		for i := range candidate {
			if rng.Float64() < rate {
				candidate[i] = seatIDs[rng.Intn(len(seatIDs))]
			}
		}
	}
}

// cloneCandidate keeps pass-through parents independent: the same parent
// can be selected more than once, and mutation edits genes in place.
func cloneCandidate(c []uint) []uint {
	out := make([]uint, len(c))
	copy(out, c)
	return out
}
