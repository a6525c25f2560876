package allocator

import (
	"math"
	"seatflow/domain"
)

const (
	powerMatchScore  = 20.0
	windowMatchScore = 15.0
	floorMatchScore  = 10.0
	conflictPenalty  = 100.0
	areaSpreadWeight = 5.0
)

// fitness scores one candidate assignment, higher is better, floored at 0.
//
// Preference rewards and the duplicate penalty are per gene: a seat handed
// to k requesters costs the conflict penalty k times. The area spread
// penalty (stddev of per-area counts over the whole candidate) is also
// charged once per gene, so it scales with party size.
func fitness(candidate []uint, requests []domain.AllocationRequest, seatByID map[uint]*domain.Seat) float64 {
	score := 0.0

	seatCount := make(map[uint]int, len(candidate))
	areaCount := make(map[string]int, 4)
	for _, seatID := range candidate {
		seatCount[seatID]++
		if seat := seatByID[seatID]; seat != nil {
			areaCount[seat.Area]++
		}
	}
	areaSpread := stddev(areaCount)

	for i, seatID := range candidate {
		seat := seatByID[seatID]
		if seat == nil {
			continue
		}

		prefs := requests[i].Preferences
		if prefs.WantsPower && seat.HasPower {
			score += powerMatchScore
		}
		if prefs.WantsWindow && seat.NearWindow {
			score += windowMatchScore
		}
		if prefs.PreferredFloor != nil && *prefs.PreferredFloor == seat.Floor {
			score += floorMatchScore
		}

		if seatCount[seatID] > 1 {
			score -= conflictPenalty
		}

		score -= areaSpreadWeight * areaSpread
	}

	return math.Max(0, score)
}

// stddev is the population standard deviation of the map values.
func stddev(counts map[string]int) float64 {
	if len(counts) == 0 {
		return 0
	}

	mean := 0.0
	for _, c := range counts {
		mean += float64(c)
	}
	mean /= float64(len(counts))

	variance := 0.0
	for _, c := range counts {
		d := float64(c) - mean
		variance += d * d
	}
	variance /= float64(len(counts))

	return math.Sqrt(variance)
}
