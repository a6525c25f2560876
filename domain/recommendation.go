package domain

// SeatRecommendation is one predicted (seat, score) pair, score on the
// 1-5 rating scale.
type SeatRecommendation struct {
	SeatID uint    `json:"seat_id"`
	Score  float64 `json:"score"`
}

// RecommendationDetail is a recommendation joined with its seat for the
// REST response.
type RecommendationDetail struct {
	SeatID     uint    `json:"seat_id"`
	SeatNumber string  `json:"seat_number"`
	Floor      int     `json:"floor"`
	Area       string  `json:"area"`
	HasPower   bool    `json:"has_power"`
	NearWindow bool    `json:"near_window"`
	Score      float64 `json:"score"`
}

// SeatFilters narrows recommendation candidates. A true boolean requires
// the attribute; false leaves it unconstrained. Floor 0 means no floor
// constraint.
type SeatFilters struct {
	HasPower   bool `json:"has_power"`
	NearWindow bool `json:"near_window"`
	Floor      int  `json:"floor"`
}
