package domain

// SeatPreferences is what one requester cares about when a batch
// allocation assigns them a seat.
type SeatPreferences struct {
	WantsPower     bool `json:"wants_power"`
	WantsWindow    bool `json:"wants_window"`
	PreferredFloor *int `json:"preferred_floor,omitempty"`
}

// AllocationRequest is one participant in a batch allocation call.
// Request order is preserved in the resulting assignments.
type AllocationRequest struct {
	UserID      uint            `json:"user_id"`
	Preferences SeatPreferences `json:"preferences"`
}

// SeatAssignment pairs a request with the seat the optimizer gave it.
type SeatAssignment struct {
	UserID     uint   `json:"user_id"`
	SeatID     uint   `json:"seat_id"`
	SeatNumber string `json:"seat_number"`
	Floor      int    `json:"floor"`
	Area       string `json:"area"`
}
