package domain

import "time"

const (
	SeatStatusAvailable   = "available"
	SeatStatusOccupied    = "occupied"
	SeatStatusMaintenance = "maintenance"
)

type Seat struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SeatNumber string `gorm:"column:seat_number;unique;not null" json:"seat_number"`
	Floor      int    `gorm:"column:floor;not null" json:"floor"`
	Area       string `gorm:"column:area" json:"area"`
	HasPower   bool   `gorm:"column:has_power;default:false" json:"has_power"`
	NearWindow bool   `gorm:"column:near_window;default:false" json:"near_window"`
	Status     string `gorm:"column:status;default:available" json:"status"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Seat) TableName() string {
	return "seats"
}

// OccupiedSlot is one taken time window on a seat for a given day.
type OccupiedSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
