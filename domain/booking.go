package domain

import "time"

const (
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reference string    `gorm:"column:reference;unique;not null" json:"reference"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	SeatID    uint      `gorm:"column:seat_id;not null;index" json:"seat_id"`
	StartTime time.Time `gorm:"column:start_time;not null" json:"start_time"`
	EndTime   time.Time `gorm:"column:end_time;not null" json:"end_time"`
	Status    string    `gorm:"column:status;default:active" json:"status"`
	CheckIn   bool      `gorm:"column:check_in;default:false" json:"check_in"`
	Rating    *int      `gorm:"column:rating" json:"rating,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingDetail is a booking joined with its seat for user-facing listings.
type BookingDetail struct {
	ID         uint      `json:"id"`
	Reference  string    `json:"reference"`
	SeatNumber string    `json:"seat_number"`
	Floor      int       `json:"floor"`
	Area       string    `json:"area"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	CheckIn    bool      `json:"check_in"`
	Rating     *int      `json:"rating,omitempty"`
}
