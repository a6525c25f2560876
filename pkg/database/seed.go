package database

import (
	"fmt"
	"seatflow/domain"

	"gorm.io/gorm"
)

var seedAreas = []string{"quiet", "open", "meeting", "lounge"}

const (
	seedFloors       = 3
	seedSeatsPerArea = 25
)

// SeedSeats fills an empty seats table with the default layout: three
// floors, four areas each, 25 seats per area. Even-numbered seats get a
// power outlet, the first five of every area sit near a window. A
// non-empty table is left alone.
func SeedSeats(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Seat{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count seats: %w", err)
	}
	if count > 0 {
		return nil
	}

	seats := make([]domain.Seat, 0, seedFloors*len(seedAreas)*seedSeatsPerArea)
	for floor := 1; floor <= seedFloors; floor++ {
		for areaIdx, area := range seedAreas {
			for n := 1; n <= seedSeatsPerArea; n++ {
				seats = append(seats, domain.Seat{
					SeatNumber: fmt.Sprintf("F%d-%s%02d", floor, string('A'+rune(areaIdx)), n),
					Floor:      floor,
					Area:       area,
					HasPower:   n%2 == 0,
					NearWindow: n <= 5,
					Status:     domain.SeatStatusAvailable,
				})
			}
		}
	}

	if err := db.CreateInBatches(seats, 100).Error; err != nil {
		return fmt.Errorf("failed to seed seats: %w", err)
	}

	return nil
}
