package postgres

import (
	"context"
	"errors"
	"fmt"
	"seatflow/business/analytics"
	"seatflow/domain"
	"time"

	"gorm.io/gorm"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{
		DB: db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if err := r.DB.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uint) (domain.Booking, error) {
	var booking domain.Booking

	err := r.DB.WithContext(ctx).First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Booking{}, domain.ErrBookingNotFound
		}
		return domain.Booking{}, fmt.Errorf("failed to find booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID uint) ([]domain.BookingDetail, error) {
	var details []domain.BookingDetail

	err := r.DB.WithContext(ctx).Model(&domain.Booking{}).
		Select("bookings.id, bookings.reference, seats.seat_number, seats.floor, seats.area, "+
			"bookings.start_time, bookings.end_time, bookings.status, bookings.check_in, bookings.rating").
		Joins("JOIN seats ON seats.id = bookings.seat_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.start_time DESC").
		Scan(&details).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}

	return details, nil
}

func (r *BookingRepository) FindCompleted(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking

	err := r.DB.WithContext(ctx).
		Where("status = ?", domain.BookingStatusCompleted).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find completed bookings: %w", err)
	}

	return bookings, nil
}

func (r *BookingRepository) FindActiveBySeatAndDay(ctx context.Context, seatID uint, dayStart, dayEnd time.Time) ([]domain.Booking, error) {
	var bookings []domain.Booking

	err := r.DB.WithContext(ctx).
		Where("seat_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			seatID, domain.BookingStatusActive, dayEnd, dayStart).
		Order("start_time").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find seat bookings: %w", err)
	}

	return bookings, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	result := r.DB.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", booking.ID).
		Select("status", "check_in", "rating").
		Updates(booking)
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// HasActiveOverlap reports whether any active booking on the seat
// intersects the [start, end) window.
func (r *BookingRepository) HasActiveOverlap(ctx context.Context, seatID uint, start, end time.Time) (bool, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.Booking{}).
		Where("seat_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			seatID, domain.BookingStatusActive, end, start).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return count > 0, nil
}

func (r *BookingRepository) CountActiveOverlapping(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.Booking{}).
		Where("status = ? AND start_time < ? AND end_time > ?",
			domain.BookingStatusActive, end, start).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return count, nil
}

func (r *BookingRepository) MostBookedSeats(ctx context.Context, limit int) ([]analytics.PopularSeat, error) {
	var rows []analytics.PopularSeat

	err := r.DB.WithContext(ctx).Model(&domain.Booking{}).
		Select("seats.seat_number, seats.floor, seats.area, COUNT(bookings.id) AS booking_count").
		Joins("JOIN seats ON seats.id = bookings.seat_id").
		Where("bookings.status <> ?", domain.BookingStatusCancelled).
		Group("seats.seat_number, seats.floor, seats.area").
		Order("booking_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank seats: %w", err)
	}

	return rows, nil
}
