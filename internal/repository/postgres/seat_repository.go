package postgres

import (
	"context"
	"errors"
	"fmt"
	"seatflow/business/seat"
	"seatflow/domain"

	"gorm.io/gorm"
)

type SeatRepository struct {
	DB *gorm.DB
}

func NewSeatRepository(db *gorm.DB) *SeatRepository {
	return &SeatRepository{
		DB: db,
	}
}

func (r *SeatRepository) Create(ctx context.Context, s *domain.Seat) error {
	if err := r.DB.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("failed to create seat: %w", err)
	}

	return nil
}

func (r *SeatRepository) FindByID(ctx context.Context, id uint) (domain.Seat, error) {
	var s domain.Seat

	err := r.DB.WithContext(ctx).First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Seat{}, domain.ErrSeatNotFound
		}
		return domain.Seat{}, fmt.Errorf("failed to find seat: %w", err)
	}

	return s, nil
}

func (r *SeatRepository) FindAll(ctx context.Context) ([]domain.Seat, error) {
	var seats []domain.Seat

	if err := r.DB.WithContext(ctx).Order("id").Find(&seats).Error; err != nil {
		return nil, fmt.Errorf("failed to find seats: %w", err)
	}

	return seats, nil
}

func (r *SeatRepository) FindByQuery(ctx context.Context, query seat.SeatQuery) ([]domain.Seat, error) {
	tx := r.DB.WithContext(ctx).Order("id")
	if query.Floor != 0 {
		tx = tx.Where("floor = ?", query.Floor)
	}
	if query.Area != "" {
		tx = tx.Where("area = ?", query.Area)
	}

	var seats []domain.Seat
	if err := tx.Find(&seats).Error; err != nil {
		return nil, fmt.Errorf("failed to find seats: %w", err)
	}

	return seats, nil
}

func (r *SeatRepository) FindAvailable(ctx context.Context) ([]domain.Seat, error) {
	var seats []domain.Seat

	err := r.DB.WithContext(ctx).
		Where("status = ?", domain.SeatStatusAvailable).
		Order("id").
		Find(&seats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find available seats: %w", err)
	}

	return seats, nil
}

func (r *SeatRepository) Update(ctx context.Context, s *domain.Seat) error {
	result := r.DB.WithContext(ctx).Model(&domain.Seat{}).Where("id = ?", s.ID).
		Select("seat_number", "floor", "area", "has_power", "near_window", "status").
		Updates(s)
	if result.Error != nil {
		return fmt.Errorf("failed to update seat: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSeatNotFound
	}

	return nil
}

func (r *SeatRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := r.DB.WithContext(ctx).Model(&domain.Seat{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count seats: %w", err)
	}

	return count, nil
}
