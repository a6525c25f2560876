package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrSeatNotFound       = errors.New("seat not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrSeatUnavailable    = errors.New("seat is not available")
	ErrTimeConflict       = errors.New("seat already booked for this time range")
	ErrInvalidFilter      = errors.New("invalid recommendation filter")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
