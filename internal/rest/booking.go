package rest

import (
	"context"
	"net/http"
	"seatflow/domain"
	"seatflow/pkg/logger"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	BookingService interface {
		CreateBooking(ctx context.Context, booking *domain.Booking) (domain.Booking, error)
		GetUserBookings(ctx context.Context, userID uint) ([]domain.BookingDetail, error)
		CancelBooking(ctx context.Context, id uint) error
		CheckIn(ctx context.Context, id uint) error
		RateBooking(ctx context.Context, id uint, rating int) (domain.Booking, error)
	}

	BookingHandler struct {
		bookingService BookingService
		validate       *validator.Validate
		timeout        time.Duration
	}

	BookingCreateRequest struct {
		SeatID    uint      `json:"seat_id" validate:"required"`
		StartTime time.Time `json:"start_time" validate:"required"`
		EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	}

	BookingRateRequest struct {
		Rating int `json:"rating" validate:"required,min=1,max=5"`
	}
)

func NewBookingHandler(bookingService BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validate:       validator.New(),
		timeout:        10 * time.Second,
	}
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req BookingCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate booking create", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.bookingService.CreateBooking(ctx, &domain.Booking{
		UserID:    userID,
		SeatID:    req.SeatID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		logger.Error("Failed to create booking", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *BookingHandler) GetMyBookings(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	bookings, err := h.bookingService.GetUserBookings(ctx, userID)
	if err != nil {
		logger.Error("Failed to list bookings", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(bookings))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid booking ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.bookingService.CancelBooking(ctx, bookingID); err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("booking cancelled"))
}

func (h *BookingHandler) CheckIn(c echo.Context) error {
	bookingID, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid booking ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.bookingService.CheckIn(ctx, bookingID); err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("checked in"))
}

func (h *BookingHandler) RateBooking(c echo.Context) error {
	bookingID, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid booking ID"})
	}

	var req BookingRateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rated, err := h.bookingService.RateBooking(ctx, bookingID, req.Rating)
	if err != nil {
		logger.Error("Failed to rate booking", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rated))
}
