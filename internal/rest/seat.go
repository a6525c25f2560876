package rest

import (
	"context"
	"net/http"
	"seatflow/business/seat"
	"seatflow/domain"
	"seatflow/pkg/logger"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SeatService interface {
		CreateSeat(ctx context.Context, s *domain.Seat) (domain.Seat, error)
		GetSeatByID(ctx context.Context, id uint) (domain.Seat, error)
		GetAllSeats(ctx context.Context, query seat.SeatQuery) ([]domain.Seat, error)
		UpdateSeatStatus(ctx context.Context, id uint, status string) (domain.Seat, error)
		GetAvailability(ctx context.Context, seatID uint, day time.Time) ([]domain.OccupiedSlot, error)
	}

	SeatHandler struct {
		seatService SeatService
		validate    *validator.Validate
		timeout     time.Duration
	}

	SeatCreateRequest struct {
		SeatNumber string `json:"seat_number" validate:"required"`
		Floor      int    `json:"floor" validate:"required,min=1"`
		Area       string `json:"area" validate:"required"`
		HasPower   bool   `json:"has_power"`
		NearWindow bool   `json:"near_window"`
	}

	SeatStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=available occupied maintenance"`
	}

	SeatListQuery struct {
		Floor int    `query:"floor"`
		Area  string `query:"area"`
	}

	AvailabilityQuery struct {
		Date string `query:"date"`
	}
)

func NewSeatHandler(seatService SeatService) *SeatHandler {
	return &SeatHandler{
		seatService: seatService,
		validate:    validator.New(),
		timeout:     10 * time.Second,
	}
}

func (h *SeatHandler) CreateSeat(c echo.Context) error {
	var req SeatCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate seat create", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.seatService.CreateSeat(ctx, &domain.Seat{
		SeatNumber: req.SeatNumber,
		Floor:      req.Floor,
		Area:       req.Area,
		HasPower:   req.HasPower,
		NearWindow: req.NearWindow,
	})
	if err != nil {
		logger.Error("Failed to create seat", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *SeatHandler) GetSeatByID(c echo.Context) error {
	seatID, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid seat ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	found, err := h.seatService.GetSeatByID(ctx, seatID)
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(found))
}

func (h *SeatHandler) GetAllSeats(c echo.Context) error {
	var q SeatListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	seats, err := h.seatService.GetAllSeats(ctx, seat.SeatQuery{Floor: q.Floor, Area: q.Area})
	if err != nil {
		logger.Error("Failed to list seats", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(seats))
}

func (h *SeatHandler) UpdateSeatStatus(c echo.Context) error {
	seatID, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid seat ID"})
	}

	var req SeatStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.seatService.UpdateSeatStatus(ctx, seatID, req.Status)
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

// GetAvailability lists occupied time windows on a seat for one day.
// Date defaults to today when the query param is missing.
func (h *SeatHandler) GetAvailability(c echo.Context) error {
	seatID, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid seat ID"})
	}

	var q AvailabilityQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	day := time.Now()
	if q.Date != "" {
		day, err = time.Parse("2006-01-02", q.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid date, expected YYYY-MM-DD"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	slots, err := h.seatService.GetAvailability(ctx, seatID, day)
	if err != nil {
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"seat_id":  seatID,
		"date":     day.Format("2006-01-02"),
		"occupied": slots,
	}))
}
