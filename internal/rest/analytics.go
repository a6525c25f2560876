package rest

import (
	"context"
	"net/http"
	"seatflow/business/analytics"
	"seatflow/pkg/logger"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	AnalyticsService interface {
		OccupancyByHour(ctx context.Context, day time.Time) ([]analytics.HourlyOccupancy, error)
		PopularSeats(ctx context.Context) ([]analytics.PopularSeat, error)
	}

	AnalyticsHandler struct {
		analyticsService AnalyticsService
		timeout          time.Duration
	}

	OccupancyQuery struct {
		Date string `query:"date"`
	}
)

func NewAnalyticsHandler(analyticsService AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		timeout:          10 * time.Second,
	}
}

// GET /api/v1/analytics/occupancy?date=2026-03-01
func (h *AnalyticsHandler) Occupancy(c echo.Context) error {
	var q OccupancyQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	day := time.Now()
	if q.Date != "" {
		parsed, err := time.Parse("2006-01-02", q.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid date, expected YYYY-MM-DD"})
		}
		day = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.analyticsService.OccupancyByHour(ctx, day)
	if err != nil {
		logger.Error("Failed to build occupancy report", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}

func (h *AnalyticsHandler) PopularSeats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	seats, err := h.analyticsService.PopularSeats(ctx)
	if err != nil {
		logger.Error("Failed to rank seats", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(seats))
}
