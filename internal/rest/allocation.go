package rest

import (
	"context"
	"net/http"
	"seatflow/business/allocator"
	"seatflow/domain"
	"seatflow/pkg/logger"
	"seatflow/pkg/metrics"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	AllocatorService interface {
		OptimizeAllocation(ctx context.Context, requests []domain.AllocationRequest, override allocator.Config) ([]domain.SeatAssignment, error)
	}

	AllocationHandler struct {
		allocatorService AllocatorService
		validate         *validator.Validate
		timeout          time.Duration
	}

	AllocationRequestItem struct {
		UserID      uint                   `json:"user_id" validate:"required"`
		Preferences domain.SeatPreferences `json:"preferences"`
	}

	AllocationOptimizeRequest struct {
		Requests []AllocationRequestItem `json:"requests" validate:"required,dive"`

		// optional overrides for the search parameters
		PopulationSize int   `json:"population_size" validate:"omitempty,min=2"`
		Generations    int   `json:"generations" validate:"omitempty,min=1"`
		Seed           int64 `json:"seed"`
	}
)

func NewAllocationHandler(allocatorService AllocatorService) *AllocationHandler {
	return &AllocationHandler{
		allocatorService: allocatorService,
		validate:         validator.New(),
		// the genetic search is CPU-bound and can take a while on
		// large batches
		timeout: 30 * time.Second,
	}
}

// Optimize runs one batch seat allocation for the submitted requests.
func (h *AllocationHandler) Optimize(c echo.Context) error {
	var req AllocationOptimizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate allocation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	requests := make([]domain.AllocationRequest, 0, len(req.Requests))
	for _, item := range req.Requests {
		requests = append(requests, domain.AllocationRequest{
			UserID:      item.UserID,
			Preferences: item.Preferences,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	assignments, err := h.allocatorService.OptimizeAllocation(ctx, requests, allocator.Config{
		PopulationSize: req.PopulationSize,
		Generations:    req.Generations,
		Seed:           req.Seed,
	})
	if err != nil {
		logger.Error("Failed to optimize allocation", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	metrics.AllocationDuration.Observe(time.Since(started).Seconds())
	metrics.AllocationTotal.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"assignments": assignments,
	}))
}
