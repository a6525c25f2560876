package rest

import (
	"context"
	"net/http"
	"seatflow/domain"
	"seatflow/pkg/logger"
	"seatflow/pkg/metrics"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommenderService interface {
		RecommendDetailed(ctx context.Context, userID uint, topN int, filters domain.SeatFilters) ([]domain.RecommendationDetail, error)
	}

	RecommendHandler struct {
		recommenderService RecommenderService
		validate           *validator.Validate
		timeout            time.Duration
	}

	RecommendQuery struct {
		N          int  `query:"n"`
		HasPower   bool `query:"has_power"`
		NearWindow bool `query:"near_window"`
		Floor      int  `query:"floor"`
	}
)

func NewRecommendHandler(recommenderService RecommenderService) *RecommendHandler {
	return &RecommendHandler{
		recommenderService: recommenderService,
		validate:           validator.New(),
		timeout:            10 * time.Second,
	}
}

// GET /api/v1/recommendations?n=5&has_power=true&floor=2
func (h *RecommendHandler) Recommend(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	started := time.Now()
	recs, err := h.recommenderService.RecommendDetailed(ctx, userID, q.N, domain.SeatFilters{
		HasPower:   q.HasPower,
		NearWindow: q.NearWindow,
		Floor:      q.Floor,
	})
	if err != nil {
		logger.Error("Failed to recommend seats", err)
		return c.JSON(statusFromError(err), ResponseError{Message: err.Error()})
	}

	metrics.RecommendDuration.Observe(time.Since(started).Seconds())
	metrics.RecommendTotal.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
