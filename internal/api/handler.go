package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/astropulse/astropulse/internal/domain/dto"
	"github.com/astropulse/astropulse/internal/geo"
	"github.com/astropulse/astropulse/internal/logger"
	"github.com/astropulse/astropulse/internal/metrics"
	"github.com/astropulse/astropulse/internal/middleware"
	"github.com/astropulse/astropulse/internal/service"
)

var validate = validator.New()

// Handler provides the HTTP handler for the chart endpoint.
//
// Responsibilities:
//   - Validate the incoming request body
//   - Delegate the computation to the ChartService
//   - Map service error variants to HTTP status codes; this is the only
//     place where that mapping happens
type Handler struct {
	svc service.ChartService
}

// NewHandler constructs a Handler around the given service.
func NewHandler(svc service.ChartService) *Handler {
	return &Handler{svc: svc}
}

// CalculateFullAstro handles POST /calculate-full-astro requests.
//
// CalculateFullAstro godoc
// @Summary      Compute natal chart and current transits
// @Description  Resolves the birth place, derives the timezone-correct Julian Day and returns planetary positions, houses, aspects, lunar nodes and a transit snapshot
// @Tags         chart
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ChartRequest   true  "Birth date, time and place"
// @Success      200      {object}  dto.ChartResponse  "Full chart"
// @Failure      400      {object}  dto.ErrorResponse  "Missing input or place not found"
// @Failure      500      {object}  dto.ErrorResponse  "Unexpected failure"
// @Router       /calculate-full-astro [post]
func (h *Handler) CalculateFullAstro(c *gin.Context) {
	start := time.Now()

	// A body that does not parse at all is an unexpected error; a parsed
	// body with absent fields is user-correctable missing input.
	var req dto.ChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ChartRequests.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MsgServerError, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		metrics.ChartRequests.WithLabelValues("missing_input").Inc()
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.MsgMissingInput, nil))
		return
	}

	resp, err := h.svc.Calculate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, geo.ErrNotFound) {
			metrics.ChartRequests.WithLabelValues("place_not_found").Inc()
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.MsgPlaceNotFound, nil))
			return
		}

		rid, _ := c.Get(middleware.RequestIDKey)
		logger.L().Error().
			Err(err).
			Any("request_id", rid).
			Str("place", req.BirthPlace).
			Msg("chart computation failed")

		metrics.ChartRequests.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MsgServerError, err))
		return
	}

	metrics.ChartRequests.WithLabelValues("success").Inc()
	metrics.ChartLatency.Observe(time.Since(start).Seconds())
	c.JSON(http.StatusOK, resp)
}
