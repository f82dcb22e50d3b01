package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/numduration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/numduration/internal/domain/port/core"
	"github.com/amirhossein-jamali/numduration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DurationHandler handles duration conversion HTTP requests
type DurationHandler struct {
	conversionUseCase usecase.ConversionUseCase
	logger            coreport.Logger
}

// NewDurationHandler creates a new duration handler instance
func NewDurationHandler(
	conversionUseCase usecase.ConversionUseCase,
	logger coreport.Logger,
) *DurationHandler {
	return &DurationHandler{
		conversionUseCase: conversionUseCase,
		logger:            logger,
	}
}

// ListUnits handles the GET /v1/units endpoint
func (h *DurationHandler) ListUnits(c *gin.Context) {
	units := h.conversionUseCase.Units(c.Request.Context())

	response := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		response = append(response, dto.UnitResponse{
			Unit:        u.Name,
			Nanoseconds: u.Nanoseconds,
		})
	}

	c.JSON(http.StatusOK, response)
}

// ConvertPath handles the GET /v1/durations/{unit}/{value} endpoint
func (h *DurationHandler) ConvertPath(c *gin.Context) {
	h.convert(c, usecase.ConvertRequest{
		Value: c.Param("value"),
		Unit:  c.Param("unit"),
	})
}

// Convert handles the POST /v1/durations/convert endpoint
func (h *DurationHandler) Convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	h.convert(c, usecase.ConvertRequest{
		Value: req.Value,
		Unit:  req.Unit,
	})
}

// Shift handles the POST /v1/durations/shift endpoint
func (h *DurationHandler) Shift(c *gin.Context) {
	var req dto.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	result, err := h.conversionUseCase.Shift(c.Request.Context(), usecase.ShiftRequest{
		Value: req.Value,
		Unit:  req.Unit,
		From:  req.From,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ShiftResponse{
		ConvertResponse: toConvertResponse(&result.ConvertResult),
		From:            result.From,
		To:              result.To,
	})
}

func (h *DurationHandler) convert(c *gin.Context, req usecase.ConvertRequest) {
	result, err := h.conversionUseCase.Convert(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toConvertResponse(result))
}

func (h *DurationHandler) badRequest(c *gin.Context, err error) {
	h.logger.Warn("Invalid request format", map[string]any{
		"path":  c.FullPath(),
		"error": err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error(),
	))
}

// fail maps a use case error to its status code. Client errors carry their
// message; anything else is reported as an internal error.
func (h *DurationHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)

	message := err.Error()
	if !domainerr.IsClientError(err) {
		h.logger.Error("Conversion failed", map[string]any{
			"path":  c.FullPath(),
			"error": err.Error(),
		})
		message = "Internal server error"
	}

	c.JSON(domainerr.HTTPStatus(err), dto.NewErrorResponse(domainerr.ErrorCode(err), message))
}

func toConvertResponse(r *usecase.ConvertResult) dto.ConvertResponse {
	return dto.ConvertResponse{
		Value:       r.Value,
		Unit:        r.Unit,
		Nanoseconds: r.Nanoseconds,
		Duration:    r.Duration.String(),
	}
}
