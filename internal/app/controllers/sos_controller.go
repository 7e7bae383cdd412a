package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vani-campus/vani/internal/app/models/dto"
	"github.com/vani-campus/vani/internal/app/services"
	"github.com/vani-campus/vani/internal/middleware"
)

// SOSController handles SOS alert endpoints
type SOSController struct {
	sosService *services.SOSService
}

// NewSOSController creates a new SOSController
func NewSOSController(sosService *services.SOSService) *SOSController {
	return &SOSController{
		sosService: sosService,
	}
}

// TriggerSOS records a new SOS alert
// @Summary Trigger an SOS alert
// @Description Records a safety alert under the caller's real name
// @Tags sos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SOSRequest true "Alert location"
// @Success 201 {object} dto.APIResponse{data=dto.SOSResponse} "Alert recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sos [post]
func (c *SOSController) TriggerSOS(ctx *gin.Context) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return
	}

	var req dto.SOSRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid SOS data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	alert, err := c.sosService.Trigger(ctx, identity, req.Location)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewSOSResponse(alert)))
}

// GetAllSOS retrieves all alerts
// @Summary List SOS alerts
// @Description Retrieves all alerts, newest first
// @Tags sos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SOSResponse} "Alerts retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sos [get]
func (c *SOSController) GetAllSOS(ctx *gin.Context) {
	alerts, err := c.sosService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.SOSResponse, 0, len(alerts))
	for i := range alerts {
		out = append(out, dto.NewSOSResponse(&alerts[i]))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(out))
}
