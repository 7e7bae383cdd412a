package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vani-campus/vani/internal/app/models/dto"
	"github.com/vani-campus/vani/internal/app/services"
	"github.com/vani-campus/vani/internal/middleware"
)

// ElectionController handles election endpoints
type ElectionController struct {
	electionService *services.ElectionService
	voteService     *services.VoteService
}

// NewElectionController creates a new ElectionController
func NewElectionController(electionService *services.ElectionService, voteService *services.VoteService) *ElectionController {
	return &ElectionController{
		electionService: electionService,
		voteService:     voteService,
	}
}

// CreateElection handles election creation
// @Summary Create an election or poll
// @Description Opens a new election; professors only
// @Tags elections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateElectionRequest true "Election definition"
// @Success 201 {object} dto.APIResponse{data=dto.ElectionResponse} "Election created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - professors only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /elections [post]
func (c *ElectionController) CreateElection(ctx *gin.Context) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return
	}

	var req dto.CreateElectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid election data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	election, err := c.electionService.Create(ctx, identity, req.Title, req.Description, req.Type, req.Options)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewElectionResponse(election)))
}

// GetAllElections retrieves all elections
// @Summary List elections
// @Description Retrieves all elections with their running tallies
// @Tags elections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ElectionListResponse} "Elections retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /elections [get]
func (c *ElectionController) GetAllElections(ctx *gin.Context) {
	elections, err := c.electionService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.ElectionResponse, 0, len(elections))
	for i := range elections {
		out = append(out, dto.NewElectionResponse(&elections[i]))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ElectionListResponse{Elections: out}))
}

// GetElectionByID retrieves an election by ID
// @Summary Get election details
// @Description Retrieves a single election by its ID
// @Tags elections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Election ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ElectionResponse} "Election retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid election ID format"
// @Failure 404 {object} dto.ErrorResponse "Election not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /elections/{id} [get]
func (c *ElectionController) GetElectionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Election ID")
	if !ok {
		return
	}

	election, err := c.electionService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewElectionResponse(election)))
}

// VoteElection handles voting in an election
// @Summary Vote in an election
// @Description Casts one vote for an option; each user gets a single vote per election
// @Tags elections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Election ID" Format(int64) minimum(1)
// @Param request body dto.ElectionVoteRequest true "Chosen option"
// @Success 200 {object} dto.APIResponse{data=dto.ElectionResponse} "Vote recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Election or option not found"
// @Failure 409 {object} dto.ErrorResponse "Already voted or election closed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /elections/{id}/vote [post]
func (c *ElectionController) VoteElection(ctx *gin.Context) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "Election ID")
	if !ok {
		return
	}

	var req dto.ElectionVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid vote data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	election, err := c.voteService.CastElectionVote(ctx, identity, id, req.OptionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewElectionResponse(election)))
}

// DeleteElection handles election deletion
// @Summary Delete an election
// @Description Removes an election regardless of status; professors only
// @Tags elections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Election ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Election deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid election ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - professors only"
// @Failure 404 {object} dto.ErrorResponse "Election not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /elections/{id} [delete]
func (c *ElectionController) DeleteElection(ctx *gin.Context) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "Election ID")
	if !ok {
		return
	}

	if err := c.electionService.Delete(ctx, identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
