package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vani-campus/vani/internal/app/models/dto"
	"github.com/vani-campus/vani/internal/app/services"
	"github.com/vani-campus/vani/internal/middleware"
)

// UserController handles user endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetLeaderboard retrieves the karma leaderboard
// @Summary Get the karma leaderboard
// @Description Retrieves the top users ordered by karma; ties resolve by join order
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of entries" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.LeaderboardResponse} "Leaderboard retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func (c *UserController) GetLeaderboard(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit")
			errorDetail = errorDetail.WithDetails("limit must be a positive number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		limit = parsed
	}

	users, err := c.userService.Leaderboard(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entries := make([]dto.LeaderboardEntry, 0, len(users))
	for i, user := range users {
		entries = append(entries, dto.LeaderboardEntry{
			Rank:  i + 1,
			Name:  user.Name,
			Role:  string(user.Role),
			Karma: user.Karma,
		})
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LeaderboardResponse{Entries: entries}))
}
