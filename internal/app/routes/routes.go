package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vani-campus/vani/internal/app/controllers"
	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/models/dto"
	"github.com/vani-campus/vani/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrls.Auth.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Post routes
		posts := authenticated.Group("/posts")
		{
			posts.GET("", ctrls.Posts.GetAllPosts)
			posts.GET("/:id", ctrls.Posts.GetPostByID)
			posts.POST("", ctrls.Posts.CreatePost)
			posts.POST("/:id/vote", ctrls.Posts.VotePost)
		}

		// Election routes; voting and reading are open to all authenticated
		// users, the lifecycle is professor-only
		elections := authenticated.Group("/elections")
		{
			elections.GET("", ctrls.Election.GetAllElections)
			elections.GET("/:id", ctrls.Election.GetElectionByID)
			elections.POST("/:id/vote", ctrls.Election.VoteElection)

			electionsProfessorProtected := elections.Group("")
			electionsProfessorProtected.Use(authMiddleware.RoleRequired(models.RoleProfessor))
			{
				electionsProfessorProtected.POST("", ctrls.Election.CreateElection)
				electionsProfessorProtected.DELETE("/:id", ctrls.Election.DeleteElection)
			}
		}

		// Leaderboard
		authenticated.GET("/leaderboard", ctrls.Users.GetLeaderboard)

		// SOS routes
		sos := authenticated.Group("/sos")
		{
			sos.GET("", ctrls.SOS.GetAllSOS)
			sos.POST("", ctrls.SOS.TriggerSOS)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
