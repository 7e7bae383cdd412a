package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vani-campus/vani/internal/app/models/dto"
	"github.com/vani-campus/vani/internal/app/services"
	"github.com/vani-campus/vani/internal/middleware"
)

// PostController handles post endpoints
type PostController struct {
	postService *services.PostService
	voteService *services.VoteService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, voteService *services.VoteService) *PostController {
	return &PostController{
		postService: postService,
		voteService: voteService,
	}
}

// CreatePost handles post creation
// @Summary Create a post
// @Description Publishes a new post, optionally anonymous
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse} "Post created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid post data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	post, err := c.postService.Create(ctx, identity, req.Title, req.Body, req.IsAnonymous, req.Type)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewPostResponse(post)))
}

// GetAllPosts retrieves all posts
// @Summary List posts
// @Description Retrieves all posts, newest first
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PostListResponse} "Posts retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [get]
func (c *PostController) GetAllPosts(ctx *gin.Context) {
	posts, err := c.postService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, dto.NewPostResponse(&posts[i]))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PostListResponse{Posts: out}))
}

// GetPostByID retrieves a post by ID
// @Summary Get post details
// @Description Retrieves a single post by its ID
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Post retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID format"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id} [get]
func (c *PostController) GetPostByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Post ID")
	if !ok {
		return
	}

	post, err := c.postService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPostResponse(post)))
}

// VotePost handles voting on a post
// @Summary Vote on a post
// @Description Casts one up or down vote; each user gets a single vote per post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID" Format(int64) minimum(1)
// @Param request body dto.VoteRequest true "Vote direction"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse} "Vote recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 409 {object} dto.ErrorResponse "Already voted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts/{id}/vote [post]
func (c *PostController) VotePost(ctx *gin.Context) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "Post ID")
	if !ok {
		return
	}

	var req dto.VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid vote data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	post, err := c.voteService.CastPostVote(ctx, identity, id, req.Direction)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPostResponse(post)))
}

// parseIDParam parses the ":id" path parameter
func parseIDParam(ctx *gin.Context, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label)
		errorDetail = errorDetail.WithDetails(label + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
