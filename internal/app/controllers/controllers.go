package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/models/dto"
	"github.com/vani-campus/vani/internal/app/services"
	"github.com/vani-campus/vani/internal/middleware"
)

// Controllers bundles all HTTP controllers
type Controllers struct {
	Auth     *AuthController
	Posts    *PostController
	Election *ElectionController
	Users    *UserController
	SOS      *SOSController
}

// NewControllers creates controllers over the given services
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:     NewAuthController(svcs.Auth),
		Posts:    NewPostController(svcs.Posts, svcs.Votes),
		Election: NewElectionController(svcs.Elections, svcs.Votes),
		Users:    NewUserController(svcs.Users),
		SOS:      NewSOSController(svcs.SOS),
	}
}

// identityFromContext builds the caller identity from the values placed in
// the context by the JWT middleware. Handlers never read identity from the
// request body.
func identityFromContext(ctx *gin.Context) (models.Identity, bool) {
	userID, idOK := ctx.Get(middleware.ContextUserID)
	name, nameOK := ctx.Get(middleware.ContextUserName)
	role, roleOK := ctx.Get(middleware.ContextUserRole)
	if !idOK || !nameOK || !roleOK {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return models.Identity{}, false
	}

	id, idCast := userID.(int64)
	nameStr, nameCast := name.(string)
	roleStr, roleCast := role.(string)
	if !idCast || !nameCast || !roleCast {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return models.Identity{}, false
	}

	return models.Identity{
		UserID: id,
		Name:   nameStr,
		Role:   models.RoleType(roleStr),
	}, true
}
