// controller/user_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/tgechev/gonotes/errors"
	"github.com/tgechev/gonotes/model"
	"github.com/tgechev/gonotes/service"
	"github.com/tgechev/gonotes/util"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the API routes. The list, update and delete
// endpoints are admin-only.
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup, authn, adminOnly gin.HandlerFunc) {
	users := r.Group("/user", authn)
	{
		users.GET("", uc.Me)
		users.GET("/all", adminOnly, uc.ListUsers)
		users.PUT("/:id", adminOnly, uc.UpdateUser)
		users.DELETE("/:id", adminOnly, uc.DeleteUser)
	}
}

// Me endpoint returns the currently logged in user
func (uc *UserController) Me(c *gin.Context) {
	identity, ok := util.CurrentIdentity(c)
	if !ok {
		util.RespondWithMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := uc.userService.GetUser(c, identity.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found.", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Could not retrieve user.", err)
		}
		return
	}

	util.RespondWithData(c, http.StatusOK, user)
}

// ListUsers endpoint
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Could not retrieve users.", err)
		return
	}

	util.RespondWithData(c, http.StatusOK, users)
}

// UpdateUser endpoint
func (uc *UserController) UpdateUser(c *gin.Context) {
	userID := c.Param("id")
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}

	user, err := uc.userService.UpdateUser(c, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			util.RespondWithError(c, http.StatusNotFound, "User not found.", err)
		case errors.Is(err, apperrors.ErrUserConflict):
			util.RespondWithError(c, http.StatusConflict, "Username or email already exists.", err)
		case errors.Is(err, apperrors.ErrInvalidUserData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid user data.", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Could not update user.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated.", "data": user})
}

// DeleteUser endpoint
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	if err := uc.userService.DeleteUser(c, userID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found.", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Could not delete user.", err)
		}
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "User deleted.")
}
