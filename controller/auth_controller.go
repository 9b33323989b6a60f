// controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tgechev/gonotes/auth"
	apperrors "github.com/tgechev/gonotes/errors"
	logger "github.com/tgechev/gonotes/logging"
	"github.com/tgechev/gonotes/model"
	"github.com/tgechev/gonotes/service"
	"github.com/tgechev/gonotes/util"
)

type AuthController struct {
	userService service.IUserService
	revoked     *auth.RevocationList
}

func NewAuthController(userService service.IUserService, revoked *auth.RevocationList) *AuthController {
	return &AuthController{
		userService: userService,
		revoked:     revoked,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup, authn gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", ac.Register)
		authGroup.POST("/login", ac.Login)
		authGroup.POST("/logout", authn, ac.Logout)
	}
}

// Register endpoint
func (ac *AuthController) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	if req.Username == "" || req.Password == "" {
		util.RespondWithMessage(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	if err := ac.userService.Register(c, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserConflict):
			util.RespondWithError(c, http.StatusConflict, "Username or email already exists.", err)
		case errors.Is(err, apperrors.ErrInvalidUserData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid user data.", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Could not create user.", err)
		}
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "User created.")
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	if req.Username == "" || req.Password == "" {
		util.RespondWithMessage(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user, signed, err := ac.userService.Authenticate(c, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			// Deliberately the same message whichever credential was wrong.
			util.RespondWithMessage(c, http.StatusBadRequest, "Invalid username or password.")
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"data": gin.H{
			"token": signed,
			"user":  user,
		},
	})
}

// Logout endpoint. Revokes the very token that authenticated this request;
// the entry lives for the token's remaining lifetime.
func (ac *AuthController) Logout(c *gin.Context) {
	identity, ok := util.CurrentIdentity(c)
	if !ok {
		util.RespondWithMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := ac.revoked.Revoke(c, identity.UserID, identity.ExpiresAt); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Could not log out user.", err)
		return
	}

	logger.Info("User logged out", zap.String("userID", identity.UserID))
	util.RespondWithMessage(c, http.StatusOK, "User logged out.")
}
