// router/router.go

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/tgechev/gonotes/auth"
	"github.com/tgechev/gonotes/config"
	"github.com/tgechev/gonotes/controller"
	"github.com/tgechev/gonotes/middleware"
	"github.com/tgechev/gonotes/model"
	"github.com/tgechev/gonotes/token"
)

func SetupRouter(
	controllers *controller.Controllers,
	tokens *token.Service,
	revoked *auth.RevocationList,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	if config.GetBool("ratelimit.enabled") {
		router.Use(middleware.RateLimiter(
			config.GetInt("ratelimit.requests"),
			config.GetDuration("ratelimit.window"),
		))
	}

	authn := middleware.Authentication(tokens, revoked)
	adminOnly := middleware.Authorize(model.RoleAdmin)

	api := router.Group("/")
	controllers.Auth.RegisterRoutes(api, authn)
	controllers.User.RegisterRoutes(api, authn, adminOnly)
	controllers.Note.RegisterRoutes(api, authn)

	return router
}
