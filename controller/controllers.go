// controller/controllers.go
package controller

import (
	"github.com/tgechev/gonotes/auth"
	"github.com/tgechev/gonotes/service"
)

// Controllers groups the HTTP layer for route registration.
type Controllers struct {
	Auth *AuthController
	User *UserController
	Note *NoteController
}

func NewControllers(services *service.Services, revoked *auth.RevocationList) *Controllers {
	return &Controllers{
		Auth: NewAuthController(services.User, revoked),
		User: NewUserController(services.User),
		Note: NewNoteController(services.Note),
	}
}
