// service/services.go
package service

import "time"

// CacheTTL carries the per-resource response cache lifetimes.
type CacheTTL struct {
	Notes time.Duration
	Users time.Duration
}

// Services groups the service layer for injection into controllers.
type Services struct {
	User IUserService
	Note INoteService
}
